package output

import (
	"io"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/sysupdate/pkg/constants"
)

// SectionRow describes one section for the list command.
type SectionRow struct {
	Name       string `yaml:"name"`
	Title      string `yaml:"title"`
	Tool       string `yaml:"tool"`
	Applicable bool   `yaml:"applicable"`
	Detected   bool   `yaml:"detected"`
}

// WriteSections renders rows in the formatter's format.
//
// The table shows a status icon per row: green when the section has
// something to update, white otherwise.
func (f *Formatter) WriteSections(rows []SectionRow) error {
	switch f.format {
	case FormatJSON:
		return f.WriteJSON(sectionMaps(rows))
	case FormatYAML:
		return f.WriteYAML(rows)
	default:
		return writeSectionTable(f.writer, rows)
	}
}

func sectionMaps(rows []SectionRow) []*orderedmap.OrderedMap {
	maps := make([]*orderedmap.OrderedMap, 0, len(rows))
	for _, r := range rows {
		m := orderedmap.New()
		m.Set("name", r.Name)
		m.Set("title", r.Title)
		m.Set("tool", r.Tool)
		m.Set("applicable", r.Applicable)
		m.Set("detected", r.Detected)
		maps = append(maps, m)
	}
	return maps
}

func writeSectionTable(w io.Writer, rows []SectionRow) error {
	t := NewTable("", "SECTION", "TITLE", "TOOL", "APPLICABLE")
	for _, r := range rows {
		icon := constants.IconNotConfigured
		if r.Detected {
			icon = constants.IconSuccess
		}
		applicable := "no"
		if r.Applicable {
			applicable = "yes"
		}
		t.AddRow(icon, r.Name, r.Title, r.Tool, applicable)
	}
	return t.Render(w)
}
