// Package output renders the section list in the formats offered by the
// list command: an aligned terminal table, JSON and YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/orderedmap"
	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs data as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format string into a Format.
//
// The parsing is case-insensitive and an empty string selects FormatTable.
//
// Returns:
//   - Format: The parsed format
//   - error: When s names no known format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected table, json or yaml)", s)
	}
}

// Formatter writes structured data in one format.
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a formatter for the given format and writer.
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{format: format, writer: writer}
}

// Format returns the configured format.
func (f *Formatter) Format() Format {
	return f.format
}

// WriteJSON writes data as indented JSON.
//
// *orderedmap.OrderedMap values keep their insertion order and have HTML
// escaping disabled so that paths and commands print verbatim.
func (f *Formatter) WriteJSON(data interface{}) error {
	disableEscape(data)
	encoder := json.NewEncoder(f.writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteYAML writes data as YAML with two-space indentation.
func (f *Formatter) WriteYAML(data interface{}) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

func disableEscape(data interface{}) {
	switch v := data.(type) {
	case *orderedmap.OrderedMap:
		v.SetEscapeHTML(false)
	case []*orderedmap.OrderedMap:
		for _, m := range v {
			m.SetEscapeHTML(false)
		}
	}
}
