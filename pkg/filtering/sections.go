// Package filtering decides which update sections a run selects from the
// names given on the command line.
package filtering

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// SectionFilter restricts which sections are dispatched.
//
// Names are matched exactly and case-sensitively. An empty filter allows
// every section.
type SectionFilter struct {
	names mapset.Set[string]
}

// NewSectionFilter builds a filter from the positional command-line arguments.
// Duplicates are collapsed.
func NewSectionFilter(names []string) SectionFilter {
	return SectionFilter{names: mapset.NewThreadUnsafeSet[string](names...)}
}

// Empty reports whether the filter allows every section.
func (f SectionFilter) Empty() bool {
	return f.names == nil || f.names.Cardinality() == 0
}

// Allows reports whether the section called name should be dispatched.
func (f SectionFilter) Allows(name string) bool {
	if f.Empty() {
		return true
	}
	return f.names.Contains(name)
}

// Names returns the filter entries in sorted order.
func (f SectionFilter) Names() []string {
	if f.Empty() {
		return nil
	}
	names := f.names.ToSlice()
	sort.Strings(names)
	return names
}

// Unknown returns the filter entries that do not name any of the known
// sections, sorted. Such entries simply match nothing.
func (f SectionFilter) Unknown(known []string) []string {
	if f.Empty() {
		return nil
	}
	unknown := f.names.Difference(mapset.NewThreadUnsafeSet[string](known...)).ToSlice()
	sort.Strings(unknown)
	return unknown
}
