// Package constants provides centralized string constants used throughout the application.
// Section names, result statuses and display icons live here so that the CLI,
// the dispatcher and the list output agree on a single spelling.
package constants

// Section names in dispatch order. These are the values accepted as
// positional arguments on the command line.
const (
	SectionArchLinux = "archlinux"
	SectionNix       = "nix"
	SectionXkeysnail = "xkeysnail"
	SectionPython    = "python"
	SectionRuby      = "ruby"
	SectionNode      = "node"
	SectionOCaml     = "ocaml"
	SectionGo        = "go"
	SectionRust      = "rust"
)

// SectionOrder lists every section in the order it is dispatched.
var SectionOrder = []string{
	SectionArchLinux,
	SectionNix,
	SectionXkeysnail,
	SectionPython,
	SectionRuby,
	SectionNode,
	SectionOCaml,
	SectionGo,
	SectionRust,
}

// Section status constants represent the outcome of a single section.
const (
	// StatusUpdated indicates every command of the section exited with code 0.
	StatusUpdated = "Updated"

	// StatusFailed indicates at least one command of the section failed.
	StatusFailed = "Failed"

	// StatusSkipped indicates the section ran but its tool was missing.
	StatusSkipped = "Skipped"

	// StatusNotApplicable indicates the applicability check did not hold.
	StatusNotApplicable = "NotApplicable"

	// StatusFiltered indicates the section was excluded by the section filter.
	StatusFiltered = "Filtered"
)

// Icon constants for status display.
const (
	// IconSuccess indicates a successful or positive state (green circle).
	IconSuccess = "🟢"

	// IconError indicates an error or failed state (red X).
	IconError = "❌"

	// IconNotConfigured indicates a tool that is not present (white circle).
	IconNotConfigured = "⚪"

	// IconIgnored indicates a section excluded from processing (no entry).
	IconIgnored = "🚫"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"
)

// StatusIcon returns the icon used for a section status.
//
// Parameters:
//   - status: One of the Status* constants
//
// Returns:
//   - string: Matching icon; IconNotConfigured for unknown statuses
func StatusIcon(status string) string {
	switch status {
	case StatusUpdated:
		return IconSuccess
	case StatusFailed:
		return IconError
	case StatusFiltered:
		return IconIgnored
	default:
		return IconNotConfigured
	}
}
