// Package utils holds small terminal helpers shared by the output package.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the number of terminal cells val occupies.
// Wide characters such as CJK ideographs and emoji count as two cells.
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads val with spaces to width terminal cells.
//
// Parameters:
//   - val: The string to pad
//   - width: Target width in cells; values <= 0 leave val unchanged
//
// Returns:
//   - string: The padded string, or val if it is already wide enough
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}
