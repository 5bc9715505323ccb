// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"github.com/mattn/go-runewidth"
)

// =============================================================================
// WIDTH-AWARE STRING SHAPING
// =============================================================================

// TruncateWidth truncates a string to a maximum display width, appending
// an ellipsis when anything was cut. Display width counts CJK runes as
// two columns, so cells stay aligned in the table views.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadRight pads a string with spaces to the given display width,
// truncating first when it is too long.
func PadRight(s string, width int) string {
	s = TruncateWidth(s, width)
	return runewidth.FillRight(s, width)
}

// PadLeft right-aligns a string within the given display width.
func PadLeft(s string, width int) string {
	s = TruncateWidth(s, width)
	return runewidth.FillLeft(s, width)
}

// StringWidth returns the display width of a string.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
