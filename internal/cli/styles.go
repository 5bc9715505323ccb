// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// init pins the lipgloss color profile so NO_COLOR, FORCE_COLOR and
// non-TTY output all behave.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// TitleStyle heads command output.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")). // Cyan
			MarginBottom(1)

	// SectionStyle marks section headers within a command's output.
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			MarginTop(1)

	// LabelStyle renders field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(18)

	// ValueStyle renders regular values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// FasterStyle marks comparisons where the alternate wins.
	FasterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// SlowerStyle marks comparisons where the baseline wins.
	SlowerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// WarningStyle renders diagnostics worth noticing.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// ErrorStyle renders failures.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	// DimStyle renders secondary information and hints.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	// SeparatorStyle renders divider lines.
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// RenderSeparator renders a horizontal divider of the given width.
func RenderSeparator(width int) string {
	if width <= 0 {
		width = 70
	}
	return SeparatorStyle.Render(strings.Repeat("-", width))
}

// RenderSpeedup styles a formatted speedup by direction.
func RenderSpeedup(text string, ratio float64, ok bool) string {
	switch {
	case !ok:
		return DimStyle.Render(text)
	case ratio > 1:
		return FasterStyle.Render(text)
	case ratio < 1:
		return SlowerStyle.Render(text)
	default:
		return ValueStyle.Render(text)
	}
}
