// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components of the browser. It detects the
// terminal's color capability once at startup.
type Theme struct {
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// CHROME
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderMeta  lipgloss.Style
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusWarn  lipgloss.Style

	// ==========================================================================
	// TREE PANE
	// ==========================================================================

	TreePane     lipgloss.Style
	TreeItem     lipgloss.Style
	TreeSelected lipgloss.Style
	TreeCount    lipgloss.Style

	// ==========================================================================
	// TABLE PANE
	// ==========================================================================

	TablePane    lipgloss.Style
	TableHeader  lipgloss.Style
	TableRow     lipgloss.Style
	TableFocused lipgloss.Style
	Faster       lipgloss.Style
	Slower       lipgloss.Style
	Neutral      lipgloss.Style

	// ==========================================================================
	// DETAIL AND HELP
	// ==========================================================================

	DetailPane  lipgloss.Style
	DetailTitle lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	FilterBadge lipgloss.Style
}

// NewTheme builds the theme. name selects the variant ("light" or
// anything else for dark); capability detection follows termenv.
func NewTheme(name string) *Theme {
	profile := termenv.ColorProfile()
	t := &Theme{
		IsDark:       name != "light",
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
	}
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)
	t.HeaderMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)
	t.StatusKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)
	t.StatusWarn = lipgloss.NewStyle().
		Foreground(Amber)

	t.TreePane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.TreeItem = lipgloss.NewStyle().
		Foreground(TextPrimary)
	t.TreeSelected = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Cyan).
		Bold(true)
	t.TreeCount = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.TablePane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.TableFocused = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(0, 1)
	t.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)
	t.TableRow = lipgloss.NewStyle().
		Foreground(TextPrimary)
	t.Faster = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)
	t.Slower = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)
	t.Neutral = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.DetailPane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 1)
	t.DetailTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)
	t.HelpKey = lipgloss.NewStyle().
		Foreground(Cyan)
	t.HelpDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
	t.FilterBadge = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Padding(0, 1)
}

// Speedup returns the style for a speedup ratio.
func (t *Theme) Speedup(ratio float64, ok bool) lipgloss.Style {
	switch {
	case !ok:
		return t.Neutral
	case ratio > 1:
		return t.Faster
	case ratio < 1:
		return t.Slower
	default:
		return t.TableRow
	}
}
