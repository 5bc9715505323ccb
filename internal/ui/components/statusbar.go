// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/ui/styles"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/util"
)

// StatusBar renders the bottom status line: record counts, the active
// mode filter, diagnostics and the help hint.
type StatusBar struct {
	Width       int
	Diagnostics *analysis.Diagnostics
	ModeFilter  string
	Message     string
}

// View renders the bar.
func (s *StatusBar) View(theme *styles.Theme) string {
	var parts []string

	if s.Diagnostics != nil {
		parts = append(parts, fmt.Sprintf("%d records", s.Diagnostics.RecordCount))
		if !s.Diagnostics.Clean() {
			warn := fmt.Sprintf("%d rejected, %d overwrites",
				s.Diagnostics.RejectedCount(), s.Diagnostics.Overwrites.Total())
			parts = append(parts, theme.StatusWarn.Render(warn))
		}
	}
	if s.ModeFilter != "" {
		parts = append(parts, theme.FilterBadge.Render("mode: "+s.ModeFilter))
	}
	if s.Message != "" {
		parts = append(parts, s.Message)
	}
	parts = append(parts, theme.StatusKey.Render("?")+" help")

	line := strings.Join(parts, "  ")
	return theme.StatusBar.Width(s.Width).Render(util.TruncateWidth(line, s.Width-2))
}
