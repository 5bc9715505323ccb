// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/ui/styles"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/util"
)

// Header renders the one-line application header.
type Header struct {
	Source string
	Width  int
}

// View renders the title and source, truncated to the width.
func (h *Header) View(theme *styles.Theme) string {
	title := theme.HeaderTitle.Render("jostle-bench")
	meta := theme.HeaderMeta.Render(util.TruncateWidth(
		fmt.Sprintf(" %s", h.Source), h.Width-14))
	return theme.Header.Width(h.Width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, title, meta))
}
