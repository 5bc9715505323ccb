// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/ui/styles"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/util"
)

// =============================================================================
// DETAIL PANE
// =============================================================================

// DetailPane shows the selected comparison: the derived fields plus the
// raw originating records as syntax-highlighted JSON.
type DetailPane struct {
	comparison *analysis.Comparison
	width      int
	height     int
	scroll     int
	rendered   []string
}

// NewDetailPane builds an empty detail pane.
func NewDetailPane() *DetailPane {
	return &DetailPane{}
}

// SetSize sets the viewport in cells.
func (d *DetailPane) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetComparison swaps the displayed comparison and re-renders.
func (d *DetailPane) SetComparison(c *analysis.Comparison, theme *styles.Theme) {
	d.comparison = c
	d.scroll = 0
	d.render(theme)
}

// ScrollUp moves the view one line up.
func (d *DetailPane) ScrollUp() {
	if d.scroll > 0 {
		d.scroll--
	}
}

// ScrollDown moves the view one line down.
func (d *DetailPane) ScrollDown() {
	if d.scroll < len(d.rendered)-d.height {
		d.scroll++
	}
}

// render pre-renders the pane content into lines for scrolling.
func (d *DetailPane) render(theme *styles.Theme) {
	d.rendered = nil
	c := d.comparison
	if c == nil {
		return
	}

	var b strings.Builder
	b.WriteString(theme.DetailTitle.Render(c.Label()) + "\n")
	b.WriteString(fmt.Sprintf("key: %s\n", c.Key))
	ratio, ok := c.Speedup()
	b.WriteString("speedup: " + theme.Speedup(ratio, ok).Render(util.FormatSpeedup(ratio, ok)) + "\n")
	b.WriteString("\n")

	for _, side := range []struct {
		name string
		m    *analysis.Measurement
	}{{"baseline", c.Baseline}, {"alternate", c.Alternate}} {
		if side.m == nil {
			b.WriteString(theme.Neutral.Render(side.name+": not measured") + "\n")
			continue
		}
		b.WriteString(fmt.Sprintf("%s (%s): %s ± %s %s\n",
			side.name, side.m.Provider,
			util.FormatScore(side.m.Score), util.FormatScore(side.m.ScoreError),
			c.ScoreUnit))
		if side.m.Raw != nil {
			b.WriteString(highlightJSON(side.m.Raw, theme) + "\n")
		}
	}

	d.rendered = strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
}

// highlightJSON renders a raw record as indented JSON with chroma
// highlighting; monochrome terminals get plain text.
func highlightJSON(v any, theme *styles.Theme) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("(unrenderable: %v)", err)
	}
	if theme.ColorProfile == termenv.Ascii {
		return string(raw)
	}

	chromaStyle := "catppuccin-mocha"
	if !theme.IsDark {
		chromaStyle = "catppuccin-latte"
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, string(raw), "json", "terminal256", chromaStyle); err != nil {
		return string(raw)
	}
	return buf.String()
}

// View renders the visible window of the pane.
func (d *DetailPane) View(theme *styles.Theme) string {
	if d.comparison == nil {
		return theme.Neutral.Render("select a comparison and press d")
	}
	end := d.scroll + d.height
	if d.height <= 0 || end > len(d.rendered) {
		end = len(d.rendered)
	}
	start := d.scroll
	if start > len(d.rendered) {
		start = len(d.rendered)
	}
	return strings.Join(d.rendered[start:end], "\n")
}
