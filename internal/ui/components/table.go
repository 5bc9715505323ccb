// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/ui/styles"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/util"
)

// =============================================================================
// COMPARISON TABLE
// =============================================================================

// Fixed column widths; the benchmark column takes the remainder.
const (
	colBaseline = 12
	colJostle   = 12
	colSpeedup  = 9
	colUnit     = 10
)

// ComparisonTable renders the comparison subset of the selected tree
// node with aligned columns and speedup coloring.
type ComparisonTable struct {
	comps  []*analysis.Comparison
	cursor int
	offset int
	width  int
	height int
}

// NewComparisonTable builds an empty table.
func NewComparisonTable() *ComparisonTable {
	return &ComparisonTable{}
}

// SetComparisons swaps the rows and resets the cursor.
func (t *ComparisonTable) SetComparisons(comps []*analysis.Comparison) {
	t.comps = comps
	t.cursor = 0
	t.offset = 0
}

// SetSize sets the rendering viewport in cells.
func (t *ComparisonTable) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.clampOffset()
}

// Selected returns the comparison under the cursor, or nil.
func (t *ComparisonTable) Selected() *analysis.Comparison {
	if t.cursor < 0 || t.cursor >= len(t.comps) {
		return nil
	}
	return t.comps[t.cursor]
}

// Len returns the row count.
func (t *ComparisonTable) Len() int {
	return len(t.comps)
}

// MoveUp moves the cursor one row up.
func (t *ComparisonTable) MoveUp() {
	if t.cursor > 0 {
		t.cursor--
		t.clampOffset()
	}
}

// MoveDown moves the cursor one row down.
func (t *ComparisonTable) MoveDown() {
	if t.cursor < len(t.comps)-1 {
		t.cursor++
		t.clampOffset()
	}
}

func (t *ComparisonTable) clampOffset() {
	// One line is spent on the header.
	rows := t.height - 1
	if rows <= 0 {
		return
	}
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+rows {
		t.offset = t.cursor - rows + 1
	}
	if t.offset < 0 {
		t.offset = 0
	}
}

// labelWidth returns the benchmark column width for the current size.
func (t *ComparisonTable) labelWidth() int {
	w := t.width - colBaseline - colJostle - colSpeedup - colUnit - 4
	if w < 16 {
		w = 16
	}
	return w
}

// View renders the header and the visible rows.
func (t *ComparisonTable) View(theme *styles.Theme, focused bool) string {
	var b strings.Builder
	labelW := t.labelWidth()

	header := util.PadRight("BENCHMARK", labelW) + " " +
		util.PadLeft("BASELINE", colBaseline) + " " +
		util.PadLeft("JOSTLE", colJostle) + " " +
		util.PadLeft("SPEEDUP", colSpeedup) + " " +
		util.PadRight("UNIT", colUnit)
	b.WriteString(theme.TableHeader.Render(header))

	if len(t.comps) == 0 {
		b.WriteString("\n")
		b.WriteString(theme.Neutral.Render("no comparisons under this node"))
		return b.String()
	}

	rows := t.height - 1
	end := t.offset + rows
	if rows <= 0 || end > len(t.comps) {
		end = len(t.comps)
	}

	for i := t.offset; i < end; i++ {
		c := t.comps[i]
		ratio, ok := c.Speedup()

		label := util.PadRight(c.Label(), labelW)
		baseline := util.PadLeft(measurementCell(c.Baseline), colBaseline)
		jostle := util.PadLeft(measurementCell(c.Alternate), colJostle)
		speedup := util.PadLeft(util.FormatSpeedup(ratio, ok), colSpeedup)
		unit := util.PadRight(c.ScoreUnit, colUnit)

		b.WriteString("\n")
		if focused && i == t.cursor {
			line := label + " " + baseline + " " + jostle + " " + speedup + " " + unit
			b.WriteString(theme.TreeSelected.Render(line))
			continue
		}
		b.WriteString(theme.TableRow.Render(label + " " + baseline + " " + jostle + " "))
		b.WriteString(theme.Speedup(ratio, ok).Render(speedup))
		b.WriteString(theme.TableRow.Render(" " + unit))
	}
	return b.String()
}

// measurementCell renders one side's score, or a dash when missing.
func measurementCell(m *analysis.Measurement) string {
	if m == nil {
		return "-"
	}
	return util.FormatScore(m.Score)
}
