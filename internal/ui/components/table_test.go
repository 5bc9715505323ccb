// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/ui/styles"
)

func fixtureComparisons() []*analysis.Comparison {
	return []*analysis.Comparison{
		{
			Algorithm: "AES", Operation: "encrypt", Variant: "128",
			Mode: "thrpt", ScoreUnit: "ops/s",
			Baseline:  &analysis.Measurement{Score: 100, Provider: "BC"},
			Alternate: &analysis.Measurement{Score: 150, Provider: "Jostle"},
		},
		{
			Algorithm: "AES", Operation: "decrypt", Variant: "128",
			Mode: "thrpt", ScoreUnit: "ops/s",
			Baseline: &analysis.Measurement{Score: 100, Provider: "BC"},
		},
	}
}

func TestComparisonTableNavigation(t *testing.T) {
	tbl := NewComparisonTable()
	tbl.SetComparisons(fixtureComparisons())

	if tbl.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tbl.Len())
	}
	if tbl.Selected().Operation != "encrypt" {
		t.Errorf("initial selection = %q, want encrypt", tbl.Selected().Operation)
	}

	tbl.MoveDown()
	if tbl.Selected().Operation != "decrypt" {
		t.Errorf("selection after MoveDown = %q, want decrypt", tbl.Selected().Operation)
	}
	tbl.MoveDown()
	if tbl.Selected().Operation != "decrypt" {
		t.Error("MoveDown at the last row should not move")
	}
	tbl.MoveUp()
	tbl.MoveUp()
	if tbl.Selected().Operation != "encrypt" {
		t.Error("MoveUp at the first row should not move")
	}
}

func TestComparisonTableView(t *testing.T) {
	theme := styles.NewTheme("dark")
	tbl := NewComparisonTable()
	tbl.SetComparisons(fixtureComparisons())
	tbl.SetSize(100, 10)

	out := tbl.View(theme, true)
	if !strings.Contains(out, "BENCHMARK") || !strings.Contains(out, "SPEEDUP") {
		t.Errorf("view missing header:\n%s", out)
	}
	if !strings.Contains(out, "1.50x") {
		t.Errorf("view missing speedup:\n%s", out)
	}
	// The unpaired row shows dashes for the missing side and ratio.
	if !strings.Contains(out, "-") {
		t.Errorf("view missing placeholder for unpaired row:\n%s", out)
	}
}

func TestComparisonTableEmpty(t *testing.T) {
	theme := styles.NewTheme("dark")
	tbl := NewComparisonTable()
	tbl.SetSize(80, 5)

	if tbl.Selected() != nil {
		t.Error("Selected on an empty table should be nil")
	}
	if out := tbl.View(theme, false); !strings.Contains(out, "no comparisons") {
		t.Errorf("empty view = %q", out)
	}
}

func TestComparisonTableSetComparisonsResetsCursor(t *testing.T) {
	tbl := NewComparisonTable()
	tbl.SetComparisons(fixtureComparisons())
	tbl.MoveDown()

	tbl.SetComparisons(fixtureComparisons()[:1])
	if tbl.Selected().Operation != "encrypt" {
		t.Errorf("cursor not reset: selection = %q", tbl.Selected().Operation)
	}
}
