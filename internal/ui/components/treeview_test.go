// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/results"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/ui/styles"
)

// fixtureTree runs a small record set through the real pipeline so the
// tree under test has the shape production trees have.
func fixtureTree(t *testing.T) *analysis.Node {
	t.Helper()
	pair := func(provider string, score float64) results.RawResult {
		return results.RawResult{
			Benchmark: "com.benchmark.SymmetricBenchmark.Aes.encrypt",
			Mode:      "thrpt",
			Params: map[string]string{
				"providerName": provider, "keySize": "128",
				"transform": "AES/CBC/PKCS5Padding",
			},
			PrimaryMetric: results.Metric{Score: score, ScoreUnit: "ops/s"},
		}
	}
	report := analysis.Analyze([]results.RawResult{pair("BC", 100), pair("Jostle", 150)})
	return report.Tree
}

func TestTreeViewFlatten(t *testing.T) {
	tv := NewTreeView(fixtureTree(t))

	// Root is expanded by default, so its category children are visible.
	if got := len(tv.rows); got != 2 {
		t.Fatalf("visible rows = %d, want 2 (root + Symmetric)", got)
	}
	if tv.Selected() == nil || tv.Selected().Name != analysis.RootName {
		t.Errorf("initial selection = %v, want root", tv.Selected())
	}

	tv.MoveDown()
	if tv.Selected().Name != "Symmetric" {
		t.Errorf("selection after MoveDown = %q, want Symmetric", tv.Selected().Name)
	}
	tv.MoveDown() // no-op at the bottom
	if tv.Selected().Name != "Symmetric" {
		t.Error("MoveDown at the last row should not move")
	}
}

func TestTreeViewExpandCollapse(t *testing.T) {
	tv := NewTreeView(fixtureTree(t))
	tv.MoveDown() // Symmetric

	before := len(tv.rows)
	tv.Toggle()
	if len(tv.rows) <= before {
		t.Fatalf("expanding a category should add rows: %d -> %d", before, len(tv.rows))
	}

	tv.Toggle()
	if got := len(tv.rows); got != before {
		t.Errorf("collapse should restore the row count: got %d, want %d", got, before)
	}

	// Collapse on an already-collapsed node jumps to the parent.
	tv.Collapse()
	if tv.Selected().Name != analysis.RootName {
		t.Errorf("Collapse on a closed node should select the parent, got %q", tv.Selected().Name)
	}
}

func TestTreeViewSetTreeKeepsExpansion(t *testing.T) {
	tv := NewTreeView(fixtureTree(t))
	tv.MoveDown()
	tv.Expand()
	expanded := len(tv.rows)

	// A reload with the same shape keeps the expanded paths open.
	tv.SetTree(fixtureTree(t))
	if got := len(tv.rows); got != expanded {
		t.Errorf("rows after reload = %d, want %d", got, expanded)
	}
}

func TestTreeViewView(t *testing.T) {
	theme := styles.NewTheme("dark")
	tv := NewTreeView(fixtureTree(t))
	tv.SetSize(60, 10)

	out := tv.View(theme)
	if !strings.Contains(out, analysis.RootName) {
		t.Errorf("view missing root name:\n%s", out)
	}
	if !strings.Contains(out, "Symmetric") {
		t.Errorf("view missing category:\n%s", out)
	}
	if !strings.Contains(out, "(1)") {
		t.Errorf("view missing comparison count:\n%s", out)
	}

	empty := NewTreeView(nil)
	if got := empty.View(theme); !strings.Contains(got, "empty") {
		t.Errorf("empty tree view = %q", got)
	}
}

func TestTreeViewScrolling(t *testing.T) {
	tv := NewTreeView(fixtureTree(t))
	tv.MoveDown()
	tv.Expand()
	tv.SetSize(40, 2)

	for i := 0; i < len(tv.rows); i++ {
		tv.MoveDown()
	}
	if tv.cursor != len(tv.rows)-1 {
		t.Fatalf("cursor = %d, want last row %d", tv.cursor, len(tv.rows)-1)
	}
	if tv.cursor < tv.offset || tv.cursor >= tv.offset+2 {
		t.Errorf("cursor %d outside window [%d, %d)", tv.cursor, tv.offset, tv.offset+2)
	}
}
