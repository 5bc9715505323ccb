// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package browse

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/results"
)

func record(provider, benchmark, mode string, score float64) results.RawResult {
	return results.RawResult{
		Benchmark: benchmark,
		Mode:      mode,
		Params: map[string]string{
			"providerName": provider, "keySize": "128",
			"transform": "AES/CBC/PKCS5Padding",
		},
		PrimaryMetric: results.Metric{Score: score, ScoreUnit: "ops/s"},
	}
}

func fixtureModel(t *testing.T) *Model {
	t.Helper()
	records := []results.RawResult{
		record("BC", "com.benchmark.SymmetricBenchmark.Aes.encrypt", "thrpt", 100),
		record("Jostle", "com.benchmark.SymmetricBenchmark.Aes.encrypt", "thrpt", 150),
		record("BC", "com.benchmark.SymmetricBenchmark.Aes.decrypt", "avgt", 10),
		record("Jostle", "com.benchmark.SymmetricBenchmark.Aes.decrypt", "avgt", 8),
	}
	comparator := &analysis.Comparator{BaselineMarker: "BC"}
	report := analysis.AnalyzeWith(records, comparator)
	return New(report, "test-results.json", comparator, nil)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelViewRendersAfterResize(t *testing.T) {
	m := fixtureModel(t)

	if got := m.View(); got != "loading..." {
		t.Errorf("view before resize = %q, want loading placeholder", got)
	}

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	out := m.View()
	if !strings.Contains(out, "jostle-bench") {
		t.Errorf("view missing header:\n%s", out)
	}
	if !strings.Contains(out, analysis.RootName) {
		t.Errorf("view missing tree root:\n%s", out)
	}
}

func TestModelModeFilterCycle(t *testing.T) {
	m := fixtureModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.modeFilter != "" {
		t.Fatalf("initial mode filter = %q, want none", m.modeFilter)
	}

	// Modes are sorted, so the cycle is avgt -> thrpt -> all.
	m.Update(keyPress('m'))
	if m.modeFilter != "avgt" {
		t.Errorf("after first cycle = %q, want avgt", m.modeFilter)
	}
	m.Update(keyPress('m'))
	if m.modeFilter != "thrpt" {
		t.Errorf("after second cycle = %q, want thrpt", m.modeFilter)
	}
	m.Update(keyPress('m'))
	if m.modeFilter != "" {
		t.Errorf("after third cycle = %q, want all modes", m.modeFilter)
	}
}

func TestModelTextFilter(t *testing.T) {
	m := fixtureModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m.Update(keyPress('/'))
	if !m.filterActive {
		t.Fatal("/ should open the filter prompt")
	}
	for _, r := range "decrypt" {
		m.Update(keyPress(r))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filterActive {
		t.Error("enter should close the filter prompt")
	}

	root := m.tree.Selected()
	if root == nil || len(root.Comparisons) != 1 {
		t.Fatalf("filtered root should hold 1 comparison, got %v", root)
	}
	if root.Comparisons[0].Operation != "decrypt" {
		t.Errorf("filter kept %q, want decrypt", root.Comparisons[0].Operation)
	}

	// Escape clears the filter entirely.
	m.Update(keyPress('/'))
	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if m.filterText != "" {
		t.Errorf("escape should clear the filter, got %q", m.filterText)
	}
	if got := len(m.tree.Selected().Comparisons); got != 2 {
		t.Errorf("comparisons after clearing = %d, want 2", got)
	}
}

func TestModelReloadedSwapsReport(t *testing.T) {
	m := fixtureModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	comparator := &analysis.Comparator{BaselineMarker: "BC"}
	fresh := analysis.AnalyzeWith([]results.RawResult{
		record("BC", "com.benchmark.SymmetricBenchmark.Aes.encrypt", "thrpt", 100),
		record("Jostle", "com.benchmark.SymmetricBenchmark.Aes.encrypt", "thrpt", 300),
	}, comparator)

	m.Update(ReloadedMsg{Report: fresh, Source: "new.json", ReloadedAt: time.Now()})
	if m.source != "new.json" {
		t.Errorf("source = %q, want new.json", m.source)
	}
	if got := len(m.report.Comparisons); got != 1 {
		t.Errorf("comparisons after reload = %d, want 1", got)
	}
	if !strings.Contains(m.View(), "new.json") {
		t.Error("header should show the new source")
	}
}

func TestModelQuit(t *testing.T) {
	m := fixtureModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	_, cmd := m.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if msg := cmd(); msg == nil {
		t.Error("quit command should produce a message")
	}
}
