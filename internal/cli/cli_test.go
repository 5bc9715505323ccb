// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"testing"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/results"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCmd  Command
		wantRest []string
	}{
		{"no args is TUI", nil, CmdTUI, nil},
		{"analyze", []string{"analyze", "results.json"}, CmdAnalyze, []string{"results.json"}},
		{"analyze alias", []string{"a"}, CmdAnalyze, []string{}},
		{"report with flags", []string{"report", "--format", "csv"}, CmdReport, []string{"--format", "csv"}},
		{"summary", []string{"summary"}, CmdSummary, []string{}},
		{"serve", []string{"serve"}, CmdServe, []string{}},
		{"watch", []string{"watch"}, CmdWatch, []string{}},
		{"runs", []string{"runs", "list"}, CmdRuns, []string{"list"}},
		{"modes", []string{"modes"}, CmdModes, []string{}},
		{"shell", []string{"shell"}, CmdShell, []string{}},
		{"version long flag", []string{"--version"}, CmdVersion, []string{}},
		{"help short flag", []string{"-h"}, CmdHelp, []string{}},
		{"unknown", []string{"frobnicate"}, CmdUnknown, []string{"frobnicate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, rest := Parse(tt.args)
			if cmd != tt.wantCmd {
				t.Errorf("command = %v, want %v", cmd, tt.wantCmd)
			}
			if len(rest) != len(tt.wantRest) {
				t.Fatalf("rest = %v, want %v", rest, tt.wantRest)
			}
			for i := range rest {
				if rest[i] != tt.wantRest[i] {
					t.Errorf("rest[%d] = %q, want %q", i, rest[i], tt.wantRest[i])
				}
			}
		})
	}
}

func TestArgParser(t *testing.T) {
	p := NewArgParser([]string{"show", "--format", "csv", "--out=/tmp/x", "--json", "extra"})

	if got := p.Subcommand(); got != "show" {
		t.Errorf("subcommand = %q", got)
	}
	if got := p.Flag("format"); got != "csv" {
		t.Errorf("format = %q", got)
	}
	if got := p.Flag("out"); got != "/tmp/x" {
		t.Errorf("out = %q", got)
	}
	if !p.BoolFlag("json") {
		t.Error("json flag not seen")
	}
	if got := p.Positional(1); got != "extra" {
		t.Errorf("positional(1) = %q", got)
	}
	if got := p.PositionalCount(); got != 2 {
		t.Errorf("positional count = %d", got)
	}
}

func TestArgParserBoolOnlyFlagBeforePositional(t *testing.T) {
	// --json must not swallow the source argument that follows it.
	p := NewArgParser([]string{"--json", "results.json"})
	if !p.BoolFlag("json") {
		t.Error("json flag not seen")
	}
	if got := p.Positional(0); got != "results.json" {
		t.Errorf("positional(0) = %q, want results.json", got)
	}
}

func TestArgParserDefaults(t *testing.T) {
	p := NewArgParser([]string{"--port", "9000", "--limit", "abc"})
	if got := p.FlagIntOrDefault("port", 8087); got != 9000 {
		t.Errorf("port = %d", got)
	}
	if got := p.FlagIntOrDefault("limit", 20); got != 20 {
		t.Errorf("unparsable int should fall back, got %d", got)
	}
	if got := p.FlagOrDefault("host", "127.0.0.1"); got != "127.0.0.1" {
		t.Errorf("host = %q", got)
	}
}

func TestUsageError(t *testing.T) {
	err := Usagef("bad flag %q", "x")
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatal("Usagef should produce a *UsageError")
	}
	if usage.Error() != `bad flag "x"` {
		t.Errorf("message = %q", usage.Error())
	}
}

func shellFixture(t *testing.T) *shellState {
	t.Helper()
	records := []results.RawResult{
		{
			Benchmark: "com.benchmark.SymmetricBenchmark.Aes.encrypt",
			Mode:      "thrpt",
			Params: map[string]string{
				"providerName": "BC", "keySize": "128",
				"transform": "AES/CBC/PKCS5Padding",
			},
			PrimaryMetric: results.Metric{Score: 100, ScoreUnit: "ops/s"},
		},
		{
			Benchmark: "com.benchmark.SymmetricBenchmark.Aes.encrypt",
			Mode:      "thrpt",
			Params: map[string]string{
				"providerName": "Jostle", "keySize": "128",
				"transform": "AES/CBC/PKCS5Padding",
			},
			PrimaryMetric: results.Metric{Score: 150, ScoreUnit: "ops/s"},
		},
	}
	report := analysis.Analyze(records)
	return &shellState{report: report, source: "test", current: report.Tree}
}

func TestShellResolve(t *testing.T) {
	s := shellFixture(t)

	if node := s.resolve(""); node != s.report.Tree {
		t.Error("empty path should stay at the current node")
	}
	if node := s.resolve("Symmetric"); node == nil || node.Name != "Symmetric" {
		t.Fatal("relative child lookup failed")
	}

	s.current = s.resolve("Symmetric")
	if node := s.resolve("Aes"); node == nil || node.Name != "Aes" {
		t.Error("lookup relative to a category failed")
	}
	if node := s.resolve(".."); node != s.report.Tree {
		t.Error("cd .. from a category should reach the root")
	}
	if node := s.resolve("/"); node != s.report.Tree {
		t.Error("cd / should reach the root")
	}
	if node := s.resolve("NoSuch"); node != nil {
		t.Error("unknown name should resolve to nil")
	}
}

func TestShellComplete(t *testing.T) {
	s := shellFixture(t)

	got := s.complete("c")
	want := map[string]bool{"cd": true}
	for _, g := range got {
		if !want[g] {
			t.Errorf("unexpected completion %q", g)
		}
	}

	got = s.complete("cd Sym")
	if len(got) != 1 || got[0] != "cd Symmetric" {
		t.Errorf("completions = %v, want [cd Symmetric]", got)
	}

	if got := s.complete("modes x"); got != nil {
		t.Errorf("non-navigation command should not complete, got %v", got)
	}
}
