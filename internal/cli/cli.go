// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"runtime"
)

// Version information (can be overridden at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAnalyze
	CmdReport
	CmdSummary
	CmdServe
	CmdWatch
	CmdRuns
	CmdModes
	CmdShell
	CmdVersion
	CmdHelp
	CmdUnknown
)

// Parse maps the first argument to a command; everything after it is
// handed to the command's handler. No arguments means the TUI.
func Parse(args []string) (Command, []string) {
	if len(args) == 0 {
		return CmdTUI, nil
	}
	rest := args[1:]
	switch args[0] {
	case "analyze", "a":
		return CmdAnalyze, rest
	case "report":
		return CmdReport, rest
	case "summary":
		return CmdSummary, rest
	case "serve":
		return CmdServe, rest
	case "watch":
		return CmdWatch, rest
	case "runs":
		return CmdRuns, rest
	case "modes":
		return CmdModes, rest
	case "shell":
		return CmdShell, rest
	case "version", "-v", "--version":
		return CmdVersion, rest
	case "help", "-h", "--help":
		return CmdHelp, rest
	default:
		return CmdUnknown, args
	}
}

const usageText = `jostle-bench - BC vs Jostle crypto benchmark analysis

Loads JMH results.json documents produced by the benchmark harness,
pairs BouncyCastle (baseline) against Jostle measurements, and presents
the comparison as a navigable hierarchy.

Usage:
  jostle-bench                       Start the TUI browser (default)
  jostle-bench analyze [source]      One-shot analysis summary
    --json                           Raw JSON output
    --mode MODE                      Only one measurement mode
    --no-save                        Do not record the run in history
  jostle-bench report [source]       Export a report file
    --format json|markdown|html|csv  Output format (default: markdown)
    --out DIR                        Output directory (default: config)
    --mode MODE                      Only one measurement mode
  jostle-bench summary [source]      Rendered digest in the terminal
  jostle-bench serve [source]        HTTP API over the analysis
    --host HOST  --port PORT         Listen address (default: config)
    --watch                          Re-analyze when the source changes
  jostle-bench watch [source]        Re-analyze on change, print deltas
  jostle-bench runs [subcommand]     Run history
    runs list                        List saved runs (default)
    runs show <id>                   Show one run's comparisons
    runs delete <id>                 Delete a run
    runs prune <n>                   Keep only the newest n runs
  jostle-bench modes [source]        List distinct measurement modes
  jostle-bench shell [source]        Interactive exploration REPL
  jostle-bench version               Version information
  jostle-bench help                  This text

The source is a path to results.json (or a directory holding one) or an
http(s) URL. When omitted, the configured source is used
(~/.jostle-bench/config.toml, env prefix JOSTLE_BENCH_).
`

// RunHelp prints the usage text.
func RunHelp(args []string) error {
	fmt.Print(usageText)
	return nil
}

// RunVersion prints build information.
func RunVersion(args []string) error {
	fmt.Printf("jostle-bench %s\n", Version)
	fmt.Printf("  commit:  %s\n", GitCommit)
	fmt.Printf("  built:   %s\n", BuildDate)
	fmt.Printf("  runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
