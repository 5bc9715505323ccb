// jostle-bench - BC vs Jostle crypto benchmark analysis.
//
// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/cli"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/config"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/results"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/ui/browse"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(cli.ExitError)
	}
	config.SetGlobal(cfg)

	cmd, args := cli.Parse(os.Args[1:])

	var runErr error
	switch cmd {
	case cli.CmdTUI:
		runErr = runTUI(args)
	case cli.CmdAnalyze:
		runErr = cli.RunAnalyze(args)
	case cli.CmdReport:
		runErr = cli.RunReport(args)
	case cli.CmdSummary:
		runErr = cli.RunSummary(args)
	case cli.CmdServe:
		runErr = cli.RunServe(args)
	case cli.CmdWatch:
		runErr = cli.RunWatch(args)
	case cli.CmdRuns:
		runErr = cli.RunRuns(args)
	case cli.CmdModes:
		runErr = cli.RunModes(args)
	case cli.CmdShell:
		runErr = cli.RunShell(args)
	case cli.CmdVersion:
		runErr = cli.RunVersion(args)
	case cli.CmdHelp:
		runErr = cli.RunHelp(args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		_ = cli.RunHelp(nil)
		os.Exit(cli.ExitUsage)
	}

	exit(runErr)
}

// exit maps an error to the process exit code. Usage errors get the
// usage hint and code 2, everything else code 1.
func exit(err error) {
	if err == nil {
		os.Exit(cli.ExitOK)
	}
	var usageErr *cli.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(os.Stderr, "%v\n\nRun 'jostle-bench help' for usage.\n", usageErr)
		os.Exit(cli.ExitUsage)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(cli.ExitError)
}

// runTUI starts the interactive browser. Without a terminal it degrades
// to the one-shot analysis output so pipes still work.
func runTUI(args []string) error {
	if !cli.IsTTY() {
		return cli.RunAnalyze(args)
	}

	source := config.Global().Source
	if len(args) > 0 && args[0] != "" {
		source = args[0]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	coll, err := results.Load(ctx, source)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", source, err)
	}

	comparator := &analysis.Comparator{BaselineMarker: config.Global().Baseline}
	report := analysis.AnalyzeWith(coll.Records, comparator)

	// Local files get live reload; URLs are refreshed with the r key.
	var watcher *results.Watcher
	if !results.IsURL(source) {
		debounce := time.Duration(config.Global().Watch.DebounceMS) * time.Millisecond
		if w, werr := results.NewWatcher(source, debounce); werr == nil {
			watcher = w
			watchCtx := context.Background()
			watcher.Start(watchCtx)
		}
	}

	model := browse.New(report, coll.Source, comparator, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if watcher != nil {
		watcher.Stop()
	}
	return nil
}
