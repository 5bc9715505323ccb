// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/config"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/results"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/util"
)

// RunWatch re-analyzes the source on every change and prints which
// comparisons moved. Ctrl-C stops it.
func RunWatch(args []string) error {
	parser := NewArgParser(args)
	source := resolveSource(parser, 0)
	if results.IsURL(source) {
		return Usagef("watch needs a filesystem source, got URL %q", source)
	}
	cfg := config.Global()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	coll, report, err := loadAndAnalyze(ctx, source)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s (%d comparisons), watching for changes...\n",
		LabelStyle.Render("Loaded"), coll.Source, len(report.Comparisons))

	watcher, err := results.NewWatcher(source, time.Duration(cfg.Watch.DebounceMS)*time.Millisecond)
	if err != nil {
		return err
	}
	watcher.Start(ctx)
	defer watcher.Stop()

	previous := report
	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case c := <-watcher.Collections():
			next := analysis.AnalyzeWith(c.Records, analyzer())
			printDelta(previous, next)
			previous = next
		case err := <-watcher.Errors():
			fmt.Println(ErrorStyle.Render(fmt.Sprintf("watch error: %v", err)))
		}
	}
}

// printDelta lists comparisons whose speedup changed between loads,
// plus appearing and disappearing keys.
func printDelta(prev, next *analysis.Report) {
	fmt.Printf("\n%s %s: %d comparisons\n",
		DimStyle.Render(util.FormatTimestamp(time.Now())),
		SectionStyle.Render("reloaded"), len(next.Comparisons))

	prevByKey := make(map[string]*analysis.Comparison, len(prev.Comparisons))
	for _, c := range prev.Comparisons {
		prevByKey[c.Key] = c
	}

	changed := 0
	for _, c := range next.Comparisons {
		old, ok := prevByKey[c.Key]
		if !ok {
			fmt.Printf("  + %s\n", c.Label())
			changed++
			continue
		}
		delete(prevByKey, c.Key)

		oldRatio, oldOK := old.Speedup()
		newRatio, newOK := c.Speedup()
		if oldOK != newOK || (newOK && oldRatio != newRatio) {
			fmt.Printf("  ~ %s: %s -> %s\n", c.Label(),
				util.FormatSpeedup(oldRatio, oldOK),
				RenderSpeedup(util.FormatSpeedup(newRatio, newOK), newRatio, newOK))
			changed++
		}
	}
	for _, old := range prevByKey {
		fmt.Printf("  - %s\n", old.Label())
		changed++
	}
	if changed == 0 {
		fmt.Println(DimStyle.Render("  no measurement changes"))
	}
}
