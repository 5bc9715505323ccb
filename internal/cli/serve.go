// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/config"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/results"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/server"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/store"
)

// RunServe starts the HTTP API over the analyzed source, optionally
// re-analyzing on file change with --watch.
func RunServe(args []string) error {
	parser := NewArgParser(args)
	source := resolveSource(parser, 0)
	cfg := config.Global()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	coll, report, err := loadAndAnalyze(ctx, source)
	if err != nil {
		return err
	}

	history, err := store.Open(cfg.History.Path)
	if err != nil {
		log.Printf("HISTORY | open failed, serving without run history | %v", err)
		history = nil
	} else {
		defer history.Close()
	}

	srv := server.New(server.Config{
		Host:      parser.FlagOrDefault("host", cfg.Server.Host),
		Port:      parser.FlagIntOrDefault("port", cfg.Server.Port),
		RateRPS:   cfg.Server.RateRPS,
		RateBurst: cfg.Server.RateBurst,
	}, history)
	srv.SetReport(report, coll.Source)

	if parser.BoolFlag("watch") && !results.IsURL(source) {
		watcher, err := results.NewWatcher(source, time.Duration(cfg.Watch.DebounceMS)*time.Millisecond)
		if err != nil {
			return err
		}
		watcher.Start(ctx)
		defer watcher.Stop()
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case c := <-watcher.Collections():
					report := analysis.AnalyzeWith(c.Records, analyzer())
					srv.SetReport(report, c.Source)
					log.Printf("SERVE | reloaded | records=%d comparisons=%d",
						len(c.Records), len(report.Comparisons))
				case err := <-watcher.Errors():
					log.Printf("SERVE | watch error | %v", err)
				}
			}
		}()
	}

	return srv.Start(ctx)
}
