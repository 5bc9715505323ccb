// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/config"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/results"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/store"
)

// resolveSource picks the results source: explicit positional argument
// first, configured default otherwise.
func resolveSource(parser *ArgParser, index int) string {
	if src := parser.Positional(index); src != "" {
		return src
	}
	return config.Global().Source
}

// analyzer builds the comparator honoring a configured baseline
// override.
func analyzer() *analysis.Comparator {
	return &analysis.Comparator{BaselineMarker: config.Global().Baseline}
}

// loadAndAnalyze runs the retrieval and the pipeline for one source.
func loadAndAnalyze(ctx context.Context, source string) (*results.Collection, *analysis.Report, error) {
	coll, err := results.Load(ctx, source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", source, err)
	}
	report := analysis.AnalyzeWith(coll.Records, analyzer())
	return coll, report, nil
}

// saveRun records an analyzed collection in the history store, skipping
// documents already saved under the same fingerprint. Failures are
// logged, never fatal: history is a convenience, not the command's job.
func saveRun(coll *results.Collection, report *analysis.Report) {
	cfg := config.Global()
	s, err := store.Open(cfg.History.Path)
	if err != nil {
		log.Printf("HISTORY | open failed | %v", err)
		return
	}
	defer s.Close()

	if _, err := s.FindByFingerprint(coll.Fingerprint); err == nil {
		return // already recorded
	}

	_, err = s.SaveRun(store.Run{
		Source:         coll.Source,
		Fingerprint:    coll.Fingerprint,
		LoadedAt:       coll.LoadedAt,
		RecordCount:    report.Diagnostics.RecordCount,
		RejectedCount:  report.Diagnostics.RejectedCount(),
		OverwriteCount: report.Diagnostics.Overwrites.Total(),
	}, report.Comparisons)
	if err != nil {
		log.Printf("HISTORY | save failed | %v", err)
		return
	}

	if cfg.History.Retention > 0 {
		if _, err := s.PruneRuns(cfg.History.Retention); err != nil {
			log.Printf("HISTORY | prune failed | %v", err)
		}
	}
}
