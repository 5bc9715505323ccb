// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package results loads raw benchmark measurement documents produced by the
// JMH execution harness.
//
// The harness writes a results.json document containing a flat array of
// measurement records. This package decodes that document from a local file
// or an HTTP endpoint, fingerprints the raw bytes so callers can detect
// unchanged data, and optionally watches a file source for changes.
//
// # Key Types
//
//   - RawResult: One measurement record as emitted by the harness
//   - Metric: The primary metric triple (score, error, unit)
//   - Collection: A decoded document plus source metadata
//   - Watcher: File watcher that reloads the collection on change
//
// # Usage
//
// Load a document once:
//
//	coll, err := results.Load(ctx, "bench/results.json")
//
// Watch a file source for changes:
//
//	w, err := results.NewWatcher("bench/results.json", 500*time.Millisecond)
//	w.Start(ctx)
//	for coll := range w.Collections() {
//	    // re-analyze
//	}
//
// Retrieval stops here: analysis of the decoded records is the
// internal/analysis package's job, and it takes the record slice as a plain
// parameter.
package results
