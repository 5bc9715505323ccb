// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package analysis

import (
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/results"
)

// =============================================================================
// PIPELINE ENTRY POINT
// =============================================================================

// RejectedRecord describes one input record the parser refused, and why.
type RejectedRecord struct {
	Index     int    `json:"index"`
	Benchmark string `json:"benchmark"`
	Reason    string `json:"reason"`
}

// Diagnostics accumulates per-record irregularities observed during a run
// of the pipeline. Rejections and overwrites never abort processing; they
// are reported here for the caller to surface.
type Diagnostics struct {
	RecordCount int              `json:"record_count"`
	ParsedCount int              `json:"parsed_count"`
	Rejected    []RejectedRecord `json:"rejected,omitempty"`
	Overwrites  Overwrites       `json:"overwrites"`
}

// RejectedCount returns how many records the parser refused.
func (d *Diagnostics) RejectedCount() int {
	return len(d.Rejected)
}

// Clean reports whether the run saw no rejections and no overwrites.
func (d *Diagnostics) Clean() bool {
	return len(d.Rejected) == 0 && d.Overwrites.Total() == 0
}

// Report bundles everything one pipeline run produces: the flat comparison
// sequence for tabular display, the sorted hierarchy for navigation, and
// the diagnostics.
type Report struct {
	Comparisons []*Comparison `json:"comparisons"`
	Tree        *Node         `json:"tree"`
	Diagnostics Diagnostics   `json:"diagnostics"`
}

// Modes returns the distinct measurement modes of the report, sorted.
func (r *Report) Modes() []string {
	return DistinctModes(r.Comparisons)
}

// Analyze runs the full pipeline with the default comparator: parse all
// records, pair providers by canonical key, build and sort the hierarchy.
// An empty input produces an empty but valid report, never an error.
func Analyze(records []results.RawResult) *Report {
	return AnalyzeWith(records, NewComparator())
}

// AnalyzeWith runs the pipeline with a caller-configured comparator, for
// deployments that name their baseline provider something other than "BC".
func AnalyzeWith(records []results.RawResult, comparator *Comparator) *Report {
	parsed, rejected := ParseAll(records)
	comps, overwrites := comparator.Compare(parsed)
	tree := BuildHierarchy(comps)

	return &Report{
		Comparisons: comps,
		Tree:        tree,
		Diagnostics: Diagnostics{
			RecordCount: len(records),
			ParsedCount: len(parsed),
			Rejected:    rejected,
			Overwrites:  overwrites,
		},
	}
}
