// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"time"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
)

// =============================================================================
// REPORT DATA CONVERSION
// =============================================================================

// ReportData is the exporter-facing view of one analysis run. Building
// it up front keeps every exporter a pure render function.
type ReportData struct {
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`

	RecordCount     int      `json:"record_count"`
	ComparisonCount int      `json:"comparison_count"`
	Modes           []string `json:"modes"`

	Comparisons []*analysis.Comparison `json:"comparisons"`
	Tree        *analysis.Node         `json:"tree,omitempty"`
	Diagnostics *analysis.Diagnostics  `json:"diagnostics,omitempty"`
}

// NewReportData converts a pipeline report according to the options:
// the mode filter applies to the flat comparison list, and the tree and
// diagnostics ride along only when asked for.
func NewReportData(report *analysis.Report, source string, opts Options) *ReportData {
	comps := report.Comparisons
	if opts.Mode != "" {
		comps = analysis.FilterByMode(comps, opts.Mode)
	}

	data := &ReportData{
		Source:          source,
		GeneratedAt:     time.Now(),
		RecordCount:     report.Diagnostics.RecordCount,
		ComparisonCount: len(comps),
		Modes:           analysis.DistinctModes(comps),
		Comparisons:     comps,
	}
	if opts.IncludeTree {
		data.Tree = report.Tree
	}
	if opts.IncludeDiagnostics {
		diag := report.Diagnostics
		data.Diagnostics = &diag
	}
	return data
}

// byCategory groups the comparisons by category display name, in
// category tag order, for the sectioned text formats.
func (d *ReportData) byCategory() ([]string, map[string][]*analysis.Comparison) {
	groups := make(map[string][]*analysis.Comparison)
	var names []string
	for _, cat := range []analysis.Category{
		analysis.CategorySymmetric, analysis.CategoryKDF, analysis.CategoryPQC,
	} {
		name := cat.String()
		for _, c := range d.Comparisons {
			if c.Category == cat {
				groups[name] = append(groups[name], c)
			}
		}
		if len(groups[name]) > 0 {
			names = append(names, name)
		}
	}
	return names, groups
}
