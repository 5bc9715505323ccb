// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/util"
)

// MarkdownExporter renders the report as a Markdown document: a summary
// header, then one comparison table per category with a speedup column.
type MarkdownExporter struct{}

func (e *MarkdownExporter) Export(data *ReportData) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Benchmark Comparison Report\n\n")
	fmt.Fprintf(&b, "- **Source**: %s\n", data.Source)
	fmt.Fprintf(&b, "- **Generated**: %s\n", util.FormatTimestamp(data.GeneratedAt))
	fmt.Fprintf(&b, "- **Records**: %d\n", data.RecordCount)
	fmt.Fprintf(&b, "- **Comparisons**: %d\n", data.ComparisonCount)
	if len(data.Modes) > 0 {
		fmt.Fprintf(&b, "- **Modes**: %s\n", strings.Join(data.Modes, ", "))
	}
	b.WriteString("\n")

	names, groups := data.byCategory()
	for _, name := range names {
		fmt.Fprintf(&b, "## %s\n\n", name)
		writeMarkdownTable(&b, groups[name])
		b.WriteString("\n")
	}

	if data.Diagnostics != nil {
		writeMarkdownDiagnostics(&b, data.Diagnostics)
	}

	return []byte(b.String()), nil
}

func writeMarkdownTable(b *strings.Builder, comps []*analysis.Comparison) {
	b.WriteString("| Benchmark | Mode | Baseline | Jostle | Speedup | Unit |\n")
	b.WriteString("|---|---|---:|---:|---:|---|\n")
	for _, c := range comps {
		ratio, ok := c.Speedup()
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
			escapeMarkdown(c.Label()), c.Mode,
			sideScore(c.Baseline), sideScore(c.Alternate),
			util.FormatSpeedup(ratio, ok), c.ScoreUnit)
	}
}

func writeMarkdownDiagnostics(b *strings.Builder, d *analysis.Diagnostics) {
	b.WriteString("## Diagnostics\n\n")
	fmt.Fprintf(b, "- Parsed %d of %d records\n", d.ParsedCount, d.RecordCount)
	fmt.Fprintf(b, "- Overwrites: %d baseline, %d alternate\n",
		d.Overwrites.Baseline, d.Overwrites.Alternate)
	if len(d.Rejected) > 0 {
		fmt.Fprintf(b, "- Rejected records (%d):\n", len(d.Rejected))
		for _, r := range d.Rejected {
			fmt.Fprintf(b, "  - record %d `%s`: %s\n", r.Index, r.Benchmark, r.Reason)
		}
	}
	b.WriteString("\n")
}

// sideScore renders one provider's score, or a dash when that side is
// missing.
func sideScore(m *analysis.Measurement) string {
	if m == nil {
		return "-"
	}
	return util.FormatScore(m.Score)
}

// escapeMarkdown protects the table delimiter inside cell text.
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func (e *MarkdownExporter) FileExtension() string { return "md" }
func (e *MarkdownExporter) MimeType() string      { return "text/markdown" }
