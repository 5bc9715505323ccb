// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/export"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/util"
)

// RunAnalyze performs a one-shot analysis and prints a summary table,
// or the raw report as JSON with --json.
func RunAnalyze(args []string) error {
	parser := NewArgParser(args)
	source := resolveSource(parser, 0)

	coll, report, err := loadAndAnalyze(context.Background(), source)
	if err != nil {
		return err
	}

	if !parser.BoolFlag("no-save") {
		saveRun(coll, report)
	}

	if parser.BoolFlag("json") {
		data := export.NewReportData(report, coll.Source, export.Options{
			Mode:               parser.Flag("mode"),
			IncludeTree:        true,
			IncludeDiagnostics: true,
		})
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	printAnalysis(coll.Source, report, parser.Flag("mode"))
	return nil
}

// printAnalysis renders the styled summary table.
func printAnalysis(source string, report *analysis.Report, mode string) {
	comps := report.Comparisons
	if mode != "" {
		comps = analysis.FilterByMode(comps, mode)
	}

	fmt.Println(TitleStyle.Render("Benchmark Comparison"))
	fmt.Printf("%s %s\n", LabelStyle.Render("Source"), ValueStyle.Render(source))
	fmt.Printf("%s %d records, %d comparisons\n",
		LabelStyle.Render("Loaded"), report.Diagnostics.RecordCount, len(comps))
	if modes := analysis.DistinctModes(comps); len(modes) > 0 {
		fmt.Printf("%s %v\n", LabelStyle.Render("Modes"), modes)
	}

	width := GetTerminalWidth()
	labelWidth := width - 46
	if labelWidth < 20 {
		labelWidth = 20
	}

	fmt.Println()
	fmt.Printf("%s %s %s %s %s\n",
		util.PadRight("BENCHMARK", labelWidth),
		util.PadLeft("BASELINE", 12),
		util.PadLeft("JOSTLE", 12),
		util.PadLeft("SPEEDUP", 9),
		"UNIT")
	fmt.Println(RenderSeparator(width - 2))

	for _, c := range comps {
		ratio, ok := c.Speedup()
		fmt.Printf("%s %s %s %s %s\n",
			util.PadRight(c.Label(), labelWidth),
			util.PadLeft(scoreCell(c.Baseline), 12),
			util.PadLeft(scoreCell(c.Alternate), 12),
			RenderSpeedup(util.PadLeft(util.FormatSpeedup(ratio, ok), 9), ratio, ok),
			DimStyle.Render(c.ScoreUnit))
	}

	printDiagnostics(&report.Diagnostics)
}

// scoreCell renders one side's score or a dash.
func scoreCell(m *analysis.Measurement) string {
	if m == nil {
		return "-"
	}
	return util.FormatScore(m.Score)
}

// printDiagnostics reports irregularities after the table, quiet when
// the run was clean.
func printDiagnostics(d *analysis.Diagnostics) {
	if d.Clean() {
		return
	}
	fmt.Println()
	fmt.Println(SectionStyle.Render("Diagnostics"))
	if n := d.RejectedCount(); n > 0 {
		fmt.Println(WarningStyle.Render(fmt.Sprintf("  %d record(s) rejected:", n)))
		for _, r := range d.Rejected {
			fmt.Printf("    record %d: %s\n", r.Index, DimStyle.Render(r.Reason))
		}
	}
	if t := d.Overwrites.Total(); t > 0 {
		fmt.Println(WarningStyle.Render(fmt.Sprintf(
			"  %d duplicate measurement(s) overwritten (%d baseline, %d alternate)",
			t, d.Overwrites.Baseline, d.Overwrites.Alternate)))
	}
}
