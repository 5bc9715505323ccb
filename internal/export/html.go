// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/util"
)

// HTMLExporter renders a standalone HTML document with embedded CSS.
// Theme selects the color scheme; anything other than "light" renders
// dark.
type HTMLExporter struct {
	Theme string
}

// htmlRow is one pre-formatted table row; formatting happens in Go so
// the template stays layout-only.
type htmlRow struct {
	Label     string
	Mode      string
	Baseline  string
	Alternate string
	Speedup   string
	Unit      string

	// SpeedupClass is "faster", "slower" or "" for styling.
	SpeedupClass string
}

type htmlSection struct {
	Name string
	Rows []htmlRow
}

type htmlPage struct {
	ThemeClass  string
	Source      string
	Generated   string
	Records     int
	Comparisons int
	Sections    []htmlSection
	Diagnostics *analysis.Diagnostics
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en" class="{{.ThemeClass}}">
<head>
<meta charset="utf-8">
<title>Benchmark Comparison Report</title>
<style>
:root { --bg: #ffffff; --fg: #1a1a2e; --muted: #6b7280; --border: #d1d5db;
        --head: #f3f4f6; --faster: #15803d; --slower: #b91c1c; }
html.dark { --bg: #16161e; --fg: #e4e4ef; --muted: #9ca3af; --border: #3f3f50;
        --head: #24242f; --faster: #4ade80; --slower: #f87171; }
body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 72rem;
       background: var(--bg); color: var(--fg); padding: 0 1rem; }
h1 { font-size: 1.5rem; } h2 { font-size: 1.2rem; margin-top: 2rem; }
.meta { color: var(--muted); font-size: 0.9rem; }
table { border-collapse: collapse; width: 100%; font-size: 0.9rem; }
th, td { border: 1px solid var(--border); padding: 0.35rem 0.6rem; text-align: left; }
th { background: var(--head); }
td.num { text-align: right; font-variant-numeric: tabular-nums; }
.faster { color: var(--faster); font-weight: 600; }
.slower { color: var(--slower); font-weight: 600; }
</style>
</head>
<body>
<h1>Benchmark Comparison Report</h1>
<p class="meta">Source: {{.Source}} · Generated: {{.Generated}} ·
Records: {{.Records}} · Comparisons: {{.Comparisons}}</p>
{{range .Sections}}
<h2>{{.Name}}</h2>
<table>
<tr><th>Benchmark</th><th>Mode</th><th>Baseline</th><th>Jostle</th><th>Speedup</th><th>Unit</th></tr>
{{range .Rows}}<tr>
<td>{{.Label}}</td><td>{{.Mode}}</td>
<td class="num">{{.Baseline}}</td><td class="num">{{.Alternate}}</td>
<td class="num {{.SpeedupClass}}">{{.Speedup}}</td><td>{{.Unit}}</td>
</tr>
{{end}}</table>
{{end}}
{{with .Diagnostics}}
<h2>Diagnostics</h2>
<p class="meta">Parsed {{.ParsedCount}} of {{.RecordCount}} records ·
Overwrites: {{.Overwrites.Baseline}} baseline, {{.Overwrites.Alternate}} alternate ·
Rejected: {{len .Rejected}}</p>
{{end}}
</body>
</html>
`))

func (e *HTMLExporter) Export(data *ReportData) ([]byte, error) {
	page := htmlPage{
		ThemeClass:  "dark",
		Source:      data.Source,
		Generated:   util.FormatTimestamp(data.GeneratedAt),
		Records:     data.RecordCount,
		Comparisons: data.ComparisonCount,
		Diagnostics: data.Diagnostics,
	}
	if e.Theme == "light" {
		page.ThemeClass = "light"
	}

	names, groups := data.byCategory()
	for _, name := range names {
		section := htmlSection{Name: name}
		for _, c := range groups[name] {
			ratio, ok := c.Speedup()
			row := htmlRow{
				Label:     c.Label(),
				Mode:      c.Mode,
				Baseline:  sideScore(c.Baseline),
				Alternate: sideScore(c.Alternate),
				Speedup:   util.FormatSpeedup(ratio, ok),
				Unit:      c.ScoreUnit,
			}
			switch {
			case ok && ratio > 1:
				row.SpeedupClass = "faster"
			case ok && ratio < 1:
				row.SpeedupClass = "slower"
			}
			section.Rows = append(section.Rows, row)
		}
		page.Sections = append(page.Sections, section)
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("failed to render HTML report: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *HTMLExporter) FileExtension() string { return "html" }
func (e *HTMLExporter) MimeType() string      { return "text/html" }
