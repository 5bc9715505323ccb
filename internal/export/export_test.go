// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/results"
)

// sampleReport builds a small report through the real pipeline so the
// exporters see exactly the shape the rest of the program produces.
func sampleReport(t *testing.T) *analysis.Report {
	t.Helper()
	records := []results.RawResult{
		{
			Benchmark: "com.benchmark.SymmetricBenchmark.Aes.encrypt",
			Mode:      "thrpt",
			Params: map[string]string{
				"providerName": "BC", "keySize": "256",
				"transform": "AES/CBC/PKCS5Padding",
			},
			PrimaryMetric: results.Metric{Score: 1000, ScoreError: 10, ScoreUnit: "ops/s"},
		},
		{
			Benchmark: "com.benchmark.SymmetricBenchmark.Aes.encrypt",
			Mode:      "thrpt",
			Params: map[string]string{
				"providerName": "Jostle", "keySize": "256",
				"transform": "AES/CBC/PKCS5Padding",
			},
			PrimaryMetric: results.Metric{Score: 1500, ScoreError: 8, ScoreUnit: "ops/s"},
		},
		{
			Benchmark: "com.benchmark.PqcBenchmark.MlKem.keyGen",
			Mode:      "avgt",
			Params: map[string]string{
				"providerName": "Jostle", "algorithm": "ML-KEM-768",
			},
			PrimaryMetric: results.Metric{Score: 0.42, ScoreError: 0.01, ScoreUnit: "ms/op"},
		},
	}
	return analysis.Analyze(records)
}

func TestNewFactory(t *testing.T) {
	for _, format := range []string{"json", "markdown", "md", "html", "csv", "JSON"} {
		exp, err := New(format)
		require.NoError(t, err, format)
		assert.NotEmpty(t, exp.FileExtension())
		assert.NotEmpty(t, exp.MimeType())
	}

	_, err := New("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestAllExportersNonEmpty(t *testing.T) {
	report := sampleReport(t)
	data := NewReportData(report, "results.json", Options{IncludeDiagnostics: true})

	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			exp, err := New(format)
			require.NoError(t, err)
			out, err := exp.Export(data)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	report := sampleReport(t)
	data := NewReportData(report, "results.json", Options{IncludeTree: true, IncludeDiagnostics: true})

	out, err := (&JSONExporter{}).Export(data)
	require.NoError(t, err)

	var decoded ReportData
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, data.Source, decoded.Source)
	assert.Len(t, decoded.Comparisons, len(data.Comparisons))
	require.NotNil(t, decoded.Tree)
	assert.Equal(t, analysis.RootName, decoded.Tree.Name)
	require.NotNil(t, decoded.Diagnostics)
	assert.Equal(t, 3, decoded.Diagnostics.RecordCount)
}

func TestModeFilterAppliesToData(t *testing.T) {
	report := sampleReport(t)
	data := NewReportData(report, "results.json", Options{Mode: "thrpt"})

	assert.Equal(t, 1, data.ComparisonCount)
	assert.Equal(t, []string{"thrpt"}, data.Modes)
	for _, c := range data.Comparisons {
		assert.Equal(t, "thrpt", c.Mode)
	}
}

func TestMarkdownSections(t *testing.T) {
	report := sampleReport(t)
	data := NewReportData(report, "results.json", Options{IncludeDiagnostics: true})

	out, err := (&MarkdownExporter{}).Export(data)
	require.NoError(t, err)
	md := string(out)

	assert.Contains(t, md, "# Benchmark Comparison Report")
	assert.Contains(t, md, "## Symmetric")
	assert.Contains(t, md, "## PQC")
	assert.Contains(t, md, "## Diagnostics")
	assert.Contains(t, md, "1.50x")
	// One-sided PQC comparison renders dashes, not a panic.
	assert.Contains(t, md, "| - |")
}

func TestHTMLThemeAndColoring(t *testing.T) {
	report := sampleReport(t)
	data := NewReportData(report, "results.json", Options{})

	out, err := (&HTMLExporter{}).Export(data)
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, `class="dark"`)
	assert.Contains(t, html, "faster")

	out, err = (&HTMLExporter{Theme: "light"}).Export(data)
	require.NoError(t, err)
	assert.Contains(t, string(out), `class="light"`)
}

func TestCSVShape(t *testing.T) {
	report := sampleReport(t)
	data := NewReportData(report, "results.json", Options{})

	out, err := (&CSVExporter{}).Export(data)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+len(data.Comparisons))
	assert.Equal(t, csvHeader, rows[0])
	for _, row := range rows[1:] {
		assert.Len(t, row, len(csvHeader))
	}
}

func TestExportToFile(t *testing.T) {
	report := sampleReport(t)
	data := NewReportData(report, "/data/results.json", Options{})
	dir := t.TempDir()

	path, err := ExportToFile(&JSONExporter{}, data, dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))
	assert.True(t, strings.HasSuffix(path, ".json"))
	assert.Contains(t, path, "jostle-bench_results_")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/data/results.json", "results"},
		{"http://host/bench/results.json?run=3", "results"},
		{"weird name!.json", "weird_name_"},
		{"", "report"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
