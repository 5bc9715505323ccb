// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
)

// CSVExporter renders the flat comparison rows for spreadsheet import.
// One row per comparison; empty cells for missing sides.
type CSVExporter struct{}

var csvHeader = []string{
	"key", "category", "algorithm", "operation", "variant",
	"cipher_mode", "padding", "hash_algorithm", "iterations",
	"mode", "score_unit",
	"baseline_score", "baseline_error",
	"alternate_score", "alternate_error",
	"speedup",
}

func (e *CSVExporter) Export(data *ReportData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, c := range data.Comparisons {
		if err := w.Write(csvRow(c)); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func csvRow(c *analysis.Comparison) []string {
	row := []string{
		c.Key, c.Category.String(), c.Algorithm, c.Operation, c.Variant,
		c.CipherMode, c.Padding, c.HashAlgorithm, c.Iterations,
		c.Mode, c.ScoreUnit,
	}
	row = append(row, csvSide(c.Baseline)...)
	row = append(row, csvSide(c.Alternate)...)
	if ratio, ok := c.Speedup(); ok {
		row = append(row, strconv.FormatFloat(ratio, 'f', 4, 64))
	} else {
		row = append(row, "")
	}
	return row
}

func csvSide(m *analysis.Measurement) []string {
	if m == nil {
		return []string{"", ""}
	}
	return []string{
		strconv.FormatFloat(m.Score, 'f', -1, 64),
		strconv.FormatFloat(m.ScoreError, 'f', -1, 64),
	}
}

func (e *CSVExporter) FileExtension() string { return "csv" }
func (e *CSVExporter) MimeType() string      { return "text/csv" }
