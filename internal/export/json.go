// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
)

// JSONExporter renders the report as indented JSON, field order fixed
// by the ReportData struct so diffs between runs stay readable.
type JSONExporter struct{}

func (e *JSONExporter) Export(data *ReportData) ([]byte, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return append(out, '\n'), nil
}

func (e *JSONExporter) FileExtension() string { return "json" }
func (e *JSONExporter) MimeType() string      { return "application/json" }
