// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/util"
)

// =============================================================================
// EXPORTER INTERFACE
// =============================================================================

// ErrUnknownFormat reports a format name the factory does not recognize.
var ErrUnknownFormat = errors.New("unknown export format")

// Exporter renders a report into one output format.
type Exporter interface {
	// Export renders the report data to bytes.
	Export(data *ReportData) ([]byte, error)

	// FileExtension returns the extension without the dot, e.g. "json".
	FileExtension() string

	// MimeType returns the MIME type for HTTP delivery.
	MimeType() string
}

// Options tunes what the converted report carries.
type Options struct {
	// Mode keeps only comparisons measured under this mode. Empty keeps
	// everything.
	Mode string

	// IncludeTree carries the navigation hierarchy into the output
	// (JSON only; the text formats always render flat tables).
	IncludeTree bool

	// IncludeDiagnostics carries rejection and overwrite details.
	IncludeDiagnostics bool

	// Theme selects the HTML color scheme: "dark" (default) or "light".
	Theme string
}

// New returns the exporter for a format name. Accepted names: json,
// markdown (or md), html, csv.
func New(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "json":
		return &JSONExporter{}, nil
	case "markdown", "md":
		return &MarkdownExporter{}, nil
	case "html":
		return &HTMLExporter{}, nil
	case "csv":
		return &CSVExporter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Formats lists the accepted format names for help text.
func Formats() []string {
	return []string{"json", "markdown", "html", "csv"}
}

// =============================================================================
// FILE OUTPUT
// =============================================================================

// ExportToFile renders the report and writes it under dir with a
// timestamped filename, returning the written path. The write is
// atomic so a crash never leaves a half-rendered report.
func ExportToFile(exporter Exporter, data *ReportData, dir string) (string, error) {
	out, err := exporter.Export(data)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("jostle-bench_%s_%s.%s",
		sanitizeFilename(data.Source), timestamp, exporter.FileExtension())
	path := filepath.Join(dir, name)

	if err := util.AtomicWriteFile(path, out, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return path, nil
}

// sanitizeFilename reduces a source path or URL to a short token safe
// in a filename.
func sanitizeFilename(source string) string {
	base := filepath.Base(source)
	if i := strings.Index(base, "?"); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == "/" {
		return "report"
	}
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if len(out) > 40 {
		out = out[:40]
	}
	return out
}
