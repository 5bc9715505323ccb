// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/config"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/export"
)

// RunReport exports the analysis to a file in the requested format.
func RunReport(args []string) error {
	parser := NewArgParser(args)
	source := resolveSource(parser, 0)

	format := parser.FlagOrDefault("format", "markdown")
	exporter, err := export.New(format)
	if err != nil {
		if errors.Is(err, export.ErrUnknownFormat) {
			return Usagef("unknown format %q (accepted: %v)", format, export.Formats())
		}
		return err
	}
	if h, ok := exporter.(*export.HTMLExporter); ok {
		h.Theme = config.Global().UI.Theme
	}

	coll, report, err := loadAndAnalyze(context.Background(), source)
	if err != nil {
		return err
	}

	data := export.NewReportData(report, coll.Source, export.Options{
		Mode:               parser.Flag("mode"),
		IncludeTree:        true,
		IncludeDiagnostics: true,
	})

	dir := parser.FlagOrDefault("out", config.Global().Export.Dir)
	path, err := export.ExportToFile(exporter, data, dir)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", LabelStyle.Render("Report written"), ValueStyle.Render(path))
	return nil
}
