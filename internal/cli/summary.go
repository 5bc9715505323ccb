// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/export"
)

// RunSummary renders the Markdown digest straight into the terminal.
func RunSummary(args []string) error {
	parser := NewArgParser(args)
	source := resolveSource(parser, 0)

	coll, report, err := loadAndAnalyze(context.Background(), source)
	if err != nil {
		return err
	}

	data := export.NewReportData(report, coll.Source, export.Options{
		Mode:               parser.Flag("mode"),
		IncludeDiagnostics: true,
	})
	md, err := (&export.MarkdownExporter{}).Export(data)
	if err != nil {
		return err
	}

	if !ColorsEnabled() {
		fmt.Print(string(md))
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()),
	)
	if err != nil {
		// Fall back to the raw Markdown rather than failing the command.
		fmt.Print(string(md))
		return nil
	}
	out, err := renderer.Render(string(md))
	if err != nil {
		fmt.Print(string(md))
		return nil
	}
	fmt.Print(out)
	return nil
}
