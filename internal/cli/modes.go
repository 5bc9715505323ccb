// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
)

// RunModes lists the distinct measurement modes of the source document.
func RunModes(args []string) error {
	parser := NewArgParser(args)
	source := resolveSource(parser, 0)

	_, report, err := loadAndAnalyze(context.Background(), source)
	if err != nil {
		return err
	}

	for _, mode := range report.Modes() {
		count := len(analysis.FilterByMode(report.Comparisons, mode))
		fmt.Printf("%s %s\n", ValueStyle.Render(mode),
			DimStyle.Render(fmt.Sprintf("(%d comparisons)", count)))
	}
	return nil
}
