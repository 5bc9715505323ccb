// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// =============================================================================
// NUMBER FORMATTING
// =============================================================================

// scorePrinter renders thousands separators for large throughput figures.
var scorePrinter = message.NewPrinter(language.English)

// FormatScore renders a benchmark score with adaptive precision: two
// decimals below 100, one below 10000, none above. NaN and infinities
// render as "n/a" since JMH emits NaN for unmeasured slots.
func FormatScore(score float64) string {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return "n/a"
	}
	abs := math.Abs(score)
	switch {
	case abs < 100:
		return scorePrinter.Sprintf("%.2f", score)
	case abs < 10000:
		return scorePrinter.Sprintf("%.1f", score)
	default:
		return scorePrinter.Sprintf("%.0f", score)
	}
}

// FormatSpeedup renders an alternate/baseline ratio as "1.25x". The ok
// flag follows Comparison.Speedup: false renders as a dash.
func FormatSpeedup(ratio float64, ok bool) string {
	if !ok || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return "-"
	}
	return fmt.Sprintf("%.2fx", ratio)
}

// FormatPercent renders a ratio as a signed percent delta, e.g. a 1.25
// speedup becomes "+25.0%".
func FormatPercent(ratio float64, ok bool) string {
	if !ok || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return "-"
	}
	return fmt.Sprintf("%+.1f%%", (ratio-1)*100)
}

// =============================================================================
// TIME FORMATTING
// =============================================================================

// FormatDuration renders a duration for status lines: sub-second in
// milliseconds, sub-minute in seconds, else minutes and seconds.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
}

// FormatTimestamp renders a time in the fixed layout used by run
// listings and export headers.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
