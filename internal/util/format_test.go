// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"math"
	"testing"
	"time"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"small two decimals", 42.1234, "42.12"},
		{"medium one decimal", 1234.56, "1,234.6"},
		{"large no decimals", 1234567.89, "1,234,568"},
		{"nan", math.NaN(), "n/a"},
		{"inf", math.Inf(1), "n/a"},
		{"zero", 0, "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatScore(tt.score); got != tt.want {
				t.Errorf("FormatScore(%v) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}

func TestFormatSpeedup(t *testing.T) {
	if got := FormatSpeedup(1.2534, true); got != "1.25x" {
		t.Errorf("got %q, want 1.25x", got)
	}
	if got := FormatSpeedup(0, false); got != "-" {
		t.Errorf("absent speedup: got %q, want -", got)
	}
	if got := FormatSpeedup(math.NaN(), true); got != "-" {
		t.Errorf("NaN speedup: got %q, want -", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(1.25, true); got != "+25.0%" {
		t.Errorf("got %q, want +25.0%%", got)
	}
	if got := FormatPercent(0.8, true); got != "-20.0%" {
		t.Errorf("got %q, want -20.0%%", got)
	}
	if got := FormatPercent(0, false); got != "-" {
		t.Errorf("absent: got %q, want -", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{2500 * time.Millisecond, "2.5s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"fits", "short", 10, "short"},
		{"truncated", "a long string here", 10, "a long ..."},
		{"tiny budget", "hello", 2, "he"},
		{"zero budget", "hello", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateWidth(tt.in, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateWidth(%q, %d) = %q, want %q", tt.in, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("got %q", got)
	}
	if got := PadLeft("ab", 5); got != "   ab" {
		t.Errorf("got %q", got)
	}
}
