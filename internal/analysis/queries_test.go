// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterByMode(t *testing.T) {
	report := analyzeFixture()

	thrpt := FilterByMode(report.Comparisons, "thrpt")
	avgt := FilterByMode(report.Comparisons, "avgt")

	if len(thrpt)+len(avgt) != len(report.Comparisons) {
		t.Errorf("thrpt(%d) + avgt(%d) != total(%d)", len(thrpt), len(avgt), len(report.Comparisons))
	}
	for _, c := range thrpt {
		if c.Mode != "thrpt" {
			t.Errorf("filtered set contains mode %q", c.Mode)
		}
	}

	// Order is preserved relative to the input.
	var wantOrder, gotOrder []string
	for _, c := range report.Comparisons {
		if c.Mode == "avgt" {
			wantOrder = append(wantOrder, c.Key)
		}
	}
	for _, c := range avgt {
		gotOrder = append(gotOrder, c.Key)
	}
	if diff := cmp.Diff(wantOrder, gotOrder); diff != "" {
		t.Errorf("filter should preserve order (-want +got):\n%s", diff)
	}
}

func TestFilterByModeUnknown(t *testing.T) {
	report := analyzeFixture()
	if got := FilterByMode(report.Comparisons, "ss"); len(got) != 0 {
		t.Errorf("unknown mode matched %d comparisons", len(got))
	}
	if got := FilterByMode(nil, "thrpt"); len(got) != 0 {
		t.Errorf("empty input matched %d comparisons", len(got))
	}
}

func TestDistinctModes(t *testing.T) {
	report := analyzeFixture()

	modes := DistinctModes(report.Comparisons)
	if diff := cmp.Diff([]string{"avgt", "thrpt"}, modes); diff != "" {
		t.Errorf("modes mismatch (-want +got):\n%s", diff)
	}

	if got := DistinctModes(nil); len(got) != 0 {
		t.Errorf("empty input yielded modes %v", got)
	}
}
