// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package analysis

import "sort"

// =============================================================================
// READ-ONLY QUERIES
// =============================================================================

// FilterByMode returns the comparisons measured under the given mode,
// preserving input order. An unknown mode yields an empty slice.
func FilterByMode(comps []*Comparison, mode string) []*Comparison {
	var out []*Comparison
	for _, c := range comps {
		if c.Mode == mode {
			out = append(out, c)
		}
	}
	return out
}

// DistinctModes returns the measurement modes present in the comparison
// set, sorted.
func DistinctModes(comps []*Comparison) []string {
	seen := make(map[string]struct{})
	var modes []string
	for _, c := range comps {
		if _, ok := seen[c.Mode]; ok {
			continue
		}
		seen[c.Mode] = struct{}{}
		modes = append(modes, c.Mode)
	}
	sort.Strings(modes)
	return modes
}
