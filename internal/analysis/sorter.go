// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package analysis

import "sort"

// SortTree orders every node's children by display name, case-sensitive
// lexicographic, recursing depth-first. BuildHierarchy applies it as the
// finishing pass; callers constructing trees by hand can apply it
// directly.
func SortTree(n *Node) {
	if n == nil {
		return
	}
	sort.Slice(n.Children, func(i, j int) bool {
		return n.Children[i].Name < n.Children[j].Name
	})
	for _, child := range n.Children {
		SortTree(child)
	}
}
