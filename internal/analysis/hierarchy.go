// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package analysis

import (
	"net/url"
	"strings"
)

// =============================================================================
// HIERARCHY BUILDER
// =============================================================================

// RootName labels the root node of every hierarchy.
const RootName = "Benchmarks"

// Node is one level of the navigation tree. Every node, not only leaves,
// retains the full comparison subset that was grouped to produce its
// children, so the display layer can show aggregates at any depth.
//
// Invariants: the root's comparison list is the full input; every parent's
// list is the union of its children's lists; siblings are ordered by name.
type Node struct {
	Name        string        `json:"name"`
	Path        string        `json:"path"`
	Children    []*Node       `json:"children,omitempty"`
	Comparisons []*Comparison `json:"comparisons,omitempty"`
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// level is one grouping step of a category schema: an extractor naming the
// grouping value, an optional predicate gating whether the level
// materializes for a particular group, and an optional continuation that
// picks the remaining levels based on the grouping value.
type level struct {
	extract func(*Comparison) string

	// splitWhen, when set, must hold for the parent's subset or the level
	// collapses and grouping continues with the next level.
	splitWhen func([]*Comparison) bool

	// below, when set, replaces the static tail for each group. Used by
	// the KDF schema, whose lower levels depend on the algorithm.
	below func(value string) []level
}

// Field extractors. Levels whose field may be absent substitute the
// "default" placeholder so the group still gets a named node.
func byAlgorithm(c *Comparison) string  { return c.Algorithm }
func byOperation(c *Comparison) string  { return c.Operation }
func byVariant(c *Comparison) string    { return c.Variant }
func byCipherMode(c *Comparison) string { return orAbsent(c.CipherMode) }
func byPadding(c *Comparison) string    { return orAbsent(c.Padding) }
func byHash(c *Comparison) string       { return orAbsent(c.HashAlgorithm) }
func byIterations(c *Comparison) string { return orAbsent(c.Iterations) }

// moreThanOneDistinct builds the collapse predicate: the level splits only
// when the group holds more than one distinct value of the field.
func moreThanOneDistinct(extract func(*Comparison) string) func([]*Comparison) bool {
	return func(comps []*Comparison) bool {
		seen := ""
		for i, c := range comps {
			v := extract(c)
			if i == 0 {
				seen = v
				continue
			}
			if v != seen {
				return true
			}
		}
		return false
	}
}

// schemaFor returns the grouping levels beneath a category node.
//
//   - Symmetric: algorithm, operation, variant, cipher mode, then a padding
//     level only when the cipher-mode group carries more than one distinct
//     padding value
//   - KDF: algorithm, then hash and iterations for PBKDF2 or just the
//     parameter field for scrypt and anything else
//   - PQC: algorithm, operation, variant
func schemaFor(cat Category) []level {
	switch cat {
	case CategoryKDF:
		return []level{{
			extract: byAlgorithm,
			below: func(algorithm string) []level {
				if KDFKindOf(algorithm) == KDFPbkdf2 {
					return []level{{extract: byHash}, {extract: byIterations}}
				}
				return []level{{extract: byIterations}}
			},
		}}
	case CategoryPQC:
		return []level{
			{extract: byAlgorithm},
			{extract: byOperation},
			{extract: byVariant},
		}
	default:
		return []level{
			{extract: byAlgorithm},
			{extract: byOperation},
			{extract: byVariant},
			{extract: byCipherMode},
			{extract: byPadding, splitWhen: moreThanOneDistinct(byPadding)},
		}
	}
}

// BuildHierarchy arranges comparisons into the category-specific tree and
// sorts it. The tree is rebuilt wholesale on every call; there is no
// incremental update. An empty input yields a childless root.
func BuildHierarchy(comps []*Comparison) *Node {
	root := &Node{Name: RootName, Path: "", Comparisons: comps}

	keys, groups := groupBy(comps, func(c *Comparison) string { return c.Category.String() })
	for _, name := range keys {
		group := groups[name]
		child := &Node{Name: name, Path: name, Comparisons: group}
		buildLevels(child, schemaFor(group[0].Category))
		root.Children = append(root.Children, child)
	}

	SortTree(root)
	return root
}

// buildLevels grows a node's subtree by applying the remaining schema
// levels to its comparison subset.
func buildLevels(parent *Node, levels []level) {
	if len(levels) == 0 {
		return
	}

	lv := levels[0]
	if lv.splitWhen != nil && !lv.splitWhen(parent.Comparisons) {
		buildLevels(parent, levels[1:])
		return
	}

	keys, groups := groupBy(parent.Comparisons, lv.extract)
	for _, name := range keys {
		child := &Node{
			Name:        name,
			Path:        childPath(parent.Path, name),
			Comparisons: groups[name],
		}
		rest := levels[1:]
		if lv.below != nil {
			rest = lv.below(name)
		}
		buildLevels(child, rest)
		parent.Children = append(parent.Children, child)
	}
}

// groupBy splits comparisons by the extracted value, preserving
// first-appearance key order so the build is deterministic even before the
// sort pass.
func groupBy(comps []*Comparison, extract func(*Comparison) string) ([]string, map[string][]*Comparison) {
	groups := make(map[string][]*Comparison)
	var keys []string
	for _, c := range comps {
		k := extract(c)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], c)
	}
	return keys, groups
}

// childPath joins a parent path with a URL-safe encoding of the child's
// name. A category node (empty parent path) keeps its bare name.
func childPath(parentPath, name string) string {
	if parentPath == "" {
		return name
	}
	return parentPath + "/" + url.PathEscape(name)
}

// FindNode walks the tree by hierarchical path. Segments are accepted in
// either encoded or plain form; the empty path names the root. Returns nil
// when no node matches.
func FindNode(root *Node, path string) *Node {
	if root == nil {
		return nil
	}
	path = strings.Trim(path, "/")
	if path == "" {
		return root
	}

	current := root
	for _, segment := range strings.Split(path, "/") {
		if decoded, err := url.PathUnescape(segment); err == nil {
			segment = decoded
		}
		var next *Node
		for _, child := range current.Children {
			if child.Name == segment {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		current = next
	}
	return current
}

// Walk visits every node depth-first, parents before children.
func Walk(root *Node, visit func(*Node)) {
	if root == nil {
		return
	}
	visit(root)
	for _, child := range root.Children {
		Walk(child, visit)
	}
}
