// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/ui/styles"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/util"
)

// =============================================================================
// TREE VIEW
// =============================================================================

// treeRow is one visible line of the flattened tree.
type treeRow struct {
	node  *analysis.Node
	depth int
}

// TreeView renders the navigation hierarchy with expand/collapse. The
// flattened visible rows are rebuilt whenever the expansion set or the
// tree changes; cursor and scroll offset index into them.
type TreeView struct {
	root     *analysis.Node
	expanded map[string]bool
	rows     []treeRow
	cursor   int
	offset   int
	width    int
	height   int
}

// NewTreeView builds a tree view with the category level expanded.
func NewTreeView(root *analysis.Node) *TreeView {
	tv := &TreeView{expanded: make(map[string]bool)}
	tv.SetTree(root)
	return tv
}

// SetTree swaps the hierarchy, keeping expansion state for paths that
// still exist so a live reload does not collapse the view.
func (tv *TreeView) SetTree(root *analysis.Node) {
	tv.root = root
	if root != nil {
		tv.expanded[root.Path] = true
	}
	tv.rebuild()
	if tv.cursor >= len(tv.rows) {
		tv.cursor = len(tv.rows) - 1
	}
	if tv.cursor < 0 {
		tv.cursor = 0
	}
}

// SetSize sets the rendering viewport in cells.
func (tv *TreeView) SetSize(width, height int) {
	tv.width = width
	tv.height = height
	tv.clampOffset()
}

// Selected returns the node under the cursor, or nil for an empty tree.
func (tv *TreeView) Selected() *analysis.Node {
	if tv.cursor < 0 || tv.cursor >= len(tv.rows) {
		return nil
	}
	return tv.rows[tv.cursor].node
}

// MoveUp moves the cursor one row up.
func (tv *TreeView) MoveUp() {
	if tv.cursor > 0 {
		tv.cursor--
		tv.clampOffset()
	}
}

// MoveDown moves the cursor one row down.
func (tv *TreeView) MoveDown() {
	if tv.cursor < len(tv.rows)-1 {
		tv.cursor++
		tv.clampOffset()
	}
}

// Toggle expands or collapses the selected node.
func (tv *TreeView) Toggle() {
	node := tv.Selected()
	if node == nil || node.IsLeaf() {
		return
	}
	tv.expanded[node.Path] = !tv.expanded[node.Path]
	tv.rebuild()
	tv.clampOffset()
}

// Collapse collapses the selected node, or moves to its parent when it
// is already collapsed or a leaf.
func (tv *TreeView) Collapse() {
	node := tv.Selected()
	if node == nil {
		return
	}
	if !node.IsLeaf() && tv.expanded[node.Path] {
		tv.expanded[node.Path] = false
		tv.rebuild()
		tv.clampOffset()
		return
	}
	// Move to the parent row.
	depth := tv.rows[tv.cursor].depth
	for i := tv.cursor - 1; i >= 0; i-- {
		if tv.rows[i].depth < depth {
			tv.cursor = i
			tv.clampOffset()
			return
		}
	}
}

// Expand expands the selected node.
func (tv *TreeView) Expand() {
	node := tv.Selected()
	if node == nil || node.IsLeaf() {
		return
	}
	if !tv.expanded[node.Path] {
		tv.expanded[node.Path] = true
		tv.rebuild()
		tv.clampOffset()
	}
}

// rebuild flattens the expanded subset of the tree into visible rows.
func (tv *TreeView) rebuild() {
	tv.rows = tv.rows[:0]
	if tv.root == nil {
		return
	}
	tv.flatten(tv.root, 0)
}

func (tv *TreeView) flatten(node *analysis.Node, depth int) {
	tv.rows = append(tv.rows, treeRow{node: node, depth: depth})
	if tv.expanded[node.Path] {
		for _, child := range node.Children {
			tv.flatten(child, depth+1)
		}
	}
}

// clampOffset keeps the cursor inside the scroll window.
func (tv *TreeView) clampOffset() {
	if tv.height <= 0 {
		return
	}
	if tv.cursor < tv.offset {
		tv.offset = tv.cursor
	}
	if tv.cursor >= tv.offset+tv.height {
		tv.offset = tv.cursor - tv.height + 1
	}
	if tv.offset < 0 {
		tv.offset = 0
	}
}

// View renders the visible window.
func (tv *TreeView) View(theme *styles.Theme) string {
	if len(tv.rows) == 0 {
		return theme.TreeCount.Render("(empty)")
	}

	end := tv.offset + tv.height
	if tv.height <= 0 || end > len(tv.rows) {
		end = len(tv.rows)
	}

	var b strings.Builder
	for i := tv.offset; i < end; i++ {
		row := tv.rows[i]
		marker := "  "
		switch {
		case row.node.IsLeaf():
			marker = "· "
		case tv.expanded[row.node.Path]:
			marker = "▾ "
		default:
			marker = "▸ "
		}

		label := strings.Repeat("  ", row.depth) + marker + row.node.Name
		count := fmt.Sprintf(" (%d)", len(row.node.Comparisons))
		line := util.TruncateWidth(label, tv.width-util.StringWidth(count))

		if i == tv.cursor {
			b.WriteString(theme.TreeSelected.Render(util.PadRight(line+count, tv.width)))
		} else {
			b.WriteString(theme.TreeItem.Render(line))
			b.WriteString(theme.TreeCount.Render(count))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
