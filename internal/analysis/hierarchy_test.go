// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// nameTree is a comparison-friendly projection of a node subtree.
type nameTree struct {
	Name     string
	Children []nameTree
}

func projectNames(n *Node) nameTree {
	t := nameTree{Name: n.Name}
	for _, c := range n.Children {
		t.Children = append(t.Children, projectNames(c))
	}
	return t
}

func TestBuildHierarchyRoot(t *testing.T) {
	report := analyzeFixture()
	root := report.Tree

	if root.Name != RootName {
		t.Errorf("root name = %q, want %q", root.Name, RootName)
	}
	if root.Path != "" {
		t.Errorf("root path = %q, want empty", root.Path)
	}
	if len(root.Comparisons) != len(report.Comparisons) {
		t.Errorf("root retains %d comparisons, want all %d", len(root.Comparisons), len(report.Comparisons))
	}

	var childNames []string
	for _, c := range root.Children {
		childNames = append(childNames, c.Name)
	}
	if diff := cmp.Diff([]string{"KDF", "PQC", "Symmetric"}, childNames); diff != "" {
		t.Errorf("category level mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildHierarchySymmetricShape(t *testing.T) {
	root := analyzeFixture().Tree
	sym := FindNode(root, "Symmetric")
	if sym == nil {
		t.Fatal("Symmetric category node missing")
	}

	want := nameTree{
		Name: "Symmetric",
		Children: []nameTree{
			{Name: "Aes", Children: []nameTree{
				{Name: "encrypt", Children: []nameTree{
					{Name: "128-bit", Children: []nameTree{
						// Two paddings occur under ECB, so it splits; GCM
						// has a single padding and stays a leaf.
						{Name: "ECB", Children: []nameTree{
							{Name: "NoPadding"},
							{Name: "PKCS5Padding"},
						}},
						{Name: "GCM"},
					}},
					{Name: "256-bit", Children: []nameTree{
						{Name: "GCM"},
					}},
				}},
			}},
			{Name: "Sm4", Children: []nameTree{
				{Name: "encrypt", Children: []nameTree{
					{Name: "128-bit", Children: []nameTree{
						{Name: "CBC"},
					}},
				}},
			}},
		},
	}

	if diff := cmp.Diff(want, projectNames(sym)); diff != "" {
		t.Errorf("Symmetric subtree mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildHierarchyKDFShape(t *testing.T) {
	root := analyzeFixture().Tree
	kdf := FindNode(root, "KDF")
	if kdf == nil {
		t.Fatal("KDF category node missing")
	}

	want := nameTree{
		Name: "KDF",
		Children: []nameTree{
			{Name: "Pbkdf2", Children: []nameTree{
				{Name: "SHA256", Children: []nameTree{
					{Name: "1000 iterations"},
					{Name: "10000 iterations"},
				}},
				{Name: "SHA512", Children: []nameTree{
					{Name: "1000 iterations"},
				}},
			}},
			// Scrypt groups by the parameter field directly, no hash level.
			{Name: "Scrypt", Children: []nameTree{
				{Name: "N=16384"},
			}},
		},
	}

	if diff := cmp.Diff(want, projectNames(kdf)); diff != "" {
		t.Errorf("KDF subtree mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildHierarchyPQCShape(t *testing.T) {
	root := analyzeFixture().Tree
	pqc := FindNode(root, "PQC")
	if pqc == nil {
		t.Fatal("PQC category node missing")
	}

	want := nameTree{
		Name: "PQC",
		Children: []nameTree{
			{Name: "MlDsa", Children: []nameTree{
				{Name: "sign", Children: []nameTree{{Name: "ML-DSA-65"}}},
				{Name: "verify", Children: []nameTree{{Name: "ML-DSA-65"}}},
			}},
			{Name: "MlKem", Children: []nameTree{
				{Name: "keyGen", Children: []nameTree{{Name: "ML-KEM-768"}}},
			}},
		},
	}

	if diff := cmp.Diff(want, projectNames(pqc)); diff != "" {
		t.Errorf("PQC subtree mismatch (-want +got):\n%s", diff)
	}
}

func TestHierarchyPaths(t *testing.T) {
	root := analyzeFixture().Tree

	cases := []struct {
		path string
		name string
	}{
		{"Symmetric", "Symmetric"},
		{"Symmetric/Aes", "Aes"},
		{"Symmetric/Aes/encrypt/128-bit/GCM", "GCM"},
		{"Symmetric/Aes/encrypt/128-bit/ECB/PKCS5Padding", "PKCS5Padding"},
		{"KDF/Pbkdf2/SHA256", "SHA256"},
		{"PQC/MlKem/keyGen/ML-KEM-768", "ML-KEM-768"},
	}
	for _, tt := range cases {
		n := FindNode(root, tt.path)
		if n == nil {
			t.Errorf("FindNode(%q) = nil", tt.path)
			continue
		}
		if n.Name != tt.name {
			t.Errorf("FindNode(%q).Name = %q, want %q", tt.path, n.Name, tt.name)
		}
	}

	// Names containing spaces are escaped in stored paths and resolvable
	// in either form.
	iterNode := FindNode(root, "KDF/Pbkdf2/SHA256/10000 iterations")
	if iterNode == nil {
		t.Fatal("plain-form path should resolve")
	}
	if iterNode.Path != "KDF/Pbkdf2/SHA256/10000%20iterations" {
		t.Errorf("stored path = %q, want escaped form", iterNode.Path)
	}
	if got := FindNode(root, "KDF/Pbkdf2/SHA256/10000%20iterations"); got != iterNode {
		t.Error("escaped-form path should resolve to the same node")
	}
}

func TestFindNodeMisses(t *testing.T) {
	root := analyzeFixture().Tree

	cases := []string{
		"Asymmetric",
		"Symmetric/Des",
		"Symmetric/Aes/encrypt/512-bit",
		"KDF/Pbkdf2/SHA256/10000 iterations/deeper",
	}
	for _, path := range cases {
		if n := FindNode(root, path); n != nil {
			t.Errorf("FindNode(%q) = %q, want nil", path, n.Name)
		}
	}

	if FindNode(nil, "Symmetric") != nil {
		t.Error("FindNode on nil root should be nil")
	}
	if got := FindNode(root, ""); got != root {
		t.Error("empty path should name the root")
	}
	if got := FindNode(root, "/Symmetric/"); got == nil || got.Name != "Symmetric" {
		t.Error("surrounding slashes should be tolerated")
	}
}

func TestHierarchyCoverage(t *testing.T) {
	report := analyzeFixture()

	keySet := func(comps []*Comparison) map[string]bool {
		set := make(map[string]bool, len(comps))
		for _, c := range comps {
			set[c.Key] = true
		}
		return set
	}

	// Root retains exactly the comparator output.
	if diff := cmp.Diff(keySet(report.Comparisons), keySet(report.Tree.Comparisons)); diff != "" {
		t.Errorf("root coverage mismatch (-want +got):\n%s", diff)
	}

	// Every parent's retained set equals the union of its children's.
	Walk(report.Tree, func(n *Node) {
		if n.IsLeaf() {
			if len(n.Comparisons) == 0 {
				t.Errorf("leaf %q retains no comparisons", n.Path)
			}
			return
		}
		union := make(map[string]bool)
		for _, child := range n.Children {
			for k := range keySet(child.Comparisons) {
				union[k] = true
			}
		}
		if diff := cmp.Diff(keySet(n.Comparisons), union); diff != "" {
			t.Errorf("node %q coverage mismatch (-parent +children):\n%s", n.Path, diff)
		}
	})
}

func TestHierarchySiblingOrdering(t *testing.T) {
	Walk(analyzeFixture().Tree, func(n *Node) {
		for i := 1; i < len(n.Children); i++ {
			if n.Children[i-1].Name > n.Children[i].Name {
				t.Errorf("node %q children out of order: %q > %q",
					n.Path, n.Children[i-1].Name, n.Children[i].Name)
			}
		}
	})
}

func TestBuildHierarchyEmptyInput(t *testing.T) {
	root := BuildHierarchy(nil)
	if root == nil {
		t.Fatal("empty input should still yield a root")
	}
	if root.Name != RootName || root.Path != "" {
		t.Errorf("root = %q at %q", root.Name, root.Path)
	}
	if len(root.Children) != 0 {
		t.Errorf("empty input should yield no children, got %d", len(root.Children))
	}
}

func TestBuildHierarchyDeterminism(t *testing.T) {
	first := Analyze(suiteFixture())
	second := Analyze(suiteFixture())

	ignoreRaw := cmpopts.IgnoreFields(Measurement{}, "Raw")
	if diff := cmp.Diff(first.Tree, second.Tree, ignoreRaw); diff != "" {
		t.Errorf("repeated analysis differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Comparisons, second.Comparisons, ignoreRaw); diff != "" {
		t.Errorf("repeated comparisons differ (-first +second):\n%s", diff)
	}
}

func TestMoreThanOneDistinct(t *testing.T) {
	comps := []*Comparison{
		{Padding: "NoPadding"},
		{Padding: "NoPadding"},
	}
	split := moreThanOneDistinct(byPadding)
	if split(comps) {
		t.Error("single distinct value should not split")
	}

	comps = append(comps, &Comparison{Padding: "PKCS5Padding"})
	if !split(comps) {
		t.Error("two distinct values should split")
	}

	if split(nil) {
		t.Error("empty group should not split")
	}
}
