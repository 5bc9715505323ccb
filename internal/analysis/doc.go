// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package analysis turns flat benchmark measurement records into paired
// provider comparisons and a navigable hierarchy.
//
// The pipeline has four stages, each depending only on the one before it:
//
//   - Parser: decodes one raw record into a ParsedBenchmark with
//     normalized, category-specific fields
//   - Comparator: groups parsed records by canonical key and pairs the
//     baseline provider (BouncyCastle, "BC") against the alternate (Jostle)
//   - HierarchyBuilder: arranges comparisons into a category-specific tree
//   - Sorter: orders every level of the tree lexicographically
//
// Data flows strictly one way: raw records, parsed descriptors, paired
// comparisons, sorted hierarchy. Every stage is a pure transformation of
// in-memory values, so concurrent invocations over different inputs need no
// locking, and a given input always produces a structurally identical
// output.
//
// # Usage
//
//	report := analysis.Analyze(coll.Records)
//	for _, c := range report.Comparisons {
//	    fmt.Println(c.Key, c.Baseline, c.Alternate)
//	}
//	node := analysis.FindNode(report.Tree, "Symmetric/Aes/encrypt")
//
// Retrieval of the record collection is the caller's business; see
// internal/results.
package analysis
