// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// =============================================================================
// BENCHMARK CATEGORIES
// =============================================================================

// Category classifies a benchmark into one of the three suites the harness
// runs. The set is closed; dispatch throughout the pipeline switches on the
// tag rather than re-testing strings.
type Category int

const (
	// CategorySymmetric covers block cipher benchmarks (AES, ARIA,
	// Camellia, SM4). Also the fallback when a suite segment matches no
	// marker.
	CategorySymmetric Category = iota

	// CategoryKDF covers key derivation benchmarks (PBKDF2, scrypt).
	CategoryKDF

	// CategoryPQC covers post-quantum benchmarks (ML-DSA, SLH-DSA, ML-KEM).
	CategoryPQC
)

// Suite segment markers, matched as case-sensitive substrings. Priority
// matters: a segment containing both markers classifies by the first match,
// PQC before KDF.
const (
	pqcMarker = "Pqc"
	kdfMarker = "Kdf"
)

// CategoryOf derives the category from a benchmark path's suite segment
// (e.g. "SymmetricBenchmark", "KdfBenchmark", "PqcBenchmark"). Unrecognized
// segments default to Symmetric; that is the contract, not an error.
func CategoryOf(segment string) Category {
	switch {
	case strings.Contains(segment, pqcMarker):
		return CategoryPQC
	case strings.Contains(segment, kdfMarker):
		return CategoryKDF
	default:
		return CategorySymmetric
	}
}

// String returns the display name, which is also the category node's name
// and path in the hierarchy.
func (c Category) String() string {
	switch c {
	case CategoryKDF:
		return "KDF"
	case CategoryPQC:
		return "PQC"
	default:
		return "Symmetric"
	}
}

// MarshalJSON encodes the category as its display name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a category display name.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	cat, err := CategoryFromString(s)
	if err != nil {
		return err
	}
	*c = cat
	return nil
}

// CategoryFromString maps a display name back to its category.
func CategoryFromString(s string) (Category, error) {
	switch s {
	case "Symmetric":
		return CategorySymmetric, nil
	case "KDF":
		return CategoryKDF, nil
	case "PQC":
		return CategoryPQC, nil
	default:
		return CategorySymmetric, fmt.Errorf("unknown category %q", s)
	}
}

// =============================================================================
// KDF ALGORITHM KINDS
// =============================================================================

// KDFKind distinguishes the key derivation algorithms that carry different
// parameter shapes: PBKDF2 has a hash algorithm and an iteration count,
// scrypt a cost parameter N, and anything else only a generic parameter
// field.
type KDFKind int

const (
	KDFOther KDFKind = iota
	KDFPbkdf2
	KDFScrypt
)

// Algorithm segment names for the KDF suite, as they appear in the
// benchmark path.
const (
	pbkdf2Algorithm = "Pbkdf2"
	scryptAlgorithm = "Scrypt"
)

// KDFKindOf maps a KDF algorithm segment to its kind. Unknown algorithms
// fall through to KDFOther, which groups by the generic parameter field.
func KDFKindOf(algorithm string) KDFKind {
	switch algorithm {
	case pbkdf2Algorithm:
		return KDFPbkdf2
	case scryptAlgorithm:
		return KDFScrypt
	default:
		return KDFOther
	}
}
