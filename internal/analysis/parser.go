// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/results"
)

// =============================================================================
// PARSER
// =============================================================================

// ErrMalformedPath reports a benchmark path too short to carry the suite,
// algorithm and operation segments. Such a record must be rejected rather
// than coerced to empty fields, since empty keys would silently merge
// unrelated measurements downstream.
var ErrMalformedPath = errors.New("malformed benchmark path")

// Benchmark path layout: "com.benchmark.<Suite>.<Algorithm>.<operation>".
// The first two segments are a fixed namespace prefix.
const (
	pathSeparator    = "."
	minPathSegments  = 5
	categorySegment  = 2
	algorithmSegment = 3
	operationSegment = 4
)

// Parameter names the parser recognizes in a record's params map.
const (
	paramProvider   = "providerName"
	paramAlgorithm  = "algorithm"
	paramKeySize    = "keySize"
	paramTransform  = "transform"
	paramIterations = "iterations"
	paramScryptN    = "N"
)

// pbkdf2HashPrefix leads the PBKDF2 algorithm parameter; the remainder
// names the underlying hash, e.g. "PBKDF2WithHmacSHA256" carries "SHA256".
const pbkdf2HashPrefix = "PBKDF2WithHmac"

// absentValue marks a variant or grouping field with no source parameter.
const absentValue = "default"

// ParsedBenchmark is the structured descriptor derived one-to-one from a
// raw measurement record. Created once by the parser and never mutated.
//
// Optional fields are empty when the category does not carry them:
// CipherMode and Padding are Symmetric-only, HashAlgorithm and Iterations
// KDF-only.
type ParsedBenchmark struct {
	// ID is a human-readable identity for display and debugging. The
	// comparator's grouping key is CanonicalKey, not this.
	ID string `json:"id"`

	Category      Category `json:"category"`
	Algorithm     string   `json:"algorithm"`
	Operation     string   `json:"operation"`
	Variant       string   `json:"variant"`
	CipherMode    string   `json:"cipher_mode,omitempty"`
	Padding       string   `json:"padding,omitempty"`
	HashAlgorithm string   `json:"hash_algorithm,omitempty"`
	Iterations    string   `json:"iterations,omitempty"`
	Mode          string   `json:"mode"`
	Provider      string   `json:"provider"`
	Score         float64  `json:"score"`
	ScoreError    float64  `json:"score_error"`
	ScoreUnit     string   `json:"score_unit"`

	// Raw points back at the originating record.
	Raw *results.RawResult `json:"-"`
}

// ParseRecord derives one ParsedBenchmark from one raw record. It fails
// only when the benchmark path is too short to name a suite, an algorithm
// and an operation; every other irregularity (unknown suite marker, missing
// parameters) has a defined default.
func ParseRecord(raw *results.RawResult) (*ParsedBenchmark, error) {
	segments := strings.Split(raw.Benchmark, pathSeparator)
	if len(segments) < minPathSegments {
		return nil, fmt.Errorf("%w: %q has %d segments, need %d",
			ErrMalformedPath, raw.Benchmark, len(segments), minPathSegments)
	}

	p := &ParsedBenchmark{
		Category:   CategoryOf(segments[categorySegment]),
		Algorithm:  segments[algorithmSegment],
		Operation:  segments[operationSegment],
		Mode:       raw.Mode,
		Provider:   raw.Provider(),
		Score:      raw.PrimaryMetric.Score,
		ScoreError: raw.PrimaryMetric.ScoreError,
		ScoreUnit:  raw.PrimaryMetric.ScoreUnit,
		Raw:        raw,
	}

	switch p.Category {
	case CategorySymmetric:
		p.Variant = symmetricVariant(raw)
		p.CipherMode, p.Padding = splitTransform(raw.Param(paramTransform))
	case CategoryPQC:
		p.Variant = pqcVariant(raw)
	case CategoryKDF:
		p.Variant = absentValue
		switch KDFKindOf(p.Algorithm) {
		case KDFPbkdf2:
			p.HashAlgorithm = pbkdf2Hash(raw.Param(paramAlgorithm))
			if it := raw.Param(paramIterations); it != "" {
				p.Iterations = it + " iterations"
			}
		case KDFScrypt:
			if n := raw.Param(paramScryptN); n != "" {
				p.Iterations = "N=" + n
			}
		}
	}

	p.ID = displayID(p)
	return p, nil
}

// ParseAll parses a record sequence, collecting rejections instead of
// aborting: a malformed record never stops the batch. Parsed descriptors
// preserve input order, which the comparator's last-write-wins rule
// depends on.
func ParseAll(records []results.RawResult) ([]*ParsedBenchmark, []RejectedRecord) {
	parsed := make([]*ParsedBenchmark, 0, len(records))
	var rejected []RejectedRecord

	for i := range records {
		p, err := ParseRecord(&records[i])
		if err != nil {
			rejected = append(rejected, RejectedRecord{
				Index:     i,
				Benchmark: records[i].Benchmark,
				Reason:    err.Error(),
			})
			continue
		}
		parsed = append(parsed, p)
	}
	return parsed, rejected
}

// symmetricVariant is the key size with a "-bit" suffix, e.g. "128-bit".
func symmetricVariant(raw *results.RawResult) string {
	if ks := raw.Param(paramKeySize); ks != "" {
		return ks + "-bit"
	}
	return absentValue
}

// pqcVariant is the parameter-set name, e.g. "ML-DSA-65".
func pqcVariant(raw *results.RawResult) string {
	if alg := raw.Param(paramAlgorithm); alg != "" {
		return alg
	}
	return absentValue
}

// splitTransform extracts cipher mode and padding from a JCE transform
// string such as "AES/GCM/NoPadding". Short or absent transforms yield
// empty strings.
func splitTransform(transform string) (mode, padding string) {
	parts := strings.Split(transform, "/")
	if len(parts) >= 2 {
		mode = parts[1]
	}
	if len(parts) >= 3 {
		padding = parts[2]
	}
	return mode, padding
}

// pbkdf2Hash strips the PBKDF2 prefix from the algorithm parameter. A
// value not matching the prefix is used verbatim.
func pbkdf2Hash(algorithm string) string {
	if strings.HasPrefix(algorithm, pbkdf2HashPrefix) {
		return strings.TrimPrefix(algorithm, pbkdf2HashPrefix)
	}
	return algorithm
}

// displayID builds the debug identity from the populated fields.
func displayID(p *ParsedBenchmark) string {
	parts := []string{p.Category.String(), p.Algorithm, p.Operation, p.Variant}
	for _, s := range []string{p.CipherMode, p.Padding, p.HashAlgorithm, p.Iterations} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	parts = append(parts, p.Mode)
	if p.Provider != "" {
		parts = append(parts, p.Provider)
	}
	return strings.Join(parts, " ")
}
