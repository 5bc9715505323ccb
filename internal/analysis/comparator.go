// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package analysis

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/results"
)

// =============================================================================
// COMPARATOR
// =============================================================================

// DefaultBaselineMarker identifies the baseline provider. Matching is
// case-insensitive, so "BC", "bc" and "Bc" all land in the baseline slot.
const DefaultBaselineMarker = "BC"

// keySeparator joins canonical key fields. It never occurs in field values
// produced by the harness.
const keySeparator = "|"

// Measurement is one provider's side of a comparison.
type Measurement struct {
	Score      float64 `json:"score"`
	ScoreError float64 `json:"score_error"`
	Provider   string  `json:"provider"`

	// Raw points back at the originating record for detail display. Not
	// serialized: the record repeats at every tree level that retains the
	// comparison.
	Raw *results.RawResult `json:"-"`
}

// MarshalJSON encodes a measurement, writing "NaN" for a NaN score
// error the same way the raw metric does, so single-fork measurements
// survive JSON serialization in the API and exports.
func (m Measurement) MarshalJSON() ([]byte, error) {
	type wire struct {
		Score      float64         `json:"score"`
		ScoreError json.RawMessage `json:"score_error"`
		Provider   string          `json:"provider"`
	}
	scoreErr := json.RawMessage(`"NaN"`)
	if !math.IsNaN(m.ScoreError) {
		raw, err := json.Marshal(m.ScoreError)
		if err != nil {
			return nil, err
		}
		scoreErr = raw
	}
	return json.Marshal(wire{Score: m.Score, ScoreError: scoreErr, Provider: m.Provider})
}

// UnmarshalJSON decodes a measurement, accepting "NaN" for score_error.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	type wire struct {
		Score      float64         `json:"score"`
		ScoreError json.RawMessage `json:"score_error"`
		Provider   string          `json:"provider"`
	}
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	m.Score = w.Score
	m.Provider = w.Provider
	m.ScoreError = 0
	if len(w.ScoreError) > 0 {
		var f float64
		if err := json.Unmarshal(w.ScoreError, &f); err == nil {
			m.ScoreError = f
		} else {
			m.ScoreError = math.NaN()
		}
	}
	return nil
}

// Comparison pairs the two providers' measurements of one logical
// benchmark. Either side may be nil when only one provider produced the
// measurement. Immutable once emitted; Key is unique across the set.
type Comparison struct {
	Key           string   `json:"key"`
	Category      Category `json:"category"`
	Algorithm     string   `json:"algorithm"`
	Operation     string   `json:"operation"`
	Variant       string   `json:"variant"`
	CipherMode    string   `json:"cipher_mode,omitempty"`
	Padding       string   `json:"padding,omitempty"`
	HashAlgorithm string   `json:"hash_algorithm,omitempty"`
	Iterations    string   `json:"iterations,omitempty"`
	Mode          string   `json:"mode"`
	ScoreUnit     string   `json:"score_unit"`

	Baseline  *Measurement `json:"baseline,omitempty"`
	Alternate *Measurement `json:"alternate,omitempty"`
}

// Speedup returns the alternate-to-baseline score ratio. The second return
// is false when either side is missing or the baseline score is zero.
// For throughput modes a ratio above 1 means the alternate is faster.
func (c *Comparison) Speedup() (float64, bool) {
	if c.Baseline == nil || c.Alternate == nil || c.Baseline.Score == 0 {
		return 0, false
	}
	return c.Alternate.Score / c.Baseline.Score, true
}

// Label is a compact display name: algorithm, operation and whichever
// differentiating fields are present.
func (c *Comparison) Label() string {
	parts := []string{c.Algorithm, c.Operation}
	if c.Variant != "" && c.Variant != absentValue {
		parts = append(parts, c.Variant)
	}
	for _, s := range []string{c.CipherMode, c.Padding, c.HashAlgorithm, c.Iterations} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// CanonicalKey derives the identity under which two parsed records count as
// the same logical measurement. Field order and the "default" placeholders
// for absent optionals are fixed; two records pair iff their keys are
// equal.
func CanonicalKey(p *ParsedBenchmark) string {
	return strings.Join([]string{
		p.Category.String(),
		p.Algorithm,
		p.Operation,
		p.Variant,
		orAbsent(p.CipherMode),
		orAbsent(p.Padding),
		orAbsent(p.HashAlgorithm),
		orAbsent(p.Iterations),
		p.Mode,
	}, keySeparator)
}

func orAbsent(s string) string {
	if s == "" {
		return absentValue
	}
	return s
}

// Overwrites counts entries displaced by the last-write-wins rule: when two
// records with the same canonical key land in the same provider slot, the
// later one replaces the earlier. A non-zero count usually means the input
// document contains rerun or duplicated data.
type Overwrites struct {
	Baseline  int `json:"baseline"`
	Alternate int `json:"alternate"`
}

// Total returns the combined overwrite count.
func (o Overwrites) Total() int {
	return o.Baseline + o.Alternate
}

// Comparator pairs parsed records by canonical key.
type Comparator struct {
	// BaselineMarker is compared case-insensitively against each record's
	// provider; matches fill the baseline slot, everything else the
	// alternate slot.
	BaselineMarker string
}

// NewComparator returns a comparator using the default "BC" baseline.
func NewComparator() *Comparator {
	return &Comparator{BaselineMarker: DefaultBaselineMarker}
}

// Compare groups the parsed sequence by canonical key and emits one
// Comparison per distinct key, in first-appearance order. Within a key,
// records partition into the baseline and alternate slots by provider;
// a later record in the same slot replaces the earlier one, counted in the
// returned Overwrites.
//
// Reference fields are copied from the baseline record when one is present,
// otherwise from the alternate.
func (c *Comparator) Compare(parsed []*ParsedBenchmark) ([]*Comparison, Overwrites) {
	marker := c.BaselineMarker
	if marker == "" {
		marker = DefaultBaselineMarker
	}

	byKey := make(map[string]*Comparison, len(parsed))
	order := make([]string, 0, len(parsed))
	var ov Overwrites

	for _, p := range parsed {
		key := CanonicalKey(p)
		comp, ok := byKey[key]
		if !ok {
			comp = &Comparison{Key: key}
			byKey[key] = comp
			order = append(order, key)
		}

		m := &Measurement{
			Score:      p.Score,
			ScoreError: p.ScoreError,
			Provider:   p.Provider,
			Raw:        p.Raw,
		}

		if strings.EqualFold(p.Provider, marker) {
			if comp.Baseline != nil {
				ov.Baseline++
			}
			comp.Baseline = m
			comp.setReference(p)
		} else {
			if comp.Alternate != nil {
				ov.Alternate++
			}
			comp.Alternate = m
			if comp.Baseline == nil {
				comp.setReference(p)
			}
		}
	}

	comps := make([]*Comparison, 0, len(order))
	for _, key := range order {
		comps = append(comps, byKey[key])
	}
	return comps, ov
}

// setReference copies the descriptive fields from a contributing record.
func (c *Comparison) setReference(p *ParsedBenchmark) {
	c.Category = p.Category
	c.Algorithm = p.Algorithm
	c.Operation = p.Operation
	c.Variant = p.Variant
	c.CipherMode = p.CipherMode
	c.Padding = p.Padding
	c.HashAlgorithm = p.HashAlgorithm
	c.Iterations = p.Iterations
	c.Mode = p.Mode
	c.ScoreUnit = p.ScoreUnit
}
