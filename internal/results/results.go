// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package results

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// =============================================================================
// RAW RESULT TYPES
// =============================================================================

// RawResult is one measurement record as emitted by the JMH execution
// harness. Field names mirror the harness's JSON output, so this type uses
// the harness's camelCase keys rather than the repository's usual snake_case.
//
// The benchmark path is dot-delimited: positions 0-1 are the fixed
// "com.benchmark" namespace, position 2 the suite (category) segment,
// position 3 the algorithm and position 4 the operation, e.g.
// "com.benchmark.SymmetricBenchmark.Aes.encrypt".
type RawResult struct {
	Benchmark     string            `json:"benchmark"`
	Mode          string            `json:"mode"`
	Threads       int               `json:"threads,omitempty"`
	Forks         int               `json:"forks,omitempty"`
	Params        map[string]string `json:"params"`
	PrimaryMetric Metric            `json:"primaryMetric"`
}

// Param returns the named parameter value, or "" when absent.
// A nil params map behaves like an empty one.
func (r *RawResult) Param(name string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params[name]
}

// Provider returns the providerName parameter, identifying which
// cryptography implementation produced this measurement.
func (r *RawResult) Provider() string {
	return r.Param("providerName")
}

// Metric is the primary metric triple of a measurement.
type Metric struct {
	Score      float64 `json:"score"`
	ScoreError float64 `json:"scoreError"`
	ScoreUnit  string  `json:"scoreUnit"`
}

// metricWire mirrors Metric with the error field left raw. The harness
// emits scoreError as the JSON string "NaN" when a benchmark ran with a
// single fork, which a plain float64 field would reject.
type metricWire struct {
	Score      float64         `json:"score"`
	ScoreError json.RawMessage `json:"scoreError"`
	ScoreUnit  string          `json:"scoreUnit"`
}

// UnmarshalJSON decodes a metric, accepting "NaN" for scoreError.
func (m *Metric) UnmarshalJSON(data []byte) error {
	var w metricWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	m.Score = w.Score
	m.ScoreUnit = w.ScoreUnit
	m.ScoreError = 0
	if len(w.ScoreError) > 0 {
		var f float64
		if err := json.Unmarshal(w.ScoreError, &f); err == nil {
			m.ScoreError = f
		} else {
			var s string
			if err := json.Unmarshal(w.ScoreError, &s); err != nil {
				return fmt.Errorf("decode scoreError: %w", err)
			}
			if s != "NaN" {
				return fmt.Errorf("decode scoreError: unexpected value %q", s)
			}
			m.ScoreError = math.NaN()
		}
	}
	return nil
}

// MarshalJSON encodes a metric, writing "NaN" for a NaN scoreError so a
// decoded document round-trips.
func (m Metric) MarshalJSON() ([]byte, error) {
	if math.IsNaN(m.ScoreError) {
		return json.Marshal(metricWire{
			Score:      m.Score,
			ScoreError: json.RawMessage(`"NaN"`),
			ScoreUnit:  m.ScoreUnit,
		})
	}
	type plain Metric
	return json.Marshal(plain(m))
}

// =============================================================================
// COLLECTION
// =============================================================================

// Collection is one decoded results document plus metadata about where and
// when it was loaded. Records preserve document order; the analysis pipeline
// depends on that order for its last-write-wins semantics.
type Collection struct {
	// Source is the path or URL the document was loaded from.
	Source string `json:"source"`

	// Records are the decoded measurement records in document order.
	Records []RawResult `json:"records"`

	// Fingerprint is the hex BLAKE2b-256 digest of the raw document bytes.
	Fingerprint string `json:"fingerprint"`

	// Size is the raw document size in bytes.
	Size int64 `json:"size"`

	// LoadedAt is when the document was read.
	LoadedAt time.Time `json:"loaded_at"`
}

// decode parses a raw results document into records. The document must be a
// JSON array; an empty array is a valid empty collection.
func decode(data []byte) ([]RawResult, error) {
	var records []RawResult
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("results document is not a JSON array of records: %w", err)
	}
	return records, nil
}
