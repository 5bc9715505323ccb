// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNotFound reports that no run matches the given identity.
	ErrNotFound = errors.New("run not found")

	// ErrClosed reports an operation on a closed store.
	ErrClosed = errors.New("store is closed")
)

// =============================================================================
// TYPES
// =============================================================================

// Run is one persisted load+analysis of a results document.
type Run struct {
	ID              string    `json:"id"`
	Source          string    `json:"source"`
	Fingerprint     string    `json:"fingerprint"`
	LoadedAt        time.Time `json:"loaded_at"`
	RecordCount     int       `json:"record_count"`
	ComparisonCount int       `json:"comparison_count"`
	RejectedCount   int       `json:"rejected_count"`
	OverwriteCount  int       `json:"overwrite_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// Store is a SQLite-backed run history. Safe for concurrent use; the
// pool is pinned to a single connection because SQLite allows one
// writer.
type Store struct {
	db *sql.DB
}

// =============================================================================
// SCHEMA
// =============================================================================

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id               TEXT PRIMARY KEY,
	source           TEXT NOT NULL,
	fingerprint      TEXT NOT NULL,
	loaded_at        INTEGER NOT NULL,
	record_count     INTEGER NOT NULL,
	comparison_count INTEGER NOT NULL,
	rejected_count   INTEGER NOT NULL,
	overwrite_count  INTEGER NOT NULL,
	created_at       INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_fingerprint ON runs(fingerprint);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);

CREATE TABLE IF NOT EXISTS comparisons (
	run_id          TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	key             TEXT NOT NULL,
	category        TEXT NOT NULL,
	algorithm       TEXT NOT NULL,
	operation       TEXT NOT NULL,
	variant         TEXT NOT NULL,
	cipher_mode     TEXT NOT NULL DEFAULT '',
	padding         TEXT NOT NULL DEFAULT '',
	hash_algorithm  TEXT NOT NULL DEFAULT '',
	iterations      TEXT NOT NULL DEFAULT '',
	mode            TEXT NOT NULL,
	score_unit      TEXT NOT NULL,
	baseline_score  REAL,
	baseline_error  REAL,
	alternate_score REAL,
	alternate_error REAL,
	PRIMARY KEY (run_id, key)
);

CREATE INDEX IF NOT EXISTS idx_comparisons_run_id ON comparisons(run_id);
`

// =============================================================================
// LIFECYCLE
// =============================================================================

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports one writer at a time, so pin the pool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle. Further calls return ErrClosed.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) ready() error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	return nil
}

// =============================================================================
// WRITE PATH
// =============================================================================

// SaveRun persists a run and its comparison rows in one transaction and
// returns the generated run ID.
func (s *Store) SaveRun(run Run, comps []*analysis.Comparison) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}

	id := run.ID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = now
	}
	if run.LoadedAt.IsZero() {
		run.LoadedAt = now
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (id, source, fingerprint, loaded_at, record_count,
			comparison_count, rejected_count, overwrite_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, run.Source, run.Fingerprint, run.LoadedAt.Unix(),
		run.RecordCount, len(comps), run.RejectedCount, run.OverwriteCount,
		run.CreatedAt.Unix())
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO comparisons (run_id, key, category, algorithm, operation,
			variant, cipher_mode, padding, hash_algorithm, iterations, mode,
			score_unit, baseline_score, baseline_error, alternate_score,
			alternate_error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare comparison insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range comps {
		var bScore, bErr, aScore, aErr any
		if c.Baseline != nil {
			bScore, bErr = c.Baseline.Score, c.Baseline.ScoreError
		}
		if c.Alternate != nil {
			aScore, aErr = c.Alternate.Score, c.Alternate.ScoreError
		}
		if _, err := stmt.Exec(id, c.Key, c.Category.String(), c.Algorithm,
			c.Operation, c.Variant, c.CipherMode, c.Padding, c.HashAlgorithm,
			c.Iterations, c.Mode, c.ScoreUnit, bScore, bErr, aScore, aErr); err != nil {
			return "", fmt.Errorf("failed to insert comparison %s: %w", c.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// DeleteRun removes a run and, via the cascade, its comparison rows.
func (s *Store) DeleteRun(id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	res, err := s.db.Exec(`DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PruneRuns deletes all but the newest keep runs and returns how many
// were removed. keep <= 0 removes nothing.
func (s *Store) PruneRuns(keep int) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	if keep <= 0 {
		return 0, nil
	}
	res, err := s.db.Exec(`
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY created_at DESC, id LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// =============================================================================
// READ PATH
// =============================================================================

const runColumns = `id, source, fingerprint, loaded_at, record_count,
	comparison_count, rejected_count, overwrite_count, created_at`

func scanRun(row interface{ Scan(...any) error }) (Run, error) {
	var r Run
	var loadedAt, createdAt int64
	err := row.Scan(&r.ID, &r.Source, &r.Fingerprint, &loadedAt,
		&r.RecordCount, &r.ComparisonCount, &r.RejectedCount,
		&r.OverwriteCount, &createdAt)
	if err != nil {
		return Run{}, err
	}
	r.LoadedAt = time.Unix(loadedAt, 0)
	r.CreatedAt = time.Unix(createdAt, 0)
	return r, nil
}

// ListRuns returns runs newest first, at most limit (<= 0 means all).
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1 // SQLite treats negative LIMIT as unlimited
	}
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs
		ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun fetches one run by ID.
func (s *Store) GetRun(id string) (Run, error) {
	if err := s.ready(); err != nil {
		return Run{}, err
	}
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// FindByFingerprint returns the newest run whose source document had the
// given fingerprint, for deduplicating repeat saves.
func (s *Store) FindByFingerprint(fingerprint string) (Run, error) {
	if err := s.ready(); err != nil {
		return Run{}, err
	}
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs
		WHERE fingerprint = ? ORDER BY created_at DESC, id LIMIT 1`, fingerprint)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to find run by fingerprint: %w", err)
	}
	return r, nil
}

// GetRunComparisons reconstructs a run's comparison rows. The raw
// records are not persisted, so Measurement.Raw is nil on the way out.
func (s *Store) GetRunComparisons(id string) ([]*analysis.Comparison, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if _, err := s.GetRun(id); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT key, category, algorithm, operation, variant, cipher_mode,
			padding, hash_algorithm, iterations, mode, score_unit,
			baseline_score, baseline_error, alternate_score, alternate_error
		FROM comparisons WHERE run_id = ? ORDER BY rowid`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query comparisons: %w", err)
	}
	defer rows.Close()

	var comps []*analysis.Comparison
	for rows.Next() {
		var c analysis.Comparison
		var category string
		var bScore, bErr, aScore, aErr sql.NullFloat64
		if err := rows.Scan(&c.Key, &category, &c.Algorithm, &c.Operation,
			&c.Variant, &c.CipherMode, &c.Padding, &c.HashAlgorithm,
			&c.Iterations, &c.Mode, &c.ScoreUnit,
			&bScore, &bErr, &aScore, &aErr); err != nil {
			return nil, fmt.Errorf("failed to scan comparison: %w", err)
		}
		// Only valid display names are ever written, so the error case
		// degrades to the Symmetric default.
		c.Category, _ = analysis.CategoryFromString(category)
		if bScore.Valid {
			c.Baseline = &analysis.Measurement{Score: bScore.Float64, ScoreError: bErr.Float64}
		}
		if aScore.Valid {
			c.Alternate = &analysis.Measurement{Score: aScore.Float64, ScoreError: aErr.Float64}
		}
		comps = append(comps, &c)
	}
	return comps, rows.Err()
}
