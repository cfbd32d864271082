// Package store persists extraction runs in a local SQLite database: run
// metadata, per-group tweet counts, and the produced results document. The
// extract command records each run; the results and score commands can then
// answer from the database without re-reading the corpus.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"redcarpet/internal/logging"
)

// ErrNoRuns is returned when the database holds no completed run.
var ErrNoRuns = errors.New("store: no completed runs")

// Run records one pass over a corpus.
type Run struct {
	ID          string
	Year        string
	TweetsTotal int
	TweetsKept  int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Store wraps the SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	logging.Store("opened database at %s", path)
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id           TEXT PRIMARY KEY,
		year         TEXT NOT NULL,
		tweets_total INTEGER NOT NULL DEFAULT 0,
		tweets_kept  INTEGER NOT NULL DEFAULT 0,
		started_at   TIMESTAMP NOT NULL,
		finished_at  TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS run_groups (
		run_id      TEXT NOT NULL REFERENCES runs(id),
		name        TEXT NOT NULL,
		tweet_count INTEGER NOT NULL,
		PRIMARY KEY (run_id, name)
	);
	CREATE TABLE IF NOT EXISTS results (
		run_id     TEXT PRIMARY KEY REFERENCES runs(id),
		year       TEXT NOT NULL,
		document   TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_year ON runs(year, finished_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("store: apply schema: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun records the start of an extraction pass.
func (s *Store) BeginRun(year string, tweetsTotal int) (*Run, error) {
	run := &Run{
		ID:          uuid.NewString(),
		Year:        year,
		TweetsTotal: tweetsTotal,
		StartedAt:   time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, year, tweets_total, started_at) VALUES (?, ?, ?, ?)`,
		run.ID, run.Year, run.TweetsTotal, run.StartedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("store: begin run: %w", err)
	}
	logging.Store("run %s started, year=%s tweets=%d", run.ID, year, tweetsTotal)
	return run, nil
}

// FinishRun records the end of a run and how many tweets survived the
// pipeline.
func (s *Store) FinishRun(run *Run, tweetsKept int) error {
	run.TweetsKept = tweetsKept
	run.FinishedAt = time.Now().UTC()
	_, err := s.db.Exec(
		`UPDATE runs SET tweets_kept = ?, finished_at = ? WHERE id = ?`,
		run.TweetsKept, run.FinishedAt, run.ID,
	)
	if err != nil {
		return fmt.Errorf("store: finish run: %w", err)
	}
	logging.Store("run %s finished, kept=%d", run.ID, tweetsKept)
	return nil
}

// SaveGroups records how many tweets landed in each pipeline group.
func (s *Store) SaveGroups(runID string, counts map[string]int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: save groups: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT OR REPLACE INTO run_groups (run_id, name, tweet_count) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: save groups: %w", err)
	}
	defer stmt.Close()

	for name, count := range counts {
		if _, err := stmt.Exec(runID, name, count); err != nil {
			return fmt.Errorf("store: save group %s: %w", name, err)
		}
	}
	return tx.Commit()
}

// Groups returns the per-group tweet counts recorded for a run.
func (s *Store) Groups(runID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT name, tweet_count FROM run_groups WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: load groups: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("store: scan group: %w", err)
		}
		counts[name] = count
	}
	return counts, rows.Err()
}

// SaveResults stores the results document produced by a run.
func (s *Store) SaveResults(runID, year string, document []byte) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO results (run_id, year, document, created_at) VALUES (?, ?, ?, ?)`,
		runID, year, string(document), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("store: save results: %w", err)
	}
	return nil
}

// LatestResults returns the results document from the most recently
// finished run for a year.
func (s *Store) LatestResults(year string) ([]byte, error) {
	var document string
	err := s.db.QueryRow(
		`SELECT r.document FROM results r
		 JOIN runs ON runs.id = r.run_id
		 WHERE r.year = ? AND runs.finished_at IS NOT NULL
		 ORDER BY runs.finished_at DESC LIMIT 1`, year,
	).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRuns
	}
	if err != nil {
		return nil, fmt.Errorf("store: load results: %w", err)
	}
	return []byte(document), nil
}

// Runs returns the most recent runs, newest first.
func (s *Store) Runs(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, year, tweets_total, tweets_kept, started_at, COALESCE(finished_at, started_at)
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Year, &r.TweetsTotal, &r.TweetsKept, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
