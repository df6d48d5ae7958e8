// Package store persists benchmark runs and per-query results in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Result statuses recorded for each query in a run.
const (
	StatusGenerated  = "generated"
	StatusGenFailed  = "gen_failed"
	StatusExecuted   = "executed"
	StatusExecFailed = "exec_failed"
)

// Run is one benchmark invocation.
type Run struct {
	ID             string
	Model          string
	Representation string
	TestName       string
	OutDir         string
	StartedAt      time.Time
	FinishedAt     *time.Time
}

// Result is the recorded outcome for one query in a run. Detail holds
// the error text for failed statuses and is empty otherwise.
type Result struct {
	RunID      string
	QueryIndex int
	Query      string
	Status     string
	Detail     string
}

// RunStore records runs and their per-query outcomes.
type RunStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// NewRunStore opens (or creates) the run database at the given path.
func NewRunStore(path string) (*RunStore, error) {
	if path == "" {
		return nil, fmt.Errorf("database path required")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.Exec("PRAGMA busy_timeout = 5000")
	db.Exec("PRAGMA journal_mode = WAL")

	store := &RunStore{db: db, dbPath: path}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// initialize creates the required tables.
func (s *RunStore) initialize() error {
	runsTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		model TEXT NOT NULL,
		representation TEXT NOT NULL,
		test_name TEXT NOT NULL,
		out_dir TEXT NOT NULL,
		started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		finished_at DATETIME
	);
	CREATE INDEX IF NOT EXISTS idx_runs_model ON runs(model);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`

	resultsTable := `
	CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		query_index INTEGER NOT NULL,
		query TEXT NOT NULL,
		status TEXT NOT NULL,
		detail TEXT,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(run_id, query_index),
		FOREIGN KEY(run_id) REFERENCES runs(id)
	);
	CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
	CREATE INDEX IF NOT EXISTS idx_results_status ON results(status);
	`

	if _, err := s.db.Exec(runsTable); err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}
	if _, err := s.db.Exec(resultsTable); err != nil {
		return fmt.Errorf("failed to create results table: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *RunStore) Close() error {
	return s.db.Close()
}

// CreateRun records the start of a benchmark run.
func (s *RunStore) CreateRun(id, model, representation, testName, outDir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO runs (id, model, representation, test_name, out_dir) VALUES (?, ?, ?, ?, ?)",
		id, model, representation, testName, outDir,
	)
	return err
}

// FinishRun stamps the run as complete.
func (s *RunStore) FinishRun(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("UPDATE runs SET finished_at = CURRENT_TIMESTAMP WHERE id = ?", id)
	return err
}

// Run returns the recorded run with the given id.
func (s *RunStore) Run(id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(
		"SELECT id, model, representation, test_name, out_dir, started_at, finished_at FROM runs WHERE id = ?",
		id,
	)

	var run Run
	var finished sql.NullTime
	if err := row.Scan(&run.ID, &run.Model, &run.Representation, &run.TestName, &run.OutDir, &run.StartedAt, &finished); err != nil {
		return nil, err
	}
	if finished.Valid {
		run.FinishedAt = &finished.Time
	}
	return &run, nil
}

// RecentRuns returns the most recent runs, newest first.
func (s *RunStore) RecentRuns(limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		"SELECT id, model, representation, test_name, out_dir, started_at, finished_at FROM runs ORDER BY started_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var finished sql.NullTime
		if err := rows.Scan(&run.ID, &run.Model, &run.Representation, &run.TestName, &run.OutDir, &run.StartedAt, &finished); err != nil {
			return nil, err
		}
		if finished.Valid {
			run.FinishedAt = &finished.Time
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RecordResult upserts the outcome for one query. The execution phase
// overwrites the status written by the generation phase.
func (s *RunStore) RecordResult(runID string, queryIndex int, query, status, detail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO results (run_id, query_index, query, status, detail) VALUES (?, ?, ?, ?, ?)",
		runID, queryIndex, query, status, detail,
	)
	return err
}

// Results returns all recorded results for a run in query order.
func (s *RunStore) Results(runID string) ([]Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT run_id, query_index, query, status, detail FROM results WHERE run_id = ? ORDER BY query_index",
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var detail sql.NullString
		if err := rows.Scan(&r.RunID, &r.QueryIndex, &r.Query, &r.Status, &detail); err != nil {
			return nil, err
		}
		r.Detail = detail.String
		results = append(results, r)
	}
	return results, rows.Err()
}

// CountByStatus tallies a run's results per status.
func (s *RunStore) CountByStatus(runID string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT status, COUNT(*) FROM results WHERE run_id = ? GROUP BY status",
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
