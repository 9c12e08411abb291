package store

import (
	"fmt"
	"time"
)

// Run statuses.
const (
	RunStatusOK    = "ok"
	RunStatusError = "error"
)

// ConversionRun is one recorded converter invocation.
type ConversionRun struct {
	RunID        string    `json:"runId"`
	InputFile    string    `json:"inputFile"`
	OutputFile   string    `json:"outputFile"`
	RecordCount  int       `json:"recordCount"`
	WarningCount int       `json:"warningCount"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"errorMessage"`
	StartedAt    time.Time `json:"startedAt"`
	CompletedAt  time.Time `json:"completedAt"`
}

// RecordRun inserts one conversion run into the history.
func (s *Store) RecordRun(run *ConversionRun) error {
	_, err := s.db.Exec(`
		INSERT INTO conversion_runs
			(run_id, input_file, output_file, record_count, warning_count, status, error_message, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.RunID, run.InputFile, run.OutputFile, run.RecordCount, run.WarningCount, run.Status, run.ErrorMessage, run.StartedAt)
	if err != nil {
		return fmt.Errorf("failed to record conversion run: %w", err)
	}
	return nil
}

// RecentRuns returns the most recent conversion runs, newest first.
func (s *Store) RecentRuns(limit int) ([]*ConversionRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT run_id, input_file, output_file, record_count, warning_count, status, error_message, started_at, completed_at
		FROM conversion_runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversion runs: %w", err)
	}
	defer rows.Close()

	runs := make([]*ConversionRun, 0, limit)
	for rows.Next() {
		run := &ConversionRun{}
		if err := rows.Scan(
			&run.RunID, &run.InputFile, &run.OutputFile,
			&run.RecordCount, &run.WarningCount,
			&run.Status, &run.ErrorMessage,
			&run.StartedAt, &run.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan conversion run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
