package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := New(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestRecordRun_RoundTrip(t *testing.T) {
	st := newTestStore(t)

	run := &ConversionRun{
		RunID:        uuid.New().String(),
		InputFile:    "classifiers.xlsx",
		OutputFile:   "classifiers.js",
		RecordCount:  42,
		WarningCount: 3,
		Status:       RunStatusOK,
		StartedAt:    time.Now().UTC(),
	}
	if err := st.RecordRun(run); err != nil {
		t.Fatalf("record run: %v", err)
	}

	runs, err := st.RecentRuns(10)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}

	got := runs[0]
	if got.RunID != run.RunID {
		t.Errorf("run ID = %q, want %q", got.RunID, run.RunID)
	}
	if got.RecordCount != 42 || got.WarningCount != 3 {
		t.Errorf("counts = %d/%d, want 42/3", got.RecordCount, got.WarningCount)
	}
	if got.Status != RunStatusOK {
		t.Errorf("status = %q, want ok", got.Status)
	}
	if got.CompletedAt.IsZero() {
		t.Error("completed_at not set")
	}
}

func TestRecentRuns_NewestFirstAndLimited(t *testing.T) {
	st := newTestStore(t)

	for i := 0; i < 5; i++ {
		run := &ConversionRun{
			RunID:     uuid.New().String(),
			InputFile: "in.xlsx",
			Status:    RunStatusOK,
			StartedAt: time.Now().UTC(),
		}
		if i == 4 {
			run.Status = RunStatusError
			run.ErrorMessage = "File not found: in.xlsx"
		}
		if err := st.RecordRun(run); err != nil {
			t.Fatalf("record run %d: %v", i, err)
		}
	}

	runs, err := st.RecentRuns(3)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("runs = %d, want 3", len(runs))
	}
	if runs[0].Status != RunStatusError {
		t.Errorf("newest run status = %q, want error", runs[0].Status)
	}
	if runs[0].ErrorMessage == "" {
		t.Error("error run lost its message")
	}
}

func TestRecordRun_DuplicateRunID(t *testing.T) {
	st := newTestStore(t)

	run := &ConversionRun{
		RunID:     "fixed-id",
		InputFile: "in.xlsx",
		Status:    RunStatusOK,
		StartedAt: time.Now().UTC(),
	}
	if err := st.RecordRun(run); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if err := st.RecordRun(run); err == nil {
		t.Fatal("duplicate run ID accepted")
	}
}
