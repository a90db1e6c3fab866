package storage

import (
	"testing"

	"tex/internal/config"
	"tex/internal/domain"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	cfg := config.New()
	cfg.WorkDir = t.TempDir()
	return NewJSONStore(cfg)
}

func TestJSONStore_CreateThenComplete(t *testing.T) {
	s := newTestStore(t)

	if err := s.CreateRun("run-1", domain.Jest, "/x/a.test.js"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// The record is on disk in running state before completion.
	out, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out.Runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(out.Runs))
	}
	if out.Runs[0].Status != domain.StatusRunning {
		t.Errorf("expected running, got %s", out.Runs[0].Status)
	}

	found, err := s.CompleteRun("run-1", RunCompletion{
		Status:     domain.StatusFailed,
		Output:     "1 failing",
		ExitCode:   1,
		DurationMS: 42,
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !found {
		t.Error("expected the record to be found")
	}

	out, err = s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	run := out.Runs[0]
	if run.Status != domain.StatusFailed || run.ExitCode != 1 || run.DurationMS != 42 {
		t.Errorf("terminal fields not persisted: %+v", run)
	}
	if run.CompletedAt == nil {
		t.Error("expected completion timestamp")
	}
	if out.Meta.Failed != 1 || out.Meta.TotalRuns != 1 {
		t.Errorf("meta not derived from runs: %+v", out.Meta)
	}
}

func TestJSONStore_CompleteUnknownRun(t *testing.T) {
	s := newTestStore(t)
	found, err := s.CompleteRun("missing", RunCompletion{Status: domain.StatusPassed})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected found=false for an unknown id")
	}
}

func TestJSONStore_SaveOutputRoundTrip(t *testing.T) {
	s := newTestStore(t)
	if err := s.CreateRun("run-1", domain.Pytest, "/x/test_a.py"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CompleteRun("run-1", RunCompletion{Status: domain.StatusErrored}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	out.Runs[0].Reviewed = true
	if err := s.SaveOutput(out); err != nil {
		t.Fatalf("save: %v", err)
	}

	again, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !again.Runs[0].Reviewed {
		t.Error("expected reviewed flag to survive a round trip")
	}
}

func TestJSONStore_LoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Load(); err == nil {
		t.Error("expected an error when no results file exists")
	}
}
