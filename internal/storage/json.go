package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"tex/internal/config"
	"tex/internal/domain"
)

// JSONStore is the document fallback: it keeps the current batch's runs in a
// single JSON file under the configured output path. A run is written in
// running state before its process starts, so a crash mid-run leaves a
// visible dangling record.
type JSONStore struct {
	cfg *config.Config

	mu    sync.Mutex
	order []string
	runs  map[string]*domain.TestRun
}

// NewJSONStore returns a RunStore that reads/writes the config's output JSON path.
func NewJSONStore(cfg *config.Config) *JSONStore {
	return &JSONStore{
		cfg:  cfg,
		runs: make(map[string]*domain.TestRun),
	}
}

// CreateRun records a new run in running state and persists immediately.
func (s *JSONStore) CreateRun(id string, framework domain.Framework, targetPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = append(s.order, id)
	s.runs[id] = &domain.TestRun{
		ID:         id,
		Framework:  framework,
		TargetPath: targetPath,
		Status:     domain.StatusRunning,
		CreatedAt:  time.Now(),
	}
	return s.persist()
}

// CompleteRun moves a run to its terminal state and persists.
func (s *JSONStore) CompleteRun(id string, c RunCompletion) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[id]
	if !ok {
		return false, nil
	}
	now := time.Now()
	run.Status = c.Status
	run.Output = c.Output
	run.ExitCode = c.ExitCode
	run.DurationMS = c.DurationMS
	run.CompletedAt = &now
	return true, s.persist()
}

// Load reads the last persisted batch from the output JSON file.
func (s *JSONStore) Load() (*domain.BatchOutput, error) {
	data, err := os.ReadFile(s.cfg.GetOutputPath())
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var out domain.BatchOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &out, nil
}

// SaveOutput writes the full output back (e.g. after the failures viewer
// toggles reviewed flags).
func (s *JSONStore) SaveOutput(out *domain.BatchOutput) error {
	return s.write(out)
}

func (s *JSONStore) persist() error {
	runs := make([]domain.TestRun, 0, len(s.order))
	for _, id := range s.order {
		runs = append(runs, *s.runs[id])
	}
	agg := domain.NewBatchResult(runs).Aggregate
	out := &domain.BatchOutput{
		Meta: domain.MetaFor(agg, len(runs)),
		Runs: runs,
	}
	return s.write(out)
}

func (s *JSONStore) write(out *domain.BatchOutput) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
