package engine

import (
	"time"

	"tex/internal/adapter"
	"tex/internal/domain"
)

// BatchRequest describes one batch: a directory to discover under, the
// framework to run, and optional overrides.
type BatchRequest struct {
	Root      string
	Framework domain.Framework
	Pattern   string            // optional file-name pattern override
	WorkDir   string            // defaults to Root
	Timeout   time.Duration     // per-invocation override
	Env       map[string]string // per-invocation env overrides
}

const tailBytes = 400

// Discover enumerates the test files a batch request would run, in the
// order RunFiles will run them.
func (e *Engine) Discover(req BatchRequest) ([]string, error) {
	pattern := req.Pattern
	if pattern == "" {
		p, err := adapter.FilePattern(req.Framework)
		if err != nil {
			return nil, err
		}
		pattern = p
	}
	return e.scanner.Scan(req.Root, pattern)
}

// RunBatch discovers test files and runs them sequentially, one invocation
// fully completing before the next starts. Results keep discovery order.
// Zero discovered files is an empty batch, not an error.
func (e *Engine) RunBatch(req BatchRequest) (*domain.BatchResult, error) {
	files, err := e.Discover(req)
	if err != nil {
		return nil, err
	}
	return e.RunFiles(req, files)
}

// RunFiles runs pre-discovered files under a batch request.
func (e *Engine) RunFiles(req BatchRequest, files []string) (*domain.BatchResult, error) {
	workDir := req.WorkDir
	if workDir == "" {
		workDir = req.Root
	}

	runs := make([]domain.TestRun, 0, len(files))
	for i, file := range files {
		run, err := e.RunOne(domain.Invocation{
			Framework:  req.Framework,
			TargetPath: file,
			WorkDir:    workDir,
			Timeout:    req.Timeout,
			Env:        req.Env,
		})
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
		if e.notifier != nil {
			pct := (i + 1) * 100 / len(files)
			e.notifier.RunProgress(run.ID, pct, tail(run.Output))
		}
	}

	res := domain.NewBatchResult(runs)
	return &res, nil
}

func tail(s string) string {
	if len(s) <= tailBytes {
		return s
	}
	return s[len(s)-tailBytes:]
}
