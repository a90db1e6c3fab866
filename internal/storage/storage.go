package storage

import "tex/internal/domain"

// RunCompletion carries the terminal fields recorded when a run resolves.
type RunCompletion struct {
	Status     domain.RunStatus
	Output     string
	ExitCode   int
	DurationMS int64
}

// RunStore persists test run records. The engine calls CreateRun before the
// process is spawned and CompleteRun exactly once when it resolves; both are
// fire-and-forget relative to the engine's control flow.
type RunStore interface {
	CreateRun(id string, framework domain.Framework, targetPath string) error
	// CompleteRun reports whether a record with the id was found.
	CompleteRun(id string, c RunCompletion) (bool, error)
}
