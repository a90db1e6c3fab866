package domain

import "time"

// RunStatus is the lifecycle state of a test run.
type RunStatus string

const (
	StatusRunning  RunStatus = "running"
	StatusPassed   RunStatus = "passed"
	StatusFailed   RunStatus = "failed"
	StatusErrored  RunStatus = "errored"
	StatusTimedOut RunStatus = "timed-out"
)

// Terminal reports whether no further transitions occur from this status.
func (s RunStatus) Terminal() bool {
	switch s {
	case StatusPassed, StatusFailed, StatusErrored, StatusTimedOut:
		return true
	}
	return false
}

// Summary holds the structured counts extracted from framework output.
type Summary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// TestRun is the record of one invocation. It is created in StatusRunning
// and mutated exactly once, to a terminal status, when the process resolves.
type TestRun struct {
	ID          string     `json:"id"`
	Framework   Framework  `json:"framework"`
	TargetPath  string     `json:"target_path"`
	Status      RunStatus  `json:"status"`
	Output      string     `json:"output"`
	ExitCode    int        `json:"exit_code"`
	DurationMS  int64      `json:"duration_ms"`
	Summary     *Summary   `json:"summary,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Reviewed    bool       `json:"reviewed,omitempty"` // set from the failures viewer
}

// Succeeded reports overall success for a single run.
func (r *TestRun) Succeeded() bool {
	return r.Status == StatusPassed
}
