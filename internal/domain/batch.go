package domain

import "time"

// Aggregate holds per-state counts and the total wall-clock duration of a batch.
type Aggregate struct {
	Passed     int   `json:"passed"`
	Failed     int   `json:"failed"`
	Errored    int   `json:"errored"`
	TimedOut   int   `json:"timed_out"`
	DurationMS int64 `json:"duration_ms"`
}

// BatchResult is an ordered sequence of test runs plus the derived aggregate.
// It is a view over the runs, never persisted directly.
type BatchResult struct {
	Runs      []TestRun `json:"runs"`
	Aggregate Aggregate `json:"aggregate"`
}

// NewBatchResult computes the aggregate for an ordered run sequence.
func NewBatchResult(runs []TestRun) BatchResult {
	var agg Aggregate
	for _, r := range runs {
		switch r.Status {
		case StatusPassed:
			agg.Passed++
		case StatusFailed:
			agg.Failed++
		case StatusErrored:
			agg.Errored++
		case StatusTimedOut:
			agg.TimedOut++
		}
		agg.DurationMS += r.DurationMS
	}
	return BatchResult{Runs: runs, Aggregate: agg}
}

// Success reports overall batch success. Timeouts count as failures here.
func (b BatchResult) Success() bool {
	return b.Aggregate.Failed == 0 && b.Aggregate.Errored == 0 && b.Aggregate.TimedOut == 0
}

// BatchMeta summarizes a persisted batch in the results file.
type BatchMeta struct {
	TotalRuns       int     `json:"total_runs"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Errored         int     `json:"errored"`
	TimedOut        int     `json:"timed_out"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// BatchOutput is the complete persisted shape of the last batch.
type BatchOutput struct {
	Meta BatchMeta `json:"meta"`
	Runs []TestRun `json:"runs"`
}

// MetaFor builds the persisted meta block from an aggregate.
func MetaFor(agg Aggregate, total int) BatchMeta {
	d := time.Duration(agg.DurationMS) * time.Millisecond
	return BatchMeta{
		TotalRuns:       total,
		Passed:          agg.Passed,
		Failed:          agg.Failed,
		Errored:         agg.Errored,
		TimedOut:        agg.TimedOut,
		Duration:        d.String(),
		DurationSeconds: d.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
}
