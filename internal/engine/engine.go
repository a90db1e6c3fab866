package engine

import (
	"time"

	"github.com/google/uuid"

	"tex/internal/adapter"
	"tex/internal/discovery"
	"tex/internal/domain"
	"tex/internal/execution"
	"tex/internal/notify"
	"tex/internal/parser"
	"tex/internal/storage"
)

// Engine wraps the execution controller with run identity, persistence
// hooks, and lifecycle notification. One Engine serves any number of
// sequential invocations; it holds no per-run state.
type Engine struct {
	controller *execution.Controller
	scanner    *discovery.Scanner
	parser     *parser.SummaryParser
	store      storage.RunStore
	notifier   notify.Notifier

	// resolve maps an invocation to a concrete recipe; defaults to the
	// adapter registry.
	resolve func(domain.Invocation) (adapter.Recipe, error)
}

// New creates an Engine. store and notifier may be nil.
func New(
	controller *execution.Controller,
	scanner *discovery.Scanner,
	summaryParser *parser.SummaryParser,
	store storage.RunStore,
	notifier notify.Notifier,
) *Engine {
	return &Engine{
		controller: controller,
		scanner:    scanner,
		parser:     summaryParser,
		store:      store,
		notifier:   notifier,
		resolve:    adapter.Command,
	}
}

// SetNotifier attaches a lifecycle observer, e.g. a progress bar sized to a
// discovered batch. A nil notifier is allowed.
func (e *Engine) SetNotifier(n notify.Notifier) {
	e.notifier = n
}

// RunOne executes a single invocation through its full lifecycle: resolve
// the recipe, record the run, spawn and await the process, record the
// terminal result. Every invocation resolves to exactly one terminal
// TestRun; an error is returned only for configuration mistakes such as an
// unregistered framework, before any process is spawned.
func (e *Engine) RunOne(inv domain.Invocation) (*domain.TestRun, error) {
	recipe, err := e.resolve(inv)
	if err != nil {
		return nil, err
	}

	run := &domain.TestRun{
		ID:         uuid.NewString(),
		Framework:  inv.Framework,
		TargetPath: inv.TargetPath,
		Status:     domain.StatusRunning,
		CreatedAt:  time.Now(),
	}

	// Recorded before the spawn so a host crash mid-run is still visible
	// in storage as a dangling running record.
	if e.store != nil {
		_ = e.store.CreateRun(run.ID, run.Framework, run.TargetPath)
	}
	if e.notifier != nil {
		e.notifier.RunStarted(run.ID, run.TargetPath, run.Framework)
	}

	outcome := e.controller.Run(inv, recipe)

	now := time.Now()
	run.Status = outcome.Status
	run.Output = outcome.Output
	run.ExitCode = outcome.ExitCode
	run.DurationMS = outcome.Duration.Milliseconds()
	run.CompletedAt = &now
	if grammar, err := adapter.Grammar(inv.Framework); err == nil {
		run.Summary = e.parser.Parse(outcome.Output, grammar)
	}

	if e.store != nil {
		_, _ = e.store.CompleteRun(run.ID, storage.RunCompletion{
			Status:     run.Status,
			Output:     run.Output,
			ExitCode:   run.ExitCode,
			DurationMS: run.DurationMS,
		})
	}
	if e.notifier != nil {
		e.notifier.RunCompleted(run.ID, run)
	}

	return run, nil
}

// FrameworkAvailable is the lightweight pre-flight check: does the working
// directory's manifest declare the framework.
func (e *Engine) FrameworkAvailable(fw domain.Framework, dir string) bool {
	return adapter.Available(fw, dir)
}
