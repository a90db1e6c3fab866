package notify

import "tex/internal/domain"

// Notifier observes run lifecycle events. The engine functions correctly
// with a nil Notifier. Calls arrive from a single goroutine, in order.
type Notifier interface {
	RunStarted(id, targetPath string, framework domain.Framework)
	RunProgress(id string, percent int, outputTail string)
	RunCompleted(id string, run *domain.TestRun)
}
