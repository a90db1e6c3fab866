package notify

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"tex/internal/domain"
)

// ProgressNotifier renders live batch progress on stderr.
type ProgressNotifier struct {
	bar       *progressbar.ProgressBar
	completed int
	passed    int
	failed    int
}

// NewProgressNotifier creates a progress bar sized to the batch.
func NewProgressNotifier(total int) *ProgressNotifier {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &ProgressNotifier{bar: bar}
}

func describe(passed, failed int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}

// RunStarted is a no-op; the bar advances on completion.
func (p *ProgressNotifier) RunStarted(id, targetPath string, framework domain.Framework) {}

// RunProgress is a no-op for the bar renderer.
func (p *ProgressNotifier) RunProgress(id string, percent int, outputTail string) {}

// RunCompleted advances the bar and refreshes the pass/fail tallies.
func (p *ProgressNotifier) RunCompleted(id string, run *domain.TestRun) {
	p.completed++
	if run.Succeeded() {
		p.passed++
	} else {
		p.failed++
	}
	p.bar.Set(p.completed)
	p.bar.Describe(describe(p.passed, p.failed))
}

// Finish completes the bar.
func (p *ProgressNotifier) Finish() {
	p.bar.Finish()
}
