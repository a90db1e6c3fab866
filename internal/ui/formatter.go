package ui

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"

	"tex/internal/config"
	"tex/internal/domain"
)

// Formatter formats and displays output.
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter.
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintBatchSummary displays the aggregate of a finished batch.
func (f *Formatter) PrintBatchSummary(batch *domain.BatchResult) {
	agg := batch.Aggregate

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Test Execution Statistics                  ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Runs")
	color.White("%-27d │\n", len(batch.Runs))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed")
	color.Green("%-27d │\n", agg.Passed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed")
	color.Red("%-27d │\n", agg.Failed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Errored")
	color.Red("%-27d │\n", agg.Errored)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timed Out")
	color.Yellow("%-27d │\n", agg.TimedOut)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", float64(agg.DurationMS)/1000))

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if batch.Success() {
		color.Green("✓ All tests passed!")
		return
	}
	color.Red("✗ %d run(s) did not pass", agg.Failed+agg.Errored+agg.TimedOut)
	fmt.Println()
	for _, run := range batch.Runs {
		if run.Succeeded() {
			continue
		}
		rel := f.relPath(run.TargetPath)
		switch run.Status {
		case domain.StatusTimedOut:
			color.Yellow("  ✗ %s (%s)", rel, run.Status)
		default:
			color.Red("  ✗ %s (%s, exit %d)", rel, run.Status, run.ExitCode)
		}
	}
}

// PrintFileList prints discovered test files as a tree.
func (f *Formatter) PrintFileList(files []string) {
	color.Green("Found %d test file(s):\n", len(files))
	for i, file := range files {
		rel := f.relPath(file)
		if i == len(files)-1 {
			color.Cyan("└── %s", rel)
		} else {
			color.Cyan("├── %s", rel)
		}
	}
}

// PrintFrameworkTable prints each supported framework and its pre-flight
// availability in a working directory.
func (f *Formatter) PrintFrameworkTable(available map[domain.Framework]bool) {
	for _, fw := range domain.Frameworks {
		if available[fw] {
			fmt.Printf("%-10s %s\n", fw, color.GreenString("available"))
		} else {
			fmt.Printf("%-10s %s\n", fw, color.YellowString("not detected"))
		}
	}
}

func (f *Formatter) relPath(path string) string {
	rel, err := filepath.Rel(f.config.GetWorkDir(), path)
	if err != nil {
		return path
	}
	return rel
}
