package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tex/internal/domain"
	"tex/internal/storage"
)

// FailureViewer displays non-passing runs from the last batch in an
// interactive TUI.
type FailureViewer struct {
	store *storage.JSONStore
}

// NewFailureViewer creates a new FailureViewer.
func NewFailureViewer(store *storage.JSONStore) *FailureViewer {
	return &FailureViewer{store: store}
}

// View opens the TUI over the batch output. Runs marked reviewed are
// persisted back through the store.
func (fv *FailureViewer) View(out *domain.BatchOutput) error {
	var failed []int // indexes into out.Runs
	for i, run := range out.Runs {
		if !run.Succeeded() && run.Status.Terminal() {
			failed = append(failed, i)
		}
	}
	if len(failed) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	saveReviewed := func() error {
		return fv.store.SaveOutput(out)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(pos int) string {
		run := out.Runs[failed[pos]]
		name := shortName(run.TargetPath)
		if run.Reviewed {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", pos+1, name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", pos+1, name)
	}

	for pos := range failed {
		list.AddItem(itemText(pos), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	countUnreviewed := func() int {
		count := 0
		for _, i := range failed {
			if !out.Runs[i].Reviewed {
				count++
			}
		}
		return count
	}

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Failed Runs (%d total, %d unreviewed) | ↑↓ navigate, [yellow]R[white] mark reviewed, → details, ← back, Ctrl+C exit ",
			len(failed), countUnreviewed()))
	}
	updateHeader()

	updateDetails := func() {
		pos := list.GetCurrentItem()
		if pos < 0 || pos >= len(failed) {
			return
		}
		run := out.Runs[failed[pos]]
		statsView.SetText(fmt.Sprintf("[cyan]target:[white] [yellow]%s[white]  [cyan]status:[white] [red]%s[white]",
			run.TargetPath, run.Status))
		detailsView.SetText(formatRunDetails(&run))
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				pos := list.GetCurrentItem()
				if pos >= 0 && pos < len(failed) {
					i := failed[pos]
					out.Runs[i].Reviewed = !out.Runs[i].Reviewed
					list.SetItemText(pos, itemText(pos), "")
					updateHeader()
					updateDetails()
					_ = saveReviewed()
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func formatRunDetails(run *domain.TestRun) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ %s[white]\n\n", shortName(run.TargetPath))
	fmt.Fprintf(&b, "[cyan]Framework:[white] %s\n", run.Framework)
	fmt.Fprintf(&b, "[cyan]Status:[white] %s\n", run.Status)
	fmt.Fprintf(&b, "[cyan]Exit code:[white] %d\n", run.ExitCode)
	fmt.Fprintf(&b, "[cyan]Duration:[white] %dms\n", run.DurationMS)
	if run.Summary != nil {
		fmt.Fprintf(&b, "[cyan]Summary:[white] %d total, %d passed, %d failed, %d skipped\n",
			run.Summary.Total, run.Summary.Passed, run.Summary.Failed, run.Summary.Skipped)
	}
	if run.Output != "" {
		fmt.Fprintf(&b, "\n[yellow]Output:[white]\n%s\n", tview.Escape(run.Output))
	}

	return b.String()
}

func shortName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
