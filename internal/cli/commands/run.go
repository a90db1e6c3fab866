package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tex/internal/config"
	"tex/internal/discovery"
	"tex/internal/domain"
	"tex/internal/engine"
	"tex/internal/execution"
	"tex/internal/notify"
	"tex/internal/parser"
	"tex/internal/storage"
	"tex/internal/ui"
)

// staleCutoff is how old a running record must be before the pre-run sweep
// treats it as abandoned.
const staleCutoff = 24 * time.Hour

// RunCommand handles the run command.
type RunCommand struct {
	config     *config.Config
	scanner    *discovery.Scanner
	controller *execution.Controller
	parser     *parser.SummaryParser
	jsonStore  *storage.JSONStore
	formatter  *ui.Formatter
}

// NewRunCommand creates a new RunCommand.
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	controller *execution.Controller,
	summaryParser *parser.SummaryParser,
	jsonStore *storage.JSONStore,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:     cfg,
		scanner:    scanner,
		controller: controller,
		parser:     summaryParser,
		jsonStore:  jsonStore,
		formatter:  formatter,
	}
}

// Execute runs the command.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	fw, err := domain.ParseFramework(rc.config.Flags.Framework)
	if err != nil {
		return err
	}

	var store storage.RunStore = rc.jsonStore
	if rc.config.MySQLDSN != "" {
		mysqlStore, err := storage.OpenMySQL(rc.config.MySQLDSN)
		if err != nil {
			return fmt.Errorf("connect run store: %w", err)
		}
		defer mysqlStore.Close()
		if n, err := mysqlStore.ReconcileStale(staleCutoff); err == nil && n > 0 {
			color.Yellow("Reconciled %d stale run record(s)", n)
		}
		store = storage.NewFanout(rc.jsonStore, mysqlStore)
	}

	eng := engine.New(rc.controller, rc.scanner, rc.parser, store, nil)

	req := engine.BatchRequest{
		Root:      args[0],
		Framework: fw,
		Pattern:   rc.config.Flags.Pattern,
		WorkDir:   rc.config.Flags.WorkDir,
		Timeout:   rc.config.GetTimeout(),
	}

	files, err := eng.Discover(req)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	progress := notify.NewProgressNotifier(len(files))
	eng.SetNotifier(progress)

	batch, err := eng.RunFiles(req, files)
	if err != nil {
		return err
	}
	progress.Finish()

	rc.formatter.PrintBatchSummary(batch)

	if !batch.Success() {
		os.Exit(1)
	}
	return nil
}
