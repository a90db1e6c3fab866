package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tex/internal/config"
	"tex/internal/storage"
)

// ReconcileCommand handles the reconcile command.
type ReconcileCommand struct {
	config *config.Config
}

// NewReconcileCommand creates a new ReconcileCommand.
func NewReconcileCommand(cfg *config.Config) *ReconcileCommand {
	return &ReconcileCommand{config: cfg}
}

// Execute runs the command.
func (rc *ReconcileCommand) Execute(cmd *cobra.Command, args []string) error {
	if rc.config.MySQLDSN == "" {
		return fmt.Errorf("no MySQL store configured (set TEX_MYSQL_DSN or DB_HOST)")
	}

	store, err := storage.OpenMySQL(rc.config.MySQLDSN)
	if err != nil {
		return fmt.Errorf("connect run store: %w", err)
	}
	defer store.Close()

	n, err := store.ReconcileStale(staleCutoff)
	if err != nil {
		return err
	}
	if n == 0 {
		color.Green("No stale run records found")
		return nil
	}
	color.Yellow("Marked %d stale run record(s) as errored", n)
	return nil
}
