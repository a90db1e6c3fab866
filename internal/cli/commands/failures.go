package commands

import (
	"github.com/spf13/cobra"

	"tex/internal/config"
	"tex/internal/storage"
	"tex/internal/ui"
)

// FailuresCommand handles the failures command.
type FailuresCommand struct {
	config *config.Config
	store  *storage.JSONStore
	viewer *ui.FailureViewer
}

// NewFailuresCommand creates a new FailuresCommand.
func NewFailuresCommand(cfg *config.Config, store *storage.JSONStore, viewer *ui.FailureViewer) *FailuresCommand {
	return &FailuresCommand{
		config: cfg,
		store:  store,
		viewer: viewer,
	}
}

// Execute runs the command.
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	out, err := fc.store.Load()
	if err != nil {
		return err
	}
	return fc.viewer.View(out)
}
