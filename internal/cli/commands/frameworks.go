package commands

import (
	"github.com/spf13/cobra"

	"tex/internal/adapter"
	"tex/internal/config"
	"tex/internal/domain"
	"tex/internal/ui"
)

// FrameworksCommand handles the frameworks command.
type FrameworksCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewFrameworksCommand creates a new FrameworksCommand.
func NewFrameworksCommand(cfg *config.Config, formatter *ui.Formatter) *FrameworksCommand {
	return &FrameworksCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command.
func (fc *FrameworksCommand) Execute(cmd *cobra.Command, args []string) error {
	dir := fc.config.GetWorkDir()
	if len(args) > 0 {
		dir = args[0]
	}

	available := make(map[domain.Framework]bool, len(domain.Frameworks))
	for _, fw := range domain.Frameworks {
		available[fw] = adapter.Available(fw, dir)
	}

	fc.formatter.PrintFrameworkTable(available)
	return nil
}
