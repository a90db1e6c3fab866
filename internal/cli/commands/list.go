package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tex/internal/adapter"
	"tex/internal/config"
	"tex/internal/discovery"
	"tex/internal/domain"
	"tex/internal/ui"
)

// ListCommand handles the list command.
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand.
func NewListCommand(cfg *config.Config, scanner *discovery.Scanner, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		formatter: formatter,
	}
}

// Execute runs the command.
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	fw, err := domain.ParseFramework(lc.config.Flags.Framework)
	if err != nil {
		return err
	}

	pattern := lc.config.Flags.Pattern
	if pattern == "" {
		pattern, err = adapter.FilePattern(fw)
		if err != nil {
			return err
		}
	}

	files, err := lc.scanner.Scan(args[0], pattern)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	lc.formatter.PrintFileList(files)
	return nil
}
