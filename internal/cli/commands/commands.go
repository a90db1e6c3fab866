package commands

import (
	"github.com/spf13/cobra"

	"tex/internal/cli"
	"tex/internal/config"
	"tex/internal/discovery"
	"tex/internal/execution"
	"tex/internal/parser"
	"tex/internal/storage"
	"tex/internal/ui"
)

// Commands holds all CLI commands.
type Commands struct {
	Run        *RunCommand
	List       *ListCommand
	Frameworks *FrameworksCommand
	Failures   *FailuresCommand
	Reconcile  *ReconcileCommand
}

// NewCommands creates all commands with dependencies.
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner(cfg.SkipDirs)
	controller := execution.NewController()
	summaryParser := parser.NewSummaryParser()
	jsonStore := storage.NewJSONStore(cfg)
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewFailureViewer(jsonStore)

	return &Commands{
		Run:        NewRunCommand(cfg, scanner, controller, summaryParser, jsonStore, formatter),
		List:       NewListCommand(cfg, scanner, formatter),
		Frameworks: NewFrameworksCommand(cfg, formatter),
		Failures:   NewFailuresCommand(cfg, jsonStore, viewer),
		Reconcile:  NewReconcileCommand(cfg),
	}
}

// Register registers all commands with cobra.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		return nil
	}

	runCmd := &cobra.Command{
		Use:     "run <directory>",
		Short:   "Run tests under a directory",
		Long:    "Discover test files for a framework and execute them sequentially, one process per file",
		Args:    cobra.ExactArgs(1),
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringVarP(&flags.Framework, "framework", "F", "", "Test framework (jest, mocha, pytest, phpunit, junit, gotest)")
	runCmd.Flags().StringVarP(&flags.Pattern, "filter", "f", "", "File-name pattern override (e.g. '*PaymentTest.php')")
	runCmd.Flags().IntVarP(&flags.TimeoutMS, "timeout", "t", 0, "Per-invocation timeout in milliseconds (default 60000)")
	runCmd.Flags().StringVarP(&flags.WorkDir, "workdir", "w", "", "Working directory for the spawned processes (defaults to the directory)")
	_ = runCmd.MarkFlagRequired("framework")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:     "list <directory>",
		Short:   "List discovered test files",
		Long:    "Scan and list all test files for a framework without executing them",
		Args:    cobra.ExactArgs(1),
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.Framework, "framework", "F", "", "Test framework (jest, mocha, pytest, phpunit, junit, gotest)")
	listCmd.Flags().StringVarP(&flags.Pattern, "filter", "f", "", "File-name pattern override")
	_ = listCmd.MarkFlagRequired("framework")
	rootCmd.AddCommand(listCmd)

	frameworksCmd := &cobra.Command{
		Use:     "frameworks [directory]",
		Short:   "Show framework availability",
		Long:    "List the supported frameworks and whether each looks usable in a directory",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.Frameworks.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(frameworksCmd)

	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failed runs interactively",
		Long:  "Display non-passing runs from the last batch in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)

	reconcileCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Resolve stale running records",
		Long:  "Mark run records stuck in running state (left behind by a crashed host) as errored in the MySQL store",
		RunE:  c.Reconcile.Execute,
	}
	rootCmd.AddCommand(reconcileCmd)
}
