package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tex/internal/cli"
	"tex/internal/cli/commands"
	"tex/internal/config"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "tex",
		Short:   "Test execution engine",
		Long:    `Runs externally installed test frameworks as child processes: discovers test files, bounds each run with a deadline, normalizes heterogeneous pass/fail output, and records every run.`,
		Version: version,
	}

	cfg := config.New()
	cfg.LoadEnv()

	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
