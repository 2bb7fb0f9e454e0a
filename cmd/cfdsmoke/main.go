package main

import (
	"fmt"
	"os"

	"cfdsmoke/internal/cli"
	"cfdsmoke/internal/cli/commands"
	"cfdsmoke/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "cfdsmoke",
		Short:         "Smoke tests for the flow solver",
		Long:          `Runs the curated set of flow solver test cases one after another. Each case's script runs in its own directory with ruby (.rb) or tclsh (.test, .tcl), and the total elapsed time is reported at the end.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
