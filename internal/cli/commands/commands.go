package commands

import (
	"os"

	"cfdsmoke/internal/catalog"
	"cfdsmoke/internal/cli"
	"cfdsmoke/internal/config"
	"cfdsmoke/internal/domain"
	"cfdsmoke/internal/execution"
	"cfdsmoke/internal/probe"
	"cfdsmoke/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	pathProbe := probe.NewPathProbe()
	filter := catalog.NewFilter()
	scanner := catalog.NewScanner()
	formatter := ui.NewFormatter(cfg, os.Stdout)
	runner := execution.NewRunner(cfg, formatter)
	driver := execution.NewDriver(runner, formatter)

	sel := &selector{config: cfg, probe: pathProbe, filter: filter}

	return &Commands{
		Run:  NewRunCommand(cfg, sel, driver, formatter),
		List: NewListCommand(cfg, sel, scanner, formatter),
	}
}

// selector builds the case list shared by run and list
type selector struct {
	config *config.Config
	probe  probe.Probe
	filter *catalog.Filter
}

func (s *selector) Select() (catalog.Selection, []domain.TestCase) {
	tool := s.config.PartitionTool
	sel := catalog.New(func() bool { return s.probe.Available(tool) }).Build(s.config.LongTests)

	cases := s.filter.FilterByName(sel.Cases, s.config.Flags.Filter)
	if len(cases) == 0 && s.config.Flags.Filter != "" {
		color.Yellow("No test cases match %q", s.config.Flags.Filter)
	}
	return sel, cases
}

// Register registers all commands with cobra. The root command runs the
// smoke tests itself, so a bare invocation behaves like `run`.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	preRun := func(cmd *cobra.Command, args []string) error {
		// Update config with env file and flags after parsing
		if err := cfg.LoadEnv(); err != nil {
			return err
		}
		cfg.ApplyFlags(flags.ToConfigFlags())
		return nil
	}

	addSelectionFlags := func(cmd *cobra.Command) {
		cmd.Flags().BoolVarP(&flags.Long, "long", "l", false, "Do long tests as well as short tests")
		cmd.Flags().StringVarP(&flags.CasesRoot, "root", "r", "", "Directory the test case paths are relative to")
		cmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Select test cases by name pattern (supports wildcards, e.g. 'cone20*' or '*/sod-shock-tube/*')")
	}
	addRunFlags := func(cmd *cobra.Command) {
		addSelectionFlags(cmd)
		cmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr between test cases")
		cmd.Flags().BoolVar(&flags.Strict, "strict", false, "Exit with an error if any test script fails")
	}

	rootCmd.RunE = c.Run.Execute
	rootCmd.PreRunE = preRun
	addRunFlags(rootCmd)

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the smoke tests",
		Long:    "Run each selected test script in its own directory, one after another, and report the elapsed time",
		Args:    cobra.NoArgs,
		RunE:    c.Run.Execute,
		PreRunE: preRun,
	}
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List selected test cases",
		Long:    "Print the test cases a run would execute, in order, without running them",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: preRun,
	}
	addSelectionFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}
