package commands

import (
	"fmt"

	"cfdsmoke/internal/config"
	"cfdsmoke/internal/execution"
	"cfdsmoke/internal/ui"

	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	selector  *selector
	driver    *execution.Driver
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	sel *selector,
	driver *execution.Driver,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		selector:  sel,
		driver:    driver,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	sel, cases := rc.selector.Select()
	rc.formatter.PrintSelection(sel)

	if rc.config.Flags.Progress && len(cases) > 0 {
		rc.driver.SetProgress(ui.NewProgressBar(len(cases)))
	}

	report := rc.driver.Execute(cmd.Context(), cases)

	if failures := report.Failures(); rc.config.Flags.Strict && len(failures) > 0 {
		return fmt.Errorf("%d of %d test script(s) failed", len(failures), len(report.Results))
	}
	return nil
}
