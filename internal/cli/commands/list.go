package commands

import (
	"cfdsmoke/internal/catalog"
	"cfdsmoke/internal/config"
	"cfdsmoke/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	selector  *selector
	scanner   *catalog.Scanner
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	sel *selector,
	scanner *catalog.Scanner,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		selector:  sel,
		scanner:   scanner,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	sel, cases := lc.selector.Select()
	lc.formatter.PrintSelection(sel)

	missing, err := lc.scanner.Missing(lc.config.CasesRoot, cases)
	if err != nil {
		return err
	}

	lc.formatter.PrintTestList(cases, missing)
	return nil
}
