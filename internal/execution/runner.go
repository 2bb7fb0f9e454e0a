package execution

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"cfdsmoke/internal/config"
	"cfdsmoke/internal/domain"
	"cfdsmoke/internal/ui"
)

// Runner executes the script of a single test case
type Runner struct {
	config    *config.Config
	formatter *ui.Formatter

	// Child stdio, the driver's own by default
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config, formatter *ui.Formatter) *Runner {
	return &Runner{
		config:    cfg,
		formatter: formatter,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

// Run executes the interpreter for tc in the case directory and waits for it.
// The driver's working directory is never changed; the child gets the case
// directory through cmd.Dir. A failing child is recorded, not returned.
func (r *Runner) Run(ctx context.Context, tc domain.TestCase) domain.EntryResult {
	dir := r.config.CaseDir(tc)
	r.formatter.PrintEntry(time.Now(), dir)

	result := domain.EntryResult{
		Case: tc,
		Kind: domain.Classify(tc.Ext()),
	}

	interpreter := r.config.Interpreter(result.Kind)
	if interpreter == "" {
		r.formatter.PrintDodgyExtension()
		result.Skipped = true
		return result
	}

	cmd := exec.CommandContext(ctx, interpreter, tc.File())
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	result.Command = interpreter + " " + tc.File()
	r.formatter.PrintCommand(result.Command)

	start := time.Now()
	result.Err = cmd.Run()
	result.Duration = time.Since(start)

	return result
}
