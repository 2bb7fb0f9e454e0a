package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar creates and manages progress bars
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
	)

	return &ProgressBar{bar: bar}
}

func describe(failed, skipped int) string {
	return color.CyanString("Smoke tests: ") +
		color.RedString("[failed: %d", failed) +
		" | " +
		color.YellowString("skipped: %d]", skipped)
}

// Update moves the bar to completed entries and refreshes the counts
func (p *ProgressBar) Update(completed, failed, skipped int) {
	p.bar.Describe(describe(failed, skipped))
	// Render errors only concern the terminal
	_ = p.bar.Set(completed)
	fmt.Fprintln(os.Stderr)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}
