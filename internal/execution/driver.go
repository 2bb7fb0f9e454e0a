package execution

import (
	"context"
	"time"

	"cfdsmoke/internal/domain"
	"cfdsmoke/internal/ui"
)

// Driver runs test cases one after another
type Driver struct {
	runner    EntryRunner
	formatter *ui.Formatter
	progress  *ui.ProgressBar
}

// NewDriver creates a new Driver
func NewDriver(runner EntryRunner, formatter *ui.Formatter) *Driver {
	return &Driver{
		runner:    runner,
		formatter: formatter,
	}
}

// SetProgress sets the progress bar advanced after each entry
func (d *Driver) SetProgress(progress *ui.ProgressBar) {
	d.progress = progress
}

// Execute runs every case in list order. Each child is waited for before the
// next one starts, and no outcome stops the run.
func (d *Driver) Execute(ctx context.Context, cases []domain.TestCase) domain.RunReport {
	report := domain.RunReport{Start: time.Now()}
	d.formatter.PrintStart(report.Start, len(cases))

	var failed, skipped int
	for i, tc := range cases {
		result := d.runner.Run(ctx, tc)
		report.Results = append(report.Results, result)

		if result.Failed() {
			failed++
		}
		if result.Skipped {
			skipped++
		}
		if d.progress != nil {
			d.progress.Update(i+1, failed, skipped)
		}
	}
	if d.progress != nil {
		d.progress.Finish()
	}

	report.End = time.Now()
	d.formatter.PrintFinished(report)
	return report
}
