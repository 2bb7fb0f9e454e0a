package ui

import (
	"fmt"
	"io"
	"time"

	"cfdsmoke/internal/catalog"
	"cfdsmoke/internal/config"
	"cfdsmoke/internal/domain"

	"github.com/fatih/color"
)

// TimeFormat is used for every timestamp the driver prints
const TimeFormat = time.RFC3339

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		out:    out,
	}
}

// PrintSelection prints the notices of included optional cases and the mode banner
func (f *Formatter) PrintSelection(sel catalog.Selection) {
	for _, notice := range sel.Notices {
		fmt.Fprintln(f.out, notice)
	}
	if sel.Long {
		color.New(color.FgYellow).Fprintln(f.out, "Do long tests as well as short tests...")
	} else {
		color.New(color.FgCyan).Fprintln(f.out, "Do short tests only...")
	}
}

// PrintStart prints the start banner
func (f *Formatter) PrintStart(start time.Time, total int) {
	color.New(color.FgCyan, color.Bold).Fprintf(f.out, "%s Start smoke tests: %d test case(s) under %s\n",
		start.Format(TimeFormat), total, f.config.CasesRoot)
}

// PrintEntry prints the timestamped directory line that opens each entry
func (f *Formatter) PrintEntry(now time.Time, dir string) {
	fmt.Fprintf(f.out, "%s %s\n", now.Format(TimeFormat), dir)
}

// PrintCommand prints the command line about to be executed
func (f *Formatter) PrintCommand(cmd string) {
	color.New(color.FgWhite).Fprintf(f.out, "cmd= %s\n", cmd)
}

// PrintDodgyExtension reports an entry skipped for its extension
func (f *Formatter) PrintDodgyExtension() {
	color.New(color.FgRed).Fprintln(f.out, "Dodgy extension for test script.")
}

// PrintFinished prints the end of run lines and the elapsed time
func (f *Formatter) PrintFinished(report domain.RunReport) {
	fmt.Fprintf(f.out, "%s Finished tests.\n", report.End.Format(TimeFormat))

	if failures := report.Failures(); len(failures) > 0 {
		color.New(color.FgRed).Fprintf(f.out, "✗ %d test script(s) exited with an error:\n", len(failures))
		for _, res := range failures {
			color.New(color.FgRed).Fprintf(f.out, "  %s (%v)\n", res.Case.Path, res.Err)
		}
	}
	if n := report.Skipped(); n > 0 {
		color.New(color.FgYellow).Fprintf(f.out, "%d test script(s) skipped\n", n)
	}

	e := report.Elapsed()
	fmt.Fprintf(f.out, "Elapsed time: %d hr, %d min, %d sec.\n", e.Hours, e.Minutes, e.Seconds)
}

// PrintTestList prints the selected cases as a tree, in run order.
// Cases in missing are marked [missing].
func (f *Formatter) PrintTestList(cases []domain.TestCase, missing []domain.TestCase) {
	if len(cases) == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "No test cases selected")
		return
	}

	absent := make(map[string]struct{}, len(missing))
	for _, tc := range missing {
		absent[tc.Path] = struct{}{}
	}

	color.New(color.FgGreen).Fprintf(f.out, "Selected %d test case(s):\n", len(cases))
	for i, tc := range cases {
		connector := "├── "
		if i == len(cases)-1 {
			connector = "└── "
		}

		kind := domain.Classify(tc.Ext())
		marker := ""
		if kind == domain.KindUnknown {
			marker += " " + color.RedString("[unknown extension]")
		}
		if _, ok := absent[tc.Path]; ok {
			marker += " " + color.RedString("[missing]")
		}

		fmt.Fprintf(f.out, "%s%s %s%s\n", connector, color.CyanString(tc.Path), color.YellowString("(%s)", kind), marker)
	}
}
