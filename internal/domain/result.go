package domain

import "time"

// EntryResult represents the outcome of one test case entry
type EntryResult struct {
	Case     TestCase      // Entry that was processed
	Kind     CommandKind   // Interpreter kind picked from the extension
	Command  string        // Command line as printed, empty when skipped
	Skipped  bool          // True when the extension was not recognised
	Err      error         // Error returned by the child process, if any
	Duration time.Duration // Time taken by the child process
}

// Failed reports whether the child ran and did not exit cleanly
func (r EntryResult) Failed() bool {
	return !r.Skipped && r.Err != nil
}

// Elapsed is a wall-clock duration split into whole hours, minutes and seconds
type Elapsed struct {
	Hours   int
	Minutes int
	Seconds int
}

// Decompose splits d using floor arithmetic on the total seconds, so
// fractions are truncated: 3725.9s gives 1h 2m 5s.
func Decompose(d time.Duration) Elapsed {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h := total / 3600
	m := total/60 - h*60
	s := total - h*3600 - m*60
	return Elapsed{Hours: h, Minutes: m, Seconds: s}
}

// RunReport holds every entry outcome of one run, bracketed by the run clock
type RunReport struct {
	Results []EntryResult
	Start   time.Time
	End     time.Time
}

// Elapsed returns the wall-clock time of the run split into h/m/s
func (r RunReport) Elapsed() Elapsed {
	return Decompose(r.End.Sub(r.Start))
}

// Failures returns the entries whose child process failed
func (r RunReport) Failures() []EntryResult {
	var failed []EntryResult
	for _, res := range r.Results {
		if res.Failed() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Skipped counts entries with an unrecognised extension
func (r RunReport) Skipped() int {
	n := 0
	for _, res := range r.Results {
		if res.Skipped {
			n++
		}
	}
	return n
}
