package domain

import "path/filepath"

// TestCase is one curated entry: a script path relative to the cases root.
// The directory part is where the script runs.
type TestCase struct {
	Path string
}

// Dir returns the directory the script runs in
func (tc TestCase) Dir() string {
	return filepath.Dir(tc.Path)
}

// File returns the script name passed to the interpreter
func (tc TestCase) File() string {
	return filepath.Base(tc.Path)
}

// Ext returns the script extension, including the dot
func (tc TestCase) Ext() string {
	return filepath.Ext(tc.Path)
}

// CommandKind selects the interpreter for a script
type CommandKind int

const (
	KindUnknown CommandKind = iota
	KindRuby
	KindTcl
)

func (k CommandKind) String() string {
	switch k {
	case KindRuby:
		return "ruby"
	case KindTcl:
		return "tcl"
	default:
		return "unknown"
	}
}

// Classify maps a script extension to the interpreter kind.
// Anything other than .rb, .test or .tcl is KindUnknown.
func Classify(ext string) CommandKind {
	switch ext {
	case ".rb":
		return KindRuby
	case ".test", ".tcl":
		return KindTcl
	default:
		return KindUnknown
	}
}
