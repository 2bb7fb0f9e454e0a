package cli

import "cfdsmoke/internal/config"

// Flags holds command-line flags
type Flags struct {
	Long      bool
	CasesRoot string
	Filter    string
	Progress  bool
	Strict    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Long:      f.Long,
		CasesRoot: f.CasesRoot,
		Filter:    f.Filter,
		Progress:  f.Progress,
		Strict:    f.Strict,
	}
}
