package probe

import "os/exec"

// Probe reports whether an optional external tool can be used
type Probe interface {
	Available(tool string) bool
}

// PathProbe looks the tool up on PATH, like `which`
type PathProbe struct{}

// NewPathProbe creates a new PathProbe
func NewPathProbe() *PathProbe {
	return &PathProbe{}
}

// Available returns true if tool resolves to an executable. A failed lookup
// is simply false.
func (p *PathProbe) Available(tool string) bool {
	if tool == "" {
		return false
	}
	path, err := exec.LookPath(tool)
	return err == nil && path != ""
}

// Func adapts a plain function to Probe
type Func func(tool string) bool

// Available calls f(tool)
func (f Func) Available(tool string) bool {
	return f(tool)
}
