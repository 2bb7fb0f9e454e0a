package config

const (
	// DefaultCasesRoot is the directory the case paths are relative to
	DefaultCasesRoot = "."
	// DefaultLongTests includes the long-running cases when true
	DefaultLongTests = false
	// DefaultRubyInterpreter runs .rb scripts
	DefaultRubyInterpreter = "ruby"
	// DefaultTclInterpreter runs .test and .tcl scripts
	DefaultTclInterpreter = "tclsh"
	// DefaultPartitionTool is the optional mesh partitioner probed on PATH
	DefaultPartitionTool = "gpmetis"
	// DefaultEnvFile is read from the working directory if present
	DefaultEnvFile = ".env"
)

// Environment variables read by LoadEnv
const (
	EnvCasesRoot = "CFDSMOKE_CASES_ROOT"
	EnvLongTests = "CFDSMOKE_LONG_TESTS"
	EnvRuby      = "CFDSMOKE_RUBY"
	EnvTclsh     = "CFDSMOKE_TCLSH"
)
