package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"cfdsmoke/internal/domain"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Where the case paths are resolved from
	CasesRoot string

	// Include the long-running cases
	LongTests bool

	// Interpreters
	RubyInterpreter string
	TclInterpreter  string

	// Optional tool that gates the partitioned case
	PartitionTool string

	EnvFile string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Long      bool
	CasesRoot string
	Filter    string
	Progress  bool
	Strict    bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		CasesRoot:       DefaultCasesRoot,
		LongTests:       DefaultLongTests,
		RubyInterpreter: DefaultRubyInterpreter,
		TclInterpreter:  DefaultTclInterpreter,
		PartitionTool:   DefaultPartitionTool,
		EnvFile:         DefaultEnvFile,
	}
}

// Load creates a config, reads the env file and applies flags
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	cfg.ApplyFlags(flags)
	return cfg, nil
}

// LoadEnv reads the env file (a missing file is fine) and applies the
// CFDSMOKE_* variables from the process environment.
func (c *Config) LoadEnv() error {
	if c.EnvFile != "" {
		if err := godotenv.Load(c.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", c.EnvFile, err)
		}
	}

	if v := os.Getenv(EnvCasesRoot); v != "" {
		c.CasesRoot = v
	}
	if v := os.Getenv(EnvLongTests); v != "" {
		long, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvLongTests, v, err)
		}
		c.LongTests = long
	}
	if v := os.Getenv(EnvRuby); v != "" {
		c.RubyInterpreter = v
	}
	if v := os.Getenv(EnvTclsh); v != "" {
		c.TclInterpreter = v
	}
	return nil
}

// ApplyFlags stores the flags and lets them override env and defaults
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Long {
		c.LongTests = true
	}
	if flags.CasesRoot != "" {
		c.CasesRoot = flags.CasesRoot
	}
}

// Interpreter returns the program that runs scripts of the given kind,
// or "" for KindUnknown.
func (c *Config) Interpreter(kind domain.CommandKind) string {
	switch kind {
	case domain.KindRuby:
		return c.RubyInterpreter
	case domain.KindTcl:
		return c.TclInterpreter
	default:
		return ""
	}
}

// CaseDir returns the absolute directory a case runs in.
// Falls back to the joined relative path if it cannot be made absolute.
func (c *Config) CaseDir(tc domain.TestCase) string {
	p := filepath.Join(c.CasesRoot, tc.Dir())
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// ScriptPath returns the path of a case's script under the cases root
func (c *Config) ScriptPath(tc domain.TestCase) string {
	return filepath.Join(c.CasesRoot, tc.Path)
}
