package config

import (
	"os"
	"path/filepath"
	"testing"

	"cfdsmoke/internal/domain"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.CasesRoot != DefaultCasesRoot {
		t.Errorf("expected CasesRoot %s, got %s", DefaultCasesRoot, cfg.CasesRoot)
	}

	if cfg.LongTests {
		t.Error("long tests should be off by default")
	}

	if cfg.PartitionTool != "gpmetis" {
		t.Errorf("expected partition tool gpmetis, got %s", cfg.PartitionTool)
	}
}

func TestConfig_Interpreter(t *testing.T) {
	cfg := New()

	tests := []struct {
		kind     domain.CommandKind
		expected string
	}{
		{domain.KindRuby, "ruby"},
		{domain.KindTcl, "tclsh"},
		{domain.KindUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := cfg.Interpreter(tt.kind); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestConfig_CaseDir(t *testing.T) {
	cfg := &Config{CasesRoot: "/cases"}
	tc := domain.TestCase{Path: "2D/reactor-n2/reactor.test"}

	if got := cfg.CaseDir(tc); got != "/cases/2D/reactor-n2" {
		t.Errorf("expected /cases/2D/reactor-n2, got %s", got)
	}
	if got := cfg.ScriptPath(tc); got != "/cases/2D/reactor-n2/reactor.test" {
		t.Errorf("expected /cases/2D/reactor-n2/reactor.test, got %s", got)
	}
}

func TestConfig_LoadEnv(t *testing.T) {
	t.Run("missing env file is fine", func(t *testing.T) {
		cfg := New()
		cfg.EnvFile = filepath.Join(t.TempDir(), "absent.env")
		if err := cfg.LoadEnv(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reads variables from env file", func(t *testing.T) {
		t.Setenv(EnvTclsh, "")
		t.Setenv(EnvLongTests, "")
		os.Unsetenv(EnvTclsh)
		os.Unsetenv(EnvLongTests)

		envFile := filepath.Join(t.TempDir(), ".env")
		content := EnvTclsh + "=/opt/tcl/bin/tclsh8.6\n" + EnvLongTests + "=true\n"
		if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}

		cfg := New()
		cfg.EnvFile = envFile
		if err := cfg.LoadEnv(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.TclInterpreter != "/opt/tcl/bin/tclsh8.6" {
			t.Errorf("expected tclsh from env file, got %s", cfg.TclInterpreter)
		}
		if !cfg.LongTests {
			t.Error("expected long tests from env file")
		}
	})

	t.Run("rejects bad boolean", func(t *testing.T) {
		t.Setenv(EnvLongTests, "sometimes")
		cfg := New()
		cfg.EnvFile = ""
		if err := cfg.LoadEnv(); err == nil {
			t.Error("expected error for invalid boolean")
		}
	})
}

func TestConfig_ApplyFlags(t *testing.T) {
	cfg := New()
	cfg.ApplyFlags(Flags{Long: true, CasesRoot: "examples/eilmer"})

	if !cfg.LongTests {
		t.Error("--long should enable long tests")
	}
	if cfg.CasesRoot != "examples/eilmer" {
		t.Errorf("expected cases root from flag, got %s", cfg.CasesRoot)
	}

	cfg = New()
	cfg.RubyInterpreter = "ruby3"
	cfg.ApplyFlags(Flags{})
	if cfg.CasesRoot != DefaultCasesRoot || cfg.RubyInterpreter != "ruby3" {
		t.Error("empty flags should not override config")
	}
}
