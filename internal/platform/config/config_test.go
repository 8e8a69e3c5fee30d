package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/louisbranch/yahtzee/internal/platform/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Players != 0 {
		t.Fatalf("Players = %d, want 0", cfg.Players)
	}
	if cfg.Seed != 0 {
		t.Fatalf("Seed = %d, want 0", cfg.Seed)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("YAHTZEE_PLAYERS", "3")
	t.Setenv("YAHTZEE_SEED", "42")
	t.Setenv("YAHTZEE_LOG", "debug.log")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Players != 3 {
		t.Fatalf("Players = %d, want 3", cfg.Players)
	}
	if cfg.Seed != 42 {
		t.Fatalf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.LogFile != "debug.log" {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, "debug.log")
	}
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("YAHTZEE_PLAYERS", "not-an-int")

	_, err := config.Load()
	if err == nil {
		t.Fatal("Load() error = nil, want parse failure")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("Load() error = %v, want parse env prefix", err)
	}
}

// TestExitf_ExitsWithCode1 verifies that Exitf writes to stderr and exits
// with code 1. It uses the subprocess test pattern because os.Exit cannot
// be intercepted in-process.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf_ExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: something broke") {
		t.Fatalf("expected stderr to contain %q, got %q", "fatal: something broke", string(out))
	}
}
