package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	t.Cleanup(func() { flagLogLevel, flagLogFile = "info", "" })

	var buf bytes.Buffer
	flagLogLevel = "warn"
	logger, closeLog, err := newLogger(&buf)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer closeLog() //nolint:errcheck

	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("level = %v, expected warn", logger.GetLevel())
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected log output %q", out)
	}

	flagLogLevel = "loud"
	if _, _, err := newLogger(&buf); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewLoggerFile(t *testing.T) {
	t.Cleanup(func() { flagLogLevel, flagLogFile = "info", "" })

	flagLogLevel = "debug"
	flagLogFile = filepath.Join(t.TempDir(), "game.log")
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Debug("phase", "to", "ready")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "to=ready") {
		t.Errorf("log file = %q, expected the debug line", data)
	}
}

func TestConfigCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config"})
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config command error = %v", err)
	}
	if !strings.Contains(out.String(), "tick_ms: 50") {
		t.Errorf("config output is missing timing:\n%s", out.String())
	}
}
