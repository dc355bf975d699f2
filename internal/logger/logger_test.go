package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestInitStderrOnly(t *testing.T) {
	if err := Init(Config{Level: "info", Format: "text"}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}
	if Logger.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v, want info", Logger.GetLevel())
	}
}

func TestInitWritesRotatingFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "logs", "wellness.log")

	if err := Init(Config{Level: "debug", Format: "json", Output: output}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	Info("service started", "component", "test")

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "service started") {
		t.Errorf("log file does not contain message: %q", data)
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	if err := Init(Config{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// These should not panic when Logger is nil
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
	With("component", "test").Info("discarded")
}
