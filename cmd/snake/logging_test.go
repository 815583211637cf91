package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")

	logger, logFile, err := setupLogging(false, path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if logger.Out != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", logger.Out)
	}
	if _, err := os.Stat(filepath.Dir(path)); !os.IsNotExist(err) {
		t.Error("Expected no log directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "json")
	path := filepath.Join(t.TempDir(), "logs", "snake.log")

	logger, logFile, err := setupLogging(true, path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %s", logger.GetLevel())
	}

	logger.WithField("session", "test").Debug("Test log message")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"Test log message"`) {
		t.Errorf("Expected JSON log line, got %q", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.log")

	// Write just over 10MB
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	_, logFile, err := setupLogging(true, path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer logFile.Close()

	old, err := os.Stat(path + ".old")
	if err != nil {
		t.Fatalf("Expected rotated log file: %v", err)
	}
	if old.Size() != maxLogSize+1 {
		t.Errorf("Expected rotated size %d, got %d", maxLogSize+1, old.Size())
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected fresh log file, got %d bytes", info.Size())
	}
}
