package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"ERROR", LogLevelError},
		{"unknown", LogLevelInfo}, // Default
		{"", LogLevelInfo},        // Default
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogLevelDebug)

	logger.Debugf("debug message")
	logger.Infof("info message")
	logger.Warnf("warn message")
	logger.Errorf("error message")

	output := buf.String()
	for _, want := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output", want)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogLevelWarn)

	logger.Debugf("debug message")
	logger.Infof("info message")
	logger.Warnf("warn message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("debug message should be filtered at warn level")
	}
	if strings.Contains(output, "info message") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("expected warn message in output")
	}
}

func TestLogger_Formatting(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogLevelInfo)

	logger.Infof("opened %s (%d bytes)", "rom.bin", 42)

	if !strings.Contains(buf.String(), "opened rom.bin (42 bytes)") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexstorm.log")

	logger, err := NewFileLogger(path, LogLevelInfo)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	logger.Infof("first line")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "first line") {
		t.Errorf("expected log line in file, got %q", data)
	}
}

func TestFileLogger_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexstorm.log")

	for _, msg := range []string{"session one", "session two"} {
		logger, err := NewFileLogger(path, LogLevelInfo)
		if err != nil {
			t.Fatal(err)
		}
		logger.Infof("%s", msg)
		if err := logger.Close(); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "session one") || !strings.Contains(string(data), "session two") {
		t.Errorf("expected both sessions in file, got %q", data)
	}
}

func TestFileLogger_BadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "no", "such", "dir", "x.log"), LogLevelInfo)
	if err == nil {
		t.Error("expected error for unwritable log path")
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Errorf("goes nowhere")

	if err := logger.Close(); err != nil {
		t.Errorf("Close on nop logger returned %v", err)
	}
}

func TestLogger_CloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexstorm.log")
	logger, err := NewFileLogger(path, LogLevelInfo)
	if err != nil {
		t.Fatal(err)
	}

	if err := logger.Close(); err != nil {
		t.Fatal(err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}
}
