package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLog, err := New(Options{Output: &buf, Prefix: "fruitslice"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer closeLog()

	logger.Info("score saved", "score", 40)
	out := buf.String()
	if !strings.Contains(out, "score saved") || !strings.Contains(out, "score=40") {
		t.Errorf("unexpected log output: %q", out)
	}
	if !strings.Contains(out, "fruitslice") {
		t.Errorf("prefix missing: %q", out)
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "play.log")
	logger, closeLog, err := New(Options{File: path})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Warn("store unavailable")
	if err := closeLog(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "store unavailable") {
		t.Errorf("log file content: %q", data)
	}
}

func TestNewLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Output: &buf, Level: "warn"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("level not applied: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"WARN", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing to see")
}
