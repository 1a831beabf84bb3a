package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"INFO", log.InfoLevel, false},
		{"", log.InfoLevel, false},
		{"warning", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweeper.log")
	logger := New(Options{Level: log.InfoLevel, File: path})

	logger.Debug("hidden")
	logger.Info("game finished", "difficulty", "easy", "score", 900)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "game finished") || !strings.Contains(out, "score=900") {
		t.Errorf("log file = %q, want the info line", out)
	}
	if !strings.Contains(out, "sweeper") {
		t.Errorf("log file = %q, want default prefix", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
}

func TestNewDiscardsByDefault(t *testing.T) {
	logger := New(Options{})
	logger.Info("nowhere") // must not panic or write to the terminal
}
