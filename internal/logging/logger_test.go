package logging

import (
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"", "INFO"},
		{"warn", "WARN"},
		{"error", "ERROR"},
		{"bogus", "INFO"},
		{"  Debug  ", "DEBUG"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input).String(); got != tt.want {
				t.Errorf("parseLevel(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var buf strings.Builder
	logger, err := New(Options{Level: "debug", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("loaded episodes", String("path", "master.json"), Int("episodes", 12))

	line := buf.String()
	if !strings.Contains(line, "INF loaded episodes") {
		t.Errorf("missing level/message in %q", line)
	}
	if !strings.Contains(line, "path=master.json") || !strings.Contains(line, "episodes=12") {
		t.Errorf("missing attrs in %q", line)
	}
}

func TestConsoleHandlerQuotesSpaces(t *testing.T) {
	var buf strings.Builder
	logger, err := New(Options{Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Warn("conflict", String("title", "Ep105: Agujeros negros"))
	if !strings.Contains(buf.String(), `title="Ep105: Agujeros negros"`) {
		t.Errorf("expected quoted attr value, got %q", buf.String())
	}
}

func TestComponentLogger(t *testing.T) {
	var buf strings.Builder
	base, err := New(Options{Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	NewComponentLogger(base, "merge").Info("grouped")
	if !strings.Contains(buf.String(), "component=merge") {
		t.Errorf("expected component attr, got %q", buf.String())
	}
	// nil base must not panic
	NewComponentLogger(nil, "merge").Info("ignored")
}
