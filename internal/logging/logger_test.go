package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesConsoleLines(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "sortd.log")

	logger, err := New(Options{Level: "info", Format: "console", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatal(err)
	}

	logger = NewComponentLogger(logger, "organizer")
	logger.Info("moved file", String("source", "a.jpg"), Int("attempt", 1))
	logger.Debug("should be filtered")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "INFO organizer: moved file") {
		t.Fatalf("unexpected console line: %q", out)
	}
	if !strings.Contains(out, "source=a.jpg") || !strings.Contains(out, "attempt=1") {
		t.Fatalf("expected attrs in output: %q", out)
	}
	if strings.Contains(out, "should be filtered") {
		t.Fatalf("debug record leaked through info level: %q", out)
	}
}

func TestNewJSONFormat(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "sortd.json")

	logger, err := New(Options{Level: "debug", Format: "json", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatal(err)
	}
	logger.Warn("ledger unreadable", Error(os.ErrNotExist))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, fragment := range []string{`"level":"warn"`, `"msg":"ledger unreadable"`, `"error":`} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in JSON output: %q", fragment, out)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestMaybeQuote(t *testing.T) {
	cases := map[string]string{
		"plain":      "plain",
		"two words":  `"two words"`,
		"":           `""`,
		"key=value":  `"key=value"`,
		"/tmp/a.jpg": "/tmp/a.jpg",
	}
	for in, want := range cases {
		if got := maybeQuote(in); got != want {
			t.Fatalf("maybeQuote(%q) = %q, want %q", in, got, want)
		}
	}
}
