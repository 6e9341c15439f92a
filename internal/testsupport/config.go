package testsupport

import (
	"path/filepath"
	"testing"

	"sortd/internal/config"
)

// NewConfig returns a validated config rooted in a fresh temp directory so
// tests never touch real user state.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}
