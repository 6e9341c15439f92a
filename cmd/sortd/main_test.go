package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	targetDir  string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(
		"[paths]\nstate_dir = %q\nlog_dir = %q\n",
		filepath.Join(base, "state"),
		filepath.Join(base, "logs"),
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	target := filepath.Join(base, "target")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatalf("create target: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, targetDir: target}
}

func (env *cliTestEnv) seed(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(env.targetDir, name)
		if err := os.WriteFile(path, []byte("content of "+name), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output missing %q:\n%s", needle, haystack)
	}
}

func TestCLIPreviewListsCategories(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "a.jpg", "b.txt")

	out, _, err := runCLI(t, env, "preview", env.targetDir)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	requireContains(t, out, "Images")
	requireContains(t, out, "Documents")
	requireContains(t, out, "2 files across 2 categories")

	// Preview must not move anything.
	if _, err := os.Stat(filepath.Join(env.targetDir, "a.jpg")); err != nil {
		t.Fatalf("preview moved a.jpg: %v", err)
	}
}

func TestCLIPreviewEmptyDirectory(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "preview", env.targetDir)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	requireContains(t, out, "Nothing to organize")
}

func TestCLIOrganizeAndUndoRoundTrip(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "a.jpg", "b.txt")

	out, _, err := runCLI(t, env, "organize", env.targetDir, "--yes")
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	requireContains(t, out, "Moved 2 of 2 files")
	requireContains(t, out, "sortd undo")

	if _, err := os.Stat(filepath.Join(env.targetDir, "Images", "a.jpg")); err != nil {
		t.Fatalf("a.jpg not organized: %v", err)
	}

	out, _, err = runCLI(t, env, "undo")
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	requireContains(t, out, "Restored 2 of 2 files")

	if _, err := os.Stat(filepath.Join(env.targetDir, "a.jpg")); err != nil {
		t.Fatalf("a.jpg not restored: %v", err)
	}

	out, _, err = runCLI(t, env, "undo")
	if err != nil {
		t.Fatalf("second undo: %v", err)
	}
	requireContains(t, out, "Nothing to undo")
}

func TestCLIOrganizePromptDeclined(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "a.jpg")

	// Empty stdin answers the prompt with the default "no".
	out, _, err := runCLI(t, env, "organize", env.targetDir)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	requireContains(t, out, "Aborted")

	if _, err := os.Stat(filepath.Join(env.targetDir, "a.jpg")); err != nil {
		t.Fatalf("declined organize moved a.jpg: %v", err)
	}
}

func TestCLIOrganizeInvalidTarget(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "organize", filepath.Join(env.baseDir, "missing"), "--yes")
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("err = %v", err)
	}
}

func TestCLIVersion(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "sortd")
}
