package mover

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestMoveIntoEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.jpg")
	dest := filepath.Join(dir, "Images")
	writeFile(t, src, "photo")
	if err := os.Mkdir(dest, 0o755); err != nil {
		t.Fatal(err)
	}

	final, err := Move(src, dest)
	if err != nil {
		t.Fatal(err)
	}
	if final != filepath.Join(dest, "a.jpg") {
		t.Fatalf("final = %q", final)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatal("source still present after move")
	}
	if got := readFile(t, final); got != "photo" {
		t.Fatalf("content = %q", got)
	}
}

func TestMoveNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "Images")
	existing := filepath.Join(dest, "a.jpg")
	writeFile(t, existing, "original")

	src := filepath.Join(dir, "a.jpg")
	writeFile(t, src, "incoming")

	final, err := Move(src, dest)
	if err != nil {
		t.Fatal(err)
	}
	if final != filepath.Join(dest, "a_1.jpg") {
		t.Fatalf("final = %q, want a_1.jpg", final)
	}
	if got := readFile(t, existing); got != "original" {
		t.Fatalf("pre-existing file was modified: %q", got)
	}
	if got := readFile(t, final); got != "incoming" {
		t.Fatalf("moved content = %q", got)
	}
}

func TestMovePicksLowestFreeSuffix(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "Docs")
	writeFile(t, filepath.Join(dest, "r.txt"), "0")
	writeFile(t, filepath.Join(dest, "r_1.txt"), "1")
	writeFile(t, filepath.Join(dest, "r_3.txt"), "3")

	src := filepath.Join(dir, "r.txt")
	writeFile(t, src, "new")

	final, err := Move(src, dest)
	if err != nil {
		t.Fatal(err)
	}
	if final != filepath.Join(dest, "r_2.txt") {
		t.Fatalf("final = %q, want r_2.txt (lowest unused)", final)
	}
}

func TestMoveFailureLeavesSourceInPlace(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	writeFile(t, src, "data")

	_, err := Move(src, filepath.Join(dir, "missing-dest"))
	if err == nil {
		t.Fatal("expected error moving into missing directory")
	}
	if _, statErr := os.Stat(src); statErr != nil {
		t.Fatalf("source gone after failed move: %v", statErr)
	}
}

func TestMoveErrorIdentifiesFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "victim.pdf")
	writeFile(t, src, "x")

	_, err := Move(src, filepath.Join(dir, "nope"))
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !strings.Contains(got, "victim.pdf") {
		t.Fatalf("error does not name the file: %q", got)
	}
}

func TestRestoreRecreatesParentAndSuffixes(t *testing.T) {
	dir := t.TempDir()
	moved := filepath.Join(dir, "Images", "a.jpg")
	writeFile(t, moved, "restored content")

	// The original root was deleted after organizing.
	original := filepath.Join(dir, "root", "a.jpg")
	writeFile(t, filepath.Join(dir, "root2", "unrelated"), "x")

	final, err := Restore(moved, original)
	if err != nil {
		t.Fatal(err)
	}
	if final != original {
		t.Fatalf("final = %q", final)
	}
	if got := readFile(t, final); got != "restored content" {
		t.Fatalf("content = %q", got)
	}
}

func TestRestoreConflictUsesRestoredSuffix(t *testing.T) {
	dir := t.TempDir()
	moved := filepath.Join(dir, "Images", "a.jpg")
	writeFile(t, moved, "from category")

	original := filepath.Join(dir, "a.jpg")
	writeFile(t, original, "new occupant")

	final, err := Restore(moved, original)
	if err != nil {
		t.Fatal(err)
	}
	if final != filepath.Join(dir, "a_restored_1.jpg") {
		t.Fatalf("final = %q, want a_restored_1.jpg", final)
	}
	if got := readFile(t, original); got != "new occupant" {
		t.Fatalf("occupant was overwritten: %q", got)
	}
}

func TestCopyThenDeleteMovesFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "moved.txt")
	writeFile(t, src, "payload")

	if err := copyThenDelete(src, dst); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatal("source still present after move")
	}
	if got := readFile(t, dst); got != "payload" {
		t.Fatalf("destination content = %q", got)
	}
}

func TestCopyThenDeleteSingleCopyWhenSourceRemovalFails(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed for root")
	}

	dir := t.TempDir()
	srcDir := filepath.Join(dir, "sealed")
	src := filepath.Join(srcDir, "a.txt")
	dst := filepath.Join(dir, "moved.txt")
	writeFile(t, src, "payload")

	// A read-only parent makes the source unremovable after the copy.
	if err := os.Chmod(srcDir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(srcDir, 0o755) })

	if err := copyThenDelete(src, dst); err == nil {
		t.Fatal("expected error when source cannot be removed")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatal("destination left behind alongside the source")
	}
	if got := readFile(t, src); got != "payload" {
		t.Fatalf("source content = %q", got)
	}
}
