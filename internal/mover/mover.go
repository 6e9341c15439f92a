package mover

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"sortd/internal/fileutil"
)

// maxSuffixAttempts bounds the collision scan so a pathological directory
// cannot spin forever.
const maxSuffixAttempts = 10000

// Move relocates src into destDir, resolving name collisions by appending
// _<N> before the extension. It returns the realized destination path, which
// may differ from destDir/base(src) when a suffix was needed. The existing
// occupant of a colliding name is never touched.
func Move(src, destDir string) (string, error) {
	target, err := nextFreePath(filepath.Join(destDir, filepath.Base(src)), organizeSuffix)
	if err != nil {
		return "", fmt.Errorf("move %s: %w", filepath.Base(src), err)
	}
	if err := relocate(src, target); err != nil {
		return "", fmt.Errorf("move %s: %w", filepath.Base(src), err)
	}
	return target, nil
}

// Restore relocates src back to originalPath, recreating the original parent
// directory if needed. Collisions at the original location get the _restored_<N>
// suffix so restored files are distinguishable from organize-time renames.
// It returns the realized path.
func Restore(src, originalPath string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(originalPath), 0o755); err != nil {
		return "", fmt.Errorf("restore %s: %w", filepath.Base(originalPath), err)
	}
	target, err := nextFreePath(originalPath, restoreSuffix)
	if err != nil {
		return "", fmt.Errorf("restore %s: %w", filepath.Base(originalPath), err)
	}
	if err := relocate(src, target); err != nil {
		return "", fmt.Errorf("restore %s: %w", filepath.Base(originalPath), err)
	}
	return target, nil
}

func organizeSuffix(stem string, n int) string {
	return fmt.Sprintf("%s_%d", stem, n)
}

func restoreSuffix(stem string, n int) string {
	return fmt.Sprintf("%s_restored_%d", stem, n)
}

// nextFreePath returns candidate if nothing occupies it, otherwise the first
// suffixed variant (lowest N) that is free. Existence is re-checked per
// candidate rather than pre-sized.
func nextFreePath(candidate string, suffix func(stem string, n int) string) (string, error) {
	if !fileutil.Exists(candidate) {
		return candidate, nil
	}

	dir := filepath.Dir(candidate)
	ext := filepath.Ext(candidate)
	stem := strings.TrimSuffix(filepath.Base(candidate), ext)

	for n := 1; n <= maxSuffixAttempts; n++ {
		variant := filepath.Join(dir, suffix(stem, n)+ext)
		if !fileutil.Exists(variant) {
			return variant, nil
		}
	}
	return "", fmt.Errorf("no free name for %s after %d attempts", filepath.Base(candidate), maxSuffixAttempts)
}

// relocate performs the move as a single logical operation: rename when the
// filesystem allows it, copy-then-delete across device boundaries. A failed
// copy removes the partial destination so the file is never duplicated.
func relocate(src, dst string) error {
	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(renameErr, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return renameErr
	}
	return copyThenDelete(src, dst)
}

// copyThenDelete moves src across a device boundary. On any failure the
// destination is removed, so the file ends up at exactly one path: dst on
// success, src on failure.
func copyThenDelete(src, dst string) error {
	if copyErr := fileutil.CopyFile(src, dst); copyErr != nil {
		_ = os.Remove(dst)
		return copyErr
	}
	if err := os.Remove(src); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}
