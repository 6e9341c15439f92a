package fileutil

import (
	"fmt"
	"io"
	"os"
)

// CopyFile streams src to dst, carrying the source file's permission bits
// over to the destination. dst is truncated if it already exists.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// Exists reports whether any filesystem entry occupies path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
