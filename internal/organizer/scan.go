package organizer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sys/unix"

	"sortd/internal/config"
	"sortd/internal/fault"
)

// categoryGroup is one category's worth of discovered files, in discovery
// order. Groups are sorted by category name so suffix numbering and results
// are reproducible run to run.
type categoryGroup struct {
	Name  string
	Files []string
}

// validateTarget resolves targetDir and confirms it is an accessible
// directory. All failures carry the InvalidTarget kind: nothing has been
// attempted yet.
func validateTarget(targetDir string) (string, error) {
	if strings.TrimSpace(targetDir) == "" {
		return "", fault.Wrap(fault.ErrInvalidTarget, "validate target", "target directory not set", nil)
	}
	resolved, err := config.ExpandPath(targetDir)
	if err != nil {
		return "", fault.Wrap(fault.ErrInvalidTarget, "validate target", "resolve path", err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fault.Wrap(fault.ErrInvalidTarget, "validate target", "directory does not exist: "+resolved, nil)
		}
		return "", fault.Wrap(fault.ErrInvalidTarget, "validate target", "inspect directory", err)
	}
	if !info.IsDir() {
		return "", fault.Wrap(fault.ErrInvalidTarget, "validate target", "not a directory: "+resolved, nil)
	}
	if err := unix.Access(resolved, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return "", fault.Wrap(fault.ErrInvalidTarget, "validate target", "insufficient permissions on "+resolved, err)
	}
	return resolved, nil
}

// scan enumerates the direct regular-file children of targetDir, skipping
// dot-prefixed names, and buckets them by category.
func (o *Organizer) scan(targetDir string) ([]categoryGroup, error) {
	entries, err := os.ReadDir(targetDir)
	if err != nil {
		return nil, fault.Wrap(fault.ErrInvalidTarget, "scan", "read directory", err)
	}

	buckets := make(map[string][]string)
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		category := o.classifier.Categorize(name)
		buckets[category] = append(buckets[category], filepath.Join(targetDir, name))
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]categoryGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, categoryGroup{Name: name, Files: buckets[name]})
	}
	return groups, nil
}

// Preview reports what an organize run would do: category names mapped to
// the base names of the files that would land there. No moves, no ledger.
func (o *Organizer) Preview(targetDir string) (map[string][]string, error) {
	resolved, err := validateTarget(targetDir)
	if err != nil {
		return nil, err
	}
	groups, err := o.scan(resolved)
	if err != nil {
		return nil, err
	}

	preview := make(map[string][]string, len(groups))
	for _, group := range groups {
		names := make([]string, 0, len(group.Files))
		for _, file := range group.Files {
			names = append(names, filepath.Base(file))
		}
		preview[group.Name] = names
	}
	return preview, nil
}
