package fault

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidTarget marks calls rejected because the target directory is
	// missing, unset, or not a directory. Nothing is attempted.
	ErrInvalidTarget = errors.New("invalid target")
	// ErrProvision marks failures to create a category directory. The call
	// aborts; files moved before the failure stay moved.
	ErrProvision = errors.New("directory provision failed")
	// ErrNothingToUndo marks an undo request with no persisted batch.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrLocked marks an organize or undo attempt while another run holds
	// the exclusive lock.
	ErrLocked = errors.New("operation already in progress")
	// ErrTransient marks failures worth retrying as-is.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker so callers can classify it with errors.Is. The
// marker should be one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failure"
	}
	return strings.Join(parts, ": ")
}
