package fault_test

import (
	"errors"
	"strings"
	"testing"

	"sortd/internal/fault"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := fault.Wrap(fault.ErrProvision, "organize", "create category directory", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, fault.ErrProvision) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"organize", "create category directory", "boom"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerDefaultsToTransient(t *testing.T) {
	err := fault.Wrap(nil, "undo", "restore file", nil)
	if !errors.Is(err, fault.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
}
