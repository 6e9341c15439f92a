// Package audit appends an informational CSV trail of file operations.
//
// The trail is for humans reviewing what an organize or undo run did; it is
// never read back and plays no part in correctness or undo. Write failures
// are logged and swallowed.
package audit

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"sortd/internal/logging"
)

var header = []string{"Timestamp", "Source", "Destination", "Operation", "Status"}

// Recorder appends operation rows to a CSV file. A nil Recorder discards
// everything, so callers can hold one unconditionally.
type Recorder struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewRecorder returns a recorder writing to path. The file and its header
// row are created lazily on first use.
func NewRecorder(path string, logger *slog.Logger) *Recorder {
	return &Recorder{
		path:   path,
		logger: logging.NewComponentLogger(logger, "audit"),
	}
}

// Record appends one operation row.
func (r *Recorder) Record(source, destination, operation, status string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.append(source, destination, operation, status); err != nil {
		r.logger.Warn("audit row dropped", logging.Error(err))
	}
}

func (r *Recorder) append(source, destination, operation, status string) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}

	writeHeader := false
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		writeHeader = true
	}

	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	row := []string{time.Now().UTC().Format(time.RFC3339), source, destination, operation, status}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
