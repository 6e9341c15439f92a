package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"sortd/internal/audit"
	"sortd/internal/classify"
	"sortd/internal/config"
	"sortd/internal/fault"
	"sortd/internal/ledger"
	"sortd/internal/logging"
	"sortd/internal/mover"
)

// Organizer drives the organize and undo passes over a target directory.
//
// Execution is strictly sequential: no internal parallelism, no mid-batch
// cancellation. A file lock serializes organize and undo across processes
// sharing the same state directory.
type Organizer struct {
	cfg        *config.Config
	store      *ledger.Store
	classifier *classify.Classifier
	audit      *audit.Recorder
	logger     *slog.Logger
	lock       *flock.Flock
}

// New constructs an organizer from configuration and an open ledger store.
func New(cfg *config.Config, store *ledger.Store, logger *slog.Logger) *Organizer {
	var recorder *audit.Recorder
	if cfg.Organize.AuditLog {
		recorder = audit.NewRecorder(cfg.AuditPath(), logger)
	}
	return &Organizer{
		cfg:        cfg,
		store:      store,
		classifier: classify.New(cfg.Categories, cfg.Organize.FallbackCategory),
		audit:      recorder,
		logger:     logging.NewComponentLogger(logger, "organizer"),
		lock:       flock.New(cfg.LockPath()),
	}
}

// CanUndo reports whether a committed batch is available to undo.
func (o *Organizer) CanUndo(ctx context.Context) bool {
	return o.store.CanUndo(ctx)
}

// acquire takes the exclusive run lock or fails fast with the Locked kind.
func (o *Organizer) acquire(operation string) (release func(), err error) {
	ok, err := o.lock.TryLock()
	if err != nil {
		return nil, fault.Wrap(fault.ErrTransient, operation, "acquire run lock", err)
	}
	if !ok {
		return nil, fault.Wrap(fault.ErrLocked, operation, "another organize or undo is running", nil)
	}
	return func() { _ = o.lock.Unlock() }, nil
}

// Organize scans targetDir, moves every eligible file into its category
// subdirectory, and commits the successful moves to the ledger as one batch.
//
// Per-file failures are accumulated in the Result and never abort the loop.
// A non-nil error is returned only when nothing moved at all: invalid
// target, failed category directory provisioning, or a concurrent run
// holding the lock.
func (o *Organizer) Organize(ctx context.Context, targetDir string, progress ProgressFunc) (*Result, error) {
	resolved, err := validateTarget(targetDir)
	if err != nil {
		return nil, err
	}

	release, err := o.acquire("organize")
	if err != nil {
		return nil, err
	}
	defer release()

	groups, err := o.scan(resolved)
	if err != nil {
		return nil, err
	}

	result := &Result{Categories: make(map[string]*CategoryResult)}
	for _, group := range groups {
		result.Total += len(group.Files)
	}
	if result.Total == 0 {
		o.logger.Info("nothing to organize", logging.String("target", resolved))
		return result, nil
	}

	o.logger.Info("organizing directory",
		logging.String("target", resolved),
		logging.Int("files", result.Total),
		logging.Int("categories", len(groups)),
	)

	if err := o.provision(resolved, groups); err != nil {
		return nil, err
	}

	records := o.moveAll(resolved, groups, result, progress)

	if len(records) > 0 {
		if err := o.store.Commit(ctx, records); err != nil {
			// The moves themselves succeeded; a ledger failure only costs
			// undo. Surface it as data, consistent with treating a broken
			// ledger as empty state.
			o.logger.Error("batch commit failed, undo unavailable", logging.Error(err))
			result.Errors = append(result.Errors, fmt.Sprintf("undo unavailable: %v", err))
		}
	}

	o.logger.Info("organize completed",
		logging.Int("moved", result.Moved),
		logging.Int("failed", result.Failed),
	)
	return result, nil
}

// provision ensures a subdirectory exists for every category with files.
func (o *Organizer) provision(targetDir string, groups []categoryGroup) error {
	for _, group := range groups {
		dir := filepath.Join(targetDir, group.Name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fault.Wrap(fault.ErrProvision, "organize", "create category directory "+group.Name, err)
		}
	}
	return nil
}

// moveAll runs the move loop in stable order: categories alphabetically,
// files in discovery order. Every file is attempted regardless of earlier
// failures.
func (o *Organizer) moveAll(targetDir string, groups []categoryGroup, result *Result, progress ProgressFunc) []ledger.MoveRecord {
	var records []ledger.MoveRecord
	processed := 0

	for _, group := range groups {
		categoryResult := &CategoryResult{}
		destDir := filepath.Join(targetDir, group.Name)

		for _, source := range group.Files {
			name := filepath.Base(source)
			if progress != nil {
				progress(processed, result.Total, name)
			}
			processed++

			finalPath, err := mover.Move(source, destDir)
			if err != nil {
				message := err.Error()
				categoryResult.Failed++
				result.Failed++
				result.Errors = append(result.Errors, message)
				categoryResult.Files = append(categoryResult.Files, FileStatus{
					Name:   name,
					Status: StatusFailed,
					Error:  message,
				})
				o.audit.Record(source, "", ledger.OpMove, "failed")
				o.logger.Warn("file not moved", logging.String("file", name), logging.Error(err))
				continue
			}

			records = append(records, ledger.MoveRecord{
				Source:      source,
				Destination: finalPath,
				Operation:   ledger.OpMove,
			})
			categoryResult.Moved++
			result.Moved++
			categoryResult.Files = append(categoryResult.Files, FileStatus{
				Name:      name,
				FinalPath: finalPath,
				Status:    StatusMoved,
			})
			o.audit.Record(source, finalPath, ledger.OpMove, "success")
			o.logger.Debug("file moved",
				logging.String("file", name),
				logging.String("final", finalPath),
			)
		}

		result.Categories[group.Name] = categoryResult
	}

	return records
}
