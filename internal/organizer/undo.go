package organizer

import (
	"context"
	"fmt"
	"path/filepath"

	"sortd/internal/fault"
	"sortd/internal/fileutil"
	"sortd/internal/logging"
	"sortd/internal/mover"
)

// Undo replays the persisted batch in reverse order, moving each file back
// to its recorded source location. Undo is single-shot: the ledger is
// cleared after every record has been attempted, success or not.
//
// The error is ErrNothingToUndo when no batch is persisted (no filesystem
// changes are made), and a transient error when every record failed. Partial
// success returns a nil error with the counts in the result.
func (o *Organizer) Undo(ctx context.Context) (*UndoResult, error) {
	release, err := o.acquire("undo")
	if err != nil {
		return nil, err
	}
	defer release()

	batch, err := o.store.Load(ctx)
	if err != nil {
		// An unreadable ledger is empty state, not a failure mode.
		o.logger.Warn("ledger unreadable, treating as empty", logging.Error(err))
		batch = nil
	}
	if batch.Empty() {
		return nil, fault.ErrNothingToUndo
	}

	o.logger.Info("undoing batch",
		logging.String("batch_id", batch.ID),
		logging.Int("records", len(batch.Records)),
	)

	result := &UndoResult{Total: len(batch.Records)}

	// Single-shot: whatever happens below, this batch is spent.
	defer func() {
		if err := o.store.Clear(ctx); err != nil {
			o.logger.Error("ledger clear failed", logging.Error(err))
		}
	}()

	for i := len(batch.Records) - 1; i >= 0; i-- {
		record := batch.Records[i]
		name := filepath.Base(record.Destination)

		if !fileutil.Exists(record.Destination) {
			message := fmt.Sprintf("cannot undo %s: %s no longer exists", name, record.Destination)
			result.Failed++
			result.Errors = append(result.Errors, message)
			o.audit.Record(record.Destination, record.Source, "undo", "failed")
			o.logger.Warn("undo record stale", logging.String("destination", record.Destination))
			continue
		}

		restored, err := mover.Restore(record.Destination, record.Source)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			o.audit.Record(record.Destination, record.Source, "undo", "failed")
			o.logger.Warn("file not restored", logging.String("file", name), logging.Error(err))
			continue
		}

		result.Restored++
		o.audit.Record(record.Destination, restored, "undo", "success")
		o.logger.Debug("file restored",
			logging.String("file", name),
			logging.String("final", restored),
		)
	}

	o.logger.Info("undo completed",
		logging.Int("restored", result.Restored),
		logging.Int("failed", result.Failed),
	)

	if result.Restored == 0 {
		return result, fault.Wrap(fault.ErrTransient, "undo", fmt.Sprintf("all %d records failed", result.Failed), nil)
	}
	return result, nil
}
