package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"sortd/internal/config"
	"sortd/internal/logging"
)

// Store manages the single-slot undo ledger backed by SQLite.
//
// Exactly zero or one batch is persisted at any time. Commit replaces the
// slot wholesale inside one transaction, so a failed commit leaves the prior
// batch intact and a reader never observes a partially written batch.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open initializes or connects to the ledger database. A file that is not a
// usable ledger (corrupt, or left by an incompatible version) is discarded
// and recreated: the ledger is advisory undo state, never source data.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	logger = logging.NewComponentLogger(logger, "ledger")

	dbPath := cfg.LedgerPath()
	store, err := open(dbPath, logger)
	if err == nil {
		return store, nil
	}

	logger.Warn("discarding unusable ledger database", logging.String("path", dbPath), logging.Error(err))
	if rmErr := os.Remove(dbPath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
		return nil, fmt.Errorf("remove unusable ledger: %w", rmErr)
	}
	return open(dbPath, logger)
}

func open(dbPath string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, logger: logger}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the ledger database location.
func (s *Store) Path() string {
	return s.path
}

// Commit persists records as the new batch, replacing any previously
// persisted batch. An empty record set is a no-op: committing nothing must
// not discard an older undoable batch.
func (s *Store) Commit(ctx context.Context, records []MoveRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin commit tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM batches"); err != nil {
		return fmt.Errorf("drop prior batch: %w", err)
	}

	batchID := uuid.NewString()
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO batches (id, created_at) VALUES (?, ?)", batchID, createdAt,
	); err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}

	for seq, record := range records {
		operation := record.Operation
		if operation == "" {
			operation = OpMove
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO move_records (batch_id, seq, source_path, destination_path, operation)
             VALUES (?, ?, ?, ?, ?)`,
			batchID, seq, record.Source, record.Destination, operation,
		); err != nil {
			return fmt.Errorf("insert record %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}

	s.logger.Info("batch committed",
		logging.String("batch_id", batchID),
		logging.Int("records", len(records)),
	)
	return nil
}

// Load returns the currently persisted batch, or nil when none exists.
func (s *Store) Load(ctx context.Context) (*Batch, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, created_at FROM batches LIMIT 1")

	var batch Batch
	var createdAt string
	err := row.Scan(&batch.ID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load batch: %w", err)
	}
	if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
		batch.CreatedAt = ts
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT source_path, destination_path, operation
         FROM move_records WHERE batch_id = ? ORDER BY seq`,
		batch.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var record MoveRecord
		if err := rows.Scan(&record.Source, &record.Destination, &record.Operation); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		batch.Records = append(batch.Records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	// A batch row without records is structurally incomplete; treat it the
	// same as no batch.
	if batch.Empty() {
		return nil, nil
	}
	return &batch, nil
}

// Clear deletes the persisted batch unconditionally. A missing batch is not
// an error.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM batches"); err != nil {
		return fmt.Errorf("clear ledger: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM move_records"); err != nil {
		return fmt.Errorf("clear ledger records: %w", err)
	}
	return nil
}

// CanUndo reports whether a non-empty batch is persisted. Read failures
// degrade to false: an unreadable ledger means nothing to undo, not a fatal
// error.
func (s *Store) CanUndo(ctx context.Context) bool {
	batch, err := s.Load(ctx)
	if err != nil {
		s.logger.Warn("ledger unreadable, treating as empty", logging.Error(err))
		return false
	}
	return !batch.Empty()
}
