package ledger

import "time"

// OpMove is the only operation kind the ledger records today.
const OpMove = "move"

// MoveRecord captures one completed relocation: where the file was and where
// it ended up. Immutable once created.
type MoveRecord struct {
	Source      string
	Destination string
	Operation   string
}

// Batch is one committed organize run: its records in original move order
// plus identity and creation time. At most one Batch is persisted at a time.
type Batch struct {
	ID        string
	CreatedAt time.Time
	Records   []MoveRecord
}

// Empty reports whether the batch holds no records.
func (b *Batch) Empty() bool {
	return b == nil || len(b.Records) == 0
}
