// Package ledger persists the most recent organize batch in SQLite so undo
// survives process restarts.
//
// The store is a deliberate single slot: committing a new batch replaces the
// previous one, undo consumes and clears it. Commit is transactional, so the
// prior batch stays intact if anything fails mid-write, and load treats a
// structurally incomplete or unreadable database as "no batch" rather than
// an error.
package ledger
