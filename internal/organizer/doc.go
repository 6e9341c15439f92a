// Package organizer implements the organize and undo passes over a single
// directory.
//
// Organize scans the direct children of the target, buckets them by category,
// provisions category subdirectories, drives the conflict-safe mover over
// every file, and commits the successful moves to the ledger as one undoable
// batch. Per-file failures are isolated into the result; only an invalid
// target or a failed directory provision aborts the call. Undo replays the
// persisted batch in reverse and clears the ledger whatever the outcome.
//
// Iteration order is deliberately stable (categories alphabetically, files
// in directory order) so conflict-suffix numbering is reproducible.
package organizer
