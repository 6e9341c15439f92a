// Package mover relocates single files without ever overwriting an existing
// entry.
//
// Forward moves (organize) suffix colliding names with _<N>; restore moves
// (undo) use _restored_<N> so the two directions cannot be confused. Moves
// are rename-based with a copy-then-delete fallback across filesystems, and
// either complete fully or leave the source in place.
package mover
