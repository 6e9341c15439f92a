// Package fault defines the error taxonomy shared by the organizer, ledger,
// and CLI.
//
// Sentinel markers distinguish failures that abort a whole call (invalid
// target, category directory provisioning) from per-file failures, which are
// accumulated in result structures rather than raised. Wrap tags an error
// with a marker while keeping operation context in the message so front ends
// can tell "could not run at all" apart from "ran with some failures".
package fault
