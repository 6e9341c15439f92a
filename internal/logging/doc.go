// Package logging builds the slog loggers used across sortd.
//
// It supports a human-oriented console format and a JSON format, writes to
// any mix of stdout, stderr, and files, and exposes small attr helpers so
// call sites stay terse. Component loggers carry a standardized "component"
// attribute that the console handler renders as a message prefix.
package logging
