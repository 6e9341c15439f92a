// Package classify maps file extensions to category names.
//
// The built-in table covers common document, media, archive, code, and
// executable extensions. Callers supply custom categories (typically from
// config) which take priority over the built-ins, and a fallback category
// for everything else. Classification is deterministic and case-insensitive.
package classify
