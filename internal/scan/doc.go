// Package scan builds a point-in-time snapshot of a codebase for use
// as review context.
//
// The walk honors the root .gitignore (comments, negation, dir-only
// and anchored patterns, ** globs) and always skips the .git directory
// and hidden entries. Per-file read or decode failures are warnings,
// never walk failures.
package scan
