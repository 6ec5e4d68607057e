// Package dialect recognizes syntax from other languages (Python, Go, Rust,
// TypeScript) in a yapl file that failed to parse, so the failure can carry a
// hint pointing at the yapl spelling.
//
// Evidence is collected from a separate lexing pass; it never changes how a
// file is parsed.
package dialect
