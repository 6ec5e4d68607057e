// Package token defines lexical token kinds for the yapl front end.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Token.Value holds the kind-specific payload (name, literal, symbol).
//   - Whitespace-class tokens (comments, newlines, indentation, semicolons,
//     plain whitespace) are part of the stream; the parser decides when to
//     skip them.
//   - Modifier words are keywords; IsModifier tells them apart.
package token
