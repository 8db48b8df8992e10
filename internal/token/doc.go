// Package token defines lexical token kinds for the monkey front end.
// Invariants:
//   - Token.Literal is the exact source text that produced the token.
//   - Token.Span matches Literal exactly (Start..End); EOF has an empty span.
//   - The kind set is closed: every rune the lexer cannot classify becomes Illegal.
//   - Keywords are case sensitive; anything not in the keyword table is Ident.
package token
