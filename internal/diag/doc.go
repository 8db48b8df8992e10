// Package diag defines the diagnostic model shared by the lexer, the parser and
// the CLI.
//
// # Purpose
//
//   - Provide deterministic, serialisable records for findings produced by
//     the lexer and the parser.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// Package diag does no formatting beyond the one-line short form; rendering
// lives in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning, Error.
//   - Code – numeric identifier with a stable string form (LEX1001, SYN2001).
//   - Message – human oriented text; keep it short and actionable.
//   - Primary – the source.Span pointing at the issue.
//   - Notes – optional secondary spans with additional context.
//
// # Emitting diagnostics
//
// Producers report through a Reporter. ReportError/ReportWarning/ReportInfo
// build a ReportBuilder that can carry notes before Emit. BagReporter collects
// diagnostics into a Bag, which supports limits, sorting and deduplication.
//
// Diagnostics never abort a phase: a caller that wants fail-fast semantics
// inspects Bag.HasErrors after the phase returns.
package diag
