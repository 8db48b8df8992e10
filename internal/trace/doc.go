// Package trace provides the tracing subsystem of the monkey front end.
//
// Tracing records phase boundaries (tokenize, parse) and per-file work so
// that slow inputs and parser hangs can be diagnosed from the command line:
//
//	monkey parse --trace=- --trace-level=detail ./examples
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes every event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events in memory
//   - MultiTracer: fans events out to several tracers
//
// # Levels and scopes
//
// LevelPhase emits ScopeDriver and ScopePass events, LevelDetail adds
// ScopeModule (one span per file) and LevelDebug adds ScopeNode (one event
// per top-level statement).
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", trace.CurrentSpan(ctx).SpanID)
//	defer span.End("")
package trace
