// Package trace records what the yapl front end is doing and how long it takes.
//
// Enable tracing from the command line:
//
//	yapl check --trace=- --trace-level=phase src/
//
// Tracers:
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes every event immediately (file or stderr)
//   - RingTracer: keeps the last events in memory for a dump on failure
//   - MultiTracer: fans events out to several tracers
//
// Levels select scopes: phase emits driver and pass spans, detail adds one
// span per file, debug adds one span per parsed definition.
//
// The tracer travels in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
