package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"monkey/internal/trace"
)

// setupTracing inspects trace-related flags and attaches a tracer to the command context.
// The returned cleanup flushes and closes it; on failure the ring buffer (if any) is dumped.
func setupTracing(cmd *cobra.Command) (func(failed bool), error) {
	root := cmd.Root()

	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := root.PersistentFlags().GetString("trace-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := root.PersistentFlags().GetInt("trace-ring")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	// --trace без уровня включает фазы
	if level == trace.LevelOff && (traceOutput != "" || ringSize > 0) {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func(bool) {}, nil
	}

	var (
		tracers []trace.Tracer
		ring    *trace.RingTracer
	)
	if traceOutput != "" || ringSize <= 0 {
		stream, streamErr := trace.New(trace.Config{Level: level, Format: format, OutputPath: traceOutput})
		if streamErr != nil {
			return nil, fmt.Errorf("failed to create tracer: %w", streamErr)
		}
		tracers = append(tracers, stream)
	}
	if ringSize > 0 {
		ring = trace.NewRingTracer(ringSize, level)
		tracers = append(tracers, ring)
	}

	var tracer trace.Tracer = tracers[0]
	if len(tracers) > 1 {
		tracer = trace.NewMultiTracer(level, tracers...)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)

	cleanup := func(failed bool) {
		if failed && ring != nil {
			fmt.Fprintln(os.Stderr, "trace: last events before failure:")
			if dumpErr := ring.Dump(os.Stderr, format); dumpErr != nil {
				fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", dumpErr)
			}
		}
		if flushErr := tracer.Flush(); flushErr != nil {
			fmt.Fprintf(os.Stderr, "trace: flush error: %v\n", flushErr)
		}
		if closeErr := tracer.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "trace: close error: %v\n", closeErr)
		}
	}
	return cleanup, nil
}
