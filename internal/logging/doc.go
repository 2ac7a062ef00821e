// Package logging assembles the structured slog loggers used across the
// lineage commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing (stdout plus a run log under the configured log directory), and
// provides a no-op logger for tests and wiring code that cannot fail.
// Prefer these constructors over hand-rolled slog setup so every command
// emits log lines with the same shape.
package logging
