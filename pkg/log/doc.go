// Package log provides structured event logging for the routing engine.
//
// This package defines the Logger interface and Event types for capturing
// what the engine does to the hardware: staged path applies, commit
// summaries, individual control writes, definitions loads and errors.
// It is separate from operational logging (slog) - event capture provides
// a complete machine-readable trace of every hardware touch.
//
// # Basic Usage
//
// Applications configure logging by passing a Logger to route.Open:
//
//	// For development: log to console via slog
//	route.WithLogger(log.NewSlogAdapter(slog.Default()))
//
//	// For production: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/alsaroute/card0.rlog")
//	route.WithLogger(fl)
//
//	// Both: use MultiLogger
//	route.WithLogger(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fl,
//	))
//
// # File Format
//
// Log files use CBOR encoding with .rlog extension. Reader decodes them
// back into Events, optionally filtered by session, category, control or
// path name.
package log
