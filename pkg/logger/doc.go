// Package logger provides a thin factory around Go's slog package with
// functional options for configuration and attribute constructors shared by
// the rest of the module.
//
// The single factory – New – creates a *slog.Logger configured by a set of
// Option functions:
//
//   • Select an output format (text or json)
//   • Set the minimum log level
//   • Supply default slog.Attr values applied to every record
//
// Helper constructors in attr.go keep attribute naming consistent across the
// codebase: Account, Algorithm, Window, Counter, Component, and Error. The
// Secret constructor exists so call sites can reference secret material in a
// record without ever writing it to the output; only the encoded length is
// logged.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	logger.SetAsDefault(log)
//
//	log.Info("code rejected",
//	    logger.Account("alice@example.com"),
//	    logger.Window(5),
//	)
//
// Defaults are JSON output at INFO level on stdout.
package logger
