// Package logging provides structured logging configuration for fakeapi.
//
// This package wraps log/slog so every component logs the same way. It
// supports configurable log levels and three output formats.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatPretty,
//	})
//
//	logger.Info("simulated request", "route", "users.list", "status", 200)
//
// # Output Formats
//
//   - Text: slog's key=value format
//   - JSON: structured format for log aggregation systems
//   - Pretty: colored, human-oriented output (tint)
//
// # Integration
//
// Components accept a *slog.Logger through an option. If none is provided
// they use logging.Nop().
package logging
