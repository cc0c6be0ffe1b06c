// Package logging provides structured logging utilities for version-gate
// components.
//
// # Overview
//
// This package wraps the standard library slog package with shared defaults
// for consistent logging across the library and the vgate CLI. It supports
// environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("vgate", "v1.0.0")
//
//	    slog.Info("checking requirement", "required", "0.5.1")
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("vgate", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug vgate check --required 0.5.1 --current 0.4.5
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "requirement met",
//	    "module": "vgate",
//	    "version": "v1.0.0",
//	    "required": "0.5.1"
//	}
package logging
