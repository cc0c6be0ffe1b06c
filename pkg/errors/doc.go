// Package errors provides structured error types for better observability
// and programmatic error handling across the library.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidFormat,
//	    "failed to normalize required version",
//	    parseErr,
//	    map[string]interface{}{
//	        "operation": opName,
//	        "input":     raw,
//	    },
//	)
package errors
