// Package errors provides structured error types for the asyncload library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries a human-readable detail, the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseMarshal, errors.KindEmbeddedNul).
//		Path("key").
//		Value(key).
//		Detail("NUL byte at offset %d", 5).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.EmbeddedNul("key", 5)
//	err := errors.Consumed(mapID)
//
// Only marshal failures, consumed handles and unregistered bindings are reported
// through this package. A false result from the host is returned as a plain bool
// by the dsmap package and is never converted into an error.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
