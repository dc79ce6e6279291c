// Package errors provides classified error primitives used across pagesconf.
//
// A ClassifiedError carries a category and a severity next to the message and
// the wrapped cause, so the CLI can pick an exit code and a log level without
// string matching.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryConfig, "failed to read config file").
//		WithContext("path", configPath).
//		Build()
package errors
