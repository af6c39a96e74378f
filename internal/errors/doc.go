// Package errors defines error types for the script session SDK.
//
// This package provides structured error types that wrap different failure
// scenarios when launching and conversing with a script process. All error
// types support error unwrapping and can be checked using errors.Is,
// errors.As, and errors.AsType.
package errors
