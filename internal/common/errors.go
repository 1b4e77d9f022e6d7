// Package common defines shared constants, sentinel errors and small helpers
// used across the console and the demo collection API. Callers should use
// errors.Is to match the error values.
package common

import "errors"

// RequestIDHeaderName carries the per-request id set by the console client
// and echoed in the demo API's request log.
const RequestIDHeaderName = "X-Request-ID"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors for incoming records.
	ErrorInvalidRecord = errors.New("invalid record")
)
