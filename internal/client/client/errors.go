package client

import (
	"errors"
	"fmt"
)

// ErrRequestFailed matches every *Error with errors.Is.
var ErrRequestFailed = errors.New("remote operation failed")

var errMissingID = errors.New("missing record id")

// Error is the single failure kind of the collection client. It covers
// transport failures, non-2xx statuses and undecodable bodies alike; only the
// message differs.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request failed with status code %d", e.StatusCode)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ErrRequestFailed.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrRequestFailed }
