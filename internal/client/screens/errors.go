package screens

import "errors"

var (
	// ErrBusy is returned when an action needs the network while another
	// call of the same screen is still in flight.
	ErrBusy = errors.New("a request is already in progress")

	// ErrUnknownRecord is returned by OpenEdit for an id not in the collection.
	ErrUnknownRecord = errors.New("unknown record")

	// ErrModalClosed is returned by draft operations when no modal is open.
	ErrModalClosed = errors.New("modal is not open")
)
