package report

import "errors"

var (
	// ErrMissingFields is returned when any required text field is absent
	// or empty. The message is part of the wire contract.
	ErrMissingFields = errors.New("All fields except image are required.")
)
