package jsonscan

import "errors"

var (
	// ErrInvalidJSON is returned when a document is not syntactically valid JSON.
	ErrInvalidJSON = errors.New("jsonscan: invalid JSON")

	// ErrUnexpectedResponse is returned when a valid document has the wrong shape.
	ErrUnexpectedResponse = errors.New("jsonscan: unexpected response shape")

	// ErrInvalidNumber is returned when a digit string is empty, too wide, or not decimal.
	ErrInvalidNumber = errors.New("jsonscan: invalid number")
)
