package peer

import "errors"

var (
	// ErrEmptyPayload is returned when a message carries no payload.
	ErrEmptyPayload = errors.New("peer: empty payload")

	// ErrInvalidPayload is returned when a payload is not base64 encoded JSON
	// of the expected shape.
	ErrInvalidPayload = errors.New("peer: invalid payload")

	// ErrMessageType is returned when a message's type does not match the
	// payload asked for.
	ErrMessageType = errors.New("peer: unexpected message type")
)
