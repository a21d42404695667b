package signaling

import (
	"errors"

	"github.com/backkem/kvsignaling/pkg/bounded"
	"github.com/backkem/kvsignaling/pkg/jsonscan"
)

// Package errors. None of them is retried inside this package.
var (
	// ErrBadParam is returned when a required input is missing or out of bounds.
	ErrBadParam = errors.New("signaling: bad parameter")

	// ErrFormat is returned when fragment formatting fails.
	ErrFormat = bounded.ErrFormat

	// ErrOutOfMemory is returned when a URL or body buffer is too small.
	ErrOutOfMemory = bounded.ErrOutOfMemory

	// ErrInvalidJSON is returned when a response is not well-formed JSON.
	ErrInvalidJSON = jsonscan.ErrInvalidJSON

	// ErrUnexpectedResponse is returned when a response is well-formed but has the wrong shape.
	ErrUnexpectedResponse = jsonscan.ErrUnexpectedResponse

	// ErrInvalidTTL is returned when a TTL is malformed or outside its allowed range.
	ErrInvalidTTL = errors.New("signaling: invalid TTL")

	// ErrInvalidChannelName is returned when a channel name exceeds MaxChannelNameLength.
	ErrInvalidChannelName = errors.New("signaling: invalid channel name")

	// ErrInvalidChannelType is returned for any channel type other than SINGLE_MASTER.
	ErrInvalidChannelType = errors.New("signaling: invalid channel type")

	// ErrInvalidICEServerCount is returned when more than MaxICEServers are supplied.
	ErrInvalidICEServerCount = errors.New("signaling: invalid ICE server count")

	// ErrInvalidICEServerURIsCount is returned when a server carries more than MaxICEServerURIs.
	ErrInvalidICEServerURIsCount = errors.New("signaling: invalid ICE server URIs count")

	// ErrInvalidStatusResponse is returned when a WSS status response is malformed.
	ErrInvalidStatusResponse = errors.New("signaling: invalid status response")

	// ErrRegionTooLarge is returned when a region exceeds MaxRegionLength.
	ErrRegionTooLarge = errors.New("signaling: region too large")

	// ErrInvalidProtocol is returned when a protocol set is empty or has unknown bits.
	ErrInvalidProtocol = errors.New("signaling: invalid protocol")

	// ErrInvalidEndpoint is returned when an endpoint URL exceeds MaxEndpointLength.
	ErrInvalidEndpoint = errors.New("signaling: invalid endpoint")
)
