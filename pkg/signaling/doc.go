// Package signaling renders requests for, and parses responses from, the
// signaling control and data plane of a Kinesis Video Streams style WebRTC
// service.
//
// The package performs no I/O. Each operation is a synchronous transform
// over caller-owned buffers:
//
//	caller          signaling                 transport (external)
//	──────          ─────────                 ────────────────────
//	  │── XxxRequest(req, in) ──>│                      │
//	  │<── URL, body in req ─────│                      │
//	  │── sign + send ──────────────────────────────────>│
//	  │<── raw reply ────────────────────────────────────│
//	  │── ParseXxxResponse(raw, &out) ──>│              │
//	  │<── fields aliasing raw ──────────│              │
//
// # Buffers
//
// Builders write into Request.URLBuf and Request.BodyBuf and never grow them;
// running out of room fails with ErrOutOfMemory. Parsers return []byte fields
// that alias the response buffer: they are valid exactly as long as that
// buffer is, and a nil or empty slice means the field was absent.
//
// # Endpoint context
//
// A Context carries the region, the control plane URL and the most recently
// described channel name. It is read by builders and updated only through
// explicit calls. It does no locking.
//
// # ICE server records
//
// ICE server lists are grouped into records by field recurrence: a field that
// is already set on the current record starts the next one. The same routine
// serves both an array of per-server objects and a flattened stream of
// fields. Servers beyond MaxICEServers are dropped silently.
package signaling
