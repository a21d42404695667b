package peer

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/pion/webrtc/v4"
)

// EncodeSessionDescription returns the message payload for sd.
func EncodeSessionDescription(sd webrtc.SessionDescription) (string, error) {
	if sd.SDP == "" {
		return "", ErrEmptyPayload
	}
	return encode(sd)
}

// DecodeSessionDescription parses a session description payload. The type
// must be one of offer, pranswer, answer or rollback.
func DecodeSessionDescription(payload []byte) (webrtc.SessionDescription, error) {
	var sd webrtc.SessionDescription
	if err := decode(payload, &sd); err != nil {
		return webrtc.SessionDescription{}, err
	}
	if sd.Type == webrtc.SDPTypeUnknown {
		return webrtc.SessionDescription{}, fmt.Errorf("%w: missing sdp type", ErrInvalidPayload)
	}
	return sd, nil
}

// EncodeICECandidate returns the message payload for c.
func EncodeICECandidate(c webrtc.ICECandidateInit) (string, error) {
	if c.Candidate == "" {
		return "", ErrEmptyPayload
	}
	return encode(c)
}

// DecodeICECandidate parses a candidate payload.
func DecodeICECandidate(payload []byte) (webrtc.ICECandidateInit, error) {
	var c webrtc.ICECandidateInit
	if err := decode(payload, &c); err != nil {
		return webrtc.ICECandidateInit{}, err
	}
	if c.Candidate == "" {
		return webrtc.ICECandidateInit{}, fmt.Errorf("%w: missing candidate", ErrInvalidPayload)
	}
	return c, nil
}

func encode(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func decode(payload []byte, v any) error {
	if len(payload) == 0 {
		return ErrEmptyPayload
	}
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(payload)))
	n, err := base64.StdEncoding.Decode(raw, payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := json.Unmarshal(raw[:n], v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
