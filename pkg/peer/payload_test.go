package peer

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/pion/webrtc/v4"
)

const testSDP = "v=0\r\no=- 4215775240449105457 2 IN IP4 127.0.0.1\r\ns=-\r\nt=0 0\r\n"

func TestSessionDescriptionPayload(t *testing.T) {
	in := webrtc.SessionDescription{Type: webrtc.SDPTypeOffer, SDP: testSDP}

	payload, err := EncodeSessionDescription(in)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	want := `{"type":"offer","sdp":"v=0\r\no=- 4215775240449105457 2 IN IP4 127.0.0.1\r\ns=-\r\nt=0 0\r\n"}`
	if string(raw) != want {
		t.Errorf("\n got %s\nwant %s", raw, want)
	}

	out, err := DecodeSessionDescription([]byte(payload))
	if err != nil {
		t.Fatal(err)
	}
	if out.Type != in.Type || out.SDP != in.SDP {
		t.Errorf("round trip: got %+v", out)
	}
}

func TestDecodeSessionDescription_Invalid(t *testing.T) {
	b64 := func(s string) []byte {
		return []byte(base64.StdEncoding.EncodeToString([]byte(s)))
	}

	tests := []struct {
		name    string
		payload []byte
		wantErr error
	}{
		{"empty", nil, ErrEmptyPayload},
		{"not base64", []byte("not*base64"), ErrInvalidPayload},
		{"not json", b64("v=0"), ErrInvalidPayload},
		{"unknown type", b64(`{"type":"bogus","sdp":"v=0"}`), ErrInvalidPayload},
		{"missing type", b64(`{"sdp":"v=0"}`), ErrInvalidPayload},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeSessionDescription(tc.payload); !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestICECandidatePayload(t *testing.T) {
	mid := "0"
	idx := uint16(0)
	in := webrtc.ICECandidateInit{
		Candidate:     "candidate:1 1 udp 2130706431 192.0.2.1 50000 typ host",
		SDPMid:        &mid,
		SDPMLineIndex: &idx,
	}

	payload, err := EncodeICECandidate(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := DecodeICECandidate([]byte(payload))
	if err != nil {
		t.Fatal(err)
	}
	if out.Candidate != in.Candidate {
		t.Errorf("candidate %q", out.Candidate)
	}
	if out.SDPMid == nil || *out.SDPMid != "0" || out.SDPMLineIndex == nil || *out.SDPMLineIndex != 0 {
		t.Errorf("got mid=%v index=%v", out.SDPMid, out.SDPMLineIndex)
	}
	if out.UsernameFragment != nil {
		t.Errorf("unexpected ufrag %q", *out.UsernameFragment)
	}
}

func TestICECandidatePayload_Empty(t *testing.T) {
	if _, err := EncodeICECandidate(webrtc.ICECandidateInit{}); !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("encode: expected ErrEmptyPayload, got %v", err)
	}
	payload := base64.StdEncoding.EncodeToString([]byte(`{"sdpMid":"0"}`))
	if _, err := DecodeICECandidate([]byte(payload)); !errors.Is(err, ErrInvalidPayload) {
		t.Errorf("decode: expected ErrInvalidPayload, got %v", err)
	}
	if _, err := EncodeSessionDescription(webrtc.SessionDescription{Type: webrtc.SDPTypeAnswer}); !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("encode sdp: expected ErrEmptyPayload, got %v", err)
	}
}
