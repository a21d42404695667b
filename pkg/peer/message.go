package peer

import (
	"github.com/google/uuid"
	"github.com/pion/webrtc/v4"

	"github.com/backkem/kvsignaling/pkg/signaling"
)

// NewClientID returns a random viewer client id.
func NewClientID() string {
	return uuid.NewString()
}

// NewCorrelationID returns a random id to match a status response to the
// message that caused it.
func NewCorrelationID() string {
	return uuid.NewString()
}

// OfferMessage builds an SDP offer for recipient, attaching ice when
// non-nil. Viewers leave recipient empty; the service routes their
// messages to the master.
func OfferMessage(recipient string, offer webrtc.SessionDescription, ice *signaling.ICEServerList) (*signaling.WSSOutboundMessage, error) {
	if offer.Type != webrtc.SDPTypeOffer {
		return nil, ErrMessageType
	}
	payload, err := EncodeSessionDescription(offer)
	if err != nil {
		return nil, err
	}
	return &signaling.WSSOutboundMessage{
		Type:              signaling.MessageTypeSDPOffer,
		RecipientClientID: recipient,
		Payload:           payload,
		CorrelationID:     NewCorrelationID(),
		ICEServers:        ice,
	}, nil
}

// AnswerMessage builds an SDP answer for recipient.
func AnswerMessage(recipient string, answer webrtc.SessionDescription) (*signaling.WSSOutboundMessage, error) {
	if answer.Type != webrtc.SDPTypeAnswer {
		return nil, ErrMessageType
	}
	payload, err := EncodeSessionDescription(answer)
	if err != nil {
		return nil, err
	}
	return &signaling.WSSOutboundMessage{
		Type:              signaling.MessageTypeSDPAnswer,
		RecipientClientID: recipient,
		Payload:           payload,
		CorrelationID:     NewCorrelationID(),
	}, nil
}

// CandidateMessage builds a trickled ICE candidate for recipient.
func CandidateMessage(recipient string, c webrtc.ICECandidateInit) (*signaling.WSSOutboundMessage, error) {
	payload, err := EncodeICECandidate(c)
	if err != nil {
		return nil, err
	}
	return &signaling.WSSOutboundMessage{
		Type:              signaling.MessageTypeICECandidate,
		RecipientClientID: recipient,
		Payload:           payload,
	}, nil
}

// RemoteDescription returns the session description carried by an SDP offer
// or answer.
func RemoteDescription(msg *signaling.WSSInboundMessage) (webrtc.SessionDescription, error) {
	var want webrtc.SDPType
	switch msg.Type {
	case signaling.MessageTypeSDPOffer:
		want = webrtc.SDPTypeOffer
	case signaling.MessageTypeSDPAnswer:
		want = webrtc.SDPTypeAnswer
	default:
		return webrtc.SessionDescription{}, ErrMessageType
	}

	sd, err := DecodeSessionDescription(msg.Payload)
	if err != nil {
		return webrtc.SessionDescription{}, err
	}
	if sd.Type != want {
		return webrtc.SessionDescription{}, ErrMessageType
	}
	return sd, nil
}

// RemoteCandidate returns the candidate carried by an ICE_CANDIDATE message.
func RemoteCandidate(msg *signaling.WSSInboundMessage) (webrtc.ICECandidateInit, error) {
	if msg.Type != signaling.MessageTypeICECandidate {
		return webrtc.ICECandidateInit{}, ErrMessageType
	}
	return DecodeICECandidate(msg.Payload)
}
