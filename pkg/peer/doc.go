// Package peer connects the signaling codec to pion/webrtc.
//
// The signaling package deals only in bytes: ICE server records that borrow
// the response buffer and message payloads that are opaque base64 strings.
// This package turns those into the values a webrtc.PeerConnection consumes
// and produces, and back:
//
//	ICEServerList ──ICEServers──▶ []webrtc.ICEServer ──▶ webrtc.Configuration
//
//	webrtc.SessionDescription ──EncodeSessionDescription──▶ MessagePayload
//	messagePayload ──DecodeSessionDescription──▶ webrtc.SessionDescription
//
//	webrtc.ICECandidateInit ──EncodeICECandidate──▶ MessagePayload
//	messagePayload ──DecodeICECandidate──▶ webrtc.ICECandidateInit
//
// Unlike the signaling package, functions here allocate. Payloads are the
// JSON form of the pion types, base64 encoded with the standard alphabet.
//
// # Messages
//
// OfferMessage, AnswerMessage and CandidateMessage build outbound WSS
// messages ready for signaling.Context.WSSMessage. RemoteDescription and
// RemoteCandidate go the other way for messages parsed with
// signaling.ParseWSSMessage, checking that the message type matches the
// payload.
package peer
