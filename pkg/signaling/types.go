package signaling

import "bytes"

// Size limits.
const (
	MaxChannelNameLength = 256
	MaxARNLength         = 1024
	MaxRegionLength      = 50
	MaxClientIDLength    = 256
	MaxEndpointLength    = 256
	MaxTags              = 50
	MaxTagKeyLength      = 128
	MaxTagValueLength    = 256
	MaxVersionLength     = 64

	// MaxICEServers is the capacity of an ICEServerList.
	MaxICEServers = 5

	// MaxICEServerURIs is the capacity of an ICEServer's URI list.
	MaxICEServerURIs = 3
)

// TTL ranges, in seconds.
const (
	MinChannelTTL   = 5
	MaxChannelTTL   = 120
	MinICEServerTTL = 30
	MaxICEServerTTL = 86400

	// maxTTLDigits bounds the digit string of a TTL; longer strings are
	// rejected without being parsed.
	maxTTLDigits = 10
)

// ChannelType is the type of a signaling channel.
type ChannelType uint8

const (
	ChannelTypeUnknown ChannelType = iota
	ChannelTypeSingleMaster
)

// String returns the wire name of the channel type.
func (t ChannelType) String() string {
	switch t {
	case ChannelTypeSingleMaster:
		return "SINGLE_MASTER"
	default:
		return "UNKNOWN"
	}
}

// Role is the side of the channel a client connects as.
type Role uint8

const (
	RoleMaster Role = iota
	RoleViewer
)

// String returns the wire name of the role.
func (r Role) String() string {
	switch r {
	case RoleMaster:
		return "MASTER"
	case RoleViewer:
		return "VIEWER"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the role is known.
func (r Role) IsValid() bool {
	return r <= RoleViewer
}

// Protocol is a bit set of signaling endpoint protocols.
type Protocol uint8

const (
	ProtocolWSS Protocol = 1 << iota
	ProtocolHTTPS
	ProtocolWebRTC

	protocolAll = ProtocolWSS | ProtocolHTTPS | ProtocolWebRTC
)

// canonicalProtocols is the order in which protocols are rendered.
var canonicalProtocols = [...]Protocol{ProtocolWSS, ProtocolHTTPS, ProtocolWebRTC}

// String returns the wire name of a single protocol bit.
func (p Protocol) String() string {
	switch p {
	case ProtocolWSS:
		return "WSS"
	case ProtocolHTTPS:
		return "HTTPS"
	case ProtocolWebRTC:
		return "WEBRTC"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if p is non-empty and has only known bits.
func (p Protocol) IsValid() bool {
	return p != 0 && p&^protocolAll == 0
}

func parseProtocol(b []byte) Protocol {
	for _, p := range canonicalProtocols {
		if bytes.EqualFold(b, []byte(p.String())) {
			return p
		}
	}
	return 0
}

// MessageType is the kind of a WSS signaling message.
type MessageType uint8

const (
	MessageTypeUnknown MessageType = iota
	MessageTypeSDPOffer
	MessageTypeSDPAnswer
	MessageTypeICECandidate
	MessageTypeReconnectICEServer
	MessageTypeGoAway
	MessageTypeStatusResponse
)

var messageTypeNames = [...]string{
	MessageTypeUnknown:            "UNKNOWN",
	MessageTypeSDPOffer:           "SDP_OFFER",
	MessageTypeSDPAnswer:          "SDP_ANSWER",
	MessageTypeICECandidate:       "ICE_CANDIDATE",
	MessageTypeReconnectICEServer: "RECONNECT_ICE_SERVER",
	MessageTypeGoAway:             "GO_AWAY",
	MessageTypeStatusResponse:     "STATUS_RESPONSE",
}

// String returns the wire name of the message type.
func (t MessageType) String() string {
	if int(t) < len(messageTypeNames) {
		return messageTypeNames[t]
	}
	return "UNKNOWN"
}

// IsValid returns true if the message type is a known, sendable kind.
func (t MessageType) IsValid() bool {
	return t > MessageTypeUnknown && t <= MessageTypeStatusResponse
}

func parseMessageType(b []byte) MessageType {
	for t := MessageTypeSDPOffer; t <= MessageTypeStatusResponse; t++ {
		if string(b) == messageTypeNames[t] {
			return t
		}
	}
	return MessageTypeUnknown
}

// ChannelInfo describes a signaling channel. Byte slices alias the response.
type ChannelInfo struct {
	ARN          []byte
	Name         []byte
	Status       []byte
	Type         ChannelType
	CreationTime []byte
	Version      []byte

	// MessageTTLSeconds is the single-master message TTL, 0 if absent.
	MessageTTLSeconds uint32
}

// MediaStorageConfig describes a channel's media storage. Byte slices alias the response.
type MediaStorageConfig struct {
	Status    []byte
	StreamARN []byte
}

// Endpoints holds the per-protocol endpoints of a channel. Byte slices alias the response.
type Endpoints struct {
	WSS    []byte
	HTTPS  []byte
	WebRTC []byte
}

// ICEServer is a TURN/STUN relay descriptor. Byte slices alias the response.
type ICEServer struct {
	Password   []byte
	Username   []byte
	TTLSeconds uint32
	URIs       [MaxICEServerURIs][]byte
	URICount   int
}

// ICEServerList is a fixed-capacity list of ICE servers.
type ICEServerList struct {
	Servers [MaxICEServers]ICEServer
	Count   int
}

// Tag is a key/value label attached to a channel at creation.
type Tag struct {
	Key   string
	Value string
}

// CreateChannelOutput is the result of a create-channel call.
type CreateChannelOutput struct {
	ChannelARN []byte
}

// StatusResponse is the status block of a WSS message. Byte slices alias the message.
type StatusResponse struct {
	CorrelationID []byte
	ErrorType     []byte
	StatusCode    []byte
	Description   []byte
}

// WSSOutboundMessage is a message to send over the signaling WebSocket.
type WSSOutboundMessage struct {
	Type              MessageType
	RecipientClientID string
	Payload           string // base64
	CorrelationID     string // optional

	// ICEServers is rendered only for SDP offers. Optional.
	ICEServers *ICEServerList
}

// WSSInboundMessage is a message received over the signaling WebSocket.
// Byte slices alias the message.
type WSSInboundMessage struct {
	SenderClientID []byte
	Type           MessageType
	Payload        []byte

	StatusResponse    StatusResponse
	HasStatusResponse bool

	ICEServers ICEServerList
}

// Credentials are temporary AWS credentials. Byte slices alias the response.
type Credentials struct {
	AccessKeyID     []byte
	SecretAccessKey []byte
	SessionToken    []byte
	Expiration      []byte
}
