package signaling

import (
	"errors"
	"testing"
)

type parser struct {
	name  string
	parse func(data []byte) error
}

func allParsers() []parser {
	return []parser{
		{"describe channel", func(d []byte) error { return ParseDescribeChannelResponse(d, &ChannelInfo{}) }},
		{"describe media storage", func(d []byte) error { return ParseDescribeMediaStorageConfigResponse(d, &MediaStorageConfig{}) }},
		{"create channel", func(d []byte) error { return ParseCreateChannelResponse(d, &CreateChannelOutput{}) }},
		{"get endpoint", func(d []byte) error { return ParseGetChannelEndpointResponse(d, &Endpoints{}) }},
		{"get ICE server config", func(d []byte) error { return ParseGetICEServerConfigResponse(d, &ICEServerList{}) }},
		{"WSS message", func(d []byte) error { return ParseWSSMessage(d, &WSSInboundMessage{}) }},
		{"fetch credentials", func(d []byte) error { return ParseFetchCredentialsResponse(d, &Credentials{}) }},
	}
}

func TestParsers_UnexpectedTopLevelKey(t *testing.T) {
	for _, p := range allParsers() {
		t.Run(p.name, func(t *testing.T) {
			if err := p.parse([]byte(`{"Unexpected":{}}`)); !errors.Is(err, ErrUnexpectedResponse) {
				t.Errorf("expected ErrUnexpectedResponse, got %v", err)
			}
		})
	}
}

func TestParsers_InvalidJSON(t *testing.T) {
	inputs := []string{``, `{`, `{"a":}`, `{"a":1}}`, "\x00"}
	for _, p := range allParsers() {
		for _, in := range inputs {
			if err := p.parse([]byte(in)); !errors.Is(err, ErrInvalidJSON) {
				t.Errorf("%s(%q): expected ErrInvalidJSON, got %v", p.name, in, err)
			}
		}
	}
}

func TestParsers_NilOutput(t *testing.T) {
	data := []byte(`{}`)
	errs := []error{
		ParseDescribeChannelResponse(data, nil),
		ParseDescribeMediaStorageConfigResponse(data, nil),
		ParseCreateChannelResponse(data, nil),
		ParseGetChannelEndpointResponse(data, nil),
		ParseGetICEServerConfigResponse(data, nil),
		ParseWSSMessage(data, nil),
		ParseFetchCredentialsResponse(data, nil),
	}
	for i, err := range errs {
		if !errors.Is(err, ErrBadParam) {
			t.Errorf("parser %d: expected ErrBadParam, got %v", i, err)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if ChannelTypeSingleMaster.String() != "SINGLE_MASTER" || ChannelTypeUnknown.String() != "UNKNOWN" {
		t.Error("ChannelType strings")
	}
	if RoleMaster.String() != "MASTER" || RoleViewer.String() != "VIEWER" || Role(9).String() != "UNKNOWN" {
		t.Error("Role strings")
	}
	if ProtocolWebRTC.String() != "WEBRTC" || (ProtocolWSS|ProtocolHTTPS).String() != "UNKNOWN" {
		t.Error("Protocol strings")
	}
	if MessageTypeReconnectICEServer.String() != "RECONNECT_ICE_SERVER" || MessageType(42).String() != "UNKNOWN" {
		t.Error("MessageType strings")
	}
	if parseProtocol([]byte("WebRtc")) != ProtocolWebRTC || parseProtocol([]byte("tcp")) != 0 {
		t.Error("parseProtocol")
	}
}
