package signaling

import (
	"bytes"
	"errors"
	"testing"
)

func testICEServers(t *testing.T) *ICEServerList {
	t.Helper()
	raw := `{"IceServerList":[` +
		`{"Password":"pw1","Ttl":300,"Uris":["turn:a:443?transport=udp","turns:a:443?transport=tcp"],"Username":"u1"},` +
		`{"Password":"pw2","Ttl":600,"Uris":["turn:b:443"],"Username":"u2"}]}`
	var list ICEServerList
	if err := ParseGetICEServerConfigResponse([]byte(raw), &list); err != nil {
		t.Fatal(err)
	}
	return &list
}

func TestWSSMessage(t *testing.T) {
	c := newTestContext(t)
	ice := testICEServers(t)

	tests := []struct {
		name string
		msg  WSSOutboundMessage
		want string
	}{
		{
			name: "answer minimal",
			msg:  WSSOutboundMessage{Type: MessageTypeSDPAnswer, RecipientClientID: "viewer-1", Payload: "eyJ0eXBlIjoiYW5zd2VyIn0="},
			want: `{"action":"SDP_ANSWER","RecipientClientId":"viewer-1","MessagePayload":"eyJ0eXBlIjoiYW5zd2VyIn0="}`,
		},
		{
			name: "candidate from viewer",
			msg:  WSSOutboundMessage{Type: MessageTypeICECandidate, Payload: "Y2FuZA==", CorrelationID: "c-1"},
			want: `{"action":"ICE_CANDIDATE","MessagePayload":"Y2FuZA==","CorrelationId":"c-1"}`,
		},
		{
			name: "offer with ice servers",
			msg:  WSSOutboundMessage{Type: MessageTypeSDPOffer, RecipientClientID: "m", Payload: "b2ZmZXI=", ICEServers: ice},
			want: `{"action":"SDP_OFFER","RecipientClientId":"m","MessagePayload":"b2ZmZXI=","IceServerList":[` +
				`{"Password":"pw1","Ttl":300,"Uris":["turn:a:443?transport=udp","turns:a:443?transport=tcp"],"Username":"u1"},` +
				`{"Password":"pw2","Ttl":600,"Uris":["turn:b:443"],"Username":"u2"}]}`,
		},
		{
			name: "ice servers ignored on answer",
			msg:  WSSOutboundMessage{Type: MessageTypeSDPAnswer, Payload: "YQ==", ICEServers: ice},
			want: `{"action":"SDP_ANSWER","MessagePayload":"YQ=="}`,
		},
		{
			name: "empty ice list skipped",
			msg:  WSSOutboundMessage{Type: MessageTypeSDPOffer, Payload: "YQ==", ICEServers: &ICEServerList{}},
			want: `{"action":"SDP_OFFER","MessagePayload":"YQ=="}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, 2048)
			n, err := c.WSSMessage(buf, &tc.msg)
			if err != nil {
				t.Fatal(err)
			}
			if got := string(buf[:n]); got != tc.want {
				t.Errorf("\n got %s\nwant %s", got, tc.want)
			}

			for size := 0; size < n; size++ {
				backing := bytes.Repeat([]byte{0xAA}, n+4)
				if _, err := c.WSSMessage(backing[:size], &tc.msg); !errors.Is(err, ErrOutOfMemory) {
					t.Fatalf("capacity %d/%d: expected ErrOutOfMemory, got %v", size, n, err)
				}
				if bytes.Count(backing[size:], []byte{0xAA}) != len(backing)-size {
					t.Fatalf("capacity %d: wrote past capacity", size)
				}
			}
		})
	}
}

func TestWSSMessage_Invalid(t *testing.T) {
	c := newTestContext(t)

	tooMany := *testICEServers(t)
	tooMany.Count = MaxICEServers + 1

	tooManyURIs := *testICEServers(t)
	tooManyURIs.Servers[1].URICount = MaxICEServerURIs + 1

	badTTL := *testICEServers(t)
	badTTL.Servers[0].TTLSeconds = MinICEServerTTL - 1

	tests := []struct {
		name    string
		msg     *WSSOutboundMessage
		wantErr error
	}{
		{"nil", nil, ErrBadParam},
		{"unknown type", &WSSOutboundMessage{Payload: "YQ=="}, ErrBadParam},
		{"no payload", &WSSOutboundMessage{Type: MessageTypeSDPOffer}, ErrBadParam},
		{"too many servers", &WSSOutboundMessage{Type: MessageTypeSDPOffer, Payload: "YQ==", ICEServers: &tooMany}, ErrInvalidICEServerCount},
		{"too many uris", &WSSOutboundMessage{Type: MessageTypeSDPOffer, Payload: "YQ==", ICEServers: &tooManyURIs}, ErrInvalidICEServerURIsCount},
		{"bad ttl", &WSSOutboundMessage{Type: MessageTypeSDPOffer, Payload: "YQ==", ICEServers: &badTTL}, ErrInvalidTTL},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := c.WSSMessage(make([]byte, 4096), tc.msg); !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestParseWSSMessage_Offer(t *testing.T) {
	// The ICE server list arrives as one object with the servers' fields in
	// sequence.
	raw := `{"senderClientId":"viewer-1","messageType":"SDP_OFFER","messagePayload":"eyJ0eXBlIjoib2ZmZXIifQ==",` +
		`"IceServerList":{"Password":"p1","Ttl":300,"Uris":["turn:a"],"Username":"u1",` +
		`"Password":"p2","Ttl":300,"Uris":["turn:b"],"Username":"u2"}}`

	var msg WSSInboundMessage
	if err := ParseWSSMessage([]byte(raw), &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != MessageTypeSDPOffer {
		t.Errorf("type %v", msg.Type)
	}
	if string(msg.SenderClientID) != "viewer-1" || string(msg.Payload) != "eyJ0eXBlIjoib2ZmZXIifQ==" {
		t.Errorf("got sender=%q payload=%q", msg.SenderClientID, msg.Payload)
	}
	if msg.HasStatusResponse {
		t.Error("unexpected status response")
	}
	if msg.ICEServers.Count != 2 {
		t.Fatalf("expected 2 ICE servers, got %d", msg.ICEServers.Count)
	}
	if string(msg.ICEServers.Servers[1].Username) != "u2" {
		t.Errorf("server 1 username %q", msg.ICEServers.Servers[1].Username)
	}
}

func TestParseWSSMessage_StatusResponse(t *testing.T) {
	raw := `{"senderClientId":"","messageType":"STATUS_RESPONSE","messagePayload":"",` +
		`"statusResponse":{"correlationId":"c-1","errorType":"InvalidArgumentException","statusCode":"400","description":"bad offer"}}`

	var msg WSSInboundMessage
	if err := ParseWSSMessage([]byte(raw), &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != MessageTypeStatusResponse || !msg.HasStatusResponse {
		t.Fatalf("got %+v", msg)
	}
	sr := msg.StatusResponse
	if string(sr.CorrelationID) != "c-1" || string(sr.ErrorType) != "InvalidArgumentException" ||
		string(sr.StatusCode) != "400" || string(sr.Description) != "bad offer" {
		t.Errorf("got %+v", sr)
	}
	if len(msg.SenderClientID) != 0 {
		t.Errorf("empty sender should be absent, got %q", msg.SenderClientID)
	}
}

func TestParseWSSMessage_Types(t *testing.T) {
	for want := MessageTypeSDPOffer; want <= MessageTypeStatusResponse; want++ {
		raw := `{"messageType":"` + want.String() + `"}`
		var msg WSSInboundMessage
		if err := ParseWSSMessage([]byte(raw), &msg); err != nil {
			t.Fatalf("%s: %v", want, err)
		}
		if msg.Type != want {
			t.Errorf("%s: got %v", want, msg.Type)
		}
	}

	var msg WSSInboundMessage
	if err := ParseWSSMessage([]byte(`{"messageType":"NEW_KIND"}`), &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != MessageTypeUnknown {
		t.Errorf("got %v", msg.Type)
	}
}

func TestParseWSSMessage_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"status response string", `{"messageType":"STATUS_RESPONSE","statusResponse":"oops"}`, ErrInvalidStatusResponse},
		{"status code bool", `{"messageType":"STATUS_RESPONSE","statusResponse":{"statusCode":true}}`, ErrInvalidStatusResponse},
		{"no message type", `{"senderClientId":"x"}`, ErrUnexpectedResponse},
		{"message type number", `{"messageType":1}`, ErrUnexpectedResponse},
		{"not an object", `["SDP_OFFER"]`, ErrUnexpectedResponse},
		{"empty", ``, ErrInvalidJSON},
		{"too many uris", `{"messageType":"SDP_OFFER","IceServerList":[{"Uris":["a","b","c","d"]}]}`, ErrInvalidICEServerURIsCount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var msg WSSInboundMessage
			if err := ParseWSSMessage([]byte(tc.raw), &msg); !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestParseWSSMessage_NumericStatusCode(t *testing.T) {
	raw := `{"messageType":"STATUS_RESPONSE","statusResponse":{"statusCode":403}}`
	var msg WSSInboundMessage
	if err := ParseWSSMessage([]byte(raw), &msg); err != nil {
		t.Fatal(err)
	}
	if string(msg.StatusResponse.StatusCode) != "403" {
		t.Errorf("got %q", msg.StatusResponse.StatusCode)
	}
}
