package signaling

import (
	"github.com/backkem/kvsignaling/pkg/bounded"
	"github.com/backkem/kvsignaling/pkg/jsonscan"
)

// MaxCorrelationIDLength bounds an outbound correlation id.
const MaxCorrelationIDLength = 256

// WSSMessage renders msg into buf and returns the bytes used. Empty optional
// fields are left out, and the ICE server list is rendered only for SDP
// offers that carry one.
//
//	{"action":"SDP_OFFER","RecipientClientId":"<id>","MessagePayload":"<base64>",
//	 "CorrelationId":"<cid>","IceServerList":[...]}
func (c *Context) WSSMessage(buf []byte, msg *WSSOutboundMessage) (int, error) {
	const op = "WSS message"
	if msg == nil {
		return 0, c.fail(op, ErrBadParam)
	}
	if !msg.Type.IsValid() {
		return 0, c.fail(op, ErrBadParam)
	}
	if msg.Payload == "" {
		return 0, c.fail(op, ErrBadParam)
	}
	if err := checkOptional(msg.RecipientClientID, MaxClientIDLength); err != nil {
		return 0, c.fail(op, err)
	}
	if err := checkOptional(msg.CorrelationID, MaxCorrelationIDLength); err != nil {
		return 0, c.fail(op, err)
	}
	withICE := msg.Type == MessageTypeSDPOffer && msg.ICEServers != nil && msg.ICEServers.Count != 0
	if withICE {
		if err := checkICEServerList(msg.ICEServers); err != nil {
			return 0, c.fail(op, err)
		}
	}

	w := bounded.NewWriter(buf)
	_ = w.WriteByte('{')
	writeStringField(w, true, "action", msg.Type.String())
	if msg.RecipientClientID != "" {
		writeStringField(w, false, "RecipientClientId", msg.RecipientClientID)
	}
	writeStringField(w, false, "MessagePayload", msg.Payload)
	if msg.CorrelationID != "" {
		writeStringField(w, false, "CorrelationId", msg.CorrelationID)
	}
	if withICE {
		writeICEServerList(w, msg.ICEServers)
	}
	_ = w.WriteByte('}')

	if err := w.Err(); err != nil {
		return 0, c.fail(op, err)
	}
	if c.log != nil {
		c.log.Debugf("%s: type=%s body=%d bytes", op, msg.Type, w.Len())
	}
	return w.Len(), nil
}

// ParseWSSMessage parses a message received over the signaling WebSocket.
// The messageType field is required; all others are optional.
//
//	{"senderClientId":"<id>","messageType":"SDP_OFFER","messagePayload":"<base64>",
//	 "statusResponse":{"correlationId":"..","errorType":"..","statusCode":"400","description":".."},
//	 "IceServerList":[...]}
func ParseWSSMessage(data []byte, out *WSSInboundMessage) error {
	if out == nil {
		return ErrBadParam
	}
	data, err := jsonscan.Validate(data)
	if err != nil {
		return err
	}

	*out = WSSInboundMessage{}
	typed := false
	err = jsonscan.Members(data, func(key, value []byte, typ jsonscan.Type) error {
		var err error
		switch string(key) {
		case "senderClientId":
			out.SenderClientID, err = stringValue(value, typ)
		case "messageType":
			if typ != jsonscan.String {
				return ErrUnexpectedResponse
			}
			out.Type = parseMessageType(value)
			typed = true
		case "messagePayload":
			out.Payload, err = stringValue(value, typ)
		case "statusResponse":
			err = parseStatusResponse(value, typ, &out.StatusResponse)
			out.HasStatusResponse = err == nil
		case "IceServerList":
			err = parseICEServerList(value, typ, &out.ICEServers)
		}
		return err
	})
	if err != nil {
		return err
	}
	if !typed {
		return ErrUnexpectedResponse
	}
	return nil
}

func parseStatusResponse(value []byte, typ jsonscan.Type, out *StatusResponse) error {
	if typ != jsonscan.Object {
		return ErrInvalidStatusResponse
	}
	return jsonscan.Members(value, func(key, value []byte, typ jsonscan.Type) error {
		var field *[]byte
		switch string(key) {
		case "correlationId":
			field = &out.CorrelationID
		case "errorType":
			field = &out.ErrorType
		case "description":
			field = &out.Description
		case "statusCode":
			// Sent as a string, tolerated as a number.
			if typ == jsonscan.Number {
				out.StatusCode = value
				return nil
			}
			field = &out.StatusCode
		default:
			return nil
		}
		if typ != jsonscan.String {
			return ErrInvalidStatusResponse
		}
		*field = value
		return nil
	})
}
