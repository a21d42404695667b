package signaling

import (
	"github.com/backkem/kvsignaling/pkg/bounded"
	"github.com/backkem/kvsignaling/pkg/jsonscan"
)

const pathGetChannelEndpoint = "/getSignalingChannelEndpoint"

// GetChannelEndpointInput holds the inputs of a get-endpoint request.
type GetChannelEndpointInput struct {
	// ChannelARN is required.
	ChannelARN string

	// Protocols selects the endpoints to return. At least one bit.
	Protocols Protocol

	// Role is the role the caller will connect as.
	Role Role
}

// GetChannelEndpointRequest renders a get-endpoint request. Protocols are
// listed in the fixed order WSS, HTTPS, WEBRTC whatever bits are set.
//
//	POST <control-plane>/getSignalingChannelEndpoint
//	{"ChannelARN":"<arn>","SingleMasterChannelEndpointConfiguration":
//	 {"Protocols":["WSS","HTTPS","WEBRTC"],"Role":"MASTER"}}
func (c *Context) GetChannelEndpointRequest(req *Request, in GetChannelEndpointInput) error {
	const op = "get channel endpoint"
	if req == nil {
		return c.fail(op, ErrBadParam)
	}
	if err := checkRequired(in.ChannelARN, MaxARNLength); err != nil {
		return c.fail(op, err)
	}
	if !in.Protocols.IsValid() {
		return c.fail(op, ErrInvalidProtocol)
	}
	if !in.Role.IsValid() {
		return c.fail(op, ErrBadParam)
	}

	url, body := req.begin()
	_ = url.WriteString(c.controlPlaneURL)
	_ = url.WriteString(pathGetChannelEndpoint)

	_ = body.WriteByte('{')
	writeStringField(body, true, "ChannelARN", in.ChannelARN)
	_ = body.WriteString(`,"SingleMasterChannelEndpointConfiguration":{"Protocols":`)
	writeProtocols(body, in.Protocols)
	writeStringField(body, false, "Role", in.Role.String())
	_ = body.WriteString(`}}`)

	if err := req.finish(url, body); err != nil {
		return c.fail(op, err)
	}
	c.built(op, req)
	return nil
}

func writeProtocols(w *bounded.Writer, set Protocol) {
	var selected [len(canonicalProtocols)]Protocol
	n := 0
	for _, p := range canonicalProtocols {
		if set&p != 0 {
			selected[n] = p
			n++
		}
	}

	_ = w.WriteByte('[')
	_ = w.Each(n, func(i int) error {
		_ = w.WriteByte('"')
		_ = w.WriteString(selected[i].String())
		return w.WriteByte('"')
	})
	_ = w.WriteByte(']')
}

// ParseGetChannelEndpointResponse parses the endpoint list into out.
// Protocols are matched case-insensitively; unknown protocols are skipped and
// a repeated protocol overwrites the earlier endpoint.
//
//	{"ResourceEndpointList":[{"Protocol":"WSS","ResourceEndpoint":"wss://.."},...]}
func ParseGetChannelEndpointResponse(data []byte, out *Endpoints) error {
	if out == nil {
		return ErrBadParam
	}
	list, err := expect(data, "ResourceEndpointList", jsonscan.Array)
	if err != nil {
		return err
	}

	*out = Endpoints{}
	return jsonscan.Elements(list, func(elem []byte, typ jsonscan.Type) error {
		if typ != jsonscan.Object {
			return ErrUnexpectedResponse
		}
		var (
			protocol Protocol
			endpoint []byte
		)
		err := jsonscan.Members(elem, func(key, value []byte, typ jsonscan.Type) error {
			switch string(key) {
			case "Protocol":
				if typ == jsonscan.String {
					protocol = parseProtocol(value)
				}
			case "ResourceEndpoint":
				if typ == jsonscan.String {
					endpoint = value
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		if protocol == 0 || len(endpoint) == 0 {
			return nil
		}
		if len(endpoint) > MaxEndpointLength {
			return ErrInvalidEndpoint
		}

		switch protocol {
		case ProtocolWSS:
			out.WSS = endpoint
		case ProtocolHTTPS:
			out.HTTPS = endpoint
		case ProtocolWebRTC:
			out.WebRTC = endpoint
		}
		return nil
	})
}

// ConnectWSSEndpointInput holds the inputs of a WebSocket connect URL.
type ConnectWSSEndpointInput struct {
	// WSSEndpoint is the channel's WSS endpoint. Required.
	WSSEndpoint string

	// ChannelARN is required.
	ChannelARN string

	// Role selects the query parameters.
	Role Role

	// ClientID is required for viewers and ignored for masters.
	ClientID string
}

// ConnectWSSEndpointRequest renders the WebSocket connect URL. There is no
// body; req.BodyLen is 0 on success.
//
//	<wss-endpoint>?X-Amz-ChannelARN=<arn>                       (master)
//	<wss-endpoint>?X-Amz-ChannelARN=<arn>&X-Amz-ClientId=<id>   (viewer)
func (c *Context) ConnectWSSEndpointRequest(req *Request, in ConnectWSSEndpointInput) error {
	const op = "connect WSS endpoint"
	if req == nil {
		return c.fail(op, ErrBadParam)
	}
	if err := checkRequired(in.WSSEndpoint, MaxEndpointLength); err != nil {
		return c.fail(op, err)
	}
	if err := checkRequired(in.ChannelARN, MaxARNLength); err != nil {
		return c.fail(op, err)
	}
	if !in.Role.IsValid() {
		return c.fail(op, ErrBadParam)
	}
	if in.Role == RoleViewer {
		if err := checkRequired(in.ClientID, MaxClientIDLength); err != nil {
			return c.fail(op, err)
		}
	}

	url, body := req.begin()
	_ = url.WriteString(in.WSSEndpoint)
	_ = url.WriteString("?X-Amz-ChannelARN=")
	_ = url.WriteString(in.ChannelARN)
	if in.Role == RoleViewer {
		_ = url.WriteString("&X-Amz-ClientId=")
		_ = url.WriteString(in.ClientID)
	}

	if err := req.finish(url, body); err != nil {
		return c.fail(op, err)
	}
	c.built(op, req)
	return nil
}
