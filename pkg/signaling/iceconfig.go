package signaling

import "github.com/backkem/kvsignaling/pkg/jsonscan"

const pathGetICEServerConfig = "/v1/get-ice-server-config"

// GetICEServerConfigInput holds the inputs of a get-ICE-server-config request.
type GetICEServerConfigInput struct {
	// HTTPSEndpoint is the channel's HTTPS endpoint. Required.
	HTTPSEndpoint string

	// ChannelARN is required.
	ChannelARN string

	// ClientID identifies a viewer. Optional; omitted when empty.
	ClientID string
}

// GetICEServerConfigRequest renders a request for the channel's TURN servers.
//
//	POST <https-endpoint>/v1/get-ice-server-config
//	{"ChannelARN":"<arn>","ClientId":"<id>","Service":"TURN"}
func (c *Context) GetICEServerConfigRequest(req *Request, in GetICEServerConfigInput) error {
	const op = "get ICE server config"
	if req == nil {
		return c.fail(op, ErrBadParam)
	}
	if err := checkRequired(in.HTTPSEndpoint, MaxEndpointLength); err != nil {
		return c.fail(op, err)
	}
	if err := checkRequired(in.ChannelARN, MaxARNLength); err != nil {
		return c.fail(op, err)
	}
	if err := checkOptional(in.ClientID, MaxClientIDLength); err != nil {
		return c.fail(op, err)
	}

	url, body := req.begin()
	_ = url.WriteString(in.HTTPSEndpoint)
	_ = url.WriteString(pathGetICEServerConfig)

	_ = body.WriteByte('{')
	writeStringField(body, true, "ChannelARN", in.ChannelARN)
	if in.ClientID != "" {
		writeStringField(body, false, "ClientId", in.ClientID)
	}
	writeStringField(body, false, "Service", "TURN")
	_ = body.WriteByte('}')

	if err := req.finish(url, body); err != nil {
		return c.fail(op, err)
	}
	c.built(op, req)
	return nil
}

// ParseGetICEServerConfigResponse parses the TURN server list. Servers past
// MaxICEServers are dropped; out.Count reports how many were kept.
//
//	{"IceServerList":[{"Password":"..","Ttl":300,"Uris":[".."],"Username":".."}]}
func ParseGetICEServerConfigResponse(data []byte, out *ICEServerList) error {
	if out == nil {
		return ErrBadParam
	}
	list, err := expect(data, "IceServerList", jsonscan.Array)
	if err != nil {
		return err
	}
	return parseICEServerList(list, jsonscan.Array, out)
}
