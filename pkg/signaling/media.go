package signaling

import "github.com/backkem/kvsignaling/pkg/jsonscan"

const (
	pathDescribeMediaStorageConfig = "/describeMediaStorageConfiguration"
	pathJoinStorageSession         = "/joinStorageSession"
	pathJoinStorageSessionAsViewer = "/joinStorageSessionAsViewer"
)

// DescribeMediaStorageConfigRequest renders a describe-media-storage request.
//
//	POST <control-plane>/describeMediaStorageConfiguration
//	{"ChannelARN":"<arn>"}
func (c *Context) DescribeMediaStorageConfigRequest(req *Request, channelARN string) error {
	const op = "describe media storage config"
	if req == nil {
		return c.fail(op, ErrBadParam)
	}
	if err := checkRequired(channelARN, MaxARNLength); err != nil {
		return c.fail(op, err)
	}

	url, body := req.begin()
	_ = url.WriteString(c.controlPlaneURL)
	_ = url.WriteString(pathDescribeMediaStorageConfig)

	_ = body.WriteByte('{')
	writeStringField(body, true, "ChannelARN", channelARN)
	_ = body.WriteByte('}')

	if err := req.finish(url, body); err != nil {
		return c.fail(op, err)
	}
	c.built(op, req)
	return nil
}

// ParseDescribeMediaStorageConfigResponse parses a describe-media-storage response.
//
//	{"MediaStorageConfiguration":{"Status":"ENABLED","StreamARN":"<arn>"}}
func ParseDescribeMediaStorageConfigResponse(data []byte, out *MediaStorageConfig) error {
	if out == nil {
		return ErrBadParam
	}
	cfg, err := expect(data, "MediaStorageConfiguration", jsonscan.Object)
	if err != nil {
		return err
	}

	*out = MediaStorageConfig{}
	return jsonscan.Members(cfg, func(key, value []byte, typ jsonscan.Type) error {
		var err error
		switch string(key) {
		case "Status":
			out.Status, err = stringValue(value, typ)
		case "StreamARN":
			// Null when storage is disabled.
			if typ != jsonscan.Null {
				out.StreamARN, err = stringValue(value, typ)
			}
		}
		return err
	})
}

// JoinStorageSessionInput holds the inputs of a join-storage-session request.
type JoinStorageSessionInput struct {
	// WebRTCEndpoint is the channel's WEBRTC endpoint. Required.
	WebRTCEndpoint string

	// ChannelARN is required.
	ChannelARN string

	// Role selects the master or viewer variant.
	Role Role

	// ClientID is required for viewers and ignored for masters.
	ClientID string
}

// JoinStorageSessionRequest renders a join-storage-session request. The
// service replies with an empty body, so there is no matching parser.
//
//	POST <webrtc-endpoint>/joinStorageSession           {"channelArn":"<arn>"}
//	POST <webrtc-endpoint>/joinStorageSessionAsViewer   {"channelArn":"<arn>","clientId":"<id>"}
func (c *Context) JoinStorageSessionRequest(req *Request, in JoinStorageSessionInput) error {
	const op = "join storage session"
	if req == nil {
		return c.fail(op, ErrBadParam)
	}
	if err := checkRequired(in.WebRTCEndpoint, MaxEndpointLength); err != nil {
		return c.fail(op, err)
	}
	if err := checkRequired(in.ChannelARN, MaxARNLength); err != nil {
		return c.fail(op, err)
	}
	if !in.Role.IsValid() {
		return c.fail(op, ErrBadParam)
	}
	viewer := in.Role == RoleViewer
	if viewer {
		if err := checkRequired(in.ClientID, MaxClientIDLength); err != nil {
			return c.fail(op, err)
		}
	}

	url, body := req.begin()
	_ = url.WriteString(in.WebRTCEndpoint)
	if viewer {
		_ = url.WriteString(pathJoinStorageSessionAsViewer)
	} else {
		_ = url.WriteString(pathJoinStorageSession)
	}

	_ = body.WriteByte('{')
	writeStringField(body, true, "channelArn", in.ChannelARN)
	if viewer {
		writeStringField(body, false, "clientId", in.ClientID)
	}
	_ = body.WriteByte('}')

	if err := req.finish(url, body); err != nil {
		return c.fail(op, err)
	}
	c.built(op, req)
	return nil
}
