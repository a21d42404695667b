package signaling

import (
	"github.com/backkem/kvsignaling/pkg/bounded"
	"github.com/backkem/kvsignaling/pkg/jsonscan"
)

// Control plane paths.
const (
	pathDescribeChannel = "/describeSignalingChannel"
	pathCreateChannel   = "/createSignalingChannel"
	pathDeleteChannel   = "/deleteSignalingChannel"
)

// DescribeChannelRequest renders a describe-channel request. An empty
// channelName selects the cached channel name.
//
//	POST <control-plane>/describeSignalingChannel
//	{"ChannelName":"<name>"}
func (c *Context) DescribeChannelRequest(req *Request, channelName string) error {
	const op = "describe channel"
	if req == nil {
		return c.fail(op, ErrBadParam)
	}
	if len(channelName) > MaxChannelNameLength {
		return c.fail(op, ErrBadParam)
	}
	cached := c.ChannelName()
	if channelName == "" && cached == nil {
		return c.fail(op, ErrBadParam)
	}

	url, body := req.begin()
	_ = url.WriteString(c.controlPlaneURL)
	_ = url.WriteString(pathDescribeChannel)

	_ = body.WriteString(`{"ChannelName":"`)
	if channelName != "" {
		_ = body.WriteString(channelName)
	} else {
		_ = body.Write(cached)
	}
	_ = body.WriteString(`"}`)

	if err := req.finish(url, body); err != nil {
		return c.fail(op, err)
	}
	c.built(op, req)
	return nil
}

// ParseDescribeChannelResponse parses a describe-channel response into out.
// Unknown fields are ignored.
func ParseDescribeChannelResponse(data []byte, out *ChannelInfo) error {
	if out == nil {
		return ErrBadParam
	}
	info, err := expect(data, "ChannelInfo", jsonscan.Object)
	if err != nil {
		return err
	}

	*out = ChannelInfo{}
	return jsonscan.Members(info, func(key, value []byte, typ jsonscan.Type) error {
		var err error
		switch string(key) {
		case "ChannelARN":
			out.ARN, err = stringValue(value, typ)
		case "ChannelName":
			out.Name, err = stringValue(value, typ)
			if err == nil && len(out.Name) > MaxChannelNameLength {
				err = ErrInvalidChannelName
			}
		case "ChannelStatus":
			out.Status, err = stringValue(value, typ)
		case "ChannelType":
			if typ != jsonscan.String || string(value) != ChannelTypeSingleMaster.String() {
				return ErrInvalidChannelType
			}
			out.Type = ChannelTypeSingleMaster
		case "CreationTime":
			// Epoch seconds as a number, or a timestamp string.
			if typ != jsonscan.Number && typ != jsonscan.String {
				return ErrUnexpectedResponse
			}
			out.CreationTime = value
		case "Version":
			out.Version, err = stringValue(value, typ)
		case "SingleMasterConfiguration":
			err = parseSingleMasterConfig(value, typ, out)
		}
		return err
	})
}

func parseSingleMasterConfig(value []byte, typ jsonscan.Type, out *ChannelInfo) error {
	if typ != jsonscan.Object {
		return ErrUnexpectedResponse
	}
	return jsonscan.Members(value, func(key, value []byte, typ jsonscan.Type) error {
		if string(key) != "MessageTtlSeconds" {
			return nil
		}
		ttl, err := parseTTL(value, typ, MinChannelTTL, MaxChannelTTL)
		if err != nil {
			return err
		}
		out.MessageTTLSeconds = ttl
		return nil
	})
}

// CreateChannelInput holds the inputs of a create-channel request.
type CreateChannelInput struct {
	// ChannelName is required.
	ChannelName string

	// MessageTTLSeconds must be within [MinChannelTTL, MaxChannelTTL].
	MessageTTLSeconds uint32

	// Tags are optional; at most MaxTags.
	Tags []Tag
}

// CreateChannelRequest renders a create-channel request for a single-master
// channel. The Tags array is emitted only when tags are given.
//
//	POST <control-plane>/createSignalingChannel
//	{"ChannelName":"<name>","ChannelType":"SINGLE_MASTER",
//	 "SingleMasterConfiguration":{"MessageTtlSeconds":<ttl>},
//	 "Tags":[{"Key":"<k>","Value":"<v>"},...]}
func (c *Context) CreateChannelRequest(req *Request, in CreateChannelInput) error {
	const op = "create channel"
	if req == nil {
		return c.fail(op, ErrBadParam)
	}
	if err := checkRequired(in.ChannelName, MaxChannelNameLength); err != nil {
		return c.fail(op, err)
	}
	if in.MessageTTLSeconds < MinChannelTTL || in.MessageTTLSeconds > MaxChannelTTL {
		return c.fail(op, ErrInvalidTTL)
	}
	if err := checkTags(in.Tags); err != nil {
		return c.fail(op, err)
	}

	url, body := req.begin()
	_ = url.WriteString(c.controlPlaneURL)
	_ = url.WriteString(pathCreateChannel)

	_ = body.WriteByte('{')
	writeStringField(body, true, "ChannelName", in.ChannelName)
	writeStringField(body, false, "ChannelType", ChannelTypeSingleMaster.String())
	_ = body.WriteString(`,"SingleMasterConfiguration":{"MessageTtlSeconds":`)
	_ = body.WriteUint(uint64(in.MessageTTLSeconds))
	_ = body.WriteByte('}')
	if len(in.Tags) > 0 {
		writeTags(body, in.Tags)
	}
	_ = body.WriteByte('}')

	if err := req.finish(url, body); err != nil {
		return c.fail(op, err)
	}
	c.built(op, req)
	return nil
}

func checkTags(tags []Tag) error {
	if len(tags) > MaxTags {
		return ErrBadParam
	}
	for _, t := range tags {
		if err := checkRequired(t.Key, MaxTagKeyLength); err != nil {
			return err
		}
		if err := checkOptional(t.Value, MaxTagValueLength); err != nil {
			return err
		}
	}
	return nil
}

func writeTags(w *bounded.Writer, tags []Tag) {
	_ = w.WriteString(`,"Tags":[`)
	_ = w.Each(len(tags), func(i int) error {
		_ = w.WriteByte('{')
		writeStringField(w, true, "Key", tags[i].Key)
		writeStringField(w, false, "Value", tags[i].Value)
		return w.WriteByte('}')
	})
	_ = w.WriteByte(']')
}

// ParseCreateChannelResponse parses a create-channel response.
//
//	{"ChannelARN":"<arn>"}
func ParseCreateChannelResponse(data []byte, out *CreateChannelOutput) error {
	if out == nil {
		return ErrBadParam
	}
	arn, err := expect(data, "ChannelARN", jsonscan.String)
	if err != nil {
		return err
	}
	out.ChannelARN = arn
	return nil
}

// DeleteChannelInput holds the inputs of a delete-channel request.
type DeleteChannelInput struct {
	// ChannelARN is required.
	ChannelARN string

	// Version is the current channel version, as returned by describe.
	// Optional; omitted from the body when empty.
	Version string
}

// DeleteChannelRequest renders a delete-channel request. The service replies
// with an empty body, so there is no matching parser.
//
//	POST <control-plane>/deleteSignalingChannel
//	{"ChannelARN":"<arn>","CurrentVersion":"<version>"}
func (c *Context) DeleteChannelRequest(req *Request, in DeleteChannelInput) error {
	const op = "delete channel"
	if req == nil {
		return c.fail(op, ErrBadParam)
	}
	if err := checkRequired(in.ChannelARN, MaxARNLength); err != nil {
		return c.fail(op, err)
	}
	if err := checkOptional(in.Version, MaxVersionLength); err != nil {
		return c.fail(op, err)
	}

	url, body := req.begin()
	_ = url.WriteString(c.controlPlaneURL)
	_ = url.WriteString(pathDeleteChannel)

	_ = body.WriteByte('{')
	writeStringField(body, true, "ChannelARN", in.ChannelARN)
	if in.Version != "" {
		writeStringField(body, false, "CurrentVersion", in.Version)
	}
	_ = body.WriteByte('}')

	if err := req.finish(url, body); err != nil {
		return c.fail(op, err)
	}
	c.built(op, req)
	return nil
}
