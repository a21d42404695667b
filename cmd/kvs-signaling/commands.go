package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/backkem/kvsignaling/pkg/signaling"
)

var errUsage = errors.New("usage: kvs-signaling [options] <command> [file]")

type renderFunc func(c *signaling.Context, req *signaling.Request, o *Options) error

var renderers = map[string]renderFunc{
	"describe-channel": func(c *signaling.Context, req *signaling.Request, o *Options) error {
		return c.DescribeChannelRequest(req, o.ChannelName)
	},
	"create-channel": func(c *signaling.Context, req *signaling.Request, o *Options) error {
		if o.TTL > signaling.MaxChannelTTL {
			return signaling.ErrInvalidTTL
		}
		return c.CreateChannelRequest(req, signaling.CreateChannelInput{
			ChannelName:       o.ChannelName,
			MessageTTLSeconds: uint32(o.TTL),
			Tags:              o.Tags,
		})
	},
	"delete-channel": func(c *signaling.Context, req *signaling.Request, o *Options) error {
		return c.DeleteChannelRequest(req, signaling.DeleteChannelInput{ChannelARN: o.ChannelARN, Version: o.Version})
	},
	"get-endpoint": func(c *signaling.Context, req *signaling.Request, o *Options) error {
		return c.GetChannelEndpointRequest(req, signaling.GetChannelEndpointInput{
			ChannelARN: o.ChannelARN,
			Protocols:  o.Protocols,
			Role:       o.Role,
		})
	},
	"get-ice-config": func(c *signaling.Context, req *signaling.Request, o *Options) error {
		return c.GetICEServerConfigRequest(req, signaling.GetICEServerConfigInput{
			HTTPSEndpoint: o.Endpoint,
			ChannelARN:    o.ChannelARN,
			ClientID:      o.ClientID,
		})
	},
	"connect": func(c *signaling.Context, req *signaling.Request, o *Options) error {
		return c.ConnectWSSEndpointRequest(req, signaling.ConnectWSSEndpointInput{
			WSSEndpoint: o.Endpoint,
			ChannelARN:  o.ChannelARN,
			Role:        o.Role,
			ClientID:    o.ClientID,
		})
	},
	"describe-media": func(c *signaling.Context, req *signaling.Request, o *Options) error {
		return c.DescribeMediaStorageConfigRequest(req, o.ChannelARN)
	},
	"join-session": func(c *signaling.Context, req *signaling.Request, o *Options) error {
		return c.JoinStorageSessionRequest(req, signaling.JoinStorageSessionInput{
			WebRTCEndpoint: o.Endpoint,
			ChannelARN:     o.ChannelARN,
			Role:           o.Role,
			ClientID:       o.ClientID,
		})
	},
	"credentials": func(c *signaling.Context, req *signaling.Request, o *Options) error {
		return c.FetchCredentialsRequest(req, signaling.FetchCredentialsInput{
			CredentialEndpoint: o.Endpoint,
			RoleAlias:          o.RoleAlias,
		})
	},
}

type parseFunc func(data []byte, w io.Writer) error

var parsers = map[string]parseFunc{
	"describe-channel": func(data []byte, w io.Writer) error {
		var info signaling.ChannelInfo
		if err := signaling.ParseDescribeChannelResponse(data, &info); err != nil {
			return err
		}
		field(w, "ChannelARN", info.ARN)
		field(w, "ChannelName", info.Name)
		field(w, "ChannelStatus", info.Status)
		fmt.Fprintf(w, "ChannelType: %s\n", info.Type)
		field(w, "CreationTime", info.CreationTime)
		field(w, "Version", info.Version)
		fmt.Fprintf(w, "MessageTtlSeconds: %d\n", info.MessageTTLSeconds)
		return nil
	},
	"create-channel": func(data []byte, w io.Writer) error {
		var out signaling.CreateChannelOutput
		if err := signaling.ParseCreateChannelResponse(data, &out); err != nil {
			return err
		}
		field(w, "ChannelARN", out.ChannelARN)
		return nil
	},
	"get-endpoint": func(data []byte, w io.Writer) error {
		var ep signaling.Endpoints
		if err := signaling.ParseGetChannelEndpointResponse(data, &ep); err != nil {
			return err
		}
		field(w, "WSS", ep.WSS)
		field(w, "HTTPS", ep.HTTPS)
		field(w, "WEBRTC", ep.WebRTC)
		return nil
	},
	"get-ice-config": func(data []byte, w io.Writer) error {
		var list signaling.ICEServerList
		if err := signaling.ParseGetICEServerConfigResponse(data, &list); err != nil {
			return err
		}
		printICEServers(w, &list)
		return nil
	},
	"describe-media": func(data []byte, w io.Writer) error {
		var cfg signaling.MediaStorageConfig
		if err := signaling.ParseDescribeMediaStorageConfigResponse(data, &cfg); err != nil {
			return err
		}
		field(w, "Status", cfg.Status)
		field(w, "StreamARN", cfg.StreamARN)
		return nil
	},
	"message": func(data []byte, w io.Writer) error {
		var msg signaling.WSSInboundMessage
		if err := signaling.ParseWSSMessage(data, &msg); err != nil {
			return err
		}
		fmt.Fprintf(w, "messageType: %s\n", msg.Type)
		field(w, "senderClientId", msg.SenderClientID)
		field(w, "messagePayload", msg.Payload)
		if msg.HasStatusResponse {
			sr := &msg.StatusResponse
			field(w, "statusResponse.correlationId", sr.CorrelationID)
			field(w, "statusResponse.errorType", sr.ErrorType)
			field(w, "statusResponse.statusCode", sr.StatusCode)
			field(w, "statusResponse.description", sr.Description)
		}
		printICEServers(w, &msg.ICEServers)
		return nil
	},
	"credentials": func(data []byte, w io.Writer) error {
		var creds signaling.Credentials
		if err := signaling.ParseFetchCredentialsResponse(data, &creds); err != nil {
			return err
		}
		field(w, "accessKeyId", creds.AccessKeyID)
		field(w, "secretAccessKey", creds.SecretAccessKey)
		field(w, "sessionToken", creds.SessionToken)
		field(w, "expiration", creds.Expiration)
		return nil
	},
}

// field prints name: value, skipping absent values.
func field(w io.Writer, name string, value []byte) {
	if value == nil {
		return
	}
	fmt.Fprintf(w, "%s: %s\n", name, value)
}

func printICEServers(w io.Writer, list *signaling.ICEServerList) {
	for i := 0; i < list.Count; i++ {
		s := &list.Servers[i]
		fmt.Fprintf(w, "IceServer[%d]:", i)
		for j := 0; j < s.URICount; j++ {
			fmt.Fprintf(w, " %s", s.URIs[j])
		}
		fmt.Fprintf(w, " username=%s ttl=%d\n", s.Username, s.TTLSeconds)
	}
}

func run(args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, rest, err := parseFlags(args, getenv, stderr)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return errUsage
	}

	ctx, err := signaling.NewContext(signaling.ContextConfig{
		Region:          o.Region,
		ControlPlaneURL: o.ControlPlaneURL,
		LoggerFactory:   o.loggerFactory(stderr),
	})
	if err != nil {
		return err
	}

	cmd := rest[0]
	switch {
	case cmd == "parse":
		return runParse(rest[1:], stdin, stdout)
	case cmd == "message":
		return runMessage(ctx, &o, stdout)
	case renderers[cmd] != nil:
		req := signaling.NewRequest(o.URLCap, o.BodyCap)
		if err := renderers[cmd](ctx, req, &o); err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
		fmt.Fprintf(stdout, "%s\n", req.URL())
		if req.BodyLen > 0 {
			fmt.Fprintf(stdout, "%s\n", req.Body())
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q (have %v, message, parse)", cmd, commandNames(renderers))
	}
}

func runMessage(ctx *signaling.Context, o *Options, stdout io.Writer) error {
	buf := make([]byte, o.BodyCap)
	n, err := ctx.WSSMessage(buf, &signaling.WSSOutboundMessage{
		Type:              o.MessageType,
		RecipientClientID: o.Recipient,
		Payload:           o.Payload,
		CorrelationID:     o.CorrelationID,
	})
	if err != nil {
		return fmt.Errorf("message: %w", err)
	}
	fmt.Fprintf(stdout, "%s\n", buf[:n])
	return nil
}

func runParse(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("usage: parse <kind> [file] (kinds %v)", commandNames(parsers))
	}
	parse := parsers[args[0]]
	if parse == nil {
		return fmt.Errorf("unknown response kind %q (have %v)", args[0], commandNames(parsers))
	}

	var (
		data []byte
		err  error
	)
	if len(args) == 2 && args[1] != "-" {
		data, err = os.ReadFile(args[1])
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return err
	}

	if err := parse(data, stdout); err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}
	return nil
}

func commandNames[F any](m map[string]F) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
