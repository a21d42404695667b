package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pion/logging"

	"github.com/backkem/kvsignaling/pkg/signaling"
)

// Options holds the CLI flags.
type Options struct {
	Region          string
	ControlPlaneURL string
	LogLevel        logging.LogLevel

	ChannelName string
	ChannelARN  string
	Version     string
	TTL         uint
	Tags        []signaling.Tag

	Role      signaling.Role
	ClientID  string
	Protocols signaling.Protocol
	Endpoint  string
	RoleAlias string

	MessageType   signaling.MessageType
	Payload       string
	Recipient     string
	CorrelationID string

	URLCap  int
	BodyCap int
}

// DefaultOptions returns Options with defaults for a master on us-west-2.
func DefaultOptions() Options {
	return Options{
		Region:    "us-west-2",
		LogLevel:  logging.LogLevelWarn,
		TTL:       60,
		Role:      signaling.RoleMaster,
		Protocols: signaling.ProtocolWSS | signaling.ProtocolHTTPS,
		URLCap:    1024,
		BodyCap:   8192,
	}
}

var logLevels = map[string]logging.LogLevel{
	"disable": logging.LogLevelDisabled,
	"error":   logging.LogLevelError,
	"warn":    logging.LogLevelWarn,
	"info":    logging.LogLevelInfo,
	"debug":   logging.LogLevelDebug,
	"trace":   logging.LogLevelTrace,
}

// parseFlags parses args into Options and returns the remaining arguments.
// Region and control plane URL fall back to KVS_REGION and
// KVS_CONTROL_PLANE_URL.
func parseFlags(args []string, getenv func(string) string, output io.Writer) (Options, []string, error) {
	o := DefaultOptions()
	if v := getenv("KVS_REGION"); v != "" {
		o.Region = v
	}
	o.ControlPlaneURL = getenv("KVS_CONTROL_PLANE_URL")

	fs := flag.NewFlagSet("kvs-signaling", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&o.Region, "region", o.Region, "Region")
	fs.StringVar(&o.ControlPlaneURL, "control-plane", o.ControlPlaneURL, "Control plane URL override")
	fs.Func("log-level", "disable|error|warn|info|debug|trace (default: warn)", func(s string) error {
		lvl, ok := logLevels[strings.ToLower(s)]
		if !ok {
			return fmt.Errorf("unknown log level %q", s)
		}
		o.LogLevel = lvl
		return nil
	})

	fs.StringVar(&o.ChannelName, "channel", "", "Channel name")
	fs.StringVar(&o.ChannelARN, "arn", "", "Channel ARN")
	fs.StringVar(&o.Version, "version", "", "Channel version (delete-channel)")
	fs.UintVar(&o.TTL, "ttl", o.TTL, "Message TTL in seconds (create-channel)")
	fs.Func("tags", "Comma separated key=value tags (create-channel)", func(s string) error {
		for _, kv := range strings.Split(s, ",") {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || k == "" {
				return fmt.Errorf("tag %q is not key=value", kv)
			}
			o.Tags = append(o.Tags, signaling.Tag{Key: k, Value: v})
		}
		return nil
	})

	fs.Func("role", "master|viewer (default: master)", func(s string) error {
		switch strings.ToLower(s) {
		case "master":
			o.Role = signaling.RoleMaster
		case "viewer":
			o.Role = signaling.RoleViewer
		default:
			return fmt.Errorf("unknown role %q", s)
		}
		return nil
	})
	fs.StringVar(&o.ClientID, "client-id", "", "Viewer client id")
	fs.Func("protocols", "Comma separated wss,https,webrtc (default: wss,https)", func(s string) error {
		o.Protocols = 0
		for _, name := range strings.Split(s, ",") {
			p, ok := protocolNames[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return fmt.Errorf("unknown protocol %q", name)
			}
			o.Protocols |= p
		}
		return nil
	})
	fs.StringVar(&o.Endpoint, "endpoint", "", "Endpoint the request is sent to")
	fs.StringVar(&o.RoleAlias, "role-alias", "", "IoT role alias (credentials)")

	fs.Func("type", "Message type, e.g. SDP_OFFER (message)", func(s string) error {
		for t := signaling.MessageTypeSDPOffer; t.IsValid(); t++ {
			if strings.EqualFold(s, t.String()) {
				o.MessageType = t
				return nil
			}
		}
		return fmt.Errorf("unknown message type %q", s)
	})
	fs.StringVar(&o.Payload, "payload", "", "Base64 message payload (message)")
	fs.StringVar(&o.Recipient, "recipient", "", "Recipient client id (message)")
	fs.StringVar(&o.CorrelationID, "correlation-id", "", "Correlation id (message)")

	fs.IntVar(&o.URLCap, "url-cap", o.URLCap, "URL buffer capacity")
	fs.IntVar(&o.BodyCap, "body-cap", o.BodyCap, "Body buffer capacity")

	if err := fs.Parse(args); err != nil {
		return Options{}, nil, err
	}
	if o.URLCap < 0 || o.BodyCap < 0 {
		return Options{}, nil, errors.New("buffer capacity must not be negative")
	}
	return o, fs.Args(), nil
}

var protocolNames = map[string]signaling.Protocol{
	"wss":    signaling.ProtocolWSS,
	"https":  signaling.ProtocolHTTPS,
	"webrtc": signaling.ProtocolWebRTC,
}

func (o *Options) loggerFactory(w io.Writer) logging.LoggerFactory {
	return &logging.DefaultLoggerFactory{
		Writer:          w,
		DefaultLogLevel: o.LogLevel,
		ScopeLevels:     map[string]logging.LogLevel{},
	}
}
