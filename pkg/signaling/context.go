package signaling

import (
	"strings"

	"github.com/pion/logging"
)

const (
	controlPlaneScheme      = "https://kinesisvideo."
	controlPlaneDomain      = ".amazonaws.com"
	controlPlaneDomainChina = ".amazonaws.com.cn"
	chinaPartitionPrefix    = "cn-"
)

// ControlPlaneURL returns the control plane base URL for region. A non-empty
// override is returned unchanged. Regions prefixed "cn-" resolve to the China
// partition domain.
func ControlPlaneURL(region, override string) (string, error) {
	if region == "" {
		return "", ErrBadParam
	}
	if len(region) > MaxRegionLength {
		return "", ErrRegionTooLarge
	}
	if override != "" {
		return override, nil
	}
	domain := controlPlaneDomain
	if strings.HasPrefix(region, chinaPartitionPrefix) {
		domain = controlPlaneDomainChina
	}
	return controlPlaneScheme + region + domain, nil
}

// ContextConfig configures a Context.
type ContextConfig struct {
	// Region is the service region, e.g. "us-west-2".
	// Required.
	Region string

	// ControlPlaneURL overrides the region-derived control plane URL.
	// Optional.
	ControlPlaneURL string

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Context is the endpoint context shared by request builders.
//
// It is created once and then read by every builder. The cached channel name
// changes only through SetChannelName or UpdateFromChannelInfo. A Context is
// not safe for concurrent mutation.
type Context struct {
	region          string
	controlPlaneURL string

	// Copied, so the cache never aliases a response buffer.
	channelName    [MaxChannelNameLength]byte
	channelNameLen int

	log logging.LeveledLogger
}

// NewContext creates a Context for the configured region.
func NewContext(config ContextConfig) (*Context, error) {
	url, err := ControlPlaneURL(config.Region, config.ControlPlaneURL)
	if err != nil {
		return nil, err
	}

	c := &Context{
		region:          config.Region,
		controlPlaneURL: url,
	}

	if config.LoggerFactory != nil {
		c.log = config.LoggerFactory.NewLogger("signaling")
		c.log.Debugf("context created: region=%s control_plane=%s", c.region, c.controlPlaneURL)
	}

	return c, nil
}

// Region returns the configured region.
func (c *Context) Region() string {
	return c.region
}

// ControlPlaneURL returns the control plane base URL.
func (c *Context) ControlPlaneURL() string {
	return c.controlPlaneURL
}

// ChannelName returns the cached channel name, or nil if none is cached.
// The slice aliases the Context and changes on the next update.
func (c *Context) ChannelName() []byte {
	if c.channelNameLen == 0 {
		return nil
	}
	return c.channelName[:c.channelNameLen]
}

// SetChannelName replaces the cached channel name. An empty name clears it.
func (c *Context) SetChannelName(name []byte) error {
	if len(name) > MaxChannelNameLength {
		return ErrInvalidChannelName
	}
	c.channelNameLen = copy(c.channelName[:], name)
	if c.log != nil {
		c.log.Debugf("cached channel name %q", name)
	}
	return nil
}

// UpdateFromChannelInfo caches the channel name from a parsed describe-channel
// response.
func (c *Context) UpdateFromChannelInfo(info *ChannelInfo) error {
	if info == nil {
		return ErrBadParam
	}
	return c.SetChannelName(info.Name)
}

// built logs a successful build.
func (c *Context) built(op string, req *Request) {
	if c.log != nil {
		c.log.Debugf("%s: url=%d bytes body=%d bytes", op, req.URLLen, req.BodyLen)
	}
}

// fail logs a failed build and returns err.
func (c *Context) fail(op string, err error) error {
	if c.log != nil {
		c.log.Tracef("%s: %v", op, err)
	}
	return err
}
