package pixoo

import (
	"time"

	"go.uber.org/zap"

	"pixoo/pkg/proto"
)

type Option func(c *Client)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.log = logger
	}
}

// WithTransport replaces the HTTP transport, e.g. with a virtual device.
func WithTransport(tr proto.Transport) Option {
	return func(c *Client) {
		c.tr = tr
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}
