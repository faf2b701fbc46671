package transport

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/parmst/kruskal"
)

// DefaultDialTimeout bounds each TCP connect in Dial.
const DefaultDialTimeout = 5 * time.Second

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithServerLogger sets the server logger; nil is ignored.
func WithServerLogger(log *zap.Logger) ServerOption {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithServerObserver reports every served share to obs.
func WithServerObserver(obs kruskal.Observer) ServerOption {
	return func(s *Server) {
		s.obs = obs
	}
}

// DialOption configures Dial.
type DialOption func(*dialConfig)

type dialConfig struct {
	timeout time.Duration
	log     *zap.Logger
}

// WithDialTimeout overrides DefaultDialTimeout. Non-positive values are ignored.
func WithDialTimeout(d time.Duration) DialOption {
	return func(c *dialConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the cluster logger; nil is ignored.
func WithLogger(log *zap.Logger) DialOption {
	return func(c *dialConfig) {
		if log != nil {
			c.log = log
		}
	}
}
