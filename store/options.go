package store

import (
	"github.com/dshills/fluxion/config"
	"github.com/dshills/fluxion/logging"
	"github.com/dshills/fluxion/middleware"
)

// Option configures a store at construction.
type Option[S any] func(*options[S])

type options[S any] struct {
	middlewares []middleware.Middleware[S]
	logger      *logging.Logger
	metrics     bool
}

func defaultOptions[S any]() options[S] {
	return options[S]{
		logger: logging.Null,
	}
}

// WithMiddleware appends middlewares to the chain in registration order;
// the first middleware passed to the first call is outermost.
func WithMiddleware[S any](mws ...middleware.Middleware[S]) Option[S] {
	return func(o *options[S]) {
		o.middlewares = append(o.middlewares, mws...)
	}
}

// WithLogger sets the store's logger. The default discards all output.
func WithLogger[S any](logger *logging.Logger) Option[S] {
	return func(o *options[S]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics enables per-action dispatch metrics.
func WithMetrics[S any]() Option[S] {
	return func(o *options[S]) {
		o.metrics = true
	}
}

// WithConfig applies a loaded configuration: log level and metrics toggle.
func WithConfig[S any](cfg config.Config) Option[S] {
	return func(o *options[S]) {
		logger := logging.New(logging.Config{
			Level:  logging.ParseLevel(cfg.LogLevel),
			Prefix: "fluxion",
		})
		o.logger = logger
		o.metrics = cfg.EnableMetrics
	}
}
