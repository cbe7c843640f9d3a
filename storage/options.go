package storage

import "log/slog"

type options struct {
	degree int
	logger *slog.Logger
}

// Option configures a LatestMap or a Store.
type Option func(*options)

// WithDegree sets the degree of the underlying B-tree. Values below 2 keep
// the default of 32.
func WithDegree(degree int) Option {
	return func(o *options) {
		if degree >= 2 {
			o.degree = degree
		}
	}
}

// WithLogger sets the logger used by Store. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		degree: defaultDegree,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
