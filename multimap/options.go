package multimap

import "log/slog"

type options struct {
	logger   *slog.Logger
	capacity int
}

// Option configures a MultiMap at construction time.
type Option func(*options)

// WithLogger sets the logger used to report repairs made while decoding.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCapacity pre-allocates room for the given number of keys.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		if capacity > 0 {
			o.capacity = capacity
		}
	}
}

func buildOptions(opts []Option) options {
	var o options

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
