package funcs

import "go.uber.org/zap"

type config struct {
	clock  Clock
	logger *zap.Logger
}

// Option configures a decorator.
type Option func(*config)

// WithClock makes the decorator read time and schedule calls on c instead of
// [SystemClock].
func WithClock(c Clock) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.clock = c
		}
	}
}

// WithLogger makes the decorator log to l instead of the package [Logger].
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{clock: SystemClock, logger: Logger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
