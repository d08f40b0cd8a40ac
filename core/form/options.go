package form

import (
	"time"

	"github.com/kilianp07/bhp/core/logger"
	"github.com/kilianp07/bhp/core/metrics"
)

type options struct {
	log  logger.Logger
	sink metrics.MetricsSink
	now  func() time.Time
}

// Option customises a Controller or a Loader.
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMetrics sets the sink receiving submission and location load events.
func WithMetrics(s metrics.MetricsSink) Option {
	return func(o *options) {
		if s != nil {
			o.sink = s
		}
	}
}

// WithClock overrides the source of the current time, which decides the
// current year used for the property age and the future year check.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func newOptions(opts []Option) options {
	o := options{log: logger.Nop{}, sink: metrics.NopSink{}, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
