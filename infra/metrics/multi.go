package metrics

import coremetrics "github.com/kilianp07/bhp/core/metrics"

// MultiSink fanouts events to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSubmission forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordSubmission(ev coremetrics.SubmissionEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordSubmission(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordLocationLoad forwards location loads to sinks supporting them.
func (m *MultiSink) RecordLocationLoad(ev coremetrics.LocationLoadEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.LocationLoadRecorder); ok {
			if err := rec.RecordLocationLoad(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// NewSink builds the sinks enabled in cfg. It returns a NopSink when none is
// enabled and a MultiSink when several are.
func NewSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	var sinks []coremetrics.MetricsSink
	if cfg.PrometheusEnabled {
		sink, err := NewPromSink()
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}
	if cfg.InfluxEnabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
