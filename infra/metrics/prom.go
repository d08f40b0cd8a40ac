package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/bhp/core/metrics"
)

// PromSink records form activity in Prometheus metrics.
type PromSink struct {
	submissions      *prometheus.CounterVec
	latency          prometheus.Histogram
	validationErrors prometheus.Counter
	locations        prometheus.Gauge
	locationFailures prometheus.Counter
}

// NewPromSink registers the metrics on the default Prometheus registerer.
// The /metrics server is started separately with StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{}
	var err error
	if s.submissions, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bhp_submissions_total",
		Help: "Form submissions by terminal state",
	}, []string{"outcome"})); err != nil {
		return nil, err
	}
	if s.latency, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bhp_prediction_latency_seconds",
		Help:    "Time spent waiting for the prediction endpoint",
		Buckets: prometheus.DefBuckets,
	})); err != nil {
		return nil, err
	}
	if s.validationErrors, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bhp_validation_errors_total",
		Help: "Validation messages reported to users",
	})); err != nil {
		return nil, err
	}
	if s.locations, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bhp_locations_loaded",
		Help: "Number of locations returned by the last successful load",
	})); err != nil {
		return nil, err
	}
	if s.locationFailures, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bhp_location_load_failures_total",
		Help: "Failed location list loads",
	})); err != nil {
		return nil, err
	}
	return s, nil
}

// register adds c to reg, reusing an identical collector registered earlier.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordSubmission counts the outcome and observes the backend latency.
func (s *PromSink) RecordSubmission(ev coremetrics.SubmissionEvent) error {
	s.submissions.WithLabelValues(ev.State).Inc()
	if ev.ValidationErrors > 0 {
		s.validationErrors.Add(float64(ev.ValidationErrors))
	}
	if ev.Latency > 0 {
		s.latency.Observe(ev.Latency.Seconds())
	}
	return nil
}

// RecordLocationLoad updates the location gauge or the failure counter.
func (s *PromSink) RecordLocationLoad(ev coremetrics.LocationLoadEvent) error {
	if ev.Err != nil {
		s.locationFailures.Inc()
		return nil
	}
	s.locations.Set(float64(ev.Count))
	return nil
}
