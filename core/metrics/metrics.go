package metrics

import "time"

// SubmissionEvent describes one pass of the form controller.
type SubmissionEvent struct {
	ID               string
	State            string // terminal state: displayed, failed or rejected
	Location         string
	ValidationErrors int
	PriceLakhs       float64
	Latency          time.Duration // time spent waiting on the backend
	Time             time.Time
}

// MetricsSink records submission outcomes.
type MetricsSink interface {
	RecordSubmission(ev SubmissionEvent) error
}

// LocationLoadEvent describes one run of the location loader.
type LocationLoadEvent struct {
	Count   int
	Err     error
	Latency time.Duration
	Time    time.Time
}

// LocationLoadRecorder is implemented by sinks able to record location loads.
type LocationLoadRecorder interface {
	RecordLocationLoad(ev LocationLoadEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSubmission(SubmissionEvent) error     { return nil }
func (NopSink) RecordLocationLoad(LocationLoadEvent) error { return nil }
