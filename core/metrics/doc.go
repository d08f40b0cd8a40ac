package metrics

// Package metrics defines the events emitted by the form controller and the
// location loader, and the sink interfaces recording them. Implementations
// such as PromSink and InfluxSink live in infra/metrics and can be combined
// with NewMultiSink there.
