package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/bhp/core/metrics"
)

func TestPromSink_RecordSubmission(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordSubmission(coremetrics.SubmissionEvent{State: "displayed", Latency: 150 * time.Millisecond}))
	require.NoError(t, sink.RecordSubmission(coremetrics.SubmissionEvent{State: "rejected", ValidationErrors: 3}))
	require.NoError(t, sink.RecordSubmission(coremetrics.SubmissionEvent{State: "displayed", Latency: time.Second}))

	expected := `
# HELP bhp_submissions_total Form submissions by terminal state
# TYPE bhp_submissions_total counter
bhp_submissions_total{outcome="displayed"} 2
bhp_submissions_total{outcome="rejected"} 1
`
	if err := testutil.CollectAndCompare(sink.submissions, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(sink.validationErrors))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.latency))
}

func TestPromSink_RecordLocationLoad(t *testing.T) {
	sink, err := NewPromSinkWithRegistry(prometheus.NewRegistry())
	require.NoError(t, err)

	require.NoError(t, sink.RecordLocationLoad(coremetrics.LocationLoadEvent{Count: 42}))
	assert.Equal(t, 42.0, testutil.ToFloat64(sink.locations))

	require.NoError(t, sink.RecordLocationLoad(coremetrics.LocationLoadEvent{Err: errors.New("refused")}))
	assert.Equal(t, 42.0, testutil.ToFloat64(sink.locations))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.locationFailures))
}

func TestPromSink_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	second, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, first.RecordSubmission(coremetrics.SubmissionEvent{State: "failed"}))
	require.NoError(t, second.RecordSubmission(coremetrics.SubmissionEvent{State: "failed"}))
	assert.Equal(t, 2.0, testutil.ToFloat64(second.submissions.WithLabelValues("failed")))
}
