package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/bhp/core/metrics"
)

type lineReceiver struct {
	mu     sync.Mutex
	bodies []string
}

func (l *lineReceiver) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		l.mu.Lock()
		l.bodies = append(l.bodies, strings.TrimSpace(string(data)))
		l.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestInfluxSink_RecordSubmission(t *testing.T) {
	rec := &lineReceiver{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()
	now := time.Now()
	ev := coremetrics.SubmissionEvent{
		ID:         "abc",
		State:      "displayed",
		Location:   "Whitefield",
		PriceLakhs: 85.5,
		Latency:    150 * time.Millisecond,
		Time:       now,
	}
	if err := sink.RecordSubmission(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}
	p := write.NewPointWithMeasurement("prediction_submission").
		AddTag("state", "displayed").
		AddTag("location", "Whitefield").
		AddField("id", "abc").
		AddField("validation_errors", 0).
		AddField("price_lakhs", 85.5).
		AddField("latency_ms", 150.0).
		SetTime(now)
	expected := strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond))
	if len(rec.bodies) != 1 || rec.bodies[0] != expected {
		t.Errorf("unexpected body: %v", rec.bodies)
	}
}

func TestInfluxSink_RecordLocationLoadError(t *testing.T) {
	rec := &lineReceiver{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	sink := NewInfluxSink(srv.URL+"/api/v2/write", "token", "org", "bucket")
	defer sink.Close()
	now := time.Now()
	if err := sink.RecordLocationLoad(coremetrics.LocationLoadEvent{Err: errors.New("refused"), Time: now}); err != nil {
		t.Fatalf("record error: %v", err)
	}
	p := write.NewPointWithMeasurement("location_load").
		AddTag("status", "error").
		AddField("count", 0).
		AddField("latency_ms", 0.0).
		AddField("error", "refused").
		SetTime(now)
	expected := strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond))
	if len(rec.bodies) != 1 || rec.bodies[0] != expected {
		t.Errorf("unexpected body: %v", rec.bodies)
	}
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			called = true
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}))
	defer srv.Close()

	cfg := coremetrics.Config{
		InfluxURL:    srv.URL + "/api/v2/write",
		InfluxToken:  "tok",
		InfluxOrg:    "org",
		InfluxBucket: "bucket",
	}
	sink := NewInfluxSinkWithFallback(cfg)
	if _, ok := sink.(*InfluxSink); ok {
		t.Fatalf("expected NopSink on failing health check")
	}
	if !called {
		t.Fatalf("health endpoint not called")
	}
}
