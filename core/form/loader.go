package form

import (
	"context"
	"fmt"
	"time"

	"github.com/kilianp07/bhp/core/metrics"
)

// Loader fills an option list with the location names known to the backend.
// It is meant to run once at startup and never retries.
type Loader struct {
	api     PredictionAPI
	list    OptionList
	alerter Alerter
	options
}

// NewLoader creates a loader appending to list and warning through alerter.
func NewLoader(api PredictionAPI, list OptionList, alerter Alerter, opts ...Option) *Loader {
	return &Loader{api: api, list: list, alerter: alerter, options: newOptions(opts)}
}

// Load fetches the locations and appends them in order. On failure a single
// alert is raised, the list is left untouched and the error is returned.
func (l *Loader) Load(ctx context.Context) error {
	start := time.Now()
	names, err := l.fetch(ctx)
	ev := metrics.LocationLoadEvent{Count: len(names), Err: err, Latency: time.Since(start), Time: l.now()}
	if rec, ok := l.sink.(metrics.LocationLoadRecorder); ok {
		if rerr := rec.RecordLocationLoad(ev); rerr != nil {
			l.log.Warnf("record location load: %v", rerr)
		}
	}
	if err != nil {
		l.log.Errorf("load locations: %v", err)
		if l.alerter != nil {
			l.alerter.Alert(LocationAlert)
		}
		return fmt.Errorf("load locations: %w", err)
	}
	for _, n := range names {
		l.list.Append(n)
	}
	l.log.Infof("loaded %d locations", len(names))
	return nil
}

func (l *Loader) fetch(ctx context.Context) (names []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			names, err = nil, fmt.Errorf("location names panicked: %v", r)
		}
	}()
	return l.api.LocationNames(ctx)
}
