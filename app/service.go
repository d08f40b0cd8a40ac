package app

import (
	"context"
	"fmt"

	"github.com/kilianp07/bhp/config"
	"github.com/kilianp07/bhp/core/form"
	coremetrics "github.com/kilianp07/bhp/core/metrics"
	"github.com/kilianp07/bhp/infra/api"
	"github.com/kilianp07/bhp/infra/logger"
	"github.com/kilianp07/bhp/infra/metrics"
)

// Service wires the backend client, metrics and logging behind the form.
type Service struct {
	Config *config.Config
	Client *api.Client
	Sink   coremetrics.MetricsSink
	log    logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logg := logger.New("service")
	sink, err := metrics.NewSink(cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	client := api.New(cfg.API, api.WithLogger(logger.New("api-client")))
	logg.Debugf("backend at %s", client.BaseURL())
	return &Service{Config: cfg, Client: client, Sink: sink, log: logg}, nil
}

// Loader returns a location loader filling list.
func (s *Service) Loader(list form.OptionList, alerter form.Alerter) *form.Loader {
	return form.NewLoader(s.Client, list, alerter,
		form.WithLogger(logger.New("location-loader")),
		form.WithMetrics(s.Sink))
}

// Controller returns a form controller rendering on display.
func (s *Service) Controller(display form.Display) *form.Controller {
	return form.NewController(s.Client, display,
		form.WithLogger(logger.New("form-controller")),
		form.WithMetrics(s.Sink))
}

// ServeMetrics exposes /metrics until ctx is done when Prometheus is enabled.
func (s *Service) ServeMetrics(ctx context.Context) {
	if !s.Config.Metrics.PrometheusEnabled {
		return
	}
	go func() {
		if err := metrics.StartPromServer(ctx, s.Config.Metrics.PrometheusPort); err != nil {
			s.log.Errorf("prom server: %v", err)
		}
	}()
}

// Close releases resources held by the metrics sinks.
func (s *Service) Close() error {
	closeSink(s.Sink)
	return nil
}

func closeSink(sink coremetrics.MetricsSink) {
	switch v := sink.(type) {
	case *metrics.InfluxSink:
		v.Close()
	case *metrics.MultiSink:
		for _, inner := range v.Sinks {
			closeSink(inner)
		}
	}
}
