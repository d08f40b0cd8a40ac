package app

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/bhp/config"
	"github.com/kilianp07/bhp/core/form"
	coremetrics "github.com/kilianp07/bhp/core/metrics"
	"github.com/kilianp07/bhp/infra/terminal"
	"github.com/kilianp07/bhp/mockapi"
)

func TestService_AgainstMockBackend(t *testing.T) {
	mockCfg := config.MockConfig{}
	mockCfg.SetDefaults()
	backend := httptest.NewServer(mockapi.NewWithRegistry(mockCfg, prometheus.NewRegistry()).Handler())
	defer backend.Close()

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.API.BaseURL = backend.URL
	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()
	assert.IsType(t, coremetrics.NopSink{}, svc.Sink)

	var opts terminal.Options
	var alerts bytes.Buffer
	require.NoError(t, svc.Loader(&opts, terminal.NewAlerter(&alerts)).Load(context.Background()))
	assert.Equal(t, mockCfg.Locations, opts.Values())
	assert.Empty(t, alerts.String())

	var out bytes.Buffer
	ctrl := svc.Controller(terminal.NewDisplay(&out))
	res := ctrl.HandleSubmit(context.Background(), form.FormValues{
		form.FieldTotalSqft: "1200", form.FieldBHK: "2", form.FieldBath: "2",
		form.FieldBuiltYear: "2015", form.FieldLocation: opts.Resolve("8"),
	})
	assert.Equal(t, form.StateDisplayed, res.State)
	assert.Contains(t, out.String(), "85.5")
	assert.Contains(t, out.String(), "Whitefield")
}

func TestService_LoaderAlertsWhenBackendDown(t *testing.T) {
	backend := httptest.NewServer(nil)
	url := backend.URL
	backend.Close()

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.API.BaseURL = url
	svc, err := New(cfg)
	require.NoError(t, err)

	var opts terminal.Options
	var alerts bytes.Buffer
	assert.Error(t, svc.Loader(&opts, terminal.NewAlerter(&alerts)).Load(context.Background()))
	assert.Equal(t, form.LocationAlert+"\n", alerts.String())
	assert.Zero(t, opts.Len())
}
