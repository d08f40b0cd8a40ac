package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kilianp07/bhp/config"
	"github.com/kilianp07/bhp/core/model"
	"github.com/kilianp07/bhp/infra/logger"
)

const (
	PathLocations = "/get_location_names"
	PathPredict   = "/predict_home_price"
)

var (
	// ErrUnexpectedStatus is returned for any non-2xx answer.
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrMalformedResponse is returned when the body does not carry the expected fields.
	ErrMalformedResponse = errors.New("malformed response")
)

// Client talks to the home price prediction backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a client for cfg.BaseURL. A zero timeout leaves requests
// unbounded; only the caller's context can abort them.
func New(cfg config.APIConfig, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		log:     logger.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root without trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// LocationNames fetches the location names accepted by the model.
func (c *Client) LocationNames(ctx context.Context) ([]string, error) {
	var body struct {
		Locations *[]string `json:"locations"`
	}
	if err := c.do(ctx, http.MethodGet, PathLocations, nil, &body); err != nil {
		return nil, err
	}
	if body.Locations == nil {
		return nil, fmt.Errorf("%w: missing locations", ErrMalformedResponse)
	}
	return *body.Locations, nil
}

// PredictHomePrice posts the request and returns the estimate.
func (c *Client) PredictHomePrice(ctx context.Context, req model.PredictionRequest) (model.PredictionResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return model.PredictionResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}
	var body struct {
		EstimatedPriceLakhs *float64 `json:"estimated_price_lakhs"`
		Description         *string  `json:"description"`
	}
	if err := c.do(ctx, http.MethodPost, PathPredict, payload, &body); err != nil {
		return model.PredictionResponse{}, err
	}
	if body.EstimatedPriceLakhs == nil || body.Description == nil {
		return model.PredictionResponse{}, fmt.Errorf("%w: missing estimated_price_lakhs or description", ErrMalformedResponse)
	}
	return model.PredictionResponse{EstimatedPriceLakhs: *body.EstimatedPriceLakhs, Description: *body.Description}, nil
}

// Ping checks that the backend root answers with a 2xx status.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debugw("backend request", map[string]any{"method": method, "path": path})
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d, body: %s", ErrUnexpectedStatus, resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
