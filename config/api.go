package config

import (
	"fmt"
	"net/url"
)

// DefaultBaseURL is the hosted prediction backend.
const DefaultBaseURL = "https://house-prediction-w0vn.onrender.com"

// APIConfig locates the prediction backend.
type APIConfig struct {
	BaseURL string `json:"base_url"`
	// TimeoutSeconds bounds each request. Zero means no timeout.
	TimeoutSeconds int `json:"timeout_seconds"`
}

func (c *APIConfig) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
}

func (c APIConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute http(s) URL, got %q", c.BaseURL)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("api.timeout_seconds must not be negative")
	}
	return nil
}
