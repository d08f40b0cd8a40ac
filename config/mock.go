package config

import "fmt"

// MockConfig drives the local mock backend.
type MockConfig struct {
	Address             string   `json:"address"`
	Locations           []string `json:"locations"`
	EstimatedPriceLakhs float64  `json:"estimated_price_lakhs"`
}

func (c *MockConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":5000"
	}
	if len(c.Locations) == 0 {
		c.Locations = []string{
			"1st Phase JP Nagar", "Electronic City", "Hebbal", "Indira Nagar",
			"Koramangala", "Marathahalli", "Rajaji Nagar", "Whitefield", "Yelahanka",
		}
	}
	if c.EstimatedPriceLakhs == 0 {
		c.EstimatedPriceLakhs = 85.5
	}
}

func (c MockConfig) Validate() error {
	if c.EstimatedPriceLakhs < 0 {
		return fmt.Errorf("mock.estimated_price_lakhs must not be negative")
	}
	return nil
}
