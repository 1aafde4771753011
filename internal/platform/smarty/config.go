// Package smarty provides a client for the SmartyStreets US Street address API.
package smarty

import (
	"errors"
	"os"
	"time"
)

// DefaultBaseURL is the production US Street API endpoint.
const DefaultBaseURL = "https://us-street.api.smarty.com"

// Config holds configuration for the SmartyStreets API client.
// The service authenticates with a website key: the key goes in the query
// string and the registered hostname in the Referer header.
type Config struct {
	AuthKey  string        // Website key for authentication
	Hostname string        // Hostname registered with the key (sent as Referer)
	BaseURL  string        // Base URL for the API
	License  string        // License value sent with each lookup
	Timeout  time.Duration // HTTP request timeout
}

// LoadConfig loads SmartyStreets configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("SMARTY_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		AuthKey:  os.Getenv("SMARTY_AUTH_WEB"),
		Hostname: os.Getenv("SMARTY_WEBSITE_DOMAIN"),
		BaseURL:  base,
		License:  "us-core-cloud",
		Timeout:  10 * time.Second,
	}
}

// Validate reports whether the required credentials are present.
// A missing value is a startup-time error, not a runtime one.
func (c Config) Validate() error {
	if c.AuthKey == "" {
		return errors.New("smarty: SMARTY_AUTH_WEB is not set")
	}
	if c.Hostname == "" {
		return errors.New("smarty: SMARTY_WEBSITE_DOMAIN is not set")
	}
	return nil
}
