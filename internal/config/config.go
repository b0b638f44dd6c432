// Package config holds the DNG connection configuration.
//
// Configuration is read from the environment once at startup and held as an
// immutable value for the process lifetime. Missing values are not a startup
// failure: the upstream client reports a ConfigurationError on first use, so
// the server can come up (and answer health/tooling probes) without
// credentials present.
package config

import (
	"os"
	"strings"
)

// Environment variable names for the DNG connection.
const (
	EnvBaseURL  = "DNG_BASE_URL"
	EnvUsername = "DNG_USERNAME"
	EnvAPIKey   = "DNG_API_KEY"
)

// Config is the immutable connection configuration for the upstream DNG
// server. Construct it with FromEnv, or literally in tests.
type Config struct {
	// BaseURL is the DNG server root, e.g. "https://dng.example.com/rm".
	// Never carries a trailing slash.
	BaseURL string

	// Username authenticates against the DNG server.
	Username string

	// APIKey is the API key or password paired with Username.
	APIKey string
}

// FromEnv reads the connection configuration from the environment.
// The base URL is normalized without a trailing slash.
func FromEnv() Config {
	return Config{
		BaseURL:  NormalizeBaseURL(os.Getenv(EnvBaseURL)),
		Username: os.Getenv(EnvUsername),
		APIKey:   os.Getenv(EnvAPIKey),
	}
}

// NormalizeBaseURL trims whitespace and any trailing slashes so request
// URLs can be built by plain concatenation.
func NormalizeBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

// Missing returns the names of the environment variables whose values are
// absent or empty, in a fixed order. An empty result means the
// configuration is complete.
func (c Config) Missing() []string {
	var missing []string
	if c.BaseURL == "" {
		missing = append(missing, EnvBaseURL)
	}
	if c.Username == "" {
		missing = append(missing, EnvUsername)
	}
	if c.APIKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	return missing
}

// Complete reports whether all required values are present.
func (c Config) Complete() bool {
	return len(c.Missing()) == 0
}
