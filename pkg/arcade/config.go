package arcade

import (
	"fmt"
	"net/url"
	"time"
)

const (
	DefaultBaseURL        = "https://api.arcade.dev"
	DefaultTimeout        = 30 * time.Second
	DefaultRetryAttempts  = 3
	DefaultRetryBaseDelay = time.Second
	DefaultRetryMaxDelay  = 10 * time.Second
	DefaultToolsEndpoint  = "/v1/tools"

	// PlaceholderAPIKey is the value shipped in example env files. It is
	// treated as "not configured".
	PlaceholderAPIKey = "your_arcade_api_key_here"
)

// Endpoints holds the upstream paths, overridable for self-hosted instances.
type Endpoints struct {
	Tools string
}

// Config is the immutable configuration of a Client.
type Config struct {
	APIKey  string
	BaseURL string
	// Timeout bounds every single attempt, not the whole retry sequence.
	Timeout       time.Duration
	RetryAttempts int
	// RetryBaseDelay and RetryMaxDelay shape the backoff: min(base*2^n, max).
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
	// RetryJitter adds a random extra delay of up to RetryJitter*delay to each
	// backoff. Zero disables jitter.
	RetryJitter float64
	Endpoints   Endpoints
}

// HasAPIKey reports whether a usable API key is present.
func HasAPIKey(key string) bool {
	return key != "" && key != PlaceholderAPIKey
}

// WithDefaults returns a copy of c with zero fields replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = DefaultRetryAttempts
	}
	if c.RetryBaseDelay <= 0 {
		c.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if c.RetryMaxDelay <= 0 {
		c.RetryMaxDelay = DefaultRetryMaxDelay
	}
	if c.Endpoints.Tools == "" {
		c.Endpoints.Tools = DefaultToolsEndpoint
	}
	return c
}

// Validate checks that the configuration can produce a working client.
func (c Config) Validate() error {
	if !HasAPIKey(c.APIKey) {
		return ErrMissingAPIKey
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base URL %q: missing host", c.BaseURL)
	}
	if c.RetryJitter < 0 || c.RetryJitter > 1 {
		return fmt.Errorf("retry jitter must be within [0, 1], got %v", c.RetryJitter)
	}
	if c.RetryBaseDelay > c.RetryMaxDelay {
		return fmt.Errorf("retry base delay %s exceeds max delay %s", c.RetryBaseDelay, c.RetryMaxDelay)
	}
	return nil
}
