package client

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single submission request
const DefaultTimeout = 10 * time.Second

// Config is injected once at construction; the controller never reads the environment.
type Config struct {
	// BaseURL of the intake service, e.g. https://api.example.com
	BaseURL string
	Timeout time.Duration
}

// Validate checks the configuration and applies defaults
func (c *Config) Validate() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("base URL must be an absolute http(s) URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("base URL must be an absolute http(s) URL")
	}

	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}
