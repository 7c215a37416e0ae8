// Package config loads environment-driven settings. Everything here
// is optional: with no FOCUSFLOW_* variables set the app runs fully
// local with the defaults below.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "focusflow"

// Config holds settings parsed from FOCUSFLOW_* environment variables.
type Config struct {
	// Backend overrides store selection: "json", "sqlite" or "rest".
	// Empty means infer from the store path extension.
	Backend string `envconfig:"BACKEND" default:""`

	// Remote document store (Backend=rest).
	APIURL       string        `envconfig:"API_URL" default:""`
	APIToken     string        `envconfig:"API_TOKEN" default:""`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"5s"`

	// OAuth2 device flow for provider-based login. All four must be
	// set to use 'focusflow login --device'.
	OAuthClientID      string   `envconfig:"OAUTH_CLIENT_ID" default:""`
	OAuthDeviceAuthURL string   `envconfig:"OAUTH_DEVICE_AUTH_URL" default:""`
	OAuthTokenURL      string   `envconfig:"OAUTH_TOKEN_URL" default:""`
	OAuthUserinfoURL   string   `envconfig:"OAUTH_USERINFO_URL" default:""`
	OAuthScopes        []string `envconfig:"OAUTH_SCOPES" default:"openid,profile"`

	// Diagnostics
	Debug   bool   `envconfig:"DEBUG" default:"false"`
	LogFile string `envconfig:"LOG_FILE" default:""`
}

func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case "", "json", "sqlite", "rest":
	default:
		return fmt.Errorf("invalid backend %q (expected json, sqlite or rest)", c.Backend)
	}
	if c.Backend == "rest" && c.APIURL == "" {
		return fmt.Errorf("backend=rest requires FOCUSFLOW_API_URL")
	}
	return nil
}

// DeviceFlowConfigured reports whether enough OAuth settings are
// present to run the device-code login.
func (c *Config) DeviceFlowConfigured() bool {
	return c.OAuthClientID != "" &&
		c.OAuthDeviceAuthURL != "" &&
		c.OAuthTokenURL != "" &&
		c.OAuthUserinfoURL != ""
}
