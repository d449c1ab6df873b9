package cliconfig

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/bft-labs/payprobe/internal/catalog"
	"github.com/bft-labs/payprobe/pkg/log"
	"github.com/bft-labs/payprobe/pkg/probe"
)

// DefaultEndpoint is the purchase endpoint probed when none is configured.
const DefaultEndpoint = "https://app.for4payments.com.br/api/v1/transaction.purchase"

// Config holds CLI configuration for payprobe.
type Config struct {
	Endpoint  string
	SecretKey string

	Timeout      time.Duration
	MaxBodyBytes int

	Catalog    string
	TrialsFile string
	Watch      bool
	Debounce   time.Duration

	// Profile overrides for the built-in catalogs; zero values keep the sample data.
	CPF    string
	Amount int

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Endpoint:     DefaultEndpoint,
		Timeout:      10 * time.Second,
		MaxBodyBytes: int(probe.DefaultMaxBodyBytes),
		Catalog:      catalog.Formats,
		Debounce:     200 * time.Millisecond,
		LogLevel:     "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if u, err := url.Parse(c.Endpoint); err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("endpoint %q must be an absolute URL", c.Endpoint)
	}

	if c.TrialsFile == "" {
		if c.SecretKey == "" {
			return fmt.Errorf("secret-key is required (or PAYPROBE_SECRET_KEY)")
		}
		if _, err := catalog.Build(c.Catalog, catalog.DefaultProfile(), ""); err != nil {
			return err
		}
	}
	if c.Watch && c.TrialsFile == "" {
		return fmt.Errorf("watch requires a trials file")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive")
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}
	if c.Amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Profile returns the catalog profile with this configuration's overrides.
func (c *Config) Profile() catalog.Profile {
	p := catalog.DefaultProfile()
	if c.CPF != "" {
		p.CPF = c.CPF
	}
	if c.Amount > 0 {
		p.Amount = c.Amount
	}
	return p
}

// Masked returns a copy that is safe to log.
func (c Config) Masked() Config {
	if c.SecretKey != "" {
		c.SecretKey = "*****"
	}
	return c
}

// configSetter applies values unless the corresponding flag was set
// explicitly on the command line.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString is setInt for values that arrive as strings (env vars).
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setInt(flag, i, dst)
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
