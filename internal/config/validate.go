package config

import (
	"fmt"
	"net/url"
)

// Sink modes accepted by SinkConfig.Mode.
const (
	SinkModeStore = "store"
	SinkModeRelay = "relay"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("ratelimit.per_minute must be > 0 when enabled (got %d)", c.RateLimit.PerMinute)
	}

	switch c.Sink.Mode {
	case SinkModeStore:
	case SinkModeRelay:
		if c.Sink.RelayURL == "" {
			return fmt.Errorf("sink.relay_url is required when sink.mode is %q", SinkModeRelay)
		}
		u, err := url.Parse(c.Sink.RelayURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("sink.relay_url must be an absolute URL (got %q)", c.Sink.RelayURL)
		}
		if c.Sink.RelayTimeout <= 0 {
			return fmt.Errorf("sink.relay_timeout must be > 0 (got %v)", c.Sink.RelayTimeout)
		}
	default:
		return fmt.Errorf("sink.mode must be %q or %q (got %q)", SinkModeStore, SinkModeRelay, c.Sink.Mode)
	}

	return nil
}
