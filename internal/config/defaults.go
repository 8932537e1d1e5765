package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL         = "https://api.stockfighter.io/ob/api"
	DefaultAPITimeout      = 30 * time.Second
	DefaultDBPort          = 5432
	DefaultDBSSLMode       = "prefer"
	DefaultMaxConns        = 10
	DefaultMinConns        = 2
	DefaultSyncInterval    = 5 * time.Minute
	DefaultPollInterval    = 30 * time.Second
	DefaultPollConcurrency = 10
	DefaultPollTimeout     = 10 * time.Second
	DefaultBatchSize       = 500
	DefaultFlushInterval   = 1 * time.Second
	DefaultHealthPort      = 8080
)

func (c *GathererConfig) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = Duration(DefaultAPITimeout)
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Registry defaults
	if c.Registry.SyncInterval == 0 {
		c.Registry.SyncInterval = Duration(DefaultSyncInterval)
	}

	// Poller defaults
	if c.Poller.Interval == 0 {
		c.Poller.Interval = Duration(DefaultPollInterval)
	}
	if c.Poller.Concurrency == 0 {
		c.Poller.Concurrency = DefaultPollConcurrency
	}
	if c.Poller.Timeout == 0 {
		c.Poller.Timeout = Duration(DefaultPollTimeout)
	}

	// Writer defaults
	if c.Writer.BatchSize == 0 {
		c.Writer.BatchSize = DefaultBatchSize
	}
	if c.Writer.FlushInterval == 0 {
		c.Writer.FlushInterval = Duration(DefaultFlushInterval)
	}

	// Health defaults
	if c.Health.Port == 0 {
		c.Health.Port = DefaultHealthPort
	}
}
