package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the product server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer token attached to mutating requests.
	Token string
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport settings.
	Adapter ClientAdapter
	// LogLevel is the minimal level of the client logger.
	LogLevel string
}

// GetClientConfig builds and validates the client view of the configuration
// from env, args and the optional JSON file. It also returns the positional
// arguments left after the flags (the client command and its operands).
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	builder := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := builder.build()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		LogLevel: cfg.Server.LogLevel,
	}

	return clientCfg, builder.remainingArgs(), clientCfg.validate()
}
