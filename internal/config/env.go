package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads APIPROP_* variables. A nil environ uses the process
// environment.
func parseEnv(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: read environment: %w", err)
	}
	return cfg, nil
}
