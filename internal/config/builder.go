package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Load layers flags over the environment over the config file over
// defaults. environ replaces the process environment when non-nil.
func Load(flags Config, environ map[string]string) (*Config, error) {
	return newBuilder().
		withLayer(flags).
		withEnv(environ).
		withFile().
		withLayer(Defaults()).
		build()
}

type builder struct {
	layers []Config
	err    error
}

func newBuilder() *builder {
	return &builder{layers: make([]Config, 0, 4)}
}

func (b *builder) withLayer(cfg Config) *builder {
	b.layers = append(b.layers, cfg)
	return b
}

func (b *builder) withEnv(environ map[string]string) *builder {
	cfg, err := parseEnv(environ)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.layers = append(b.layers, cfg)
	return b
}

// withFile reads the file named by the first layer that sets File.
func (b *builder) withFile() *builder {
	var path string
	for _, layer := range b.layers {
		if layer.File != "" {
			path = layer.File
			break
		}
	}
	if path == "" {
		return b
	}

	cfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.layers = append(b.layers, cfg)
	return b
}

// build merges layers in order. Earlier layers win because mergo only fills
// fields that are still empty. WithoutDereference keeps a set *bool holding
// false from being filled by a lower layer.
func (b *builder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("config: build: %w", b.err)
	}

	cfg := new(Config)
	for _, layer := range b.layers {
		if err := mergo.Merge(cfg, layer, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("config: merge: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
