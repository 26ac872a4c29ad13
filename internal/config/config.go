// Package config resolves the apiprop command configuration from flags,
// APIPROP_* environment variables, an optional YAML file and defaults, in
// that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-apiprop/internal/logger"
)

// EnvPrefix is prepended to every env tag.
const EnvPrefix = "APIPROP_"

const (
	FormatJSON = "json"
	FormatYAML = "yaml"

	DialectOpenAPI    = "openapi"
	DialectJSONSchema = "jsonschema"
)

// Config holds the resolved settings. Zero values mean "not provided" while
// layering, so a lower layer can fill them.
type Config struct {
	// Catalog is a catalog file or a directory of catalog files.
	Catalog string `env:"CATALOG" yaml:"catalog"`
	// Output is the destination file. Empty writes to stdout.
	Output string `env:"OUTPUT" yaml:"output"`
	Format string `env:"FORMAT" yaml:"format"`
	// Dialect selects the schema family written by build.
	Dialect string `env:"DIALECT" yaml:"dialect"`
	// Title and Version override the catalog's own values. They have no
	// default here; the build command falls back to the catalog.
	Title    string `env:"TITLE" yaml:"title"`
	Version  string `env:"VERSION" yaml:"version"`
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`
	// Pretty and Validate are pointers so a higher layer can switch them
	// off; nil means "not provided".
	Pretty   *bool  `env:"LOG_PRETTY" yaml:"pretty"`
	Validate *bool  `env:"VALIDATE" yaml:"validate"`

	// File is the YAML config file path. It is read from flags or env only.
	File string `env:"CONFIG" yaml:"-"`
}

// Defaults returns the values used when no layer provides one.
func Defaults() Config {
	return Config{
		Format:   FormatJSON,
		Dialect:  DialectOpenAPI,
		LogLevel: "info",
	}
}

// PrettyLogs reports whether console log output was requested.
func (c *Config) PrettyLogs() bool {
	return c.Pretty != nil && *c.Pretty
}

// ValidateDocument reports whether the built document must be validated.
func (c *Config) ValidateDocument() bool {
	return c.Validate != nil && *c.Validate
}

func (c *Config) validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("config: unsupported format %q (want %s or %s)", c.Format, FormatJSON, FormatYAML)
	}

	c.Dialect = strings.ToLower(strings.TrimSpace(c.Dialect))
	switch c.Dialect {
	case DialectOpenAPI, DialectJSONSchema:
	default:
		return fmt.Errorf("config: unsupported dialect %q (want %s or %s)", c.Dialect, DialectOpenAPI, DialectJSONSchema)
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
