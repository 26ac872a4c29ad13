package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-apiprop/internal/catalog"
	"github.com/goliatone/go-apiprop/internal/config"
	"github.com/goliatone/go-apiprop/pkg/jsonschema"
	"github.com/goliatone/go-apiprop/pkg/openapi"
)

const (
	defaultTitle   = "API"
	defaultVersion = "0.0.0"
)

// Build returns the build command.
func Build(flags *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build component schemas from a property catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := resolve(cmd, flags)
			if err != nil {
				return err
			}
			if cfg.Catalog == "" {
				return errors.New("build: --catalog is required")
			}

			ctx := cmd.Context()

			cat, err := catalog.Load(ctx, cfg.Catalog)
			if err != nil {
				return err
			}
			log.Info().Str("catalog", cfg.Catalog).Int("properties", cat.Len()).Msg("catalog loaded")

			title := firstNonEmpty(cfg.Title, cat.Title, defaultTitle)
			docVersion := firstNonEmpty(cfg.Version, cat.Version, defaultVersion)

			var doc any
			switch cfg.Dialect {
			case config.DialectJSONSchema:
				defs, err := cat.Definitions()
				if err != nil {
					return err
				}
				if cfg.ValidateDocument() {
					log.Warn().Msg("validation applies to the openapi dialect only")
				}
				doc = jsonschema.Bundle(title, defs)
			default:
				components := openapi.NewComponents()
				if err := cat.Register(components); err != nil {
					return err
				}
				document := components.Document(title, docVersion)
				if cfg.ValidateDocument() {
					if err := document.Validate(ctx); err != nil {
						return fmt.Errorf("build: validate document: %w", err)
					}
					log.Debug().Msg("document is valid")
				}
				doc = document
			}

			data, err := encode(doc, cfg.Format)
			if err != nil {
				return err
			}
			if err := write(cmd.OutOrStdout(), cfg.Output, data); err != nil {
				return err
			}
			if cfg.Output != "" {
				log.Info().Str("output", cfg.Output).Msg("schemas written")
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Catalog, "catalog", "c", "", "catalog file or directory (env APIPROP_CATALOG)")
	f.StringVarP(&flags.Output, "output", "o", "", "output file, stdout when empty")
	f.StringVarP(&flags.Format, "format", "f", "", "output format: json or yaml")
	f.StringVar(&flags.Title, "title", "", "document title, defaults to the catalog title")
	f.StringVar(&flags.Version, "doc-version", "", "document version, defaults to the catalog version")
	f.Bool("validate", false, "validate the OpenAPI document before writing")

	return cmd
}

// encode marshals v as indented JSON, or as block style YAML keeping the
// JSON key order.
func encode(v any, format string) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("build: encode json: %w", err)
	}
	if format != config.FormatYAML {
		return append(data, '\n'), nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("build: convert yaml: %w", err)
	}
	clearStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("build: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("build: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		clearStyle(child)
	}
}

func write(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("build: write %s: %w", path, err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
