package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-apiprop/internal/logger"
	"github.com/goliatone/go-apiprop/pkg/apiprop"
)

// Option configures the loaders.
type Option func(*loader)

// WithLogger sets the logger used for per-file debug output. Without it
// the loaders use the logger stored on the context.
func WithLogger(l *logger.Logger) Option {
	return func(ld *loader) {
		if l != nil {
			ld.log = l
		}
	}
}

type loader struct {
	log *logger.Logger
}

// newLoader defaults to the logger stored on ctx.
func newLoader(ctx context.Context, opts []Option) *loader {
	ld := &loader{log: logger.FromContext(ctx).Component("catalog")}
	for _, opt := range opts {
		if opt != nil {
			opt(ld)
		}
	}
	return ld
}

// Load reads path as a directory with LoadFS or as a single file with
// LoadFile.
func Load(ctx context.Context, path string, opts ...Option) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if info.IsDir() {
		return LoadFS(ctx, os.DirFS(path), opts...)
	}
	return LoadFile(ctx, path, opts...)
}

// LoadFile reads a single catalog file.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	ld := newLoader(ctx, opts)
	cat := newCatalog()
	if err := ld.merge(cat, data, path); err != nil {
		return nil, err
	}
	return cat, nil
}

// LoadFS walks fsys and merges every .yaml, .yml and .json file. A
// component field defined in two files is an error.
func LoadFS(ctx context.Context, fsys fs.FS, opts ...Option) (*Catalog, error) {
	if fsys == nil {
		return nil, fmt.Errorf("catalog: filesystem is nil")
	}

	ld := newLoader(ctx, opts)
	cat := newCatalog()
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}
		return ld.merge(cat, data, path)
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

type documentFile struct {
	Title      string                         `json:"title" yaml:"title"`
	Version    string                         `json:"version" yaml:"version"`
	Components map[string]map[string]Property `json:"components" yaml:"components"`
}

func (ld *loader) merge(cat *Catalog, data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	if cat.Title == "" {
		cat.Title = sanitizeText(doc.Title)
	}
	if cat.Version == "" {
		cat.Version = strings.TrimSpace(doc.Version)
	}

	count := 0
	for rawComponent, fields := range doc.Components {
		component := strings.TrimSpace(rawComponent)
		if component == "" {
			return fmt.Errorf("catalog: file %s defines an empty component name", source)
		}
		for rawField, prop := range fields {
			field := strings.TrimSpace(rawField)
			if field == "" {
				return fmt.Errorf("catalog: file %s component %s defines an empty field name", source, component)
			}
			if name := strings.TrimSpace(prop.Preset); name != "" {
				if _, ok := apiprop.LookupPreset(name); !ok {
					return fmt.Errorf("%w %q (file %s, field %s.%s)", ErrUnknownPreset, name, source, component, field)
				}
			}
			prop.Title = sanitizeText(prop.Title)
			prop.Description = sanitizeText(prop.Description)
			if err := cat.add(component, field, prop, source); err != nil {
				return err
			}
			count++
		}
	}

	ld.log.Debug().Str("file", source).Int("properties", count).Msg("catalog file loaded")
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("catalog: parse %s: %w", source, err)
		}
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("catalog: parse %s: %w", source, err)
	}
	return doc, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
