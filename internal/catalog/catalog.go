// Package catalog loads property catalogs: YAML or JSON files that describe
// component fields as a preset plus explicit apiprop options.
//
//	title: Accounts API
//	version: 1.0.0
//	components:
//	  User:
//	    age:
//	      preset: int32
//	      title: Age
//	      minimum: 0
//	      required: true
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-apiprop/pkg/apiprop"
	"github.com/goliatone/go-apiprop/pkg/jsonschema"
	"github.com/goliatone/go-apiprop/pkg/openapi"
)

var (
	// ErrUnknownPreset is returned for a preset name LookupPreset does not
	// resolve.
	ErrUnknownPreset = errors.New("catalog: unknown preset")
	// ErrDuplicateProperty is returned when a component field is defined
	// twice across the loaded files.
	ErrDuplicateProperty = errors.New("catalog: duplicate property")
)

// Catalog is the merged content of one or more catalog files.
type Catalog struct {
	Title      string
	Version    string
	Components map[string]map[string]Property

	sources map[string]string
}

// Property is a single field entry. Options are applied after the preset.
type Property struct {
	Preset          string `json:"preset,omitempty" yaml:"preset,omitempty"`
	apiprop.Options `yaml:",inline"`
}

// Builder returns Api() with the preset and then the options applied.
func (p Property) Builder() (apiprop.Builder, error) {
	b := apiprop.Api()
	if name := strings.TrimSpace(p.Preset); name != "" {
		preset, ok := apiprop.LookupPreset(name)
		if !ok {
			return apiprop.Builder{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
		}
		b = preset(b)
	}
	return b.Apply(p.Options), nil
}

// Names returns the component names in sorted order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Components))
	for name := range c.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source reports the file a component field was loaded from.
func (c *Catalog) Source(component, field string) (string, bool) {
	if c == nil {
		return "", false
	}
	src, ok := c.sources[sourceKey(component, field)]
	return src, ok
}

// Len returns the number of properties across all components.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, fields := range c.Components {
		total += len(fields)
	}
	return total
}

// Register defines every property on d.
func (c *Catalog) Register(d *openapi.Components) error {
	if d == nil {
		return errors.New("catalog: openapi components are nil")
	}
	return c.each(func(component, field string, b apiprop.Builder) error {
		return d.Define(component, field, b)
	})
}

// Definitions returns the properties grouped per component for the JSON
// Schema bundle.
func (c *Catalog) Definitions() (map[string]jsonschema.Fields, error) {
	out := make(map[string]jsonschema.Fields)
	err := c.each(func(component, field string, b apiprop.Builder) error {
		if out[component] == nil {
			out[component] = make(jsonschema.Fields)
		}
		out[component][field] = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Catalog) each(fn func(component, field string, b apiprop.Builder) error) error {
	for _, component := range c.Names() {
		fields := c.Components[component]
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, field := range names {
			b, err := fields[field].Builder()
			if err != nil {
				return fmt.Errorf("catalog: %s.%s: %w", component, field, err)
			}
			if err := fn(component, field, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Catalog) add(component, field string, prop Property, source string) error {
	key := sourceKey(component, field)
	if prev, exists := c.sources[key]; exists {
		return fmt.Errorf("%w %s.%s (file %s, first defined in %s)", ErrDuplicateProperty, component, field, source, prev)
	}
	if c.Components[component] == nil {
		c.Components[component] = make(map[string]Property)
	}
	c.Components[component][field] = prop
	c.sources[key] = source
	return nil
}

func newCatalog() *Catalog {
	return &Catalog{
		Components: make(map[string]map[string]Property),
		sources:    make(map[string]string),
	}
}

func sourceKey(component, field string) string {
	return component + "." + field
}
