package openapi

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-apiprop/pkg/apiprop"
)

// DefaultOpenAPIVersion is written by Components.Document.
const DefaultOpenAPIVersion = "3.0.3"

// Components collects decorated fields into named object schemas, the way a
// documentation decorator attaches metadata to the fields of a declared type.
// It is not safe for concurrent use.
type Components struct {
	objects map[string]map[string]apiprop.Builder
}

// NewComponents returns an empty registry.
func NewComponents() *Components {
	return &Components{objects: make(map[string]map[string]apiprop.Builder)}
}

// Define attaches b to field of component. Defining the same field again
// replaces the previous builder.
func (c *Components) Define(component, field string, b apiprop.Builder) error {
	if c == nil {
		return errors.New("openapi: components registry is nil")
	}
	component = strings.TrimSpace(component)
	field = strings.TrimSpace(field)
	if component == "" {
		return errors.New("openapi: component name is required")
	}
	if field == "" {
		return fmt.Errorf("openapi: component %s: field name is required", component)
	}
	if c.objects == nil {
		c.objects = make(map[string]map[string]apiprop.Builder)
	}
	fields, ok := c.objects[component]
	if !ok {
		fields = make(map[string]apiprop.Builder)
		c.objects[component] = fields
	}
	fields[field] = b
	return nil
}

// MustDefine panics when Define fails. Useful for package-level declarations.
func (c *Components) MustDefine(component, field string, b apiprop.Builder) *Components {
	if err := c.Define(component, field, b); err != nil {
		panic(err)
	}
	return c
}

// Names returns the component names in lexical order.
func (c *Components) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.objects))
	for name := range c.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Field returns the builder attached to component.field.
func (c *Components) Field(component, field string) (apiprop.Builder, bool) {
	if c == nil {
		return apiprop.Builder{}, false
	}
	b, ok := c.objects[component][field]
	return b, ok
}

// Schemas renders every component as an object schema. Each call builds
// fresh schemas, so callers may mutate the result.
func (c *Components) Schemas() openapi3.Schemas {
	if c == nil {
		return openapi3.Schemas{}
	}
	out := make(openapi3.Schemas, len(c.objects))
	for name, fields := range c.objects {
		out[name] = objectSchema(fields).NewRef()
	}
	return out
}

// Document wraps the component schemas in an OpenAPI document with no paths.
func (c *Components) Document(title, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: DefaultOpenAPIVersion,
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: c.Schemas(),
		},
	}
}

func objectSchema(fields map[string]apiprop.Builder) *openapi3.Schema {
	schema := &openapi3.Schema{
		Type:       &openapi3.Types{openapi3.TypeObject},
		Properties: make(openapi3.Schemas, len(fields)),
	}
	var required []string
	for field, b := range fields {
		prop := Decorate(b)
		schema.Properties[field] = prop.Schema
		if prop.Required {
			required = append(required, field)
		}
	}
	sort.Strings(required)
	schema.Required = required
	return schema
}
