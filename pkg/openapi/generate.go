package openapi

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"

	"github.com/goliatone/go-apiprop/pkg/apiprop"
)

// PresetTag is the struct tag naming a preset for a field, for example
// `apiprop:"uuid"`.
const PresetTag = "apiprop"

// Fields maps JSON property names to builders.
type Fields map[string]apiprop.Builder

// Generate reflects value with openapi3gen and overlays builder records onto
// the generated properties. Fields are matched by JSON property name at every
// nesting level. A field's required flag adds it to, or removes it from, the
// parent's required list. Extra openapi3gen options are passed through.
func Generate(value any, fields Fields, opts ...openapi3gen.Option) (*openapi3.SchemaRef, error) {
	options := append([]openapi3gen.Option{openapi3gen.SchemaCustomizer(presetCustomizer)}, opts...)
	ref, err := openapi3gen.NewSchemaRefForValue(value, nil, options...)
	if err != nil {
		return nil, fmt.Errorf("openapi: generate schema: %w", err)
	}
	if len(fields) > 0 {
		overlayFields(ref.Value, fields, make(map[*openapi3.Schema]struct{}))
	}
	return ref, nil
}

func presetCustomizer(name string, _ reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	presetName, ok := tag.Lookup(PresetTag)
	if !ok || presetName == "" {
		return nil
	}
	preset, ok := apiprop.LookupPreset(presetName)
	if !ok {
		return fmt.Errorf("openapi: field %s: unknown preset %q", name, presetName)
	}
	Apply(schema, preset(apiprop.Api()).Conf())
	return nil
}

func overlayFields(schema *openapi3.Schema, fields Fields, seen map[*openapi3.Schema]struct{}) {
	if schema == nil {
		return
	}
	if _, ok := seen[schema]; ok {
		return
	}
	seen[schema] = struct{}{}

	if len(schema.Properties) > 0 {
		names := make([]string, 0, len(schema.Properties))
		for name := range schema.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			prop := schema.Properties[name]
			if prop == nil || prop.Value == nil {
				continue
			}
			if b, ok := fields[name]; ok {
				opts := b.Conf()
				Apply(prop.Value, opts)
				if opts.Required != nil {
					schema.Required = setRequired(schema.Required, name, *opts.Required)
				}
			}
			overlayFields(prop.Value, fields, seen)
		}
	}
	if schema.Items != nil {
		overlayFields(schema.Items.Value, fields, seen)
	}
}

func setRequired(required []string, name string, on bool) []string {
	out := make([]string, 0, len(required)+1)
	for _, existing := range required {
		if existing != name {
			out = append(out, existing)
		}
	}
	if on {
		out = append(out, name)
	}
	sort.Strings(out)
	if len(out) == 0 {
		return nil
	}
	return out
}
