package jsonschema

import (
	"sort"

	invopop "github.com/invopop/jsonschema"

	"github.com/goliatone/go-apiprop/pkg/apiprop"
)

// Fields maps JSON property names to builders.
type Fields map[string]apiprop.Builder

// NewReflector returns the reflector used by Reflect: definitions are inlined
// and the root struct is expanded.
func NewReflector() *invopop.Reflector {
	return &invopop.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
}

// Reflect builds a schema for value and overlays builder records onto its
// properties by JSON name at every nesting level. A field's required flag
// adds it to, or removes it from, the parent's required list.
func Reflect(value any, fields Fields) *invopop.Schema {
	return ReflectWith(NewReflector(), value, fields)
}

// ReflectWith is Reflect with a caller supplied reflector.
func ReflectWith(r *invopop.Reflector, value any, fields Fields) *invopop.Schema {
	schema := r.Reflect(value)
	if len(fields) > 0 {
		overlayFields(schema, fields, make(map[*invopop.Schema]struct{}))
	}
	return schema
}

func overlayFields(schema *invopop.Schema, fields Fields, seen map[*invopop.Schema]struct{}) {
	if schema == nil {
		return
	}
	if _, ok := seen[schema]; ok {
		return
	}
	seen[schema] = struct{}{}

	if schema.Properties != nil {
		for el := schema.Properties.Oldest(); el != nil; el = el.Next() {
			if b, ok := fields[el.Key]; ok && el.Value != nil {
				opts := b.Conf()
				Apply(el.Value, opts)
				if opts.Required != nil {
					schema.Required = setRequired(schema.Required, el.Key, *opts.Required)
				}
			}
			overlayFields(el.Value, fields, seen)
		}
	}
	overlayFields(schema.Items, fields, seen)
	for _, branch := range schema.AnyOf {
		overlayFields(branch, fields, seen)
	}
	for _, def := range schema.Definitions {
		overlayFields(def, fields, seen)
	}
}

// Object builds an object schema from fields, with properties in name order.
func Object(fields Fields) *invopop.Schema {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	object := &invopop.Schema{
		Type:       "object",
		Properties: invopop.NewProperties(),
	}
	for _, name := range names {
		prop := Decorate(fields[name])
		object.Properties.Set(name, prop.Schema)
		if prop.Required {
			object.Required = append(object.Required, name)
		}
	}
	return object
}

// Bundle returns a root schema whose $defs hold one object schema per
// component.
func Bundle(title string, components map[string]Fields) *invopop.Schema {
	root := &invopop.Schema{
		Version:     invopop.Version,
		Title:       title,
		Definitions: make(invopop.Definitions, len(components)),
	}
	for name, fields := range components {
		root.Definitions[name] = Object(fields)
	}
	return root
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
