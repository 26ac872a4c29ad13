package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-apiprop/pkg/apiprop"
)

// Apply overlays the keys set on opts onto schema in place. Unset keys leave
// the schema untouched. isArray=true turns a non-array schema into an array
// whose items hold the previous schema. On array schemas the value keywords
// (type, format, enum, bounds, pattern) go to the items while title,
// description and nullable stay on the array. isArray=false never unwraps an
// existing array.
func Apply(schema *openapi3.Schema, opts apiprop.Options) {
	if schema == nil {
		return
	}
	if isTrue(opts.IsArray) && !isArray(schema) {
		wrapInArray(schema)
	}

	applyOuter(schema, opts)

	if !isArray(schema) {
		applyValue(schema, opts)
		return
	}
	if schema.Items == nil {
		schema.Items = openapi3.NewSchemaRef("", &openapi3.Schema{})
	}
	if schema.Items.Value == nil {
		// Referenced items belong to another component.
		return
	}
	applyValue(schema.Items.Value, opts)
}

func wrapInArray(schema *openapi3.Schema) {
	item := *schema
	*schema = openapi3.Schema{
		Type:        &openapi3.Types{openapi3.TypeArray},
		Title:       item.Title,
		Description: item.Description,
		Nullable:    item.Nullable,
	}
	item.Title = ""
	item.Description = ""
	item.Nullable = false
	schema.Items = openapi3.NewSchemaRef("", &item)
}

func applyOuter(schema *openapi3.Schema, opts apiprop.Options) {
	if opts.Title != "" {
		schema.Title = opts.Title
	}
	if opts.Description != "" {
		schema.Description = opts.Description
	}
	if opts.Nullable != nil {
		schema.Nullable = *opts.Nullable
	}
}

func applyValue(schema *openapi3.Schema, opts apiprop.Options) {
	if opts.Type != apiprop.TypeNotSet {
		schema.Type = &openapi3.Types{string(opts.Type)}
	}
	if opts.Format != apiprop.NotSet {
		schema.Format = string(opts.Format)
	}
	if opts.Enum != nil {
		schema.Enum = append([]any(nil), opts.Enum...)
	}
	if opts.Minimum != nil {
		schema.Min = cloneFloat(opts.Minimum)
	}
	if opts.ExclusiveMinimum != nil {
		schema.ExclusiveMin = *opts.ExclusiveMinimum
	}
	if opts.Maximum != nil {
		schema.Max = cloneFloat(opts.Maximum)
	}
	if opts.ExclusiveMaximum != nil {
		schema.ExclusiveMax = *opts.ExclusiveMaximum
	}
	if opts.MultipleOf != nil {
		schema.MultipleOf = cloneFloat(opts.MultipleOf)
	}
	if opts.Pattern != "" {
		schema.Pattern = opts.Pattern
	}
}

func isArray(schema *openapi3.Schema) bool {
	return schema.Type != nil && schema.Type.Is(openapi3.TypeArray)
}

func isTrue(v *bool) bool {
	return v != nil && *v
}

func cloneFloat(in *float64) *float64 {
	if in == nil {
		return nil
	}
	value := *in
	return &value
}
