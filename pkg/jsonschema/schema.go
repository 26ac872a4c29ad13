package jsonschema

import (
	"encoding/json"
	"strconv"

	invopop "github.com/invopop/jsonschema"

	"github.com/goliatone/go-apiprop/pkg/apiprop"
)

const (
	typeArray = "array"
	typeNull  = "null"
)

// Apply overlays the keys set on opts onto schema in place. Title and
// description sit on the outermost schema. nullable=true wraps the schema in
// anyOf with a null branch and nullable=false removes that wrapper.
// isArray=true wraps the value schema in an array; value keywords on an array
// go to its items.
func Apply(schema *invopop.Schema, opts apiprop.Options) {
	if schema == nil {
		return
	}
	if opts.Nullable != nil {
		setNullable(schema, *opts.Nullable)
	}

	body := valueBranch(schema)
	if isTrue(opts.IsArray) && body.Type != typeArray {
		wrapInArray(body)
	}

	if opts.Title != "" {
		schema.Title = opts.Title
	}
	if opts.Description != "" {
		schema.Description = opts.Description
	}

	if body.Type == typeArray {
		if body.Items == nil {
			body.Items = &invopop.Schema{}
		}
		body = body.Items
	}
	applyValue(body, opts)
}

func applyValue(schema *invopop.Schema, opts apiprop.Options) {
	if opts.Type != apiprop.TypeNotSet {
		schema.Type = string(opts.Type)
	}
	if opts.Format != apiprop.NotSet {
		schema.Format = string(opts.Format)
	}
	if opts.Enum != nil {
		schema.Enum = append([]any(nil), opts.Enum...)
	}
	if opts.MultipleOf != nil {
		schema.MultipleOf = number(*opts.MultipleOf)
	}
	if opts.Pattern != "" {
		schema.Pattern = opts.Pattern
	}
	applyBound(&schema.Minimum, &schema.ExclusiveMinimum, opts.Minimum, opts.ExclusiveMinimum)
	applyBound(&schema.Maximum, &schema.ExclusiveMaximum, opts.Maximum, opts.ExclusiveMaximum)
}

// applyBound writes a bound into either the inclusive or the exclusive
// keyword, never both. An exclusive flag without a value moves the bound the
// schema already has.
func applyBound(inclusive, exclusive *json.Number, value *float64, excl *bool) {
	if value == nil && excl == nil {
		return
	}
	current := *inclusive
	if current == "" {
		current = *exclusive
	}
	if value != nil {
		current = number(*value)
	}
	if current == "" {
		return
	}
	if isTrue(excl) {
		*inclusive, *exclusive = "", current
		return
	}
	*inclusive, *exclusive = current, ""
}

func setNullable(schema *invopop.Schema, on bool) {
	wrapped := isNullableWrapper(schema)
	switch {
	case on && !wrapped:
		inner := *schema
		inner.Title, inner.Description = "", ""
		*schema = invopop.Schema{
			Title:       schema.Title,
			Description: schema.Description,
			AnyOf:       []*invopop.Schema{&inner, {Type: typeNull}},
		}
	case !on && wrapped:
		title, description := schema.Title, schema.Description
		*schema = *schema.AnyOf[0]
		schema.Title, schema.Description = title, description
	}
}

func wrapInArray(schema *invopop.Schema) {
	item := *schema
	title, description := item.Title, item.Description
	item.Title, item.Description = "", ""
	*schema = invopop.Schema{
		Type:        typeArray,
		Title:       title,
		Description: description,
		Items:       &item,
	}
}

// valueBranch returns the non-null branch of a nullable wrapper, or schema.
func valueBranch(schema *invopop.Schema) *invopop.Schema {
	if isNullableWrapper(schema) {
		return schema.AnyOf[0]
	}
	return schema
}

func isNullableWrapper(schema *invopop.Schema) bool {
	return schema.Type == "" &&
		len(schema.AnyOf) == 2 &&
		schema.AnyOf[0] != nil &&
		schema.AnyOf[1] != nil &&
		schema.AnyOf[1].Type == typeNull
}

func number(v float64) json.Number {
	return json.Number(strconv.FormatFloat(v, 'f', -1, 64))
}

func isTrue(v *bool) bool {
	return v != nil && *v
}
