package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-apiprop/pkg/apiprop"
)

// Property is the OpenAPI rendition of a record. Required lives outside the
// schema because OpenAPI lists required properties on the parent object.
type Property struct {
	Schema   *openapi3.SchemaRef
	Required bool
}

// Decorator implements apiprop.Decorator and returns a Property.
type Decorator struct{}

var _ apiprop.Decorator = Decorator{}

// NewDecorator returns the OpenAPI decorator.
func NewDecorator() Decorator {
	return Decorator{}
}

// Decorate converts opts into a Property. It never fails.
func (Decorator) Decorate(opts apiprop.Options) (any, error) {
	return PropertyFor(opts), nil
}

// Decorate is a shorthand for b.DecorateWith(NewDecorator()) with a typed
// result.
func Decorate(b apiprop.Builder) Property {
	return PropertyFor(b.Conf())
}

// PropertyFor converts a record into a Property.
func PropertyFor(opts apiprop.Options) Property {
	return Property{
		Schema:   SchemaFor(opts).NewRef(),
		Required: isTrue(opts.Required),
	}
}

// SchemaFor converts a record into a schema. When isArray is true the value
// keywords describe the items and the array carries title, description and
// nullable.
func SchemaFor(opts apiprop.Options) *openapi3.Schema {
	schema := &openapi3.Schema{}
	Apply(schema, opts)
	return schema
}
