package jsonschema

import (
	invopop "github.com/invopop/jsonschema"

	"github.com/goliatone/go-apiprop/pkg/apiprop"
)

// Property is the decorated form of a record.
type Property struct {
	Schema   *invopop.Schema
	Required bool
}

// Decorator implements apiprop.Decorator for JSON Schema.
type Decorator struct{}

var _ apiprop.Decorator = Decorator{}

func NewDecorator() Decorator {
	return Decorator{}
}

// Decorate returns a Property for opts.
func (Decorator) Decorate(opts apiprop.Options) (any, error) {
	return PropertyFor(opts), nil
}

// Decorate is shorthand for PropertyFor(b.Conf()).
func Decorate(b apiprop.Builder) Property {
	return PropertyFor(b.Conf())
}

func PropertyFor(opts apiprop.Options) Property {
	return Property{
		Schema:   SchemaFor(opts),
		Required: opts.Required != nil && *opts.Required,
	}
}

// SchemaFor builds a fresh schema from opts.
func SchemaFor(opts apiprop.Options) *invopop.Schema {
	schema := &invopop.Schema{}
	Apply(schema, opts)
	return schema
}
