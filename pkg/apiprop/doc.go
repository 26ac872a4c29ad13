// Package apiprop builds property-metadata records used to document API schema
// fields. A Builder accumulates the record through chained calls:
//
//	age := apiprop.ApiProp("Age").Int32().Min(0).Max(150, true).Required()
//	conf := age.Conf()
//
// Builders are immutable values. Every call returns a new Builder, so a base
// builder can be shared and branched without the branches observing each
// other. The record is handed to a documentation sink through the Decorator
// seam; pkg/openapi and pkg/jsonschema provide sinks for OpenAPI 3 and JSON
// Schema. The builder performs no validation: reversed bounds, a format that
// does not belong to the type or a malformed pattern are recorded as given.
package apiprop
