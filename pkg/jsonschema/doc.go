// Package jsonschema renders apiprop records as JSON Schema (draft 2020-12)
// using github.com/invopop/jsonschema.
//
// Draft 2020-12 differs from OpenAPI 3.0 in three places that matter here:
// exclusive bounds are numbers (exclusiveMinimum: 1) rather than flags,
// nullability is expressed as anyOf with {"type": "null"}, and required stays
// on the parent object. Property carries the required flag so the caller can
// place it.
package jsonschema
