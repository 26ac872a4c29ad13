// Package openapi renders apiprop records as OpenAPI 3 schemas using
// kin-openapi. Decorator plugs into apiprop.Builder as the documentation sink,
// Components collects decorated fields into named object schemas, and
// Generate overlays builder records onto schemas reflected from Go types by
// openapi3gen.
package openapi
