package openapi

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-apiprop/pkg/apiprop"
)

func TestComponentsCollectFields(t *testing.T) {
	components := NewComponents().
		MustDefine("User", "id", apiprop.ApiProp("ID").UUID().Required()).
		MustDefine("User", "age", apiprop.ApiProp("Age").Int32().Min(0)).
		MustDefine("User", "email", apiprop.Api().Email().Required()).
		MustDefine("Tag", "name", apiprop.Api().String())

	if diff := cmp.Diff([]string{"Tag", "User"}, components.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	schemas := components.Schemas()
	user := schemas["User"].Value
	if !user.Type.Is(openapi3.TypeObject) {
		t.Fatalf("expected object schema")
	}
	if diff := cmp.Diff([]string{"email", "id"}, user.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	if got := user.Properties["age"].Value.Format; got != "int32" {
		t.Fatalf("unexpected age format %q", got)
	}
	if tag := schemas["Tag"].Value; tag.Required != nil {
		t.Fatalf("Tag should not list required fields, got %v", tag.Required)
	}
}

func TestComponentsDefineReplaces(t *testing.T) {
	components := NewComponents()
	if err := components.Define("User", "age", apiprop.Api().Int32()); err != nil {
		t.Fatalf("define: %v", err)
	}
	if err := components.Define("User", "age", apiprop.Api().Int64()); err != nil {
		t.Fatalf("redefine: %v", err)
	}
	b, ok := components.Field("User", "age")
	if !ok {
		t.Fatalf("field missing")
	}
	if b.Conf().Format != apiprop.FormatInt64 {
		t.Fatalf("expected last definition to win, got %q", b.Conf().Format)
	}
}

func TestComponentsRejectEmptyNames(t *testing.T) {
	components := NewComponents()
	if err := components.Define(" ", "age", apiprop.Api()); err == nil {
		t.Fatalf("expected error for empty component")
	}
	if err := components.Define("User", "", apiprop.Api()); err == nil {
		t.Fatalf("expected error for empty field")
	}
	var nilComponents *Components
	if err := nilComponents.Define("User", "age", apiprop.Api()); err == nil {
		t.Fatalf("expected error for nil registry")
	}
}

func TestComponentsSchemasAreFresh(t *testing.T) {
	components := NewComponents().MustDefine("User", "age", apiprop.Api().Int32())

	first := components.Schemas()
	first["User"].Value.Properties["age"].Value.Format = "mutated"

	second := components.Schemas()
	if got := second["User"].Value.Properties["age"].Value.Format; got != "int32" {
		t.Fatalf("registry state leaked through Schemas: %q", got)
	}
}

func TestComponentsDocumentValidates(t *testing.T) {
	components := NewComponents().
		MustDefine("User", "age", apiprop.ApiProp("Age").Int32().Min(0).Max(150, true)).
		MustDefine("User", "tags", apiprop.Api().String().IsArray())

	doc := components.Document("Accounts", "1.0.0")
	if doc.OpenAPI != DefaultOpenAPIVersion {
		t.Fatalf("unexpected openapi version %q", doc.OpenAPI)
	}
	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("document should validate: %v", err)
	}
}
