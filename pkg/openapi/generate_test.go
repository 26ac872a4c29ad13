package openapi

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-apiprop/pkg/apiprop"
)

type address struct {
	Host string `json:"host"`
}

type account struct {
	ID      string   `json:"id" apiprop:"uuid"`
	Age     int      `json:"age"`
	Email   string   `json:"email"`
	Aliases []string `json:"aliases" apiprop:"hostname"`
	Home    address  `json:"home"`
}

func TestGenerateOverlaysFields(t *testing.T) {
	ref, err := Generate(&account{}, Fields{
		"age":   apiprop.ApiProp("Age").Int32().Min(18).Required(),
		"email": apiprop.Api().Email().Required(),
		"host":  apiprop.Api().Hostname().Required(),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	root := ref.Value

	age := root.Properties["age"].Value
	if age.Title != "Age" || age.Format != "int32" {
		t.Fatalf("age overlay missing: %+v", age)
	}
	if age.Min == nil || *age.Min != 18 {
		t.Fatalf("unexpected age minimum %v", age.Min)
	}
	if diff := cmp.Diff([]string{"age", "email"}, root.Required); diff != "" {
		t.Fatalf("root required mismatch (-want +got):\n%s", diff)
	}

	home := root.Properties["home"].Value
	if got := home.Properties["host"].Value.Format; got != "hostname" {
		t.Fatalf("nested overlay missing, format=%q", got)
	}
	if diff := cmp.Diff([]string{"host"}, home.Required); diff != "" {
		t.Fatalf("nested required mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateAppliesTagPresets(t *testing.T) {
	ref, err := Generate(&account{}, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	root := ref.Value

	if got := root.Properties["id"].Value.Format; got != "uuid" {
		t.Fatalf("expected uuid format from tag, got %q", got)
	}
	aliases := root.Properties["aliases"].Value
	if !aliases.Type.Is(openapi3.TypeArray) {
		t.Fatalf("aliases should stay an array")
	}
	if got := aliases.Items.Value.Format; got != "hostname" {
		t.Fatalf("expected hostname items, got %q", got)
	}
}

type badPreset struct {
	Value string `json:"value" apiprop:"decimal"`
}

func TestGenerateRejectsUnknownPreset(t *testing.T) {
	if _, err := Generate(&badPreset{}, nil); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}

func TestGenerateNotRequiredRemovesField(t *testing.T) {
	ref, err := Generate(&account{}, Fields{
		"email": apiprop.Api().Required(),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	overlayFields(ref.Value, Fields{"email": apiprop.Api().NotRequired()}, map[*openapi3.Schema]struct{}{})
	if ref.Value.Required != nil {
		t.Fatalf("expected no required fields, got %v", ref.Value.Required)
	}
}
