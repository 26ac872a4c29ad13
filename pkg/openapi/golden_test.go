package openapi

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-apiprop/pkg/apiprop"
	"github.com/goliatone/go-apiprop/pkg/testsupport"
)

func TestDocumentGolden(t *testing.T) {
	components := NewComponents().
		MustDefine("User", "id", apiprop.Api().UUID().Required()).
		MustDefine("User", "age", apiprop.ApiProp("Age").Int32().Min(0).Max(150, true).Required()).
		MustDefine("User", "tags", apiprop.ApiProp("Tags").String().Enum("admin", "staff").IsArray().Null())

	doc := components.Document("Accounts", "1.0.0")
	if err := doc.Validate(testsupport.Context()); err != nil {
		t.Fatalf("validate: %v", err)
	}
	testsupport.AssertGolden(t, filepath.Join("testdata", "accounts.golden.json"), doc)
}
