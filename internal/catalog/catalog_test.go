package catalog

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-apiprop/internal/logger"
	"github.com/goliatone/go-apiprop/pkg/apiprop"
	"github.com/goliatone/go-apiprop/pkg/openapi"
)

const usersYAML = `
title: Accounts <b>API</b>
version: 1.0.0
components:
  User:
    age:
      preset: int32
      title: Age
      minimum: 0
      required: true
    email:
      preset: email
      description: "<script>alert(1)</script>Primary address"
    score:
      preset: integer
      format: int64
      maximum: 10
      exclusiveMaximum: true
`

const tagsJSON = `{
  "components": {
    "Tag": {
      "name": {"preset": "string", "isArray": true, "enum": ["a", "b"]}
    }
  }
}`

func TestLoadFS_MergesFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"users.yaml":      {Data: []byte(usersYAML)},
		"nested/tag.json": {Data: []byte(tagsJSON)},
		"README.md":       {Data: []byte("ignored")},
	}

	cat, err := LoadFS(context.Background(), fsys)
	require.NoError(t, err)

	assert.Equal(t, "Accounts API", cat.Title)
	assert.Equal(t, "1.0.0", cat.Version)
	assert.Equal(t, []string{"Tag", "User"}, cat.Names())
	assert.Equal(t, 4, cat.Len())

	src, ok := cat.Source("Tag", "name")
	require.True(t, ok)
	assert.Equal(t, "nested/tag.json", src)

	email := cat.Components["User"]["email"]
	assert.Equal(t, "Primary address", email.Description)
}

func TestPropertyBuilder_PresetThenOptions(t *testing.T) {
	cat, err := LoadFS(context.Background(), fstest.MapFS{"users.yaml": {Data: []byte(usersYAML)}})
	require.NoError(t, err)

	age, err := cat.Components["User"]["age"].Builder()
	require.NoError(t, err)
	conf := age.Conf()
	assert.Equal(t, apiprop.TypeInteger, conf.Type)
	assert.Equal(t, apiprop.FormatInt32, conf.Format)
	assert.Equal(t, "Age", conf.Title)
	require.NotNil(t, conf.Minimum)
	assert.Equal(t, 0.0, *conf.Minimum)
	require.NotNil(t, conf.Required)
	assert.True(t, *conf.Required)

	score, err := cat.Components["User"]["score"].Builder()
	require.NoError(t, err)
	assert.Equal(t, apiprop.FormatInt64, score.Conf().Format, "explicit format overrides the preset")
}

func TestPropertyBuilder_UnknownPreset(t *testing.T) {
	_, err := Property{Preset: "decimal"}.Builder()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestLoadFS_Errors(t *testing.T) {
	cases := []struct {
		name string
		fsys fstest.MapFS
		is   error
	}{
		{
			name: "unknown preset",
			fsys: fstest.MapFS{"a.yaml": {Data: []byte("components:\n  User:\n    age:\n      preset: decimal\n")}},
			is:   ErrUnknownPreset,
		},
		{
			name: "duplicate across files",
			fsys: fstest.MapFS{
				"a.yaml": {Data: []byte("components:\n  User:\n    age:\n      preset: int32\n")},
				"b.yml":  {Data: []byte("components:\n  User:\n    age:\n      preset: int64\n")},
			},
			is: ErrDuplicateProperty,
		},
		{
			name: "empty file",
			fsys: fstest.MapFS{"a.yaml": {Data: []byte("  \n")}},
		},
		{
			name: "invalid json",
			fsys: fstest.MapFS{"a.json": {Data: []byte("{")}},
		},
		{
			name: "empty field name",
			fsys: fstest.MapFS{"a.yaml": {Data: []byte("components:\n  User:\n    \" \":\n      preset: int32\n")}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat, err := LoadFS(context.Background(), tc.fsys)
			require.Error(t, err)
			assert.Nil(t, cat)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}

func TestLoadFS_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadFS(ctx, fstest.MapFS{"users.yaml": {Data: []byte(usersYAML)}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_FileAndDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte(usersYAML), 0o600))

	fromFile, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, fromFile.Len())

	fromDir, err := Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 3, fromDir.Len())

	_, err = Load(context.Background(), filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestCatalogRegister_DefinesOpenAPIComponents(t *testing.T) {
	cat, err := LoadFS(context.Background(), fstest.MapFS{
		"users.yaml": {Data: []byte(usersYAML)},
		"tag.json":   {Data: []byte(tagsJSON)},
	})
	require.NoError(t, err)

	components := openapi.NewComponents()
	require.NoError(t, cat.Register(components))

	schemas := components.Schemas()
	user := schemas["User"].Value
	assert.Equal(t, []string{"age"}, user.Required)
	assert.Equal(t, "int32", user.Properties["age"].Value.Format)

	tag := schemas["Tag"].Value.Properties["name"].Value
	assert.True(t, tag.Type.Is("array"))
	assert.Equal(t, []any{"a", "b"}, tag.Items.Value.Enum)

	require.Error(t, cat.Register(nil))
}

func TestCatalogDefinitions(t *testing.T) {
	cat, err := LoadFS(context.Background(), fstest.MapFS{"users.yaml": {Data: []byte(usersYAML)}})
	require.NoError(t, err)

	defs, err := cat.Definitions()
	require.NoError(t, err)
	require.Contains(t, defs, "User")
	assert.Len(t, defs["User"], 3)
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Fish & Chips", sanitizeText("  Fish & Chips "))
	assert.Equal(t, "Bold move", sanitizeText("<b>Bold</b> move"))
	assert.Equal(t, "", sanitizeText("<script>x</script>"))
}

func TestLoadFS_LogsThroughContextLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Output: &buf})
	require.NoError(t, err)

	ctx := log.WithContext(context.Background())
	_, err = LoadFS(ctx, fstest.MapFS{"users.yaml": {Data: []byte(usersYAML)}})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"component":"catalog"`)
	assert.Contains(t, buf.String(), `"file":"users.yaml"`)
}

func TestLoadFS_WithLoggerOverridesContext(t *testing.T) {
	var ctxBuf, optBuf bytes.Buffer
	ctxLog, err := logger.New(logger.Options{Level: "debug", Output: &ctxBuf})
	require.NoError(t, err)
	optLog, err := logger.New(logger.Options{Level: "debug", Output: &optBuf})
	require.NoError(t, err)

	ctx := ctxLog.WithContext(context.Background())
	_, err = LoadFS(ctx, fstest.MapFS{"users.yaml": {Data: []byte(usersYAML)}}, WithLogger(optLog))
	require.NoError(t, err)

	assert.Empty(t, ctxBuf.String())
	assert.Contains(t, optBuf.String(), "catalog file loaded")
}
