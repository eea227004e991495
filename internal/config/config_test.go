package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jdl-generator/internal/catalog"
)

func TestParseEmptyGivesDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, 1, cfg.Columns.ClassName)
	assert.Equal(t, 2, cfg.Columns.FieldName)
	assert.Equal(t, 5, cfg.Columns.FieldType)
	assert.Equal(t, 6, cfg.Columns.FieldLength)
	assert.Equal(t, -1, cfg.Columns.Label)
	assert.Equal(t, "П", cfg.Markers.NonEntity)
	assert.Equal(t, "Список", cfg.Markers.List)
	assert.Equal(t, ParentModeClassUnion, cfg.Parents.Mode)
	assert.False(t, Validate(cfg).HasErrors())
}

func TestParseOverrides(t *testing.T) {
	yaml := `
encoding: windows-1251
columns:
  class_name: 0
  label: 3
markers:
  list: List
types:
  convertible: [Text, Flag]
  rules:
    - contains: Text
      jdl: String
    - contains: Flag
      jdl: Boolean
ui:
  actions:
    - code: create
      name: Создать
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, EncodingWindows1251, cfg.Encoding)
	assert.Equal(t, 0, cfg.Columns.ClassName)
	assert.Equal(t, 2, cfg.Columns.FieldName, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Columns.Label)
	assert.Equal(t, "List", cfg.Markers.List)
	assert.Equal(t, "П", cfg.Markers.NonEntity)
	assert.Equal(t, []string{"Text", "Flag"}, cfg.Types.Convertible)
	require.Len(t, cfg.Types.Rules, 2)
	assert.Equal(t, catalog.Boolean, cfg.Types.Rules[1].JDL)
	require.Len(t, cfg.UI.Actions, 1)
	assert.Equal(t, "create", cfg.UI.Actions[0].Code)
	assert.Equal(t, "registry", cfg.UI.Registry)

	cat, err := cfg.Catalog()
	require.NoError(t, err)

	got, err := cat.Convert("Flag")
	require.NoError(t, err)
	assert.Equal(t, catalog.Boolean, got)
}

func TestParseExplicitEmptyRestoresDefaults(t *testing.T) {
	cfg, err := Parse([]byte("version: \"\"\nmarkers:\n  non_entity: \"\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "П", cfg.Markers.NonEntity)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("columns: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jdlgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("encoding: utf-8\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, EncodingUTF8, cfg.Encoding)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestMarshalRoundTripKeepsRules(t *testing.T) {
	def := Default()

	data, err := Marshal(&def)
	require.NoError(t, err)
	assert.Contains(t, string(data), "contains: Строка")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, def, *back)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Encoding = "koi8-r"
	cfg.Columns.FieldType = -2
	cfg.Columns.FieldLength = cfg.Columns.FieldName
	cfg.Types.Convertible = append(cfg.Types.Convertible, catalog.LabelString)
	cfg.Types.Rules = append(cfg.Types.Rules, catalog.Rule{Contains: "", JDL: "Text"})
	cfg.UI.Actions = []Action{{Name: "nameless"}}
	cfg.Parents.Mode = "any"

	res := Validate(&cfg)

	codes := map[string]bool{}
	for _, d := range res.All() {
		codes[d.Code] = true
	}

	for _, code := range []string{
		"unknown_encoding", "negative_column", "shared_column",
		"duplicate_label", "empty_rule", "unknown_jdl_type", "empty_action",
		"unknown_parent_mode",
	} {
		assert.True(t, codes[code], "expected diagnostic %s", code)
	}

	assert.True(t, Validate(nil).HasErrors())
}
