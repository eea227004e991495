package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const entitiesCSV = "1,Profile,name,,,Строка,50\n" +
	"2,,inn,,,Строка,12\n" +
	"3,,address,,,Address,\n" +
	"4,Company,name,,,Строка,50\n" +
	"5,,staff,,,Список Person,\n"

const typesCSV = "Party,Profile\n,Company\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRunToStdout(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "entities.csv", entitiesCSV)

	var stdout, stderr bytes.Buffer

	code := run([]string{"-log-level", "error", in}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stdout.String(), "entity Profile {\n  name String maxlength(50)\n  inn String maxlength(12)\n}\n")
	assert.Contains(t, stdout.String(), "relationship OneToOne { Profile{address} to Address }")
	assert.Contains(t, stdout.String(), "relationship OneToMany { Company{staff} to Person }")
	assert.Contains(t, stderr.String(), "Entities: 2\nRelations: 2\n")
}

func TestRunFullOutputs(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "entities.csv", entitiesCSV)
	types := writeFile(t, dir, "types.csv", typesCSV)
	cfg := writeFile(t, dir, "jdlgen.yaml", "parents:\n  mode: common\nui:\n  actions:\n    - code: view\n      name: View\n")
	out := filepath.Join(dir, "model.jdl")
	parents := filepath.Join(dir, "parents.jdl")
	uiDir := filepath.Join(dir, "ui")

	var stdout, stderr bytes.Buffer

	code := run([]string{
		"-config", cfg, "-log-level", "error",
		"-out", out, "-types", types, "-parents-out", parents,
		"-ui-dir", uiDir, "-registry", "main",
		in,
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Empty(t, stdout.String())

	model, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(model), "entity Company {")

	parentJDL, err := os.ReadFile(parents)
	require.NoError(t, err)
	assert.Equal(t, "entity Party {\n  name String maxlength(50)\n}\n", string(parentJDL))

	item, err := os.ReadFile(filepath.Join(uiDir, "PartyPresentation.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"PartyPresentation","name":"PartyPresentation","parentCode":"main"}`, string(item))

	assert.FileExists(t, filepath.Join(uiDir, "Party.json"))
	assert.Contains(t, stderr.String(), "UI descriptors: 2")
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "at least one input CSV")

	stderr.Reset()
	assert.Equal(t, 2, run([]string{"-ui-dir", "x", "in.csv"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "need -types")

	assert.Equal(t, 0, run([]string{"-h"}, &stdout, &stderr))
}

func TestRunReportsFailures(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer

	code := run([]string{filepath.Join(dir, "missing.csv")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "input i/o error")

	badCfg := writeFile(t, dir, "bad.yaml", "encoding: koi8-r\n")
	in := writeFile(t, dir, "entities.csv", entitiesCSV)

	stderr.Reset()
	code = run([]string{"-config", badCfg, in}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unknown_encoding")
}
