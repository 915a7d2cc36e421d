package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShape = `
type: object
label: config
fields:
  name: {type: string}
  port: {type: integer}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(args ...string) (string, string, error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheck_ValidDocuments(t *testing.T) {
	dir := t.TempDir()
	shapePath := writeFile(t, dir, "shape.yaml", testShape)
	jsonDoc := writeFile(t, dir, "ok.json", `{"name":"svc","port":8080}`)
	yamlDoc := writeFile(t, dir, "ok.yaml", "name: svc\nport: 8080\n")

	out, _, err := execute("check", "--shape", shapePath, jsonDoc, yamlDoc)
	require.NoError(t, err)
	assert.Contains(t, out, "ok.json: ok")
	assert.Contains(t, out, "ok.yaml: ok")
}

func TestCheck_InvalidDocumentFails(t *testing.T) {
	dir := t.TempDir()
	shapePath := writeFile(t, dir, "shape.yaml", testShape)
	bad := writeFile(t, dir, "bad.json", `{"name":"svc","port":"8080"}`)

	_, errOut, err := execute("check", "--shape", shapePath, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 documents failed")
	assert.Contains(t, errOut, "/port")
}

func TestCheck_MissingDocumentFile(t *testing.T) {
	dir := t.TempDir()
	shapePath := writeFile(t, dir, "shape.yaml", testShape)

	_, _, err := execute("check", "--shape", shapePath, filepath.Join(dir, "nope.json"))
	require.Error(t, err)
}

func TestCheck_BadShapeDescriptor(t *testing.T) {
	dir := t.TempDir()
	shapePath := writeFile(t, dir, "shape.yaml", `{type: wat}`)
	doc := writeFile(t, dir, "doc.json", `{}`)

	_, _, err := execute("check", "--shape", shapePath, doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling shape")
}
