package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/easytest"
	"github.com/aretw0/easytest/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "easytest version "+easytest.Version+"\n", out)
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "spec.json")
	doc := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(spec, []byte(`{"boolean": "test", "string": "two"}`), 0644))
	require.NoError(t, os.WriteFile(doc, []byte("two: two\ntest: false\n"), 0644))

	out, err := run(t, "check", "--log-level", "error", "--spec", spec, doc)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS "+doc)

	require.NoError(t, os.WriteFile(doc, []byte("two: 2\ntest: false\n"), 0644))
	_, err = run(t, "check", "--spec", spec, doc)
	assert.ErrorIs(t, err, cli.ErrMismatch)
}

func TestInspectCommand(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{"one": 1, "two": "two"}`), 0644))

	out, err := run(t, "inspect", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "| one | number |")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "version", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid --log-level")
}
