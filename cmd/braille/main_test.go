package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the CLI with an empty config file and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "braille.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[log]\nlevel = \"error\"\n"), 0o600))
	return runWithConfig(t, cfg, stdin, args...)
}

func runWithConfig(t *testing.T, cfg, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestEncode(t *testing.T) {
	out, err := run(t, "", "encode", "Hola", "123")
	require.NoError(t, err)
	assert.Equal(t, "46|125|135|123|1|_|3456|1|12|14\n", out)

	out, err = run(t, "", "encode", "-f", "unicode", "Hola")
	require.NoError(t, err)
	assert.Equal(t, "⠨⠓⠕⠇⠁\n", out)

	out, err = run(t, "hola\n", "encode", "--format", "spaced")
	require.NoError(t, err)
	assert.Equal(t, "125 135 123 1\n", out)
}

func TestEncodeJSON(t *testing.T) {
	out, err := run(t, "", "encode", "-f", "json", "A b")
	require.NoError(t, err)
	var got encodeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "A b", got.Text)
	assert.Equal(t, [][]int{{4, 6}, {1}, {}, {1, 2}}, got.Cells)
	assert.Equal(t, "46|1|_|12", got.Dots)
}

func TestEncodeRejectsUnknownFormat(t *testing.T) {
	_, err := run(t, "", "encode", "-f", "morse", "a")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	out, err := run(t, "", "decode", "46|125|135|123|1")
	require.NoError(t, err)
	assert.Equal(t, "Hola\n", out)

	out, err = run(t, "⠼⠁⠃\n", "decode")
	require.NoError(t, err)
	assert.Equal(t, "12\n", out)

	_, err = run(t, "", "decode", "1|9")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "hola.png")
	_, err := run(t, "", "render", "-o", png, "hola")
	require.NoError(t, err)
	data, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	pdf := filepath.Join(dir, "hola.out")
	_, err = run(t, "", "render", "-f", "pdf", "-o", pdf, "--mirror", "hola")
	require.NoError(t, err)
	data, err = os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	bad := filepath.Join(dir, "hola.gif")
	_, err = run(t, "", "render", "-o", bad, "hola")
	assert.Error(t, err)
	assert.NoFileExists(t, bad)
}

func TestTableFormats(t *testing.T) {
	out, err := run(t, "", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "\\message{es}\n")
	assert.Contains(t, out, "\nñ 1-2-4-5-6\n")
	assert.Contains(t, out, "\n\\num 3-4-5-6\n")

	out, err = run(t, "", "table", "-f", "json")
	require.NoError(t, err)
	var dump tableDump
	require.NoError(t, json.Unmarshal([]byte(out), &dump))
	assert.Equal(t, "es", dump.Identifier)
	assert.Len(t, dump.Collisions, 3)

	out, err = run(t, "", "table", "-f", "toml")
	require.NoError(t, err)
	var fromTOML tableDump
	_, err = toml.Decode(out, &fromTOML)
	require.NoError(t, err)
	require.Len(t, fromTOML.Symbols, len(dump.Symbols))
	for i, e := range dump.Symbols {
		assert.Equal(t, e.Symbol, fromTOML.Symbols[i].Symbol)
		assert.Equal(t, e.Unicode, fromTOML.Symbols[i].Unicode)
		assert.Len(t, fromTOML.Symbols[i].Dots, len(e.Dots))
	}

	out, err = run(t, "", "table", "-f", "yaml")
	require.NoError(t, err)
	var fromYAML tableDump
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, dump.Collisions, fromYAML.Collisions)

	_, err = run(t, "", "table", "-f", "xml")
	assert.Error(t, err)
}

func TestTableOverrides(t *testing.T) {
	dir := t.TempDir()
	tab := filepath.Join(dir, "variant.tab")
	require.NoError(t, os.WriteFile(tab, []byte("@ 4\n"), 0o600))
	cfg := filepath.Join(dir, "braille.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[table]\noverrides = \""+filepath.ToSlash(tab)+"\"\n"), 0o600))

	out, err := runWithConfig(t, cfg, "", "encode", "a@b")
	require.NoError(t, err)
	assert.Equal(t, "1|4|12\n", out)

	require.NoError(t, os.WriteFile(tab, []byte("@ 8\n"), 0o600))
	_, err = runWithConfig(t, cfg, "", "encode", "a")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version", "--json")
	require.NoError(t, err)
	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version, info.Version)
}
