package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyzone/internal/config"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const fullConfig = `
[keyboard]
name = "glove80"

[keymap]
path = "config/glove80.keymap"

[render]
color = "off"
label_width = 9
default_layer = 2

[export]
format = "msgpack"
output = "out/keymap.bin"
`

func TestLoadFull(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, fullConfig)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "glove80", cfg.Keyboard.Name)
	assert.Equal(t, config.ColorOff, cfg.Render.Color)
	assert.Equal(t, 9, cfg.Render.LabelWidth)
	assert.Equal(t, 2, cfg.Render.DefaultLayer)
	assert.Equal(t, "msgpack", cfg.Export.Format)
	assert.Equal(t, filepath.Join(dir, "config", "glove80.keymap"), cfg.KeymapPath())
	assert.Equal(t, filepath.Join(dir, "out", "keymap.bin"), cfg.Resolve(cfg.Export.Output))
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[render]\nlabel_width = 5\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	def := config.Default()
	assert.Equal(t, 5, cfg.Render.LabelWidth)
	assert.Equal(t, def.Render.Color, cfg.Render.Color)
	assert.Equal(t, def.Keyboard, cfg.Keyboard)
	assert.Equal(t, def.Export, cfg.Export)
	assert.Empty(t, cfg.KeymapPath())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[render\n", "failed to parse TOML"},
		{"unknown key", "[render]\ncolour = \"on\"\n", "unknown keys: render.colour"},
		{"unknown section", "[server]\nport = 1\n", "unknown keys: server"},
		{"bad color", "[render]\ncolor = \"always\"\n", "[render].color"},
		{"bad width", "[render]\nlabel_width = 0\n", "[render].label_width"},
		{"negative layer", "[render]\ndefault_layer = -1\n", "[render].default_layer"},
		{"bad format", "[export]\nformat = \"yaml\"\n", "[export].format"},
		{"empty keyboard", "[keyboard]\nname = \" \"\n", "[keyboard].name"},
		{"wrong type", "[render]\nlabel_width = \"wide\"\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := config.Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, fullConfig)
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, ok, err := config.Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, path, got)

	cfg, err := config.Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.Root())
}

func TestDiscoverWithoutFile(t *testing.T) {
	dir := t.TempDir()
	if _, ok, err := config.Find(dir); err != nil || ok {
		t.Skip("a keyzone.toml exists above the temp dir")
	}
	cfg, err := config.Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Empty(t, cfg.Root())
	assert.Equal(t, "rel/x", cfg.Resolve("rel/x"))
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}
