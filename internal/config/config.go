// Package config loads keyzone.toml, the optional per-project settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name searched for by Find.
const FileName = "keyzone.toml"

const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// ExportFormats lists the values accepted by [export].format.
var ExportFormats = []string{"json", "json-min", "msgpack", "dump"}

type Config struct {
	Keyboard KeyboardConfig `toml:"keyboard"`
	Keymap   KeymapConfig   `toml:"keymap"`
	Render   RenderConfig   `toml:"render"`
	Export   ExportConfig   `toml:"export"`

	// Path is the file the config was read from, empty for Default.
	Path string `toml:"-"`
}

type KeyboardConfig struct {
	Name string `toml:"name"`
}

type KeymapConfig struct {
	Path string `toml:"path"`
}

type RenderConfig struct {
	Color        string `toml:"color"`
	LabelWidth   int    `toml:"label_width"`
	DefaultLayer int    `toml:"default_layer"`
}

type ExportConfig struct {
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// Default returns the settings used when no keyzone.toml exists.
func Default() Config {
	return Config{
		Keyboard: KeyboardConfig{Name: "glove80"},
		Render:   RenderConfig{Color: ColorAuto, LabelWidth: 7},
		Export:   ExportConfig{Format: "json"},
	}
}

// Find walks up from startDir to locate keyzone.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over Default. Keys keyzone does not know are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the nearest keyzone.toml above startDir, or Default when
// there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) Validate() error {
	switch c.Render.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("[render].color must be auto, on or off, got %q", c.Render.Color)
	}
	if c.Render.LabelWidth < 1 {
		return fmt.Errorf("[render].label_width must be positive, got %d", c.Render.LabelWidth)
	}
	if c.Render.DefaultLayer < 0 {
		return fmt.Errorf("[render].default_layer must not be negative, got %d", c.Render.DefaultLayer)
	}
	if !slices.Contains(ExportFormats, c.Export.Format) {
		return fmt.Errorf("[export].format must be one of %s, got %q", strings.Join(ExportFormats, ", "), c.Export.Format)
	}
	if strings.TrimSpace(c.Keyboard.Name) == "" {
		return errors.New("[keyboard].name must not be empty")
	}
	return nil
}

// Root is the directory holding the config file, empty for Default.
func (c Config) Root() string {
	if c.Path == "" {
		return ""
	}
	return filepath.Dir(c.Path)
}

// Resolve makes a path from the config file absolute against Root.
func (c Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Path == "" {
		return p
	}
	return filepath.Join(c.Root(), filepath.FromSlash(p))
}

// KeymapPath is [keymap].path resolved against Root; empty when unset.
func (c Config) KeymapPath() string {
	return c.Resolve(c.Keymap.Path)
}
