package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/iw2rmb/notepad/editor"
	applog "github.com/iw2rmb/notepad/internal/log"
	"github.com/iw2rmb/notepad/storage"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// sections: NOTEPAD_EDITOR__WIDTH -> editor.width.
const EnvPrefix = "NOTEPAD_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (NOTEPAD_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path, creating the
// parent directory.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validOverflow = map[editor.Overflow]bool{
	editor.OverflowAuto:    true,
	editor.OverflowScroll:  true,
	editor.OverflowHidden:  true,
	editor.OverflowVisible: true,
}

var validAlign = map[editor.Align]bool{
	editor.AlignLeft:    true,
	editor.AlignCenter:  true,
	editor.AlignRight:   true,
	editor.AlignJustify: true,
}

var validBackends = map[string]bool{
	storage.KindMemory: true,
	storage.KindDir:    true,
	storage.KindSQLite: true,
}

var validLogFormats = map[string]bool{
	"":        true,
	"console": true,
	"json":    true,
	"off":     true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if _, err := editor.ParseSavePolicy(c.SavePolicy); err != nil {
		return err
	}

	e := c.Editor
	if e.Width <= 0 {
		return fmt.Errorf("editor.width must be positive")
	}
	if e.Height < 0 || e.MinHeight < 0 || e.MaxHeight < 0 {
		return fmt.Errorf("editor heights must be non-negative")
	}
	if e.MinHeight > 0 && e.MaxHeight > 0 && e.MinHeight > e.MaxHeight {
		return fmt.Errorf("editor.min_height %d exceeds editor.max_height %d", e.MinHeight, e.MaxHeight)
	}
	if e.Overflow != "" && !validOverflow[editor.Overflow(e.Overflow)] {
		return fmt.Errorf("invalid editor.overflow %q: must be one of auto, scroll, hidden, visible", e.Overflow)
	}
	if e.AlignText != "" && !validAlign[editor.Align(e.AlignText)] {
		return fmt.Errorf("invalid editor.align_text %q: must be one of left, center, right, justify", e.AlignText)
	}
	if e.TabDepth < 0 || e.TabDepth > 4 {
		return fmt.Errorf("editor.tab_depth must be between 0 and 4")
	}
	if e.ControlsPadding < 0 || e.BorderRadius < 0 {
		return fmt.Errorf("editor.controls_padding and editor.border_radius must be non-negative")
	}
	if _, err := c.ToEditor(); err != nil {
		return err
	}

	if !validBackends[strings.ToLower(c.Storage.Backend)] {
		return fmt.Errorf("invalid storage.backend %q: must be one of memory, dir, sqlite", c.Storage.Backend)
	}
	if !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be one of console, json, off", c.Log.Format)
	}
	return nil
}

// ToEditor converts the file representation into an editor.Config. Store,
// logger and callbacks are left for the caller.
func (c *Config) ToEditor() (editor.Config, error) {
	e := c.Editor
	policy, err := editor.ParseSavePolicy(c.SavePolicy)
	if err != nil {
		return editor.Config{}, err
	}

	out := editor.Config{
		Width:           e.Width,
		BgColor:         lipgloss.Color(e.BgColor),
		Color:           lipgloss.Color(e.Color),
		BorderRadius:    editor.Int(e.BorderRadius),
		Overflow:        editor.Overflow(e.Overflow),
		ShowBorder:      editor.Bool(e.ShowBorder),
		EditorHeight:    e.Height,
		EditorMinHeight: e.MinHeight,
		EditorMaxHeight: e.MaxHeight,
		EditorAlignText: editor.Align(e.AlignText),
		ControlsColor:   lipgloss.Color(e.ControlsColor),
		ControlsPadding: e.ControlsPadding,
		UseLocalStorage: e.UseLocalStorage,
		DocumentID:      c.DocumentID,
		SavePolicy:      policy,
		TabDepth:        e.TabDepth,
		HistoryLimit:    e.HistoryLimit,
		ReadOnly:        e.ReadOnly,
	}

	if e.Border != "" {
		b, err := editor.ParseBorder(e.Border, editor.DefaultBorder)
		if err != nil {
			return editor.Config{}, fmt.Errorf("editor.border: %w", err)
		}
		out.Border = &b
	}
	if e.ControlsBorder != "" {
		b, err := editor.ParseBorder(e.ControlsBorder, editor.DefaultControlsBorder)
		if err != nil {
			return editor.Config{}, fmt.Errorf("editor.controls_border: %w", err)
		}
		out.ControlsBorder = &b
	}
	if e.Padding != "" {
		p, err := editor.ParseSpacing(e.Padding)
		if err != nil {
			return editor.Config{}, fmt.Errorf("editor.padding: %w", err)
		}
		out.EditorPadding = &p
	}
	if e.ControlsMargin != "" {
		p, err := editor.ParseSpacing(e.ControlsMargin)
		if err != nil {
			return editor.Config{}, fmt.Errorf("editor.controls_margin: %w", err)
		}
		out.ControlsMargin = &p
	}
	return out, nil
}

// LogOptions converts the log section into internal/log options.
func (c *Config) LogOptions() applog.Options {
	return applog.Options{
		Level:     c.Log.Level,
		Format:    c.Log.Format,
		AddSource: c.Log.Source,
		File:      c.Log.File,
	}
}
