package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iw2rmb/notepad/editor"
	"github.com/iw2rmb/notepad/storage"
)

// AppName names the per-user config directory.
const AppName = "notepad"

// DefaultConfig returns the configuration used when no file exists. Editor
// values match the editor's documented defaults.
func DefaultConfig() *Config {
	return &Config{
		SavePolicy: editor.SaveWhenEnabled.String(),
		Editor: EditorConfig{
			Width:           editor.DefaultWidth,
			BgColor:         string(editor.DefaultBgColor),
			Color:           string(editor.DefaultColor),
			Border:          editor.DefaultBorder.Declaration(),
			BorderRadius:    editor.DefaultBorderRadius,
			Overflow:        string(editor.DefaultOverflow),
			ShowBorder:      true,
			MinHeight:       editor.DefaultEditorMinHeight,
			MaxHeight:       editor.DefaultEditorMaxHeight,
			Padding:         editor.DefaultEditorPadding.String(),
			AlignText:       string(editor.DefaultEditorAlign),
			ControlsColor:   string(editor.DefaultControlsColor),
			ControlsBorder:  editor.DefaultControlsBorder.Declaration(),
			ControlsMargin:  editor.DefaultControlsMargin.String(),
			ControlsPadding: editor.DefaultControlsPadding,
			UseLocalStorage: true,
			TabDepth:        editor.DefaultTabDepth,
			HistoryLimit:    1000,
		},
		Storage: StorageConfig{Backend: storage.KindSQLite},
		Log:     LogConfig{Level: "info", Format: "off"},
	}
}

// Dir returns the per-user notepad directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// StoragePath resolves the store location, defaulting under Dir.
func (s StorageConfig) StoragePath() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	switch s.Backend {
	case storage.KindDir:
		return filepath.Join(dir, "documents"), nil
	default:
		return filepath.Join(dir, "notepad.db"), nil
	}
}
