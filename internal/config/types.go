package config

// Config is the top-level notepad configuration, corresponding to
// config.yaml.
type Config struct {
	// DocumentID selects the stored document; empty means the default one.
	DocumentID string `yaml:"document_id" koanf:"document_id"`
	// SavePolicy is one of when-enabled, always, never.
	SavePolicy string        `yaml:"save_policy" koanf:"save_policy"`
	Editor     EditorConfig  `yaml:"editor" koanf:"editor"`
	Storage    StorageConfig `yaml:"storage" koanf:"storage"`
	Log        LogConfig     `yaml:"log" koanf:"log"`
}

// EditorConfig mirrors the editor's presentation options. Borders and
// spacing use their declaration forms ("1 solid #000000", "1 2 0 2").
type EditorConfig struct {
	Width           int    `yaml:"width" koanf:"width"`
	BgColor         string `yaml:"bg_color" koanf:"bg_color"`
	Color           string `yaml:"color" koanf:"color"`
	Border          string `yaml:"border" koanf:"border"`
	BorderRadius    int    `yaml:"border_radius" koanf:"border_radius"`
	Overflow        string `yaml:"overflow" koanf:"overflow"`
	ShowBorder      bool   `yaml:"show_border" koanf:"show_border"`
	Height          int    `yaml:"height" koanf:"height"`
	MinHeight       int    `yaml:"min_height" koanf:"min_height"`
	MaxHeight       int    `yaml:"max_height" koanf:"max_height"`
	Padding         string `yaml:"padding" koanf:"padding"`
	AlignText       string `yaml:"align_text" koanf:"align_text"`
	ControlsColor   string `yaml:"controls_color" koanf:"controls_color"`
	ControlsBorder  string `yaml:"controls_border" koanf:"controls_border"`
	ControlsMargin  string `yaml:"controls_margin" koanf:"controls_margin"`
	ControlsPadding int    `yaml:"controls_padding" koanf:"controls_padding"`
	UseLocalStorage bool   `yaml:"use_local_storage" koanf:"use_local_storage"`
	TabDepth        int    `yaml:"tab_depth" koanf:"tab_depth"`
	HistoryLimit    int    `yaml:"history_limit" koanf:"history_limit"`
	ReadOnly        bool   `yaml:"read_only" koanf:"read_only"`
}

// StorageConfig selects the document store.
type StorageConfig struct {
	// Backend is one of memory, dir, sqlite.
	Backend string `yaml:"backend" koanf:"backend"`
	// Path is the directory (dir) or database file (sqlite). Empty selects a
	// location under the user config directory.
	Path string `yaml:"path" koanf:"path"`
}

// LogConfig configures internal/log. The TUI owns the terminal, so logs go
// to a file or nowhere.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
	File   string `yaml:"file" koanf:"file"`
	Source bool   `yaml:"source" koanf:"source"`
}
