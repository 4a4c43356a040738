// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/retrace/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config `toml:"logger"`  // [logger] table
	History HistoryConfig `toml:"history"` // [history] table
	Editor  EditorConfig  `toml:"editor"`  // [editor] table
}

// HistoryConfig controls the undo/redo engine and snapshot persistence.
type HistoryConfig struct {
	MaxUndo        int      `toml:"max_undo"` // 0 means unbounded
	MaxRedo        int      `toml:"max_redo"` // 0 means unbounded
	Persist        bool     `toml:"persist"`
	SnapshotFormat string   `toml:"snapshot_format"` // toml, yaml or json
	SnapshotDir    string   `toml:"snapshot_dir"`
	SaveDelay      Duration `toml:"save_delay"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	SystemClipboard bool `toml:"system_clipboard"`
}

// Duration decodes TOML strings such as "750ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "",
		},
		History: HistoryConfig{
			MaxUndo:        DefaultMaxUndo,
			MaxRedo:        DefaultMaxRedo,
			Persist:        true,
			SnapshotFormat: DefaultSnapshotFormat,
			SnapshotDir:    defaultSnapshotDir(),
			SaveDelay:      Duration{DefaultSaveDelay},
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			SystemClipboard: SystemClipboard,
		},
	}
}

func defaultSnapshotDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, HistoryDirName)
}

// DefaultPath returns the config file location under the user config dir, or "".
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
// It returns the keys it did not recognize.
func loadFromFile(filePath string, cfg *Config) ([]string, error) {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}

	var unknown []string
	for _, key := range metadata.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return unknown, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.History.MaxUndo < 0 {
		c.History.MaxUndo = defaults.History.MaxUndo
	}
	if c.History.MaxRedo < 0 {
		c.History.MaxRedo = defaults.History.MaxRedo
	}
	switch strings.ToLower(c.History.SnapshotFormat) {
	case "toml", "yaml", "yml", "json":
		c.History.SnapshotFormat = strings.ToLower(c.History.SnapshotFormat)
	default:
		c.History.SnapshotFormat = defaults.History.SnapshotFormat
	}
	if c.History.SnapshotDir == "" {
		c.History.SnapshotDir = defaults.History.SnapshotDir
	}
	if c.History.SaveDelay.Duration <= 0 {
		c.History.SaveDelay = defaults.History.SaveDelay
	}

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds the configuration: defaults, then the TOML file, then flag overrides, then validation.
// An empty configFilePath means the default location. Unknown keys are returned so the
// caller can warn once the logger is running.
func Load(configFilePath string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}

	var unknown []string
	if effectivePath != "" {
		var err error
		unknown, err = loadFromFile(effectivePath, cfg)
		if err != nil {
			return nil, nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, unknown, nil
}
