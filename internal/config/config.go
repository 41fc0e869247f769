package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	serr "invisinote/internal/errors"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines which files count as notes, where the folder list lives,
// and how the interactive front-ends behave.
type Config struct {
	Notes struct {
		Extension string   `yaml:"extension"` // Note file extension, with leading dot
		Ignore    []string `yaml:"ignore"`    // Glob patterns for note names to skip
	} `yaml:"notes"`
	Directories struct {
		Default     string `yaml:"default"`      // Folder used when the folder list is empty
		FoldersFile string `yaml:"folders_file"` // JSON list of note folders
	} `yaml:"directories"`
	Settings Settings `yaml:"settings"`
	Watch    struct {
		Enabled    bool `yaml:"enabled"`     // Reload the active folder when it changes on disk
		DebounceMS int  `yaml:"debounce_ms"` // Coalescing window for change bursts
	} `yaml:"watch"`
	Theme struct {
		Name string `yaml:"name"` // TUI palette name
	} `yaml:"theme"`
}

// Settings holds general runtime switches.
type Settings struct {
	Debug   bool   `yaml:"debug"`
	LogFile string `yaml:"log_file"` // Where the TUI and GUI write logs
}

// LoadConfig loads configuration from the default location
// (<user config dir>/invisinote/config.yaml).
func LoadConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(paths.ConfigPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, serr.NewConfigError("error reading config file", path, serr.ConfigNotFound, err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, serr.NewConfigError("error parsing config file", path, serr.InvalidConfig, err)
	}

	if tempCfg.Notes.Extension != "" {
		cfg.Notes.Extension = tempCfg.Notes.Extension
	}
	if tempCfg.Notes.Ignore != nil {
		cfg.Notes.Ignore = tempCfg.Notes.Ignore
	}
	if tempCfg.Directories.Default != "" {
		cfg.Directories.Default = tempCfg.Directories.Default
	}
	if tempCfg.Directories.FoldersFile != "" {
		cfg.Directories.FoldersFile = tempCfg.Directories.FoldersFile
	}
	cfg.Settings.Debug = tempCfg.Settings.Debug
	if tempCfg.Settings.LogFile != "" {
		cfg.Settings.LogFile = tempCfg.Settings.LogFile
	}
	cfg.Watch.Enabled = tempCfg.Watch.Enabled
	if tempCfg.Watch.DebounceMS != 0 {
		cfg.Watch.DebounceMS = tempCfg.Watch.DebounceMS
	}
	if tempCfg.Theme.Name != "" {
		cfg.Theme.Name = tempCfg.Theme.Name
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Notes.Extension = ".txt"
	cfg.Notes.Ignore = []string{".*"} // Hidden files and editor swap files

	if paths, err := DefaultPaths(); err == nil {
		cfg.Directories.Default = paths.NotesDir
		cfg.Directories.FoldersFile = paths.FoldersPath
		cfg.Settings.LogFile = paths.LogPath
	} else {
		cfg.Directories.Default = "notes"
		cfg.Directories.FoldersFile = "folders.json"
		cfg.Settings.LogFile = "invisinote.log"
	}

	cfg.Watch.Enabled = false
	cfg.Watch.DebounceMS = 200

	cfg.Theme.Name = "default"

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return serr.ErrInvalidConfig
	}

	ext := c.Notes.Extension
	if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, `/\*?[`) {
		return serr.NewConfigError("extension must look like .txt", "notes.extension", serr.InvalidConfig, nil)
	}

	for i, pattern := range c.Notes.Ignore {
		if strings.TrimSpace(pattern) == "" {
			return serr.NewConfigError(fmt.Sprintf("ignore pattern %d is empty", i), "notes.ignore", serr.InvalidConfig, nil)
		}
		if _, err := glob.Compile(pattern); err != nil {
			return serr.NewConfigError(fmt.Sprintf("ignore pattern %d is invalid", i), "notes.ignore", serr.InvalidConfig, err)
		}
	}

	if strings.TrimSpace(c.Directories.Default) == "" {
		return serr.NewConfigError("default folder is required", "directories.default", serr.InvalidConfig, nil)
	}

	if c.Watch.DebounceMS < 0 {
		return serr.NewConfigError("debounce must be >= 0", "watch.debounce_ms", serr.InvalidConfig, nil)
	}

	if _, ok := themes[c.Theme.Name]; !ok {
		return serr.NewConfigError(fmt.Sprintf("unknown theme %q", c.Theme.Name), "theme.name", serr.InvalidConfig, nil)
	}

	return nil
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// NewTestConfig creates a configuration rooted in dir for testing purposes.
func NewTestConfig(dir string) *Config {
	cfg := defaultConfig()
	cfg.Directories.Default = filepath.Join(dir, "notes")
	cfg.Directories.FoldersFile = filepath.Join(dir, "folders.json")
	cfg.Settings.LogFile = filepath.Join(dir, "invisinote.log")
	return cfg
}

var themes = map[string]map[string]string{
	"default": {
		"primary":  "213", // Purple
		"success":  "114", // Green
		"warning":  "220", // Yellow
		"error":    "196", // Red
		"info":     "39",  // Blue
		"emphasis": "212", // Light Pink
		"border":   "213", // Purple
	},
	"dark": {
		"primary":  "105",
		"success":  "78",
		"warning":  "214",
		"error":    "160",
		"info":     "33",
		"emphasis": "147",
		"border":   "105",
	},
	"light": {
		"primary":  "135",
		"success":  "150",
		"warning":  "222",
		"error":    "210",
		"info":     "117",
		"emphasis": "219",
		"border":   "135",
	},
	// High contrast for low-vision use
	"monochrome": {
		"primary":  "255",
		"success":  "255",
		"warning":  "255",
		"error":    "255",
		"info":     "250",
		"emphasis": "231",
		"border":   "245",
	},
}

// GetTheme returns a predefined theme palette by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	if theme, exists := themes[name]; exists {
		return theme
	}
	return themes["default"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
