package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"invisinote/internal/config"
	"invisinote/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)
	return tmpFile.Name()
}

const (
	validYAML = `
notes:
  extension: ".md"
  ignore: [".*", "draft-*"]
directories:
  default: "/home/test/notes"
  folders_file: "/home/test/.config/invisinote/folders.json"
settings:
  debug: true
  log_file: "/tmp/invisinote.log"
watch:
  enabled: true
  debounce_ms: 50
theme:
  name: "monochrome"
`
	partialYAML = `
directories:
  default: "/srv/notes"
`
	invalidSyntaxYAML = `
notes:
  extension: ".txt
  ignore: [
`
	invalidExtensionYAML = `
notes:
  extension: "txt"
`
	invalidGlobYAML = `
notes:
  ignore: ["[unclosed"]
`
	invalidThemeYAML = `
theme:
  name: "neon"
`
	negativeDebounceYAML = `
watch:
  debounce_ms: -5
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, validYAML))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ".md", cfg.Notes.Extension)
		assert.Equal(t, []string{".*", "draft-*"}, cfg.Notes.Ignore)
		assert.Equal(t, "/home/test/notes", cfg.Directories.Default)
		assert.Equal(t, "/home/test/.config/invisinote/folders.json", cfg.Directories.FoldersFile)
		assert.True(t, cfg.Settings.Debug)
		assert.Equal(t, "/tmp/invisinote.log", cfg.Settings.LogFile)
		assert.True(t, cfg.Watch.Enabled)
		assert.Equal(t, 50, cfg.Watch.DebounceMS)
		assert.Equal(t, "monochrome", cfg.Theme.Name)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, partialYAML))
		require.NoError(t, err)

		assert.Equal(t, "/srv/notes", cfg.Directories.Default)
		assert.Equal(t, ".txt", cfg.Notes.Extension)
		assert.Equal(t, []string{".*"}, cfg.Notes.Ignore)
		assert.Equal(t, 200, cfg.Watch.DebounceMS)
		assert.Equal(t, "default", cfg.Theme.Name)
		assert.False(t, cfg.Watch.Enabled)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, ".txt", cfg.Notes.Extension)
		assert.NotEmpty(t, cfg.Directories.Default)
	})

	t.Run("invalid yaml syntax", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidSyntaxYAML))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
	})

	invalid := []struct {
		name    string
		content string
		param   string
	}{
		{"extension without dot", invalidExtensionYAML, "notes.extension"},
		{"bad ignore glob", invalidGlobYAML, "notes.ignore"},
		{"unknown theme", invalidThemeYAML, "theme.name"},
		{"negative debounce", negativeDebounceYAML, "watch.debounce_ms"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfigFile(createTestYAML(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidConfig(err))

			var cfgErr *errors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.param, cfgErr.Param())
		})
	}
}

func TestValidate(t *testing.T) {
	var nilCfg *config.Config
	assert.ErrorIs(t, nilCfg.Validate(), errors.ErrInvalidConfig)

	cfg := config.New()
	require.NoError(t, cfg.Validate())

	cfg.Directories.Default = "  "
	assert.Error(t, cfg.Validate())

	cfg = config.New()
	cfg.Notes.Ignore = []string{""}
	assert.Error(t, cfg.Validate())
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := config.NewTestConfig(dir)
	cfg.Notes.Extension = ".note"
	cfg.Watch.Enabled = true
	cfg.Theme.Name = "dark"

	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestThemes(t *testing.T) {
	for _, name := range config.ListThemes() {
		theme := config.GetTheme(name)
		assert.Contains(t, theme, "primary", name)
		assert.Contains(t, theme, "error", name)
	}
	assert.Equal(t, config.GetTheme("default"), config.GetTheme("missing"))
}

func TestPathsFor(t *testing.T) {
	t.Run("linux honours XDG", func(t *testing.T) {
		p, err := config.PathsFor("linux", map[string]string{
			"XDG_CONFIG_HOME": "/xdg/config",
			"XDG_DATA_HOME":   "/xdg/data",
		}, "/home/u/.config", "/home/u/.local/share")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/xdg/config", "invisinote", "config.yaml"), p.ConfigPath)
		assert.Equal(t, filepath.Join("/xdg/config", "invisinote", "folders.json"), p.FoldersPath)
		assert.Equal(t, filepath.Join("/xdg/data", "invisinote", "notes"), p.NotesDir)
		assert.Equal(t, filepath.Join("/xdg/data", "invisinote", "invisinote.log"), p.LogPath)
	})

	t.Run("linux without XDG", func(t *testing.T) {
		p, err := config.PathsFor("linux", map[string]string{}, "/home/u/.config", "/home/u/.local/share")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/u/.config", "invisinote", "config.yaml"), p.ConfigPath)
		assert.Equal(t, filepath.Join("/home/u/.local/share", "invisinote"), p.DataDir)
	})

	t.Run("windows uses LOCALAPPDATA for data", func(t *testing.T) {
		p, err := config.PathsFor("windows", map[string]string{
			"LOCALAPPDATA":    `C:\Local`,
			"XDG_CONFIG_HOME": "/ignored",
		}, `C:\Roaming`, `C:\Roaming`)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(`C:\Roaming`, "invisinote", "config.yaml"), p.ConfigPath)
		assert.Equal(t, filepath.Join(`C:\Local`, "invisinote"), p.DataDir)
	})

	t.Run("empty base dirs", func(t *testing.T) {
		_, err := config.PathsFor("darwin", nil, "", "")
		assert.Error(t, err)
	})
}
