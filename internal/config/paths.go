package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "invisinote"

// Paths holds the on-disk locations the application uses.
type Paths struct {
	ConfigPath  string
	DataDir     string
	NotesDir    string
	FoldersPath string
	LogPath     string
}

// DefaultPaths resolves paths for the current user and platform.
func DefaultPaths() (Paths, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return Paths{}, fmt.Errorf("user config dir: %w", err)
	}
	dataDir := configDir
	if runtime.GOOS == "linux" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return Paths{}, fmt.Errorf("user home dir: %w", homeErr)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}

	env := map[string]string{
		"XDG_CONFIG_HOME": os.Getenv("XDG_CONFIG_HOME"),
		"XDG_DATA_HOME":   os.Getenv("XDG_DATA_HOME"),
		"LOCALAPPDATA":    os.Getenv("LOCALAPPDATA"),
	}
	return PathsFor(runtime.GOOS, env, configDir, dataDir)
}

// PathsFor computes paths from explicit inputs so it can be tested on any platform.
func PathsFor(goos string, env map[string]string, userConfigDir, userDataDir string) (Paths, error) {
	if userConfigDir == "" || userDataDir == "" {
		return Paths{}, fmt.Errorf("empty base dirs")
	}

	configBase := userConfigDir
	dataBase := userDataDir

	switch goos {
	case "linux":
		if v := env["XDG_CONFIG_HOME"]; v != "" {
			configBase = v
		}
		if v := env["XDG_DATA_HOME"]; v != "" {
			dataBase = v
		}
	case "windows":
		if v := env["LOCALAPPDATA"]; v != "" {
			dataBase = v
		}
	}

	appConfigDir := filepath.Join(configBase, appName)
	appDataDir := filepath.Join(dataBase, appName)
	return Paths{
		ConfigPath:  filepath.Join(appConfigDir, "config.yaml"),
		DataDir:     appDataDir,
		NotesDir:    filepath.Join(appDataDir, "notes"),
		FoldersPath: filepath.Join(appConfigDir, "folders.json"),
		LogPath:     filepath.Join(appDataDir, appName+".log"),
	}, nil
}
