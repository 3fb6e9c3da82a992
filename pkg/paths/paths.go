package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/dotupdate/pkg/errors"
)

const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "dotupdate"

	// ConfigFileName is the default config file name
	ConfigFileName = "config.ini"

	// DefaultSourceDir is used when neither config nor flags name a source
	DefaultSourceDir = "./dotfiles"

	// DefaultDestDir is used when neither config nor flags name a destination
	DefaultDestDir = "~/"
)

// ExpandHome expands a leading ~ or ~/ to the user's home directory.
// ~user forms are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}

	return filepath.Clean(abs), nil
}

// UserConfigFile returns $XDG_CONFIG_HOME/dotupdate/config.ini
func UserConfigFile() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// ConfigSearchPaths lists candidate config files in lookup order: the
// working directory first, then the user's XDG config directory.
func ConfigSearchPaths() []string {
	return []string{
		ConfigFileName,
		UserConfigFile(),
	}
}
