// Package config resolves file locations for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a user-supplied path into an absolute-ish one: a
// leading ~ is replaced with the home directory and $VAR references are
// substituted from the environment. When the home directory cannot be
// determined the tilde is left as-is.
func ExpandPath(path string) string {
	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~/"))
		}
	}
	return os.ExpandEnv(path)
}

// DefaultDatabasePath returns the standard location for the seedling
// database, honoring XDG-style layout under the user's home.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "seedling.db"
	}
	return filepath.Join(home, ".local", "share", "seedling", "seedling.db")
}
