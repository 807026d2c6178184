// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDataPath is where the tracker's data file lives unless overridden by
// the data.path config key.
func DefaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "finote.db"
	}
	return filepath.Join(home, ".local", "share", "finote", "finote.db")
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
