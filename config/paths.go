// ABOUTME: XDG-based config path resolution for sortstudy.
// ABOUTME: Checks XDG_CONFIG_HOME, then falls back to ~/.config/sortstudy.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir returns the directory holding the sortstudy config file.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sortstudy"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", "sortstudy"), nil
}

// DefaultPath returns the config file path inside DefaultDir.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
