// Package config resolves the per-user nameit data directory and defaults.
package config

import (
	"os"
	"path/filepath"
)

const (
	// historyFileName is the on-disk name of the choice-history store.
	historyFileName = "history.yaml"

	// DefaultMaxChoices caps how many stored choices a prompt displays.
	DefaultMaxChoices = 20
)

// Dir returns the nameit data directory.
// Override with: NAMEIT_DIR=<path>. Defaults to ~/.nameit.
func Dir() (string, error) {
	if dir := os.Getenv("NAMEIT_DIR"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".nameit"), nil
}

// HistoryPath returns the full path of the history store file.
func HistoryPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, historyFileName), nil
}
