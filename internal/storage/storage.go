// Package storage persists the choice history to a per-user YAML file.
//
// The store is loaded once at process start and written back exactly once,
// through a write-temp-then-rename commit so an interrupt can never leave a
// half-written file behind.
package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zerosofts/nameit/internal/errors"
	"github.com/zerosofts/nameit/internal/models"
	"gopkg.in/yaml.v3"
)

// Store handles reading and writing the history file.
type Store struct {
	path string
}

// NewStore creates a store bound to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the on-disk location of the store.
func (s *Store) Path() string {
	return s.path
}

// Load reads the history from disk. A missing file is a first run and yields
// an empty history with a warning; an unreadable or corrupt file is fatal.
func (s *Store) Load() (*models.History, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: no history at %s, starting empty\n", s.path)
			return models.NewHistory(), nil
		}
		return nil, errors.StorageError("read", err)
	}

	var hist models.History
	if err := yaml.Unmarshal(data, &hist); err != nil {
		return nil, errors.CorruptStoreError(s.path, err)
	}
	if hist.Version > models.CurrentHistoryVersion {
		return nil, errors.CorruptStoreError(s.path,
			fmt.Errorf("unsupported store version %d", hist.Version))
	}
	if hist.Version == 0 {
		hist.Version = models.CurrentHistoryVersion
	}
	if hist.Choices == nil {
		hist.Choices = make(map[string][]string)
	}
	return &hist, nil
}

// Save writes the history atomically: serialize, write to a temp file in the
// same directory, then rename over the store.
func (s *Store) Save(hist *models.History) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.StorageError("create directory", err)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(hist); err != nil {
		return errors.StorageError("encode", err)
	}
	if err := encoder.Close(); err != nil {
		return errors.StorageError("encode", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.yaml")
	if err != nil {
		return errors.StorageError("create temp file", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.StorageError("write", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.StorageError("write", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.StorageError("commit", err)
	}
	return nil
}
