// Package store persists the account state as a single JSON document,
// the local-file analog of the original tracker's browser storage.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rustyeddy/propfirm/account"
	"go.uber.org/zap"
)

type File struct {
	path     string
	defaults func() account.State
	logger   *zap.Logger
}

// NewFile returns a store at path. defaults produces the fresh state
// used when nothing is stored or the stored payload is unreadable.
func NewFile(path string, defaults func() account.State, logger *zap.Logger) *File {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &File{path: path, defaults: defaults, logger: logger}
}

// Load reads the persisted state. Stored fields are decoded over a
// default state, so unknown or missing fields fall back to defaults and
// old payloads stay loadable. A missing or corrupt file is never an
// error: the caller gets a fresh default state.
func (f *File) Load() account.State {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return f.defaults()
	}

	st := f.defaults()
	if err := json.Unmarshal(data, &st); err != nil {
		f.logger.Warn("discarding corrupt state file",
			zap.String("path", f.path),
			zap.Error(err))
		return f.defaults()
	}
	return st
}

// Save writes the state atomically (temp file + rename) so a crash
// mid-write never leaves a half-written document behind.
func (f *File) Save(st account.State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".propfirm-state-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// Reset deletes the persisted state. Missing file is fine.
func (f *File) Reset() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove state file: %w", err)
	}
	return nil
}
