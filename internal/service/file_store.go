package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vilaca/gh-repo-export/internal/domain"
)

// FileStore reads structured snapshots and writes export artifacts.
// Writes go to a temporary file that is renamed into place, so a failed
// write never leaves a truncated artifact behind.
type FileStore struct {
	logger Logger
}

// NewFileStore creates a new file store.
func NewFileStore(logger Logger) *FileStore {
	return &FileStore{logger: logger}
}

// LoadSnapshot reads and decodes a structured snapshot from path.
func (s *FileStore) LoadSnapshot(path string) (*domain.AggregateResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var result domain.AggregateResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	if result.Profile.Login == "" {
		return nil, fmt.Errorf("snapshot %s has no profile login", path)
	}

	s.logger.Printf("Snapshot: Loaded %s (repos: %d, groups: %d)",
		path, len(result.Repos), result.LanguageGroups.Len())

	return &result, nil
}

// WriteFile atomically replaces path with data, creating parent directories.
func (s *FileStore) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0o644); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
