package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/matzehuels/wayfinder/pkg/config"
	"github.com/matzehuels/wayfinder/pkg/errors"
)

// FileStore is a file-based run store for the CLI.
// Runs are stored as JSON files named after their ID.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based run store.
// If baseDir is empty, defaults to $XDG_DATA_HOME/wayfinder/runs.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		dir, err := config.DataDir()
		if err != nil {
			return nil, fmt.Errorf("get data dir: %w", err)
		}
		baseDir = filepath.Join(dir, "runs")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) runPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) Save(ctx context.Context, run *Run) error {
	if err := errors.ValidateRunID(run.ID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	if err := os.WriteFile(s.runPath(run.ID), data, 0600); err != nil {
		return fmt.Errorf("write run file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, id string) (*Run, error) {
	if err := errors.ValidateRunID(id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(s.runPath(id))
}

func (s *FileStore) read(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read run file: %w", err)
	}
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("parse run: %w", err)
	}
	return &run, nil
}

func (s *FileStore) List(ctx context.Context, limit int) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read history dir: %w", err)
	}

	var runs []*Run
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		run, err := s.read(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue // Skip unreadable files
		}
		runs = append(runs, run)
	}

	sortNewestFirst(runs)
	if n := listLimit(limit); len(runs) > n {
		runs = runs[:n]
	}
	return runs, nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for run files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
