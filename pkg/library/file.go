package library

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/staircast/staircast/pkg/errors"
)

// FileStore is a file-based design store for CLI use.
// Designs are stored as JSON files in a config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based design store.
// If baseDir is empty, defaults to ~/.config/staircast/designs/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "staircast", "designs")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create design dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) designPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// Get retrieves a design by ID.
func (s *FileStore) Get(ctx context.Context, id string) (*Design, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.designPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeDesignNotFound, "design %s not found", id)
		}
		return nil, errors.Wrap(errors.ErrCodeStore, err, "reading design %s", id)
	}

	var d Design
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "parsing design %s", id)
	}
	return &d, nil
}

// List returns all designs sorted by name. Documents that fail to
// parse are skipped rather than failing the whole listing.
func (s *FileStore) List(ctx context.Context) ([]*Design, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "reading design dir")
	}

	designs := make([]*Design, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var d Design
		if err := json.Unmarshal(data, &d); err != nil {
			continue
		}
		designs = append(designs, &d)
	}

	sortDesigns(designs)
	return designs, nil
}

// Put stores a design, replacing any existing design with the same ID.
func (s *FileStore) Put(ctx context.Context, d *Design) error {
	if d.ID == "" {
		return errors.New(errors.ErrCodeStore, "design has no id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "encoding design %s", d.ID)
	}
	if err := os.WriteFile(s.designPath(d.ID), data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "writing design %s", d.ID)
	}
	return nil
}

// Delete removes a design by ID.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.designPath(id))
	if os.IsNotExist(err) {
		return errors.New(errors.ErrCodeDesignNotFound, "design %s not found", id)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "removing design %s", id)
	}
	return nil
}

// Close does nothing for file store.
func (s *FileStore) Close() error { return nil }

// Path returns the base directory for design files.
func (s *FileStore) Path() string {
	return s.baseDir
}

// sortDesigns orders by case-insensitive name, with ID as tiebreaker
// so listings are stable.
func sortDesigns(designs []*Design) {
	slices.SortFunc(designs, func(a, b *Design) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

var _ Store = (*FileStore)(nil)
