package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/comalice/immutalint/internal/core"
	"github.com/comalice/immutalint/internal/primitives"
)

// baselineFile is the on-disk shape: a sorted list of violation keys.
type baselineFile struct {
	Keys []string `json:"keys"`
}

// BaselineStore persists a set of known violation keys as a JSON file.
// Loading produces a core.BaselineCache the inspector suppresses against;
// writing records a report's findings as the new baseline.
type BaselineStore struct {
	path string
}

// NewBaselineStore creates a store for the given file path.
func NewBaselineStore(path string) (*BaselineStore, error) {
	if path == "" {
		return nil, errors.New("baseline path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return &BaselineStore{path: path}, nil
}

// Load reads the baseline. A missing file yields an empty cache so a first
// run needs no setup.
func (s *BaselineStore) Load(ctx context.Context) (*core.BaselineCache, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return core.NewBaselineCache(), nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var file baselineFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return core.NewBaselineCache(file.Keys...), nil
}

// Write records every violation in the report as the new baseline.
func (s *BaselineStore) Write(ctx context.Context, report primitives.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cache := core.NewBaselineCache(report.Keys()...)
	data, err := json.MarshalIndent(baselineFile{Keys: cache.Keys()}, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
