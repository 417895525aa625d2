package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/comalice/immutalint/internal/primitives"
)

// JSONReportWriter is a file-based report writer using JSON serialization.
type JSONReportWriter struct {
	dir string
}

// NewJSONReportWriter creates a JSONReportWriter, ensuring the directory exists.
func NewJSONReportWriter(dir string) (*JSONReportWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONReportWriter{dir: dir}, nil
}

// Save writes the report as <name>.json in the writer's directory.
func (w *JSONReportWriter) Save(ctx context.Context, report primitives.Report, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	fn := filepath.Join(w.dir, name+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

// Load reads a report written by Save.
func (w *JSONReportWriter) Load(ctx context.Context, name string) (primitives.Report, error) {
	if err := ctx.Err(); err != nil {
		return primitives.Report{}, err
	}
	fn := filepath.Join(w.dir, name+".json")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return primitives.Report{}, fmt.Errorf("report %q: %w", name, os.ErrNotExist)
		}
		return primitives.Report{}, fmt.Errorf("read %s: %w", fn, err)
	}
	var report primitives.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return primitives.Report{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return report, nil
}

// YAMLReportWriter is a file-based report writer using YAML serialization.
type YAMLReportWriter struct {
	dir string
}

// NewYAMLReportWriter creates a YAMLReportWriter, ensuring the directory exists.
func NewYAMLReportWriter(dir string) (*YAMLReportWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLReportWriter{dir: dir}, nil
}

// Save writes the report as <name>.yaml in the writer's directory.
func (w *YAMLReportWriter) Save(ctx context.Context, report primitives.Report, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	fn := filepath.Join(w.dir, name+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

// Load reads a report written by Save.
func (w *YAMLReportWriter) Load(ctx context.Context, name string) (primitives.Report, error) {
	if err := ctx.Err(); err != nil {
		return primitives.Report{}, err
	}
	fn := filepath.Join(w.dir, name+".yaml")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return primitives.Report{}, fmt.Errorf("report %q: %w", name, os.ErrNotExist)
		}
		return primitives.Report{}, fmt.Errorf("read %s: %w", fn, err)
	}
	var report primitives.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return primitives.Report{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return report, nil
}

// WriteJSON streams the report as JSON to an io.Writer.
func WriteJSON(w io.Writer, report primitives.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteYAML streams the report as YAML to an io.Writer.
func WriteYAML(w io.Writer, report primitives.Report) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(report)
}
