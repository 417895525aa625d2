package extensibility

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/comalice/immutalint/internal/primitives"
)

// FSResolver resolves Go source files under root directories on disk.
// It skips vendor, testdata, hidden and underscore-prefixed directories,
// and skips _test.go files unless IncludeTests is set.
type FSResolver struct {
	IncludeTests bool
	Exclude      []string // directory base names to skip, in addition to the defaults
}

// NewFSResolver creates a resolver with the default skip set.
func NewFSResolver() *FSResolver {
	return &FSResolver{}
}

// Resolve walks each root and returns the source files to inspect.
// A root that is a single .go file is returned as-is.
func (r *FSResolver) Resolve(ctx context.Context, roots []string) ([]primitives.SourceFile, error) {
	var files []primitives.SourceFile
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", root, err)
		}
		if !info.IsDir() {
			src, err := r.load(root)
			if err != nil {
				return nil, err
			}
			files = append(files, src)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if d.IsDir() {
				if path != root && r.skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !r.wantFile(d.Name()) {
				return nil
			}
			src, err := r.load(path)
			if err != nil {
				return err
			}
			files = append(files, src)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", root, err)
		}
	}
	return files, nil
}

func (r *FSResolver) skipDir(name string) bool {
	if name == "vendor" || name == "testdata" {
		return true
	}
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}
	for _, excluded := range r.Exclude {
		if name == excluded {
			return true
		}
	}
	return false
}

func (r *FSResolver) wantFile(name string) bool {
	if !strings.HasSuffix(name, ".go") {
		return false
	}
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return false
	}
	if !r.IncludeTests && strings.HasSuffix(name, "_test.go") {
		return false
	}
	return true
}

func (r *FSResolver) load(path string) (primitives.SourceFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return primitives.SourceFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	return primitives.NewSourceFile(path, content), nil
}
