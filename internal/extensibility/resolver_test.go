package extensibility

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func resolvedNames(t *testing.T, r *FSResolver, roots []string) []string {
	t.Helper()
	files, err := r.Resolve(context.Background(), roots)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(filepath.Dir(roots[0]), f.Name)
		if err != nil {
			names[i] = f.Name
			continue
		}
		names[i] = filepath.ToSlash(rel)
	}
	sort.Strings(names)
	return names
}

func TestFSResolverSkips(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.go":              "package main",
		"main_test.go":         "package main",
		"notes.txt":            "not go",
		"sub/sub.go":           "package sub",
		"vendor/dep.go":        "package dep",
		"testdata/fixture.go":  "package fixture",
		".hidden/hidden.go":    "package hidden",
		"_skip/skip.go":        "package skip",
		"generated/_gen.go":    "package generated",
		"excluded/excluded.go": "package excluded",
	})

	r := NewFSResolver()
	r.Exclude = []string{"excluded"}

	base := filepath.Base(root)
	got := resolvedNames(t, r, []string{root})
	want := []string{base + "/main.go", base + "/sub/sub.go"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestFSResolverIncludeTests(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.go":      "package main",
		"main_test.go": "package main",
	})

	r := NewFSResolver()
	r.IncludeTests = true
	files, err := r.Resolve(context.Background(), []string{root})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Errorf("got %d files, want 2", len(files))
	}
}

func TestFSResolverSingleFile(t *testing.T) {
	root := writeTree(t, map[string]string{"only.go": "package only"})
	path := filepath.Join(root, "only.go")

	files, err := NewFSResolver().Resolve(context.Background(), []string{path})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Name != path {
		t.Fatalf("got %v", files)
	}
	if string(files[0].Content) != "package only" {
		t.Errorf("got content %q", files[0].Content)
	}
}

func TestFSResolverMissingRoot(t *testing.T) {
	_, err := NewFSResolver().Resolve(context.Background(), []string{"/does/not/exist"})
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestFSResolverCancelled(t *testing.T) {
	root := writeTree(t, map[string]string{"main.go": "package main"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFSResolver().Resolve(ctx, []string{root}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
