package walker_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/edgard/autocorrect/internal/ignorer"
	"github.com/edgard/autocorrect/internal/walker"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		full := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(full, []byte("content"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscoverWalksDirectoryRecursively(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "a.go", "sub/b.go", "vendor/c.go")

	files, err := walker.Discover([]string{dir}, ignorer.New([]string{"vendor/**"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}

	sort.Strings(names)

	want := []string{"a.go", "b.go"}
	if len(names) != len(want) {
		t.Fatalf("Discover returned %v, want files named %v", names, want)
	}

	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestDiscoverSinglePathTwiceDeduplicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "a.go")

	path := filepath.Join(dir, "a.go")

	files, err := walker.Discover([]string{path, path}, ignorer.New(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("Discover with a duplicate arg = %v, want a single entry", files)
	}
}

func TestRunCollectsAllErrors(t *testing.T) {
	t.Parallel()

	paths := []string{"a", "b", "c"}

	var processed []string

	err := walker.Run(context.Background(), paths, 2, func(path string) error {
		if path == "b" {
			return errors.New("boom")
		}

		return nil
	}, func(o walker.Outcome) {
		processed = append(processed, o.Path)
	})

	if err == nil {
		t.Fatal("expected an aggregated error for the failing path")
	}

	if len(processed) != len(paths) {
		t.Fatalf("each callback invoked %d times, want %d", len(processed), len(paths))
	}
}

func TestRunAllSucceed(t *testing.T) {
	t.Parallel()

	paths := []string{"a", "b", "c"}

	err := walker.Run(context.Background(), paths, 4, func(path string) error {
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFileTypeOf(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"main.go":     "go",
		"README.MD":   "md",
		"noext":       "",
		"archive.tar": "tar",
	}

	for in, want := range cases {
		if got := walker.FileTypeOf(in); got != want {
			t.Errorf("FileTypeOf(%q) = %q, want %q", in, got, want)
		}
	}
}
