package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/edgard/autocorrect/internal/cli"
)

func TestInitWritesLocalConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { _ = os.Chdir(cwd) })

	root := cli.NewRootCommand()
	root.SetArgs([]string{"init", "--local"})

	var out bytes.Buffer
	root.SetOut(&out)

	if err := root.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, ".autocorrectrc")); err != nil {
		t.Fatalf("expected .autocorrectrc to exist: %v", err)
	}
}

func TestInitRefusesToOverwriteWithoutForce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { _ = os.Chdir(cwd) })

	if err := os.WriteFile(filepath.Join(dir, ".autocorrectrc"), []byte("ignore: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := cli.NewRootCommand()
	root.SetArgs([]string{"init", "--local"})
	root.SetOut(&bytes.Buffer{})

	if err := root.Execute(); err == nil {
		t.Fatal("expected init to refuse overwriting an existing config without --force")
	}
}

func TestUpdateReportsVersion(t *testing.T) {
	t.Parallel()

	root := cli.NewRootCommand()
	root.SetArgs([]string{"update"})

	var out bytes.Buffer
	root.SetOut(&out)

	if err := root.Execute(); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if out.Len() == 0 {
		t.Fatal("expected update to print version information")
	}
}

func TestRootFixRewritesFileInPlace(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")

	if err := os.WriteFile(path, []byte("在Ubuntu 11.10系统"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := cli.NewRootCommand()
	root.SetArgs([]string{"--fix", path})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	if err := root.Execute(); err != nil {
		t.Fatalf("--fix failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "在 Ubuntu 11.10 系统"
	if string(got) != want {
		t.Errorf("rewritten file = %q, want %q", got, want)
	}
}

func TestRootLintReportsDiffAndExitsNonZero(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")

	if err := os.WriteFile(path, []byte("在Ubuntu 11.10系统"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := cli.NewRootCommand()
	root.SetArgs([]string{"--lint", "--format", "diff", path})

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()

	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("expected an *cli.ExitError{Code: 1} for a file with findings, got %v", err)
	}

	if out.Len() == 0 {
		t.Fatal("expected a diff in stdout for a file with findings")
	}
}
