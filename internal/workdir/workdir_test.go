package workdir

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveBaseDir_Empty(t *testing.T) {
	if got := ResolveBaseDir(""); got != "" {
		t.Errorf("ResolveBaseDir(\"\") = %q, want empty", got)
	}
}

func TestResolveBaseDir_CurrentDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, configDir), 0755); err != nil {
		t.Fatal(err)
	}

	if got := ResolveBaseDir(dir); got != filepath.Clean(dir) {
		t.Errorf("ResolveBaseDir() = %q, want %q", got, dir)
	}
}

func TestResolveBaseDir_NoMarkerOutsideGit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}

	// A temp dir is not inside a git checkout, so nothing above it is searched.
	if got := ResolveBaseDir(dir); got != filepath.Clean(dir) {
		t.Errorf("ResolveBaseDir() = %q, want %q", got, dir)
	}
}

func TestResolveBaseDir_ConfigDirMustBeDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, configDir), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if hasConfigDir(dir) {
		t.Error("hasConfigDir() = true for a plain file")
	}
}
