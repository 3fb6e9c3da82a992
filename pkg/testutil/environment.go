package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEnvironment is a throwaway dotfiles source and destination pair.
type TestEnvironment struct {
	Root      string
	SourceDir string
	DestDir   string
	HomeDir   string

	t *testing.T
}

// NewTestEnvironment creates source, dest and home directories under a temp
// dir and points HOME and the XDG base directories into it.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:      root,
		SourceDir: filepath.Join(root, "dotfiles"),
		DestDir:   filepath.Join(root, "dest"),
		HomeDir:   filepath.Join(root, "home"),
		t:         t,
	}

	for _, dir := range []string{env.SourceDir, env.DestDir, env.HomeDir} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "xdg", "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "xdg", "state"))

	return env
}

// AddFile writes content to a path relative to the source directory,
// creating parent directories.
func (e *TestEnvironment) AddFile(relPath, content string) string {
	e.t.Helper()

	path := filepath.Join(e.SourceDir, relPath)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// AddDir creates a directory relative to the source directory.
func (e *TestEnvironment) AddDir(relPath string) string {
	e.t.Helper()

	path := filepath.Join(e.SourceDir, relPath)
	require.NoError(e.t, os.MkdirAll(path, 0755))
	return path
}

// AddDestFile writes a regular file into the destination directory.
func (e *TestEnvironment) AddDestFile(name, content string) string {
	e.t.Helper()

	path := filepath.Join(e.DestDir, name)
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// AddDestLink creates a symlink named name in the destination pointing at target.
func (e *TestEnvironment) AddDestLink(name, target string) string {
	e.t.Helper()

	path := filepath.Join(e.DestDir, name)
	require.NoError(e.t, os.Symlink(target, path))
	return path
}

// DestEntries returns the sorted names in the destination directory.
func (e *TestEnvironment) DestEntries() []string {
	e.t.Helper()
	return ListDir(e.t, e.DestDir)
}

// ListDir returns the sorted entry names of dir.
func ListDir(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}
