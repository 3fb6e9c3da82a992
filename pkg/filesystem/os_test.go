package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDirIsSorted(t *testing.T) {
	fsys := NewOS()
	require.NotNil(t, fsys)

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "zshrc"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "bashrc"), nil, 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "vim", "colors"), 0755))

	entries, err := fsys.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "bashrc", entries[0].Name())
	assert.Equal(t, "vim", entries[1].Name())
	assert.True(t, entries[1].IsDir())
	assert.Equal(t, "zshrc", entries[2].Name())
}

func TestOSSymlinks(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "vim")
	link := filepath.Join(tmpDir, ".vim")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, fsys.Symlink(target, link))

	got, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	linfo, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, linfo.Mode()&fs.ModeSymlink)

	info, err := fsys.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// an existing entry is never replaced
	assert.Error(t, fsys.Symlink(target, link))
}

func TestMissingEntries(t *testing.T) {
	fsys := NewOS()
	missing := filepath.Join(t.TempDir(), "nothing")

	_, err := fsys.Lstat(missing)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, err = fsys.Stat(missing)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, err = fsys.ReadDir(missing)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOSCannotRemove(t *testing.T) {
	_, ok := NewOS().(interface{ Remove(string) error })
	assert.False(t, ok, "the linker filesystem must not expose Remove")
}
