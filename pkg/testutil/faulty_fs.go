package testutil

import (
	"io/fs"

	"github.com/leighmacdonald/dotupdate/pkg/types"
)

// FaultyFS wraps a types.FS and fails selected operations.
type FaultyFS struct {
	types.FS

	// SymlinkErr is returned from Symlink for destinations in FailSymlinkFor,
	// or for every call when FailSymlinkFor is empty
	SymlinkErr     error
	FailSymlinkFor map[string]bool

	// LstatErr is returned from Lstat when set
	LstatErr error

	// ReadDirErr is returned from ReadDir when set
	ReadDirErr error

	SymlinkCalls []string
}

// NewFaultyFS wraps base.
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{FS: base}
}

func (f *FaultyFS) Symlink(oldname, newname string) error {
	f.SymlinkCalls = append(f.SymlinkCalls, newname)
	if f.SymlinkErr != nil && (len(f.FailSymlinkFor) == 0 || f.FailSymlinkFor[newname]) {
		return &fs.PathError{Op: "symlink", Path: newname, Err: f.SymlinkErr}
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultyFS) Lstat(name string) (fs.FileInfo, error) {
	if f.LstatErr != nil {
		return nil, &fs.PathError{Op: "lstat", Path: name, Err: f.LstatErr}
	}
	return f.FS.Lstat(name)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if f.ReadDirErr != nil {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: f.ReadDirErr}
	}
	return f.FS.ReadDir(name)
}
