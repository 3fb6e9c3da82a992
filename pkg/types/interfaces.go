package types

import "io/fs"

// FS is the filesystem surface the linker needs. It can inspect and create
// entries but has no way to remove or overwrite one.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Symlink(oldname, newname string) error
}
