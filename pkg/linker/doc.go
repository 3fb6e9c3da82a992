// Package linker links the top-level entries of a dotfiles directory into a
// destination directory as dot-prefixed symbolic links.
//
// For a source of ./dotfiles and a destination of ~/:
//
//	./dotfiles/bashrc  ->  ~/.bashrc
//	./dotfiles/vim     ->  ~/.vim   (one link to the whole directory)
//
// A run validates both directories, enumerates the entries matching the
// filter glob, and produces exactly one LinkOutcome per entry. Entries on the
// ignore list, destinations that are already occupied and failed symlink
// calls are all recorded as outcomes; only an invalid request aborts the run
// with an ErrInvalidConfiguration error. Nothing that already exists at a
// destination is ever replaced or removed.
package linker
