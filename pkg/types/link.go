package types

import (
	"sort"
	"strings"
)

// DefaultFilter matches every visible top-level entry of the source directory.
const DefaultFilter = "*"

// LinkRequest is the fully resolved input of one linking run.
type LinkRequest struct {
	// SourcePath is the directory holding the dotfiles (may use ~ or be relative)
	SourcePath string

	// Filter is a shell glob matched against top-level entry names
	Filter string

	// DestPath is where the dotted links are created, usually the home directory
	DestPath string

	DryRun bool

	// Backup is accepted for compatibility and has no effect
	Backup bool

	// Ignore holds top-level entry names that must not be linked
	Ignore IgnoreList
}

// EffectiveFilter returns the filter, falling back to DefaultFilter.
func (r LinkRequest) EffectiveFilter() string {
	if strings.TrimSpace(r.Filter) == "" {
		return DefaultFilter
	}
	return r.Filter
}

// IgnoreList is a set of relative entry names excluded from linking.
type IgnoreList map[string]struct{}

// NewIgnoreList builds an IgnoreList from names, dropping blanks.
func NewIgnoreList(names ...string) IgnoreList {
	list := make(IgnoreList, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		list[name] = struct{}{}
	}
	return list
}

// ParseIgnoreList splits a comma separated list such as "bin, README.md".
func ParseIgnoreList(raw string) IgnoreList {
	return NewIgnoreList(strings.Split(raw, ",")...)
}

// Contains reports whether name is in the list. Matching is exact.
func (l IgnoreList) Contains(name string) bool {
	_, ok := l[name]
	return ok
}

// Names returns the members in sorted order.
func (l IgnoreList) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Candidate is one top-level source entry considered for linking.
type Candidate struct {
	// Name is the entry path relative to the source directory, e.g. "vim"
	Name string

	// SourcePath is the absolute path of the source entry (the link target)
	SourcePath string

	// DestPath is the absolute path of the link to create, e.g. ~/.vim
	DestPath string
}

// Conflict classifies what already occupies a destination path.
type Conflict int

const (
	NoConflict Conflict = iota
	// ExistingLink is a symlink, valid or broken
	ExistingLink
	// ExistingFile is a regular file, directory or other non-link entry
	ExistingFile
)

func (c Conflict) String() string {
	switch c {
	case ExistingLink:
		return "existing link"
	case ExistingFile:
		return "existing file"
	default:
		return "none"
	}
}
