package linker

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/leighmacdonald/dotupdate/pkg/errors"
	"github.com/leighmacdonald/dotupdate/pkg/types"
)

// Enumerate returns the top-level entries of the source directory matching
// the filter, sorted by name. Each entry is a whole subtree; directories are
// never descended into.
func (l *Linker) Enumerate(v Validated) ([]types.Candidate, error) {
	entries, err := l.fs.ReadDir(v.SourcePath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidConfiguration,
			"Cannot read source directory %s", v.SourcePath)
	}

	var candidates []types.Candidate
	for _, entry := range entries {
		if !matchName(v.Filter, entry.Name()) {
			continue
		}

		entryPath := filepath.Join(v.SourcePath, entry.Name())
		name, err := Relativize(entryPath, v.SourcePath)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, types.Candidate{
			Name:       name,
			SourcePath: entryPath,
			DestPath:   DestLinkPath(v.DestPath, name),
		})
	}

	if len(candidates) == 0 {
		return nil, errors.Newf(errors.ErrInvalidConfiguration,
			"No potential candidates for linking found at %s", v.SourcePath).
			WithDetail("filter", v.Filter)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Name < candidates[j].Name
	})

	return candidates, nil
}

// matchName applies shell glob rules: a leading dot must be matched
// explicitly, so "*" does not pick up .git or other hidden entries.
func matchName(pattern, name string) bool {
	if strings.HasPrefix(name, ".") && !strings.HasPrefix(pattern, ".") {
		return false
	}
	ok, err := filepath.Match(pattern, name)
	return err == nil && ok
}

// Relativize returns entryPath relative to sourcePath. Both may be relative,
// absolute, carry a ./ prefix or a trailing slash:
//
//	Relativize("./dotfiles/sub/file", "./dotfiles") == "sub/file"
func Relativize(entryPath, sourcePath string) (string, error) {
	base, err := filepath.Abs(sourcePath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve %s", sourcePath)
	}
	target, err := filepath.Abs(entryPath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve %s", entryPath)
	}

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "%s is not inside %s", entryPath, sourcePath)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrInvalidInput, "%s is not inside %s", entryPath, sourcePath)
	}

	return rel, nil
}

// IsIgnored reports whether name is on the ignore list. Only exact matches
// count: no globbing and no prefix matching.
func IsIgnored(name string, ignore types.IgnoreList) bool {
	return ignore.Contains(name)
}

// DestLinkPath returns destDir/.name
func DestLinkPath(destDir, name string) string {
	return filepath.Join(destDir, "."+name)
}
