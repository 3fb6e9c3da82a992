package linker

import (
	"path/filepath"
	"strings"

	"github.com/leighmacdonald/dotupdate/pkg/errors"
	"github.com/leighmacdonald/dotupdate/pkg/paths"
	"github.com/leighmacdonald/dotupdate/pkg/types"
)

// Validated is a LinkRequest whose directories have been checked and
// resolved to absolute, home-expanded form.
type Validated struct {
	SourcePath string
	DestPath   string
	Filter     string
	DryRun     bool
	Ignore     types.IgnoreList
}

// Validate checks that the source and destination exist and are directories,
// and that the filter is a usable top-level glob.
func (l *Linker) Validate(req types.LinkRequest) (Validated, error) {
	source, err := l.resolveDir(req.SourcePath)
	if err != nil {
		return Validated{}, errors.Wrapf(err, errors.ErrInvalidConfiguration,
			"Source dotfiles path does not exist %s, cannot continue!", displayPath(req.SourcePath)).
			WithDetail("path", req.SourcePath)
	}

	dest, err := l.resolveDir(req.DestPath)
	if err != nil {
		return Validated{}, errors.Wrapf(err, errors.ErrInvalidConfiguration,
			"Destination path does not exist %s, cannot continue!", displayPath(req.DestPath)).
			WithDetail("path", req.DestPath)
	}

	filter := req.EffectiveFilter()
	if strings.ContainsRune(filter, filepath.Separator) || strings.ContainsRune(filter, '/') {
		return Validated{}, errors.Newf(errors.ErrInvalidConfiguration,
			"Filter %q must match top-level names only", filter)
	}
	if _, err := filepath.Match(filter, ""); err != nil {
		return Validated{}, errors.Wrapf(err, errors.ErrInvalidConfiguration, "Invalid filter %q", filter)
	}

	return Validated{
		SourcePath: source,
		DestPath:   dest,
		Filter:     filter,
		DryRun:     req.DryRun,
		Ignore:     req.Ignore,
	}, nil
}

// resolveDir normalizes path and requires it to be an existing directory.
// Symlinks to directories are accepted.
func (l *Linker) resolveDir(path string) (string, error) {
	abs, err := paths.NormalizePath(path)
	if err != nil {
		return "", err
	}

	info, err := l.fs.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", errors.Newf(errors.ErrInvalidInput, "%s is not a directory", abs)
	}

	return abs, nil
}

func displayPath(path string) string {
	if abs, err := paths.NormalizePath(path); err == nil {
		return abs
	}
	return path
}
