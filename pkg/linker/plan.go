package linker

import (
	stderrors "errors"
	"io/fs"

	"github.com/leighmacdonald/dotupdate/pkg/errors"
	"github.com/leighmacdonald/dotupdate/pkg/types"
)

// Classify reports what already occupies destPath. Lstat does not follow
// the final link, so a broken link still counts as ExistingLink, and an
// Lstat not-exist means nothing is there at all.
func Classify(fsys types.FS, destPath string) (types.Conflict, error) {
	info, err := fsys.Lstat(destPath)
	switch {
	case err == nil && info.Mode()&fs.ModeSymlink != 0:
		return types.ExistingLink, nil
	case err == nil:
		return types.ExistingFile, nil
	case stderrors.Is(err, fs.ErrNotExist):
		return types.NoConflict, nil
	default:
		return types.NoConflict, err
	}
}

// Plan decides and, outside dry-run mode, performs the link for one candidate.
func (l *Linker) Plan(c types.Candidate, dryRun bool) types.LinkOutcome {
	logger := l.logger.With().
		Str("name", c.Name).
		Str("source", c.SourcePath).
		Str("dest", c.DestPath).
		Logger()

	conflict, err := Classify(l.fs, c.DestPath)
	if err != nil {
		logger.Error().Err(err).Msg("Cannot inspect destination")
		return types.LinkOutcome{
			Candidate: c,
			Status:    types.StatusFailed,
			Err:       errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", c.DestPath),
		}
	}

	switch conflict {
	case types.ExistingLink:
		logger.Warn().Msgf("Link exists %s", c.DestPath)
		return types.LinkOutcome{Candidate: c, Status: types.StatusConflictExistingLink}
	case types.ExistingFile:
		logger.Warn().Msgf("File exists already %s", c.DestPath)
		return types.LinkOutcome{Candidate: c, Status: types.StatusConflictExistingFile}
	}

	if dryRun {
		logger.Info().Msgf("DRY RUN: ln -s %s %s", c.SourcePath, c.DestPath)
		return types.LinkOutcome{Candidate: c, Status: types.StatusPlanned}
	}

	if err := l.fs.Symlink(c.SourcePath, c.DestPath); err != nil {
		logger.Error().Err(err).Msg("Failed to create symlink")
		return types.LinkOutcome{
			Candidate: c,
			Status:    types.StatusFailed,
			Err: errors.Wrapf(err, errors.ErrSymlinkCreate,
				"failed to link %s -> %s", c.DestPath, c.SourcePath),
		}
	}

	logger.Info().Msgf("ln -s %s %s", c.SourcePath, c.DestPath)
	return types.LinkOutcome{Candidate: c, Status: types.StatusCreated}
}
