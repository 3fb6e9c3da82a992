package linker

import (
	"github.com/leighmacdonald/dotupdate/pkg/filesystem"
	"github.com/leighmacdonald/dotupdate/pkg/logging"
	"github.com/leighmacdonald/dotupdate/pkg/types"
	"github.com/rs/zerolog"
)

// LoggerName is the component name on every linker log line.
const LoggerName = "linker"

// Linker performs linking runs against a filesystem.
type Linker struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Linker over fsys.
func New(fsys types.FS) *Linker {
	return &Linker{
		fs:     fsys,
		logger: logging.GetLogger(LoggerName),
	}
}

// WithLogger replaces the linker's logger.
func (l *Linker) WithLogger(logger zerolog.Logger) *Linker {
	l.logger = logger
	return l
}

// Run validates req, enumerates the candidates and processes each one in
// order. It returns an error only for an invalid request; every per-entry
// problem is recorded in the result instead.
func (l *Linker) Run(req types.LinkRequest) (*types.LinkResult, error) {
	done := logging.LogOperationStart(l.logger, "install")
	defer done()

	v, err := l.Validate(req)
	if err != nil {
		l.logger.Error().Err(err).Msg("Invalid configuration")
		return nil, err
	}

	if req.Backup {
		l.logger.Debug().Msg("Backup requested but not supported, existing files are left untouched")
	}

	candidates, err := l.Enumerate(v)
	if err != nil {
		l.logger.Error().Err(err).Msg("Invalid configuration")
		return nil, err
	}

	l.logger.Debug().
		Str("source", v.SourcePath).
		Str("dest", v.DestPath).
		Str("filter", v.Filter).
		Bool("dry_run", v.DryRun).
		Int("candidates", len(candidates)).
		Msg("Linking candidates")

	result := &types.LinkResult{
		SourcePath: v.SourcePath,
		DestPath:   v.DestPath,
		DryRun:     v.DryRun,
		Outcomes:   make([]types.LinkOutcome, 0, len(candidates)),
	}

	for _, c := range candidates {
		if IsIgnored(c.Name, v.Ignore) {
			l.logger.Debug().Str("name", c.Name).Msg("Ignoring entry")
			result.Add(types.LinkOutcome{Candidate: c, Status: types.StatusSkippedIgnored})
			continue
		}
		result.Add(l.Plan(c, v.DryRun))
	}

	return result, nil
}

// Install runs req against the OS filesystem.
func Install(req types.LinkRequest) (*types.LinkResult, error) {
	return New(filesystem.NewOS()).Run(req)
}
