package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/leighmacdonald/dotupdate/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/leighmacdonald/dotupdate/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/leighmacdonald/dotupdate/internal/version.Date={{.Date}}
)
