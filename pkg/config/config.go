package config

import (
	"github.com/leighmacdonald/dotupdate/pkg/types"
)

// Config is the resolved configuration of one invocation.
type Config struct {
	Source string   `koanf:"source"`
	Dest   string   `koanf:"dest"`
	Filter string   `koanf:"filter"`
	Backup bool     `koanf:"backup"`
	Test   bool     `koanf:"test"`
	Ignore []string `koanf:"ignore"`

	// File is the config file that was read, empty when none was found
	File string `koanf:"-"`
}

// ToRequest converts the configuration into the linker's input.
func (c *Config) ToRequest() types.LinkRequest {
	return types.LinkRequest{
		SourcePath: c.Source,
		Filter:     c.Filter,
		DestPath:   c.Dest,
		DryRun:     c.Test,
		Backup:     c.Backup,
		Ignore:     types.NewIgnoreList(c.Ignore...),
	}
}
