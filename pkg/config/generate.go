package config

import (
	_ "embed"
)

//go:embed embedded/config.ini
var sampleConfig []byte

// GenerateConfigContent returns a commented sample config.ini.
func GenerateConfigContent() string {
	return string(sampleConfig)
}
