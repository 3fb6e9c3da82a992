// Package config loads dotupdate's configuration.
//
// Sources are merged in increasing precedence:
//
//  1. built-in defaults (embedded/defaults.toml)
//  2. a config file: INI (git-config syntax) or TOML, with a [general] section
//  3. DOTUPDATE_<KEY> environment variables
//  4. command-line overrides
//
// Load is called once at process start and returns an immutable Config that
// is passed explicitly to the linker.
package config
