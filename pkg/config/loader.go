package config

import (
	"bytes"
	_ "embed"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/gopasspw/gitconfig"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/leighmacdonald/dotupdate/pkg/errors"
	"github.com/leighmacdonald/dotupdate/pkg/logging"
	"github.com/leighmacdonald/dotupdate/pkg/paths"
)

// Section is the config file section holding every option.
const Section = "general"

// EnvPrefix prefixes environment overrides, e.g. DOTUPDATE_DEST.
const EnvPrefix = "DOTUPDATE_"

// Option keys, shared by the config file, the environment and the CLI.
const (
	KeySource = "source"
	KeyDest   = "dest"
	KeyFilter = "filter"
	KeyBackup = "backup"
	KeyTest   = "test"
	KeyIgnore = "ignore"
)

// Keys lists every option key.
var Keys = []string{KeySource, KeyDest, KeyFilter, KeyBackup, KeyTest, KeyIgnore}

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions controls where Load reads from.
type LoadOptions struct {
	// ConfigFile is an explicit config path; it must exist when set.
	// When empty, paths.ConfigSearchPaths is consulted and a missing file
	// is not an error.
	ConfigFile string

	// Overrides are command-line values keyed by option name. Empty strings
	// are ignored so an unset flag never masks a configured value.
	Overrides map[string]interface{}

	// SkipEnv disables DOTUPDATE_* environment overrides
	SkipEnv bool
}

// Load merges defaults, the config file, the environment and overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	path, err := resolveConfigFile(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Debug().Str("path", path).Msg("Reading config file")
		if err := loadFile(k, path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to read configuration file")
			return nil, err
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return Section + "." + strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Command line
	if overrides := nonEmpty(opts.Overrides); len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply command line overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToBoolHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf(Section, &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.File = path
	cfg.Ignore = trimAll(cfg.Ignore)

	logger.Debug().
		Str("source", cfg.Source).
		Str("dest", cfg.Dest).
		Str("filter", cfg.Filter).
		Bool("test", cfg.Test).
		Strs("ignore", cfg.Ignore).
		Msg("Configuration loaded")

	return &cfg, nil
}

// resolveConfigFile returns the file to read, or "" when none exists.
func resolveConfigFile(explicit string) (string, error) {
	if explicit != "" {
		path := paths.ExpandHome(explicit)
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s cannot be read", explicit)
		}
		return path, nil
	}

	for _, path := range paths.ConfigSearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// loadFile merges the [general] section of path into k. TOML files go
// through koanf directly; anything else is read as an INI file.
func loadFile(k *koanf.Koanf, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
		}
		return nil
	}

	values, err := readINI(path)
	if err != nil {
		return err
	}
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to merge %s", path)
	}
	return nil
}

// readINI extracts general.* keys from an INI file. Git config syntax is a
// superset of the plain key = value INI this tool has always used; the
// key: value form is rewritten to it first.
func readINI(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path)
	}

	normalized, hasSection := normalizeINI(data)
	ini := gitconfig.ParseConfig(bytes.NewReader(normalized))

	values := make(map[string]interface{}, len(Keys))
	for _, key := range Keys {
		fullKey := Section + "." + key
		if v, ok := ini.Get(fullKey); ok {
			values[fullKey] = v
		}
	}

	if hasSection && len(values) == 0 {
		logger := logging.GetLogger("config")
		logger.Warn().
			Str("path", path).
			Strs("keys", Keys).
			Msgf("No known keys found in [%s], using defaults", Section)
	}
	return values, nil
}

// normalizeINI turns "key: value" lines into "key = value". A colon only
// counts as the delimiter when it comes before any "=", so values such as
// "dest = C:/Users" are left alone. It also reports whether the [general]
// section header is present.
func normalizeINI(data []byte) ([]byte, bool) {
	lines := strings.Split(string(data), "\n")
	hasSection := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"), strings.HasPrefix(trimmed, ";"):
			continue
		case strings.HasPrefix(trimmed, "["):
			name := strings.TrimSpace(strings.Trim(trimmed, "[]"))
			if strings.EqualFold(name, Section) {
				hasSection = true
			}
			continue
		}

		colon := strings.Index(line, ":")
		eq := strings.Index(line, "=")
		if colon >= 0 && (eq < 0 || colon < eq) {
			lines[i] = line[:colon] + "=" + line[colon+1:]
		}
	}

	return []byte(strings.Join(lines, "\n")), hasSection
}

// nonEmpty prefixes override keys with the section and drops blank values.
func nonEmpty(overrides map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(overrides))
	for key, value := range overrides {
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		if value == nil {
			continue
		}
		out[Section+"."+key] = value
	}
	return out
}

// stringToBoolHookFunc accepts the INI spellings yes/no/on/off as well as
// everything strconv.ParseBool understands.
func stringToBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		s := strings.ToLower(strings.TrimSpace(data.(string)))
		switch s {
		case "", "no", "off":
			return false, nil
		case "yes", "on":
			return true, nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q", data)
		}
		return b, nil
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
