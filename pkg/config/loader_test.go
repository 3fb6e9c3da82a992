package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopasspw/gitconfig"
	"github.com/leighmacdonald/dotupdate/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate moves the test into an empty working and XDG config directory.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, "./dotfiles", cfg.Source)
	assert.Equal(t, "~/", cfg.Dest)
	assert.Equal(t, "*", cfg.Filter)
	assert.False(t, cfg.Backup)
	assert.False(t, cfg.Test)
	assert.Empty(t, cfg.Ignore)
	assert.Empty(t, cfg.File)
}

func TestLoadINIFromWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.ini"), `[general]
source = /srv/dotfiles
dest = /tmp/home
backup = yes
test = on
ignore = README.md, LICENSE
`)

	cfg, err := Load(LoadOptions{SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, "/srv/dotfiles", cfg.Source)
	assert.Equal(t, "/tmp/home", cfg.Dest)
	assert.Equal(t, "*", cfg.Filter, "unset keys keep their defaults")
	assert.True(t, cfg.Backup)
	assert.True(t, cfg.Test)
	assert.Equal(t, []string{"README.md", "LICENSE"}, cfg.Ignore)
	assert.Equal(t, "config.ini", cfg.File)
}

func TestLoadINIColonDelimiter(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.ini"), `[general]
source: /srv/dotfiles
dest : /tmp/home
test: yes
ignore: README.md,LICENSE
filter = *rc
`)

	cfg, err := Load(LoadOptions{SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, "/srv/dotfiles", cfg.Source)
	assert.Equal(t, "/tmp/home", cfg.Dest)
	assert.True(t, cfg.Test, "test: yes must request a dry run")
	assert.Equal(t, []string{"README.md", "LICENSE"}, cfg.Ignore)
	assert.Equal(t, "*rc", cfg.Filter)
}

func TestNormalizeINI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"colon", "source: ./dotfiles", "source= ./dotfiles"},
		{"equals_untouched", "source = ./dotfiles", "source = ./dotfiles"},
		{"colon_in_value", "dest = C:/Users/me", "dest = C:/Users/me"},
		{"first_colon_only", "dest: C:/Users/me", "dest= C:/Users/me"},
		{"comment", "; test: yes", "; test: yes"},
		{"header", "[general]", "[general]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := normalizeINI([]byte(tt.in))
			assert.Equal(t, tt.want, string(got))
		})
	}

	_, found := normalizeINI([]byte("[other]\nx = 1\n"))
	assert.False(t, found)
	_, found = normalizeINI([]byte("  [General]\n"))
	assert.True(t, found)
}

func TestLoadWarnsWhenGeneralHasNoKnownKeys(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.ini"), "[general]\nsrc => ./dotfiles\n")

	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = saved })

	cfg, err := Load(LoadOptions{SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, "./dotfiles", cfg.Source)
	assert.Contains(t, buf.String(), "No known keys found in [general]")
}

func TestLoadINIFromXDGConfigHome(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "xdg", "dotupdate", "config.ini"), "[general]\n\tfilter = *rc\n")

	cfg, err := Load(LoadOptions{SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, "*rc", cfg.Filter)
	assert.Equal(t, path, cfg.File)
}

func TestLoadExplicitTOML(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "conf", "dotupdate.toml"), `[general]
source = "~/src/dotfiles"
test = true
ignore = ["bin", "README.md"]
`)

	cfg, err := Load(LoadOptions{ConfigFile: path, SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, "~/src/dotfiles", cfg.Source)
	assert.True(t, cfg.Test)
	assert.Equal(t, []string{"bin", "README.md"}, cfg.Ignore)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	dir := isolate(t)

	_, err := Load(LoadOptions{ConfigFile: filepath.Join(dir, "nope.ini"), SkipEnv: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "bad.toml"), "[general\nsource = ")

	_, err := Load(LoadOptions{ConfigFile: path, SkipEnv: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadInvalidBoolean(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.ini"), "[general]\ntest = maybe\n")

	_, err := Load(LoadOptions{SkipEnv: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestPrecedence(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.ini"), `[general]
source = from-file
dest = from-file
filter = from-file
`)
	t.Setenv("DOTUPDATE_DEST", "from-env")
	t.Setenv("DOTUPDATE_FILTER", "from-env")

	cfg, err := Load(LoadOptions{
		Overrides: map[string]interface{}{
			KeyFilter: "from-cli",
			KeySource: "",
			KeyIgnore: "a,b",
			KeyTest:   true,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Source, "empty override does not mask the file")
	assert.Equal(t, "from-env", cfg.Dest)
	assert.Equal(t, "from-cli", cfg.Filter)
	assert.Equal(t, []string{"a", "b"}, cfg.Ignore)
	assert.True(t, cfg.Test)
}

func TestToRequest(t *testing.T) {
	cfg := &Config{
		Source: "./dotfiles",
		Dest:   "~/",
		Filter: "*",
		Test:   true,
		Backup: true,
		Ignore: []string{"dir1", "README.md"},
	}

	req := cfg.ToRequest()
	assert.Equal(t, "./dotfiles", req.SourcePath)
	assert.Equal(t, "~/", req.DestPath)
	assert.Equal(t, "*", req.Filter)
	assert.True(t, req.DryRun)
	assert.True(t, req.Backup)
	assert.Equal(t, []string{"README.md", "dir1"}, req.Ignore.Names())
}

func TestGenerateConfigContentParses(t *testing.T) {
	content := GenerateConfigContent()
	ini := gitconfig.ParseConfig(bytes.NewReader([]byte(content)))

	for _, key := range Keys {
		_, ok := ini.Get(Section + "." + key)
		assert.True(t, ok, "sample config should set %s", key)
	}

	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.ini"), content)
	cfg, err := Load(LoadOptions{SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "LICENSE"}, cfg.Ignore)
	assert.False(t, cfg.Test)
}
