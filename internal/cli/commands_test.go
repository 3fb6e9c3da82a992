package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leighmacdonald/dotupdate/pkg/errors"
	"github.com/leighmacdonald/dotupdate/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func newEnv(t *testing.T) *testutil.TestEnvironment {
	t.Helper()

	env := testutil.NewTestEnvironment(t)
	t.Chdir(env.Root)
	env.AddFile("bashrc", "")
	env.AddFile("vim/vimrc", "")
	env.AddFile("README.md", "")
	return env
}

func TestInstallCommand(t *testing.T) {
	env := newEnv(t)

	out, err := execute(t, "-s", env.SourceDir, "-d", env.DestDir, "-i", "README.md")
	require.NoError(t, err)

	assert.Equal(t, []string{".bashrc", ".vim"}, env.DestEntries())
	assert.Contains(t, out, "2 linked, 1 ignored")
}

func TestInstallCommandDryRun(t *testing.T) {
	env := newEnv(t)

	out, err := execute(t, "--source", env.SourceDir, "--dest", env.DestDir, "--test")
	require.NoError(t, err)

	assert.Empty(t, env.DestEntries())
	assert.Contains(t, out, "DRY RUN")
	assert.Contains(t, out, "3 planned")
}

func TestInstallCommandUsesConfigFile(t *testing.T) {
	env := newEnv(t)
	configPath := filepath.Join(env.Root, "config.ini")
	require.NoError(t, os.WriteFile(configPath, []byte(
		"[general]\n\tsource = "+env.SourceDir+"\n\tdest = "+env.DestDir+"\n\tignore = README.md,vim\n\ttest = true\n",
	), 0644))

	// flags override the file: --dest is taken from the command line
	otherDest := filepath.Join(env.Root, "other")
	require.NoError(t, os.Mkdir(otherDest, 0755))

	out, err := execute(t, "--dest", otherDest)
	require.NoError(t, err)
	assert.Contains(t, out, "1 planned, 2 ignored")
	assert.Empty(t, env.DestEntries())
	assert.Empty(t, testutil.ListDir(t, otherDest))

	_, err = execute(t, "-c", configPath, "--filter", "bash*", "--test=false")
	require.NoError(t, err)
	assert.Equal(t, []string{".bashrc"}, env.DestEntries())
}

func TestInstallCommandColonConfigFile(t *testing.T) {
	env := newEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.Root, "config.ini"), []byte(
		"[general]\nsource: "+env.SourceDir+"\ndest: "+env.DestDir+"\ntest: yes\n",
	), 0644))

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "3 planned")
	assert.Empty(t, env.DestEntries())
	assert.Empty(t, testutil.ListDir(t, env.HomeDir))
}

func TestConflictsStayOffStdout(t *testing.T) {
	env := newEnv(t)
	env.AddDestFile(".bashrc", "local")
	env.AddDestLink(".vim", filepath.Join(env.SourceDir, "vim"))

	out, err := execute(t, "-s", env.SourceDir, "-d", env.DestDir)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "\n"), "only the summary line is written")
	assert.Contains(t, out, "1 linked, 1 exists, 1 blocked")
	assert.NotContains(t, out, ".bashrc")
	assert.NotContains(t, out, env.SourceDir)
}

func TestInstallCommandMissingSource(t *testing.T) {
	env := newEnv(t)

	_, err := execute(t, "-s", filepath.Join(env.Root, "missing"), "-d", env.DestDir)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfiguration(err))
	assert.Equal(t, 1, ExitCode(err))
	assert.Empty(t, env.DestEntries())
}

func TestInstallCommandMissingConfigFile(t *testing.T) {
	env := newEnv(t)

	_, err := execute(t, "-c", filepath.Join(env.Root, "nope.ini"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestUsageErrors(t *testing.T) {
	newEnv(t)

	for _, args := range [][]string{{"vim"}, {"--no-such-flag"}} {
		_, err := execute(t, args...)
		require.Error(t, err)
		assert.Equal(t, ExitUsage, ExitCode(err))
	}
}

func TestVersionCommand(t *testing.T) {
	newEnv(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dotupdate version "))

	out, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}

func TestGenConfigCommand(t *testing.T) {
	newEnv(t)

	out, err := execute(t, "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "[general]")
	assert.Contains(t, out, "source = ./dotfiles")
}

func TestHelpUsesTemplate(t *testing.T) {
	newEnv(t)

	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "--source")
	assert.Contains(t, out, "--ignore")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitOK},
		{"invalid_configuration", errors.New(errors.ErrInvalidConfiguration, "x"), ExitInvalidConfiguration},
		{"wrapped_invalid_configuration", fmt.Errorf("run: %w", errors.New(errors.ErrInvalidConfiguration, "x")), ExitInvalidConfiguration},
		{"config_parse", errors.New(errors.ErrConfigParse, "x"), ExitInvalidConfiguration},
		{"usage", fmt.Errorf("unknown flag: --nope"), ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestHelpTopics(t *testing.T) {
	newEnv(t)

	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "config")
	assert.Contains(t, out, "--ignore")

	out, err = execute(t, "help", "--test")
	require.NoError(t, err)
	assert.Contains(t, out, "DRY RUN: ln -s")

	out, err = execute(t, "help", "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, MsgGenConfigShort)
}
