package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RickCogley/nagare-sub001/internal/constants"
	"github.com/RickCogley/nagare-sub001/internal/errors"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_ReturnsDefaultsWhenNoConfigFile(t *testing.T) {
	t.Setenv(constants.EnvHome, t.TempDir())

	cfg, err := Load(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, []string{"deno", "fmt", "--check"}, cfg.Hook.CheckCommand)
	assert.Equal(t, []string{"deno", "fmt"}, cfg.Hook.FormatCommand)
	assert.Equal(t, "chore: format generated files after release", cfg.Hook.CommitMessage)
	assert.Equal(t, "origin", cfg.Hook.PushRemote)
	assert.Equal(t, "main", cfg.Hook.PushBranch)
	assert.False(t, cfg.Hook.StrictCommitSequence)
	assert.True(t, cfg.Hook.Enabled)
	assert.Zero(t, cfg.Hook.Timeout)
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	projectDir := t.TempDir()
	t.Setenv(constants.EnvHome, globalDir)

	writeConfig(t, filepath.Join(globalDir, constants.ConfigFileName), `
hook:
  push_branch: trunk
  commit_message: "chore: global message"
`)
	writeConfig(t, filepath.Join(projectDir, ProjectConfigPath()), `
hook:
  push_branch: release
`)

	cfg, err := Load(context.Background(), projectDir)
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Hook.PushBranch, "project value should win")
	assert.Equal(t, "chore: global message", cfg.Hook.CommitMessage, "global value should survive the merge")
}

func TestLoadFromPaths_ProjectConfigOverridesGlobal(t *testing.T) {
	dir := t.TempDir()
	globalConfig := filepath.Join(dir, "global.yaml")
	projectConfig := filepath.Join(dir, "project.yaml")

	writeConfig(t, globalConfig, `
hook:
  push_remote: upstream
  strict_commit_sequence: true
`)
	writeConfig(t, projectConfig, `
hook:
  push_remote: origin
  timeout: 90s
release:
  project:
    name: nagare
    repository: https://github.com/RickCogley/nagare
  update_files:
    - path: deno.json
      patterns:
        version: '"version":\s*"([^"]+)"'
`)

	cfg, err := LoadFromPaths(context.Background(), projectConfig, globalConfig)
	require.NoError(t, err)

	assert.Equal(t, "origin", cfg.Hook.PushRemote)
	assert.True(t, cfg.Hook.StrictCommitSequence)
	assert.Equal(t, 90*time.Second, cfg.Hook.Timeout)
	assert.Equal(t, "nagare", cfg.Release.Project.Name)
	require.Len(t, cfg.Release.UpdateFiles, 1)
	assert.Equal(t, "deno.json", cfg.Release.UpdateFiles[0].Path)
	assert.Contains(t, cfg.Release.UpdateFiles[0].Patterns, "version")
}

func TestLoadFromPaths_MissingFilesUseDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFromPaths(context.Background(),
		filepath.Join(dir, "nope.yaml"), filepath.Join(dir, "also-nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPaths_EmptyPathsSkipLevels(t *testing.T) {
	cfg, err := LoadFromPaths(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultPushBranch, cfg.Hook.PushBranch)
}

func TestLoadFromPaths_CommandAsSingleString(t *testing.T) {
	projectConfig := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, projectConfig, `
hook:
  check_command: "npx prettier --check ."
  format_command:
    - npx
    - prettier
    - --write
    - .
`)

	cfg, err := LoadFromPaths(context.Background(), projectConfig, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"npx", "prettier", "--check", "."}, cfg.Hook.CheckCommand)
	assert.Equal(t, []string{"npx", "prettier", "--write", "."}, cfg.Hook.FormatCommand)
}

func TestLoadFromPaths_InvalidYAML(t *testing.T) {
	projectConfig := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, projectConfig, "hook: [unclosed")

	_, err := LoadFromPaths(context.Background(), projectConfig, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read project config")
}

func TestLoadFromPaths_InvalidValuesFailValidation(t *testing.T) {
	projectConfig := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, projectConfig, `
hook:
  push_branch: ""
`)

	_, err := LoadFromPaths(context.Background(), projectConfig, "")
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrConfigInvalidHook)
}

func TestLoad_EnvironmentOverridesFiles(t *testing.T) {
	projectDir := t.TempDir()
	t.Setenv(constants.EnvHome, t.TempDir())
	writeConfig(t, filepath.Join(projectDir, ProjectConfigPath()), `
hook:
  push_branch: release
`)

	t.Setenv("NAGARE_HOOK_PUSH_BRANCH", "hotfix")
	t.Setenv("NAGARE_HOOK_CHECK_COMMAND", "dprint check")
	t.Setenv("NAGARE_HOOK_STRICT_COMMIT_SEQUENCE", "true")
	t.Setenv("NAGARE_HOOK_TIMEOUT", "2m")

	cfg, err := Load(context.Background(), projectDir)
	require.NoError(t, err)

	assert.Equal(t, "hotfix", cfg.Hook.PushBranch)
	assert.Equal(t, []string{"dprint", "check"}, cfg.Hook.CheckCommand)
	assert.True(t, cfg.Hook.StrictCommitSequence)
	assert.Equal(t, 2*time.Minute, cfg.Hook.Timeout)
}

func TestLoadWithOverrides(t *testing.T) {
	t.Setenv(constants.EnvHome, t.TempDir())
	strict := true

	cfg, err := LoadWithOverrides(context.Background(), t.TempDir(), &Overrides{
		WorkDir:       "/srv/repo",
		CheckCommand:  []string{"dprint", "check"},
		FormatCommand: []string{"dprint", "fmt"},
		PushRemote:    "upstream",
		PushBranch:    "stable",
		Strict:        &strict,
	})
	require.NoError(t, err)

	assert.Equal(t, "/srv/repo", cfg.Hook.WorkDir)
	assert.Equal(t, []string{"dprint", "check"}, cfg.Hook.CheckCommand)
	assert.Equal(t, []string{"dprint", "fmt"}, cfg.Hook.FormatCommand)
	assert.Equal(t, "upstream", cfg.Hook.PushRemote)
	assert.Equal(t, "stable", cfg.Hook.PushBranch)
	assert.True(t, cfg.Hook.StrictCommitSequence)
}

func TestApplyOverrides_ZeroValuesKeepConfig(t *testing.T) {
	cfg := DefaultConfig()
	applyOverrides(cfg, &Overrides{})
	assert.Equal(t, DefaultConfig(), cfg)

	notStrict := false
	cfg.Hook.StrictCommitSequence = true
	applyOverrides(cfg, &Overrides{Strict: &notStrict})
	assert.False(t, cfg.Hook.StrictCommitSequence, "explicit false should be applied")
}

func TestStringToFieldsHookFunc(t *testing.T) {
	hook := stringToFieldsHookFunc()

	tests := []struct {
		name string
		data any
		want any
	}{
		{name: "splits string into fields", data: "deno  fmt --check", want: []string{"deno", "fmt", "--check"}},
		{name: "non-string passes through", data: 42, want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hook(reflect.TypeOf(tt.data), reflect.TypeOf([]string{}), tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := hook(reflect.TypeOf(""), reflect.TypeOf([]string{}), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
