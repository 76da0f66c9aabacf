// Package config provides configuration management for nagare with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via Overrides)
//  2. Environment variables (NAGARE_* prefix)
//  3. Project config (.nagare/config.yaml)
//  4. Global config (~/.nagare/config.yaml)
//  5. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "time"

// Config is the root configuration structure for nagare.
type Config struct {
	// Hook contains settings for the post-release formatting hook.
	Hook HookConfig `yaml:"hook" json:"hook" mapstructure:"hook"`

	// Release contains the project's static release metadata.
	Release ReleaseConfig `yaml:"release" json:"release" mapstructure:"release"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log" json:"log" mapstructure:"log"`
}

// HookConfig contains settings for the post-release formatting hook.
type HookConfig struct {
	// Enabled registers the hook with the release lifecycle.
	// Default: true
	Enabled bool `yaml:"enabled" json:"enabled" mapstructure:"enabled"`

	// WorkDir is the repository root the hook runs in. Empty means the current directory.
	WorkDir string `yaml:"work_dir,omitempty" json:"work_dir,omitempty" mapstructure:"work_dir"`

	// CheckCommand runs the formatter without writing files.
	// Accepts a YAML list or a single whitespace-separated string.
	// Default: deno fmt --check
	CheckCommand []string `yaml:"check_command" json:"check_command" mapstructure:"check_command"`

	// FormatCommand runs the formatter in place.
	// Default: deno fmt
	FormatCommand []string `yaml:"format_command" json:"format_command" mapstructure:"format_command"`

	// CommitMessage is the message of the repair commit.
	// Default: "chore: format generated files after release"
	CommitMessage string `yaml:"commit_message" json:"commit_message" mapstructure:"commit_message"`

	// PushRemote is the remote the repair is pushed to.
	// Default: "origin"
	PushRemote string `yaml:"push_remote" json:"push_remote" mapstructure:"push_remote"`

	// PushBranch is the branch the repair is pushed to.
	// Default: "main"
	PushBranch string `yaml:"push_branch" json:"push_branch" mapstructure:"push_branch"`

	// StrictCommitSequence stops at the first failing stage, commit, or push.
	// Default: false (all three run back-to-back)
	StrictCommitSequence bool `yaml:"strict_commit_sequence" json:"strict_commit_sequence" mapstructure:"strict_commit_sequence"`

	// Timeout bounds the whole hook run when positive.
	// Default: 0 (no limit)
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty" mapstructure:"timeout"`
}

// ReleaseConfig is the project's static release metadata.
// The hook does not read it; it is validated and shown by the CLI.
type ReleaseConfig struct {
	// Project identifies the released project.
	Project ProjectConfig `yaml:"project" json:"project" mapstructure:"project"`

	// VersionFile is the generated module holding the version constant.
	// Default: "version.ts"
	VersionFile string `yaml:"version_file" json:"version_file" mapstructure:"version_file"`

	// UpdateFiles lists files whose version strings are rewritten on release.
	UpdateFiles []UpdateFileConfig `yaml:"update_files,omitempty" json:"update_files,omitempty" mapstructure:"update_files"`
}

// ProjectConfig identifies the released project.
type ProjectConfig struct {
	Name        string `yaml:"name" json:"name" mapstructure:"name"`
	Repository  string `yaml:"repository" json:"repository" mapstructure:"repository"`
	Description string `yaml:"description,omitempty" json:"description,omitempty" mapstructure:"description"`
}

// UpdateFileConfig names a file and the regular expressions that locate its version strings.
// Pattern names are case-insensitive because viper lowercases map keys.
type UpdateFileConfig struct {
	Path     string            `yaml:"path" json:"path" mapstructure:"path"`
	Patterns map[string]string `yaml:"patterns,omitempty" json:"patterns,omitempty" mapstructure:"patterns"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// ToFile enables the rotating log file.
	// Default: false
	ToFile bool `yaml:"to_file" json:"to_file" mapstructure:"to_file"`

	// File is the rotating log file path. Setting it also enables file logging.
	// Default: ~/.nagare/logs/nagare.log when ToFile is set
	File string `yaml:"file,omitempty" json:"file,omitempty" mapstructure:"file"`
}

// FilePath returns the log file to write, or "" when file logging is off.
func (c LogConfig) FilePath() (string, error) {
	if c.File != "" {
		return c.File, nil
	}
	if !c.ToFile {
		return "", nil
	}
	return DefaultLogFilePath()
}
