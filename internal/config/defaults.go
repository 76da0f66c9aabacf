package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/RickCogley/nagare-sub001/internal/constants"
)

// DefaultConfig returns a new Config with default values.
// These match the viper defaults set by setDefaults.
func DefaultConfig() *Config {
	return &Config{
		Hook: HookConfig{
			Enabled:       true,
			CheckCommand:  strings.Fields(constants.DefaultCheckCommand),
			FormatCommand: strings.Fields(constants.DefaultFormatCommand),
			CommitMessage: constants.DefaultCommitMessage,
			PushRemote:    constants.DefaultPushRemote,
			PushBranch:    constants.DefaultPushBranch,
		},
		Release: ReleaseConfig{
			VersionFile: constants.DefaultVersionFile,
		},
	}
}

// setDefaults configures all default values on the Viper instance.
// IMPORTANT: Keys must match the mapstructure tag names exactly.
func setDefaults(v *viper.Viper) {
	v.SetDefault("hook.enabled", true)
	v.SetDefault("hook.work_dir", "")
	v.SetDefault("hook.check_command", strings.Fields(constants.DefaultCheckCommand))
	v.SetDefault("hook.format_command", strings.Fields(constants.DefaultFormatCommand))
	v.SetDefault("hook.commit_message", constants.DefaultCommitMessage)
	v.SetDefault("hook.push_remote", constants.DefaultPushRemote)
	v.SetDefault("hook.push_branch", constants.DefaultPushBranch)
	v.SetDefault("hook.strict_commit_sequence", false)
	v.SetDefault("hook.timeout", "0s")

	v.SetDefault("release.project.name", "")
	v.SetDefault("release.project.repository", "")
	v.SetDefault("release.project.description", "")
	v.SetDefault("release.version_file", constants.DefaultVersionFile)

	v.SetDefault("log.to_file", false)
	v.SetDefault("log.file", "")
}
