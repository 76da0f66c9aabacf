package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/RickCogley/nagare-sub001/internal/errors"
)

// Validate checks the configuration for values the hook cannot run with.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateHookConfig(&cfg.Hook); err != nil {
		return err
	}

	return validateReleaseConfig(&cfg.Release)
}

// validateHookConfig checks hook-specific configuration values.
func validateHookConfig(cfg *HookConfig) error {
	if len(cfg.CheckCommand) == 0 {
		return fmt.Errorf("%w: check_command cannot be empty", errors.ErrConfigInvalidHook)
	}
	if len(cfg.FormatCommand) == 0 {
		return fmt.Errorf("%w: format_command cannot be empty", errors.ErrConfigInvalidHook)
	}
	if strings.TrimSpace(cfg.CommitMessage) == "" {
		return fmt.Errorf("%w: commit_message cannot be empty", errors.ErrConfigInvalidHook)
	}
	if cfg.PushRemote == "" {
		return fmt.Errorf("%w: push_remote cannot be empty", errors.ErrConfigInvalidHook)
	}
	if cfg.PushBranch == "" {
		return fmt.Errorf("%w: push_branch cannot be empty", errors.ErrConfigInvalidHook)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative, got %s", errors.ErrConfigInvalidHook, cfg.Timeout)
	}
	return nil
}

// validateReleaseConfig checks the static release metadata.
// Every update-file pattern must compile.
func validateReleaseConfig(cfg *ReleaseConfig) error {
	if cfg.VersionFile == "" {
		return fmt.Errorf("%w: version_file cannot be empty", errors.ErrConfigInvalidRelease)
	}

	for i, uf := range cfg.UpdateFiles {
		if uf.Path == "" {
			return fmt.Errorf("%w: update_files[%d].path cannot be empty", errors.ErrConfigInvalidRelease, i)
		}
		for name, pattern := range uf.Patterns {
			if _, err := regexp.Compile(pattern); err != nil {
				return fmt.Errorf("%w: update_files[%d] (%s) pattern %q: %w",
					errors.ErrConfigInvalidRelease, i, uf.Path, name, err)
			}
		}
	}
	return nil
}
