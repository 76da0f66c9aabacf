package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/RickCogley/nagare-sub001/internal/constants"
	"github.com/RickCogley/nagare-sub001/internal/errors"
)

// Overrides holds CLI flag values. Only non-zero fields are applied.
type Overrides struct {
	WorkDir       string
	CheckCommand  []string
	FormatCommand []string
	PushRemote    string
	PushBranch    string
	// Strict is a pointer so an explicit false can be told apart from unset.
	Strict *bool
}

// newViperInstance creates a Viper instance with the NAGARE_ env prefix and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// unmarshalAndValidate unmarshals viper config into Config struct and validates it.
func unmarshalAndValidate(ctx context.Context, v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Strs("hook.check_command", cfg.Hook.CheckCommand).
		Strs("hook.format_command", cfg.Hook.FormatCommand).
		Str("hook.push_branch", cfg.Hook.PushBranch).
		Str("config_file", v.ConfigFileUsed()).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration for the project rooted at projectDir.
// Missing config files are not an error; they are expected in many repositories.
func Load(ctx context.Context, projectDir string) (*Config, error) {
	v := newViperInstance()

	if globalPath, ok := getGlobalConfigPathIfExists(); ok {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, errors.Wrap(err, "failed to read global config file")
		}
	}

	projectPath := filepath.Join(projectDir, ProjectConfigPath())
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, errors.Wrap(err, "failed to read project config file")
		}
	}

	return unmarshalAndValidate(ctx, v)
}

// LoadFromPaths loads configuration from specific file paths.
// Either path can be empty to skip that level.
func LoadFromPaths(ctx context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(ctx, v)
}

// LoadWithOverrides loads configuration and applies CLI flag overrides.
func LoadWithOverrides(ctx context.Context, projectDir string, overrides *Overrides) (*Config, error) {
	cfg, err := Load(ctx, projectDir)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}
	return cfg, nil
}

// applyOverrides merges non-zero override values into the config.
func applyOverrides(cfg *Config, overrides *Overrides) {
	if overrides.WorkDir != "" {
		cfg.Hook.WorkDir = overrides.WorkDir
	}
	if len(overrides.CheckCommand) > 0 {
		cfg.Hook.CheckCommand = overrides.CheckCommand
	}
	if len(overrides.FormatCommand) > 0 {
		cfg.Hook.FormatCommand = overrides.FormatCommand
	}
	if overrides.PushRemote != "" {
		cfg.Hook.PushRemote = overrides.PushRemote
	}
	if overrides.PushBranch != "" {
		cfg.Hook.PushBranch = overrides.PushBranch
	}
	if overrides.Strict != nil {
		cfg.Hook.StrictCommitSequence = *overrides.Strict
	}
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// Durations decode from strings; command lines decode from a list or a single string.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			stringToFieldsHookFunc(),
		),
	)
}

// stringToFieldsHookFunc splits a string on whitespace when the target is []string.
// NAGARE_HOOK_CHECK_COMMAND="deno fmt --check" becomes ["deno", "fmt", "--check"].
func stringToFieldsHookFunc() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
			return data, nil
		}
		return strings.Fields(reflect.ValueOf(data).String()), nil
	}
}
