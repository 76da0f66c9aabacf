// Package cli provides the command-line interface for nagare.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RickCogley/nagare-sub001/internal/command"
	"github.com/RickCogley/nagare-sub001/internal/errors"
	"github.com/RickCogley/nagare-sub001/internal/logging"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// environment carries the process-level dependencies shared by subcommands.
// Tests replace the runner and the log output.
type environment struct {
	flags *GlobalFlags
	info  BuildInfo

	// runner launches the formatter and git. Nil means command.ExecRunner.
	runner command.Runner
	// logOutput overrides the console log writer.
	logOutput io.Writer
	// closers are released after the command finishes.
	closers []io.Closer
}

// commandRunner returns the injected runner or the real one.
func (e *environment) commandRunner() command.Runner {
	if e.runner == nil {
		return &command.ExecRunner{}
	}
	return e.runner
}

// newLogger builds a logger from the global flags, optionally writing to file.
// A log file that cannot be opened is reported on the returned logger and ignored.
func (e *environment) newLogger(file string) zerolog.Logger {
	logger, closer, err := logging.New(logging.Options{
		Verbose: e.flags.Verbose,
		Quiet:   e.flags.Quiet,
		File:    file,
		Console: e.logOutput,
	})
	e.closers = append(e.closers, closer)
	if err != nil {
		logger.Warn().Err(err).Str("log_file", file).Msg("log file unavailable, logging to console only")
	}
	return logger
}

// close releases log files opened during the command.
func (e *environment) close() {
	for _, c := range e.closers {
		_ = c.Close()
	}
	e.closers = nil
}

// newRootCmd creates and returns the root command for the nagare CLI.
func newRootCmd(env *environment) *cobra.Command {
	v := viper.New()
	flags := env.flags

	cmd := &cobra.Command{
		Use:   "nagare",
		Short: "Post-release automation for nagare-managed projects",
		Long: `nagare runs the steps that follow a release.

The post-release hook verifies that generated files are formatted, repairs
them when they are not, and commits and pushes the repair so the release
branch never carries unformatted generated code. Hook failures are reported
as warnings and never fail the command.`,
		Version: formatVersion(env.info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			flags.Output = v.GetString("output")
			flags.Verbose = v.GetBool("verbose")
			flags.Quiet = v.GetBool("quiet")

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			logger := env.newLogger("")
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			env.close()
		},
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	addPostReleaseCommand(cmd, env)
	addCheckCommand(cmd, env)
	addConfigCommand(cmd, env)
	addVersionCommand(cmd, env)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	env := &environment{flags: &GlobalFlags{}, info: info}
	defer env.close()
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(env)
	return cmd.ExecuteContext(ctx)
}
