// Package hook implements the post-release formatting consistency hook.
//
// The hook runs once after a release writes its assets. It checks that
// generated sources are formatted, repairs them when they are not, and
// commits and pushes the repair. Every failure is downgraded to a single
// warning log line: formatting hygiene never fails a release that already
// succeeded.
package hook

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RickCogley/nagare-sub001/internal/command"
	nagareerrors "github.com/RickCogley/nagare-sub001/internal/errors"
	"github.com/RickCogley/nagare-sub001/internal/git"
	"github.com/RickCogley/nagare-sub001/internal/logging"
)

// Defaults applied to empty Config fields.
const (
	DefaultCommitMessage = "chore: format generated files after release"
	DefaultPushRemote    = "origin"
	DefaultPushBranch    = "main"
)

// maxLoggedOutput caps captured tool output attached to log events.
const maxLoggedOutput = 2000

// Formatter is the external formatter surface.
// Check must not modify files; Apply rewrites them in place.
type Formatter interface {
	Check(ctx context.Context) (command.Invocation, error)
	Apply(ctx context.Context) (command.Invocation, error)
}

// Config holds the values that vary between projects.
type Config struct {
	// CommitMessage tags the repair commit as an automated formatting fix.
	CommitMessage string
	// PushRemote is the remote the repair is pushed to.
	PushRemote string
	// PushBranch is the branch the repair is pushed to.
	PushBranch string
	// StrictCommitSequence stops at the first failing stage, commit, or push.
	// When false, all three run back-to-back regardless of earlier failures.
	StrictCommitSequence bool
}

// withDefaults fills empty fields.
func (c Config) withDefaults() Config {
	if c.CommitMessage == "" {
		c.CommitMessage = DefaultCommitMessage
	}
	if c.PushRemote == "" {
		c.PushRemote = DefaultPushRemote
	}
	if c.PushBranch == "" {
		c.PushBranch = DefaultPushBranch
	}
	return c
}

// ConsistencyHook runs check, format, diff, commit, and push in sequence.
type ConsistencyHook struct {
	formatter Formatter
	vcs       git.Runner
	cfg       Config
	logger    *zerolog.Logger
	newRunID  func() string
	now       func() time.Time
}

// Option configures a ConsistencyHook.
type Option func(*ConsistencyHook)

// WithLogger sets the logger used when the context carries none.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *ConsistencyHook) {
		h.logger = &logger
	}
}

// WithRunIDGenerator replaces the uuid run id generator.
func WithRunIDGenerator(fn func() string) Option {
	return func(h *ConsistencyHook) {
		h.newRunID = fn
	}
}

// New creates a ConsistencyHook over a formatter and a git runner.
func New(formatter Formatter, vcs git.Runner, cfg Config, opts ...Option) *ConsistencyHook {
	h := &ConsistencyHook{
		formatter: formatter,
		vcs:       vcs,
		cfg:       cfg.withDefaults(),
		newRunID:  uuid.NewString,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Config returns the effective configuration.
func (h *ConsistencyHook) Config() Config {
	return h.cfg
}

// Run executes the hook and returns its outcome. It never panics and never fails.
func (h *ConsistencyHook) Run(ctx context.Context) Outcome {
	return h.RunWithReport(ctx).Outcome
}

// RunWithReport executes the hook and returns the outcome with per-step details.
// The recover boundary is installed before anything else runs, so a failing
// run id generator or a nil context still yields UnexpectedError.
func (h *ConsistencyHook) RunWithReport(ctx context.Context) (report Report) {
	start := h.now()
	logger := h.baseLogger()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: panic: %v", nagareerrors.ErrUnexpected, r)
			report.Outcome = UnexpectedError
			report.setError(err)
			warn(&logger, err, "post-release hook aborted unexpectedly")
		}
		report.DurationMs = h.now().Sub(start).Milliseconds()
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	logger = h.loggerFor(ctx).With().Str("component", "post_release_hook").Logger()

	report.RunID = h.newRunID()
	logger = logger.With().Str("run_id", report.RunID).Logger()

	report.Outcome = h.run(ctx, &logger, &report)
	return report
}

// run is the pipeline body. Each return is a terminal outcome;
// failure paths log exactly one warning before returning.
func (h *ConsistencyHook) run(ctx context.Context, logger *zerolog.Logger, report *Report) Outcome {
	// 1. Check
	check, err := h.runFormatterStep(ctx, report, StepCheck, h.formatter.Check)
	if err != nil {
		err = fmt.Errorf("%w: %w", nagareerrors.ErrCheckFailed, err)
		report.setError(err)
		warn(logger, err, "format check could not run")
		return FormatCheckFailed
	}
	if check.Success {
		logger.Info().Msg("no formatting issues found")
		return NoChangesNeeded
	}
	logger.Info().
		Str("output", truncate(logging.FilterSensitiveValue(check.ErrorText()))).
		Msg("formatting issues detected")

	// 2. Format
	apply, err := h.runFormatterStep(ctx, report, StepFormat, h.formatter.Apply)
	if err == nil && !apply.Success {
		err = fmt.Errorf("exit code %d: %s", apply.ExitCode, apply.ErrorText())
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", nagareerrors.ErrRepairFailed, err)
		report.setError(err)
		warn(logger, err, "formatting failed")
		return RepairFailed
	}
	logger.Info().Msg("formatting completed")

	// 3. Diff
	status, err := h.statusStep(ctx, report)
	if err != nil {
		err = fmt.Errorf("%w: %w", nagareerrors.ErrStatusFailed, err)
		report.setError(err)
		warn(logger, err, "could not read repository status")
		return UnexpectedError
	}
	if status.IsClean() {
		logger.Info().Msg("no changes to commit after formatting")
		return NoChangesNeeded
	}
	report.ChangedPaths = status.Paths()

	// 4. Commit
	logger.Info().
		Strs("paths", report.ChangedPaths).
		Str("branch", h.cfg.PushBranch).
		Msg("committing formatting changes")

	if err := h.commitSteps(ctx, report); err != nil {
		err = fmt.Errorf("%w: %w", nagareerrors.ErrCommitOrPushFailed, err)
		report.setError(err)
		warn(logger, err, "failed to commit formatting changes")
		return RepairedButCommitFailed
	}

	// 5. Done
	logger.Info().
		Str("remote", h.cfg.PushRemote).
		Str("branch", h.cfg.PushBranch).
		Msg("changes committed and pushed")
	return RepairedAndCommitted
}

// runFormatterStep runs one formatter invocation and records it.
func (h *ConsistencyHook) runFormatterStep(
	ctx context.Context,
	report *Report,
	name string,
	fn func(context.Context) (command.Invocation, error),
) (command.Invocation, error) {
	start := h.now()
	inv, err := fn(ctx)
	step := StepResult{
		Name:       name,
		Command:    inv.String(),
		Success:    err == nil && inv.Success,
		ExitCode:   inv.ExitCode,
		DurationMs: h.now().Sub(start).Milliseconds(),
	}
	if err != nil {
		step.Error = logging.FilterSensitiveValue(err.Error())
	} else if !inv.Success {
		step.Error = truncate(logging.FilterSensitiveValue(inv.ErrorText()))
	}
	report.Steps = append(report.Steps, step)
	return inv, err
}

// statusStep queries the working tree status and records it.
func (h *ConsistencyHook) statusStep(ctx context.Context, report *Report) (*git.RepositoryStatus, error) {
	var status *git.RepositoryStatus
	err := h.gitStep(ctx, report, StepStatus, func(ctx context.Context) error {
		var err error
		status, err = h.vcs.Status(ctx)
		return err
	})
	if err == nil && status == nil {
		err = fmt.Errorf("status returned no result: %w", nagareerrors.ErrGitOperation)
	}
	return status, err
}

// commitSteps stages, commits, and pushes. Unless StrictCommitSequence is set,
// every sub-step runs even when an earlier one failed; all failures are joined.
func (h *ConsistencyHook) commitSteps(ctx context.Context, report *Report) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{StepStage, h.vcs.AddAll},
		{StepCommit, func(ctx context.Context) error { return h.vcs.Commit(ctx, h.cfg.CommitMessage) }},
		{StepPush, func(ctx context.Context) error { return h.vcs.Push(ctx, h.cfg.PushRemote, h.cfg.PushBranch) }},
	}

	var errs []error
	for _, s := range steps {
		if err := h.gitStep(ctx, report, s.name, s.fn); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
			if h.cfg.StrictCommitSequence {
				break
			}
		}
	}
	return stderrors.Join(errs...)
}

// gitStep runs one version-control operation and records it.
func (h *ConsistencyHook) gitStep(ctx context.Context, report *Report, name string, fn func(context.Context) error) error {
	start := h.now()
	err := fn(ctx)
	step := StepResult{
		Name:       name,
		Success:    err == nil,
		DurationMs: h.now().Sub(start).Milliseconds(),
	}
	if err != nil {
		step.Error = logging.FilterSensitiveValue(err.Error())
	}
	report.Steps = append(report.Steps, step)
	return err
}

// loggerFor returns the context logger, falling back to the configured one.
func (h *ConsistencyHook) loggerFor(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled || h.logger == nil {
		return l
	}
	return h.logger
}

// baseLogger is used until the context logger is resolved.
func (h *ConsistencyHook) baseLogger() zerolog.Logger {
	if h.logger != nil {
		return h.logger.With().Str("component", "post_release_hook").Logger()
	}
	return log.Logger.With().Str("component", "post_release_hook").Logger()
}

// warn logs a failure with its error text filtered for credentials.
func warn(logger *zerolog.Logger, err error, msg string) {
	logger.Warn().
		Str("error", truncate(logging.FilterSensitiveValue(err.Error()))).
		Msg(msg)
}

// truncate shortens s to maxLoggedOutput bytes.
func truncate(s string) string {
	if len(s) <= maxLoggedOutput {
		return s
	}
	return s[:maxLoggedOutput] + "... (truncated)"
}
