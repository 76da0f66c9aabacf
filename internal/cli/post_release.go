package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/RickCogley/nagare-sub001/internal/config"
	"github.com/RickCogley/nagare-sub001/internal/git"
	"github.com/RickCogley/nagare-sub001/internal/hook"
	"github.com/RickCogley/nagare-sub001/internal/release"
)

// formatHookName is the lifecycle name of the formatting consistency hook.
const formatHookName = "format-consistency"

// postReleaseFlags holds flags specific to the post-release command.
type postReleaseFlags struct {
	projectFlags
	Strict bool
	Remote string
	Branch string
}

// postReleaseResult is the JSON document printed by post-release.
type postReleaseResult struct {
	Hooks  []release.HookResult `json:"hooks"`
	Format *hook.Report         `json:"format,omitempty"`
}

// addPostReleaseCommand adds the post-release command to the root command.
func addPostReleaseCommand(root *cobra.Command, env *environment) {
	flags := &postReleaseFlags{}

	cmd := &cobra.Command{
		Use:   "post-release",
		Short: "Run the post-release hooks",
		Long: `Run the hooks registered for the post-release point.

The formatting consistency hook checks generated files with the configured
formatter, repairs them if needed, and commits and pushes the repair.
Hook outcomes are advisory: the command exits 0 whatever they are.

Examples:
  nagare post-release
  nagare post-release --dir ./my-project --strict
  nagare post-release --branch release -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides, err := flags.overrides()
			if err != nil {
				return err
			}
			overrides.PushRemote = flags.Remote
			overrides.PushBranch = flags.Branch
			if cmd.Flags().Changed("strict") {
				overrides.Strict = &flags.Strict
			}
			return runPostRelease(cmd.Context(), cmd.OutOrStdout(), env, flags.Dir, overrides)
		},
	}

	addProjectFlags(cmd, &flags.projectFlags)
	cmd.Flags().BoolVar(&flags.Strict, "strict", false, "stop at the first failing stage, commit, or push")
	cmd.Flags().StringVar(&flags.Remote, "remote", "", "remote to push the formatting fix to")
	cmd.Flags().StringVar(&flags.Branch, "branch", "", "branch to push the formatting fix to")

	root.AddCommand(cmd)
}

// runPostRelease loads configuration, registers the enabled hooks, and runs them.
// Only configuration problems are returned as errors.
func runPostRelease(ctx context.Context, out io.Writer, env *environment, dir string, overrides *config.Overrides) error {
	p, err := loadProject(ctx, dir, overrides)
	if err != nil {
		return err
	}

	logFile, err := p.cfg.Log.FilePath()
	if err != nil {
		return err
	}
	logger := env.newLogger(logFile)
	ctx = logger.WithContext(ctx)

	lifecycle := release.NewLifecycle()
	var report *hook.Report

	if p.cfg.Hook.Enabled {
		h, err := newConsistencyHook(env, p, logger)
		if err != nil {
			return err
		}
		lifecycle.OnPostRelease(formatHookName, release.HookFunc(func(ctx context.Context) hook.Outcome {
			r := h.RunWithReport(ctx)
			report = &r
			return r.Outcome
		}))
	} else {
		logger.Info().Msg("formatting consistency hook disabled")
	}

	if p.cfg.Hook.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Hook.Timeout)
		defer cancel()
	}

	results := lifecycle.RunPostRelease(ctx)

	if env.flags.Output == OutputJSON {
		return writeJSON(out, postReleaseResult{Hooks: results, Format: report})
	}
	printPostReleaseText(out, results, report)
	return nil
}

// newConsistencyHook wires the formatter and git runner for the project.
func newConsistencyHook(env *environment, p *project, logger zerolog.Logger) (*hook.ConsistencyHook, error) {
	f, err := p.newFormatter(env)
	if err != nil {
		return nil, err
	}
	vcs := git.NewRunner(p.workDir, env.commandRunner())

	return hook.New(f, vcs, hook.Config{
		CommitMessage:        p.cfg.Hook.CommitMessage,
		PushRemote:           p.cfg.Hook.PushRemote,
		PushBranch:           p.cfg.Hook.PushBranch,
		StrictCommitSequence: p.cfg.Hook.StrictCommitSequence,
	}, hook.WithLogger(logger)), nil
}

func printPostReleaseText(out io.Writer, results []release.HookResult, report *hook.Report) {
	if len(results) == 0 {
		_, _ = fmt.Fprintln(out, "No post-release hooks enabled.")
		return
	}

	styles := newOutcomeStyles()
	for _, r := range results {
		_, _ = fmt.Fprintf(out, "%s: %s %s\n",
			styles.name.Render(r.Name), styles.outcome(r.Outcome), styles.dim.Render(fmt.Sprintf("(%dms)", r.DurationMs)))
	}

	if report == nil {
		return
	}
	if len(report.ChangedPaths) > 0 {
		_, _ = fmt.Fprintf(out, "  formatted: %s\n", strings.Join(report.ChangedPaths, ", "))
	}
	if report.Error != "" {
		_, _ = fmt.Fprintf(out, "  warning: %s\n", report.Error)
	}
}

// writeJSON writes v as indented JSON.
func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
