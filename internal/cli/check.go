package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/RickCogley/nagare-sub001/internal/command"
	"github.com/RickCogley/nagare-sub001/internal/config"
	"github.com/RickCogley/nagare-sub001/internal/errors"
)

// checkResult is the JSON document printed by check.
type checkResult struct {
	Formatted  bool               `json:"formatted"`
	Invocation command.Invocation `json:"invocation"`
}

// addCheckCommand adds the check command to the root command.
func addCheckCommand(root *cobra.Command, env *environment) {
	flags := &projectFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether generated files need formatting",
		Long: `Run only the configured formatter check.

Nothing is rewritten, staged, committed, or pushed. The command exits 0
whether or not files need formatting; it fails only when the formatter
cannot be started.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides, err := flags.overrides()
			if err != nil {
				return err
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), env, flags.Dir, overrides)
		},
	}

	addProjectFlags(cmd, flags)

	root.AddCommand(cmd)
}

func runCheck(ctx context.Context, out io.Writer, env *environment, dir string, overrides *config.Overrides) error {
	p, err := loadProject(ctx, dir, overrides)
	if err != nil {
		return err
	}

	f, err := p.newFormatter(env)
	if err != nil {
		return err
	}

	inv, err := f.Check(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrCheckFailed, err)
	}

	if env.flags.Output == OutputJSON {
		return writeJSON(out, checkResult{Formatted: inv.Success, Invocation: inv})
	}

	if inv.Success {
		_, _ = fmt.Fprintln(out, "All files are formatted.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "Files need formatting.")
	if text := inv.ErrorText(); text != "" {
		_, _ = fmt.Fprintln(out, text)
	}
	return nil
}
