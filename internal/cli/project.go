package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/RickCogley/nagare-sub001/internal/command"
	"github.com/RickCogley/nagare-sub001/internal/config"
	"github.com/RickCogley/nagare-sub001/internal/errors"
	"github.com/RickCogley/nagare-sub001/internal/formatter"
)

// projectFlags are shared by commands that operate on a project directory.
type projectFlags struct {
	Dir           string
	CheckCommand  string
	FormatCommand string
}

// addProjectFlags registers --dir and the formatter command overrides.
func addProjectFlags(cmd *cobra.Command, flags *projectFlags) {
	cmd.Flags().StringVarP(&flags.Dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&flags.CheckCommand, "check-command", "", "formatter check command line (overrides hook.check_command)")
	cmd.Flags().StringVar(&flags.FormatCommand, "format-command", "", "formatter command line (overrides hook.format_command)")
}

// overrides converts the flags into config overrides.
// Command lines are split like configured ones; no shell is involved.
func (f *projectFlags) overrides() (*config.Overrides, error) {
	o := &config.Overrides{}
	if f.CheckCommand != "" {
		argv, err := command.ParseCommandLine(f.CheckCommand)
		if err != nil {
			return nil, errors.Wrap(err, "--check-command")
		}
		o.CheckCommand = argv
	}
	if f.FormatCommand != "" {
		argv, err := command.ParseCommandLine(f.FormatCommand)
		if err != nil {
			return nil, errors.Wrap(err, "--format-command")
		}
		o.FormatCommand = argv
	}
	return o, nil
}

// project is a loaded configuration and the directory it applies to.
type project struct {
	cfg     *config.Config
	workDir string
}

// loadProject loads layered configuration for dir and resolves the hook's working directory.
// A relative hook.work_dir is resolved against dir.
func loadProject(ctx context.Context, dir string, overrides *config.Overrides) (*project, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve project directory %q", dir)
	}

	cfg, err := config.LoadWithOverrides(ctx, absDir, overrides)
	if err != nil {
		return nil, err
	}

	workDir := cfg.Hook.WorkDir
	switch {
	case workDir == "":
		workDir = absDir
	case !filepath.IsAbs(workDir):
		workDir = filepath.Join(absDir, workDir)
	}

	return &project{cfg: cfg, workDir: workDir}, nil
}

// newFormatter builds the formatter for the project's configured commands.
func (p *project) newFormatter(env *environment) (*formatter.Formatter, error) {
	f, err := formatter.New(p.workDir, env.commandRunner(), p.cfg.Hook.CheckCommand, p.cfg.Hook.FormatCommand)
	if err != nil {
		return nil, errors.Wrap(err, "configure formatter")
	}
	return f, nil
}
