package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/RickCogley/nagare-sub001/internal/command"
	nagareerrors "github.com/RickCogley/nagare-sub001/internal/errors"
)

// CLIRunner implements Runner using the git CLI.
type CLIRunner struct {
	workDir string         // Working directory for git commands
	exec    command.Runner // Launches the git binary
}

// NewRunner creates a CLIRunner for workDir that launches git through exec.
// A nil exec uses command.ExecRunner.
func NewRunner(workDir string, exec command.Runner) *CLIRunner {
	if exec == nil {
		exec = &command.ExecRunner{}
	}
	return &CLIRunner{workDir: workDir, exec: exec}
}

// Status returns the current working tree status.
func (r *CLIRunner) Status(ctx context.Context) (*RepositoryStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	output, err := r.runGitCommand(ctx, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	return ParseStatus(output), nil
}

// AddAll stages all changes.
func (r *CLIRunner) AddAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := r.runGitCommand(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("failed to add files: %w", err)
	}
	return nil
}

// Commit creates a commit with the given message.
func (r *CLIRunner) Commit(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("commit message cannot be empty: %w", nagareerrors.ErrEmptyValue)
	}

	if _, err := r.runGitCommand(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Push pushes branch to remote.
func (r *CLIRunner) Push(ctx context.Context, remote, branch string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if remote == "" || branch == "" {
		return fmt.Errorf("push remote and branch are required: %w", nagareerrors.ErrEmptyValue)
	}

	if _, err := r.runGitCommand(ctx, "push", remote, branch); err != nil {
		return fmt.Errorf("failed to push to %s/%s: %w", remote, branch, err)
	}
	return nil
}

// runGitCommand executes a git command and returns its stdout.
// Leading whitespace is kept because porcelain status columns start with a space.
// All failures wrap ErrGitOperation and include stderr for debugging.
func (r *CLIRunner) runGitCommand(ctx context.Context, args ...string) (string, error) {
	inv, err := r.exec.Run(ctx, r.workDir, "git", args...)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("git %s failed: %w: %w", args[0], nagareerrors.ErrGitOperation, err)
	}

	if !inv.Success {
		if text := inv.ErrorText(); text != "" {
			return "", fmt.Errorf("git %s failed: %s: %w", args[0], text, nagareerrors.ErrGitOperation)
		}
		return "", fmt.Errorf("git %s failed with exit code %d: %w", args[0], inv.ExitCode, nagareerrors.ErrGitOperation)
	}

	return strings.TrimRight(inv.Stdout, "\n"), nil
}

// Ensure CLIRunner implements Runner.
var _ Runner = (*CLIRunner)(nil)
