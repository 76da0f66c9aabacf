// Package formatter drives an external source formatter in check and apply modes.
package formatter

import (
	"context"
	"fmt"

	"github.com/RickCogley/nagare-sub001/internal/command"
	nagareerrors "github.com/RickCogley/nagare-sub001/internal/errors"
)

// Default formatter command lines.
var (
	DefaultCheckCommand = []string{"deno", "fmt", "--check"} //nolint:gochecknoglobals // Default argv
	DefaultApplyCommand = []string{"deno", "fmt"}            //nolint:gochecknoglobals // Default argv
)

// Formatter runs the configured check and apply command lines.
type Formatter struct {
	workDir string
	exec    command.Runner
	check   []string
	apply   []string
}

// New creates a Formatter. checkArgv and applyArgv are full command lines
// (program first). Empty command lines are rejected.
func New(workDir string, exec command.Runner, checkArgv, applyArgv []string) (*Formatter, error) {
	if len(checkArgv) == 0 {
		return nil, fmt.Errorf("formatter check command: %w", nagareerrors.ErrEmptyValue)
	}
	if len(applyArgv) == 0 {
		return nil, fmt.Errorf("formatter apply command: %w", nagareerrors.ErrEmptyValue)
	}
	if exec == nil {
		exec = &command.ExecRunner{}
	}

	return &Formatter{
		workDir: workDir,
		exec:    exec,
		check:   append([]string(nil), checkArgv...),
		apply:   append([]string(nil), applyArgv...),
	}, nil
}

// Check runs the formatter in check-only mode.
// Invocation.Success reports whether the files are already formatted.
// The error is non-nil only when the formatter could not be run.
func (f *Formatter) Check(ctx context.Context) (command.Invocation, error) {
	return f.exec.Run(ctx, f.workDir, f.check[0], f.check[1:]...)
}

// Apply runs the formatter in mutating mode, rewriting files in place.
func (f *Formatter) Apply(ctx context.Context) (command.Invocation, error) {
	return f.exec.Run(ctx, f.workDir, f.apply[0], f.apply[1:]...)
}

// CheckCommand returns the check command line.
func (f *Formatter) CheckCommand() []string {
	return append([]string(nil), f.check...)
}

// ApplyCommand returns the apply command line.
func (f *Formatter) ApplyCommand() []string {
	return append([]string(nil), f.apply...)
}
