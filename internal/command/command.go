// Package command launches external programs and captures their results.
//
// The hook never goes through a shell: each configured command is split into
// a program and its arguments and executed directly. Commands come from
// project configuration (.nagare/config.yaml) or the user's global config,
// which carry the same trust level as a Makefile or CI definition.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	nagareerrors "github.com/RickCogley/nagare-sub001/internal/errors"
)

// Invocation records one finished external process.
// It is a value type and is never modified after Run returns it.
type Invocation struct {
	Program  string   `json:"program"`
	Args     []string `json:"args,omitempty"`
	Stdout   string   `json:"stdout,omitempty"`
	Stderr   string   `json:"stderr,omitempty"`
	Success  bool     `json:"success"`
	ExitCode int      `json:"exit_code"`
}

// String renders the invocation as a command line for logs.
func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Program
	}
	return i.Program + " " + strings.Join(i.Args, " ")
}

// ErrorText returns the text to report when the invocation failed.
// Stderr is preferred; stdout is used when the tool reports errors there.
func (i Invocation) ErrorText() string {
	if s := strings.TrimSpace(i.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(i.Stdout)
}

// Runner defines the interface for executing external programs.
// This allows for testing by injecting mock implementations.
type Runner interface {
	// Run executes program with args in workDir and waits for it to exit.
	// A non-zero exit is reported through Invocation.Success and ExitCode with a nil error.
	// The error is non-nil only when the process could not be started, was killed by a signal, or the context ended.
	Run(ctx context.Context, workDir, program string, args ...string) (Invocation, error)
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct{}

// Run executes the program without a shell, capturing stdout and stderr.
func (r *ExecRunner) Run(ctx context.Context, workDir, program string, args ...string) (Invocation, error) {
	inv := Invocation{Program: program, Args: append([]string(nil), args...)}

	cmd := exec.CommandContext(ctx, program, args...) //#nosec G204 -- program and args come from trusted config
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	inv.Stdout = stdout.String()
	inv.Stderr = stderr.String()

	if err == nil {
		inv.Success = true
		return inv, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		inv.ExitCode = exitErr.ExitCode()
		if inv.ExitCode < 0 {
			// Killed by a signal: the tool never reported a result.
			return inv, fmt.Errorf("%s terminated: %w: %w", inv.String(), nagareerrors.ErrCommandFailed, err)
		}
		return inv, nil
	}

	inv.ExitCode = -1
	if ctx.Err() != nil {
		return inv, fmt.Errorf("%s interrupted: %w", inv.String(), ctx.Err())
	}
	return inv, fmt.Errorf("%s could not be started: %w: %w", inv.String(), nagareerrors.ErrCommandFailed, err)
}

// ParseCommandLine splits a configured command line into program and arguments.
// Fields are separated by whitespace; quoting is not interpreted.
func ParseCommandLine(line string) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("command line cannot be empty: %w", nagareerrors.ErrEmptyValue)
	}
	return fields, nil
}

// Ensure ExecRunner implements Runner.
var _ Runner = (*ExecRunner)(nil)
