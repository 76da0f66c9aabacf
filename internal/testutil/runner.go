package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/RickCogley/nagare-sub001/internal/command"
	nagareerrors "github.com/RickCogley/nagare-sub001/internal/errors"
)

// Response is the scripted result for one command line.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
	Panic    any
}

// ScriptedRunner implements command.Runner with canned responses keyed by
// the full command line ("git status --porcelain"). Every call is recorded.
type ScriptedRunner struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []string
}

// NewScriptedRunner creates an empty ScriptedRunner.
func NewScriptedRunner() *ScriptedRunner {
	return &ScriptedRunner{responses: make(map[string]Response)}
}

// On configures the response for a command line.
func (r *ScriptedRunner) On(line string, resp Response) *ScriptedRunner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[line] = resp
	return r
}

// Succeed configures a zero-exit response with the given stdout.
func (r *ScriptedRunner) Succeed(line, stdout string) *ScriptedRunner {
	return r.On(line, Response{Stdout: stdout})
}

// Fail configures a non-zero exit with the given stderr.
func (r *ScriptedRunner) Fail(line string, exitCode int, stderr string) *ScriptedRunner {
	return r.On(line, Response{ExitCode: exitCode, Stderr: stderr})
}

// Run implements command.Runner.
func (r *ScriptedRunner) Run(_ context.Context, _, program string, args ...string) (command.Invocation, error) {
	inv := command.Invocation{Program: program, Args: append([]string(nil), args...)}
	line := inv.String()

	r.mu.Lock()
	r.calls = append(r.calls, line)
	resp, ok := r.responses[line]
	r.mu.Unlock()

	if !ok {
		inv.ExitCode = -1
		return inv, fmt.Errorf("%s: %w", line, nagareerrors.ErrCommandNotConfigured)
	}
	if resp.Panic != nil {
		panic(resp.Panic)
	}

	inv.Stdout = resp.Stdout
	inv.Stderr = resp.Stderr
	inv.ExitCode = resp.ExitCode
	if resp.Err != nil {
		inv.ExitCode = -1
		return inv, resp.Err
	}
	inv.Success = resp.ExitCode == 0
	return inv, nil
}

// Calls returns the recorded command lines in invocation order.
func (r *ScriptedRunner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Called reports whether any recorded command line starts with prefix.
func (r *ScriptedRunner) Called(prefix string) bool {
	for _, c := range r.Calls() {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

var _ command.Runner = (*ScriptedRunner)(nil)
