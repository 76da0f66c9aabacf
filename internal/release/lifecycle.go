// Package release is the boundary between the release engine and its
// post-release hooks. Hooks take no parameters and their outcomes are
// advisory: the lifecycle logs them and always completes.
package release

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	nagareerrors "github.com/RickCogley/nagare-sub001/internal/errors"
	"github.com/RickCogley/nagare-sub001/internal/hook"
	"github.com/RickCogley/nagare-sub001/internal/logging"
)

// PostReleaseHook runs after release assets are written.
type PostReleaseHook interface {
	Run(ctx context.Context) hook.Outcome
}

// HookFunc adapts a function to PostReleaseHook.
type HookFunc func(ctx context.Context) hook.Outcome

// Run implements PostReleaseHook.
func (f HookFunc) Run(ctx context.Context) hook.Outcome {
	return f(ctx)
}

// HookResult is the advisory outcome of one registered hook.
type HookResult struct {
	Name       string       `json:"name"`
	Outcome    hook.Outcome `json:"outcome"`
	DurationMs int64        `json:"duration_ms"`
}

type registeredHook struct {
	name string
	hook PostReleaseHook
}

// Lifecycle holds the hooks registered for the post-release point.
// It is not safe for concurrent registration; hooks are registered during setup.
type Lifecycle struct {
	postRelease []registeredHook
}

// NewLifecycle creates an empty Lifecycle.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// OnPostRelease registers h under name. Hooks run in registration order.
func (l *Lifecycle) OnPostRelease(name string, h PostReleaseHook) {
	l.postRelease = append(l.postRelease, registeredHook{name: name, hook: h})
}

// Hooks returns the registered hook names in run order.
func (l *Lifecycle) Hooks() []string {
	names := make([]string, 0, len(l.postRelease))
	for _, h := range l.postRelease {
		names = append(names, h.name)
	}
	return names
}

// RunPostRelease runs every registered hook sequentially and returns their outcomes.
// A hook that panics is recorded as UnexpectedError and the remaining hooks still run.
func (l *Lifecycle) RunPostRelease(ctx context.Context) []HookResult {
	log := zerolog.Ctx(ctx)
	results := make([]HookResult, 0, len(l.postRelease))

	for _, rh := range l.postRelease {
		start := time.Now()
		outcome := runIsolated(ctx, rh)
		result := HookResult{
			Name:       rh.name,
			Outcome:    outcome,
			DurationMs: time.Since(start).Milliseconds(),
		}
		results = append(results, result)

		log.Debug().
			Str("hook", rh.name).
			Stringer("outcome", outcome).
			Int64("duration_ms", result.DurationMs).
			Msg("post-release hook finished")
	}

	return results
}

// runIsolated runs one hook, converting a panic into UnexpectedError.
func runIsolated(ctx context.Context, rh registeredHook) (outcome hook.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: hook %q panicked: %v", nagareerrors.ErrUnexpected, rh.name, r)
			zerolog.Ctx(ctx).Warn().
				Str("hook", rh.name).
				Str("error", logging.FilterSensitiveValue(err.Error())).
				Msg("post-release hook aborted unexpectedly")
			outcome = hook.UnexpectedError
		}
	}()

	if rh.hook == nil {
		panic("nil hook")
	}
	return rh.hook.Run(ctx)
}
