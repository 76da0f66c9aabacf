package cli

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RickCogley/nagare-sub001/internal/errors"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "invalid output", err: fmt.Errorf("%w: \"xml\"", errors.ErrInvalidOutputFormat), want: ExitInvalidInput},
		{name: "invalid hook config", err: fmt.Errorf("invalid configuration: %w", errors.ErrConfigInvalidHook), want: ExitInvalidInput},
		{name: "invalid release config", err: errors.ErrConfigInvalidRelease, want: ExitInvalidInput},
		{name: "unknown flag", err: stderrors.New("unknown flag: --nope"), want: ExitInvalidInput},
		{name: "unknown command", err: stderrors.New(`unknown command "extra" for "nagare post-release"`), want: ExitInvalidInput},
		{name: "formatter could not start", err: errors.ErrCheckFailed, want: ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}

func TestIsValidOutputFormat(t *testing.T) {
	assert.True(t, IsValidOutputFormat(OutputText))
	assert.True(t, IsValidOutputFormat(OutputJSON))
	assert.False(t, IsValidOutputFormat("yaml"))
	assert.False(t, IsValidOutputFormat(""))
}
