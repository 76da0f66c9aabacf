package testutil_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nagareerrors "github.com/RickCogley/nagare-sub001/internal/errors"
	"github.com/RickCogley/nagare-sub001/internal/testutil"
)

func TestScriptedRunner(t *testing.T) {
	ctx := context.Background()
	r := testutil.NewScriptedRunner().
		Succeed("git status --porcelain", " M a.ts\n").
		Fail("deno fmt --check", 1, "not formatted").
		On("git push origin main", testutil.Response{Err: testutil.ErrMockNetwork})

	inv, err := r.Run(ctx, "", "git", "status", "--porcelain")
	require.NoError(t, err)
	assert.True(t, inv.Success)
	assert.Equal(t, " M a.ts\n", inv.Stdout)

	inv, err = r.Run(ctx, "", "deno", "fmt", "--check")
	require.NoError(t, err)
	assert.False(t, inv.Success)
	assert.Equal(t, 1, inv.ExitCode)

	_, err = r.Run(ctx, "", "git", "push", "origin", "main")
	require.ErrorIs(t, err, testutil.ErrMockNetwork)

	_, err = r.Run(ctx, "", "git", "commit")
	require.ErrorIs(t, err, nagareerrors.ErrCommandNotConfigured)

	assert.Equal(t, []string{
		"git status --porcelain",
		"deno fmt --check",
		"git push origin main",
		"git commit",
	}, r.Calls())
	assert.True(t, r.Called("git push"))
	assert.False(t, r.Called("git add"))
}

func TestScriptedRunner_Panic(t *testing.T) {
	r := testutil.NewScriptedRunner().On("git add -A", testutil.Response{Panic: "boom"})

	assert.PanicsWithValue(t, "boom", func() {
		_, _ = r.Run(context.Background(), "", "git", "add", "-A")
	})
}
