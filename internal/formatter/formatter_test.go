package formatter_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RickCogley/nagare-sub001/internal/command"
	nagareerrors "github.com/RickCogley/nagare-sub001/internal/errors"
	"github.com/RickCogley/nagare-sub001/internal/formatter"
	"github.com/RickCogley/nagare-sub001/internal/testutil"
)

func TestNew(t *testing.T) {
	t.Run("empty check command", func(t *testing.T) {
		f, err := formatter.New(".", nil, nil, formatter.DefaultApplyCommand)
		assert.Nil(t, f)
		require.ErrorIs(t, err, nagareerrors.ErrEmptyValue)
	})

	t.Run("empty apply command", func(t *testing.T) {
		f, err := formatter.New(".", nil, formatter.DefaultCheckCommand, []string{})
		assert.Nil(t, f)
		require.ErrorIs(t, err, nagareerrors.ErrEmptyValue)
	})

	t.Run("copies command lines", func(t *testing.T) {
		check := []string{"deno", "fmt", "--check"}
		f, err := formatter.New(".", nil, check, formatter.DefaultApplyCommand)
		require.NoError(t, err)
		check[0] = "changed"
		assert.Equal(t, []string{"deno", "fmt", "--check"}, f.CheckCommand())
		assert.Equal(t, []string{"deno", "fmt"}, f.ApplyCommand())
	})
}

func TestFormatter_CheckAndApply(t *testing.T) {
	r := testutil.NewScriptedRunner().
		Fail("deno fmt --check", 1, "error: Found 1 not formatted file in 3 files\n").
		Succeed("deno fmt", "Checked 3 files\n")

	f, err := formatter.New("/repo", r, formatter.DefaultCheckCommand, formatter.DefaultApplyCommand)
	require.NoError(t, err)

	check, err := f.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, check.Success)
	assert.Contains(t, check.ErrorText(), "not formatted")

	apply, err := f.Apply(context.Background())
	require.NoError(t, err)
	assert.True(t, apply.Success)

	assert.Equal(t, []string{"deno fmt --check", "deno fmt"}, r.Calls())
}

func TestFormatter_WithRealProcess(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "gen.ts")
	require.NoError(t, os.WriteFile(target, []byte("const x=1\n"), 0o600))

	// grep -q acts as a check that fails while the file is unformatted; sed rewrites it
	f, err := formatter.New(dir, &command.ExecRunner{},
		[]string{"grep", "-q", "x = 1", "gen.ts"},
		[]string{"sed", "-i", "s/x=1/x = 1/", "gen.ts"},
	)
	require.NoError(t, err)

	check, err := f.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, check.Success)

	apply, err := f.Apply(context.Background())
	require.NoError(t, err)
	require.True(t, apply.Success)

	check, err = f.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, check.Success)
}
