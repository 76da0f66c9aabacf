package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, selectLevel(true, false))
	assert.Equal(t, zerolog.WarnLevel, selectLevel(false, true))
	assert.Equal(t, zerolog.InfoLevel, selectLevel(false, false))
	assert.Equal(t, zerolog.DebugLevel, selectLevel(true, true))
}

func TestNew_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer

	logger, closer, err := New(Options{Quiet: true, Console: &buf})
	require.NoError(t, err)
	require.NotNil(t, closer)
	defer func() { _ = closer.Close() }()

	logger.Info().Msg("hidden")
	logger.Warn().Msg("formatting failed")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "formatting failed")
}

func TestNew_WithLogFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "nagare.log")

	logger, closer, err := New(Options{Console: &buf, File: path})
	require.NoError(t, err)

	logger.Info().Msg("push to https://bot:" + fakeGitHubPAT() + "@github.com/org/repo")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path) //#nosec G304 -- test file path
	require.NoError(t, err)
	assert.Contains(t, string(data), "https://[REDACTED]@github.com/org/repo")
	assert.NotContains(t, string(data), fakeGitHubPAT())
	assert.Contains(t, buf.String(), "github.com/org/repo")
}

func TestNew_LogFileFailureKeepsConsole(t *testing.T) {
	var buf bytes.Buffer
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	logger, closer, err := New(Options{Console: &buf, File: filepath.Join(blocker, "sub", "nagare.log")})
	require.Error(t, err)
	require.NotNil(t, closer)

	logger.Info().Msg("still logging")
	assert.Contains(t, buf.String(), "still logging")
}
