// Package errors provides centralized error handling for nagare.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for the post-release consistency hook.
// Each matches one failure class the hook downgrades to a warning.
var (
	// ErrCheckFailed indicates the formatter check invocation could not run.
	// A check that ran and reported issues is not an error.
	ErrCheckFailed = errors.New("format check failed to run")

	// ErrRepairFailed indicates the formatter apply invocation did not complete.
	ErrRepairFailed = errors.New("format repair failed")

	// ErrStatusFailed indicates the version-control status query failed.
	ErrStatusFailed = errors.New("repository status query failed")

	// ErrCommitOrPushFailed indicates that staging, committing, or pushing failed.
	ErrCommitOrPushFailed = errors.New("commit or push failed")

	// ErrUnexpected indicates any other runtime fault inside the hook.
	ErrUnexpected = errors.New("unexpected hook failure")
)

// Sentinel errors shared by the command, git, and config layers.
var (
	// ErrGitOperation indicates that a git command failed during execution.
	ErrGitOperation = errors.New("git operation failed")

	// ErrCommandFailed indicates that a command execution failed.
	ErrCommandFailed = errors.New("command failed")

	// ErrCommandNotConfigured indicates that a mock command was not configured in tests.
	ErrCommandNotConfigured = errors.New("command not configured")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidHook indicates an invalid hook configuration value.
	ErrConfigInvalidHook = errors.New("invalid hook configuration")

	// ErrConfigInvalidRelease indicates an invalid release configuration value.
	ErrConfigInvalidRelease = errors.New("invalid release configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")
)
