// Package testutil provides testing utilities for nagare.
//
// This package contains mock errors and a scripted command runner used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
var (
	// ErrMockSpawn simulates a process that could not be started.
	ErrMockSpawn = errors.New("exec: no such file or directory")

	// ErrMockNetwork simulates a push that failed on the network.
	ErrMockNetwork = errors.New("network error")

	// ErrMockIO simulates a local I/O failure.
	ErrMockIO = errors.New("input/output error")
)
