// Package constants provides centralized constant values used throughout nagare.
// This package MUST NOT import any other internal packages.
package constants

// Directory and file names.
const (
	// AppHome is the hidden directory holding nagare configuration.
	// It exists both in the user's home directory and at a project root.
	AppHome = ".nagare"

	// ConfigFileName is the configuration file inside AppHome.
	ConfigFileName = "config.yaml"

	// LogsDir is the directory under the global AppHome where log files are stored.
	LogsDir = "logs"

	// LogFileName is the rotating log file name.
	LogFileName = "nagare.log"
)

// Environment.
const (
	// EnvPrefix prefixes every configuration environment variable (NAGARE_HOOK_PUSH_BRANCH).
	EnvPrefix = "NAGARE"

	// EnvHome overrides the global configuration directory.
	EnvHome = "NAGARE_HOME"
)

// Post-release hook defaults.
const (
	// DefaultCheckCommand reports unformatted files without writing them.
	DefaultCheckCommand = "deno fmt --check"

	// DefaultFormatCommand rewrites files to canonical formatting.
	DefaultFormatCommand = "deno fmt"

	// DefaultCommitMessage marks the repair commit as automated.
	DefaultCommitMessage = "chore: format generated files after release"

	// DefaultPushRemote is the remote the repair is pushed to.
	DefaultPushRemote = "origin"

	// DefaultPushBranch is the branch the repair is pushed to.
	DefaultPushBranch = "main"

	// DefaultVersionFile is the generated version module.
	DefaultVersionFile = "version.ts"
)
