package git

import "context"

// Runner defines the git operations the post-release hook needs.
// All operations run in the runner's working directory and honor context cancellation.
type Runner interface {
	// Status returns the working tree status parsed from porcelain output.
	Status(ctx context.Context) (*RepositoryStatus, error)

	// AddAll stages every change, including deletions and untracked files.
	AddAll(ctx context.Context) error

	// Commit creates a commit with the given message.
	Commit(ctx context.Context, message string) error

	// Push pushes the branch to the remote.
	Push(ctx context.Context, remote, branch string) error
}
