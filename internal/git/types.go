// Package git provides the version-control surface used by the post-release hook.
// This file defines the repository status types parsed from porcelain output.
package git

// RepositoryStatus is the set of changed paths reported by git status --porcelain.
type RepositoryStatus struct {
	Entries []StatusEntry // One entry per changed path, in git's order
}

// StatusEntry represents one line of porcelain status output.
type StatusEntry struct {
	Index    ChangeType // Index (staged) status column
	WorkTree ChangeType // Work tree status column
	Path     string     // File path relative to repo root
	OldPath  string     // For renamed or copied files, the original path
}

// ChangeType is one porcelain status column.
type ChangeType byte

// Change type constants for git status columns.
const (
	ChangeNone      ChangeType = ' '
	ChangeAdded     ChangeType = 'A'
	ChangeModified  ChangeType = 'M'
	ChangeDeleted   ChangeType = 'D'
	ChangeRenamed   ChangeType = 'R'
	ChangeCopied    ChangeType = 'C'
	ChangeUnmerged  ChangeType = 'U'
	ChangeUntracked ChangeType = '?'
)

// IsClean returns true if the working tree has no changes.
func (s *RepositoryStatus) IsClean() bool {
	return len(s.Entries) == 0
}

// Paths returns the changed paths in order.
func (s *RepositoryStatus) Paths() []string {
	paths := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		paths = append(paths, e.Path)
	}
	return paths
}

// IsUntracked returns true for files git does not track yet.
func (e StatusEntry) IsUntracked() bool {
	return e.Index == ChangeUntracked && e.WorkTree == ChangeUntracked
}

// isRenameOrCopy reports whether the entry carries an "ORIG -> PATH" pair.
func (e StatusEntry) isRenameOrCopy() bool {
	return e.Index == ChangeRenamed || e.Index == ChangeCopied ||
		e.WorkTree == ChangeRenamed || e.WorkTree == ChangeCopied
}
