package hook

import "fmt"

// Outcome is the terminal result of one hook run.
// It is advisory: callers log it and never treat it as a release failure.
type Outcome int

// Hook outcomes.
const (
	// NoChangesNeeded means the files were already formatted or formatting changed no bytes.
	NoChangesNeeded Outcome = iota
	// RepairedAndCommitted means formatting was fixed, committed, and pushed.
	RepairedAndCommitted
	// RepairedButCommitFailed means formatting was fixed on disk but staging, committing, or pushing failed.
	RepairedButCommitFailed
	// FormatCheckFailed means the formatter check could not be run.
	FormatCheckFailed
	// RepairFailed means the formatter apply step failed.
	RepairFailed
	// UnexpectedError means any other fault, including a failed status query.
	UnexpectedError
)

var outcomeNames = map[Outcome]string{ //nolint:gochecknoglobals // Lookup table
	NoChangesNeeded:         "no_changes_needed",
	RepairedAndCommitted:    "repaired_and_committed",
	RepairedButCommitFailed: "repaired_but_commit_failed",
	FormatCheckFailed:       "format_check_failed",
	RepairFailed:            "repair_failed",
	UnexpectedError:         "unexpected_error",
}

// String returns the snake_case name used in logs and JSON output.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Failed reports whether the outcome was reached through a warning.
func (o Outcome) Failed() bool {
	return o != NoChangesNeeded && o != RepairedAndCommitted
}
