package hook

import "github.com/RickCogley/nagare-sub001/internal/logging"

// Step names recorded in a Report.
const (
	StepCheck  = "check"
	StepFormat = "format"
	StepStatus = "status"
	StepStage  = "stage"
	StepCommit = "commit"
	StepPush   = "push"
)

// StepResult records one pipeline step.
type StepResult struct {
	Name       string `json:"name"`
	Command    string `json:"command,omitempty"`
	Success    bool   `json:"success"`
	ExitCode   int    `json:"exit_code,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// Report is the outcome of one run plus the steps that led to it.
type Report struct {
	RunID        string       `json:"run_id"`
	Outcome      Outcome      `json:"outcome"`
	Steps        []StepResult `json:"steps"`
	ChangedPaths []string     `json:"changed_paths,omitempty"`
	Error        string       `json:"error,omitempty"`
	DurationMs   int64        `json:"duration_ms"`

	err error
}

// Err returns the error behind a failed outcome, or nil.
func (r Report) Err() error {
	return r.err
}

// StepNames returns the names of the steps that ran, in order.
func (r Report) StepNames() []string {
	names := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		names = append(names, s.Name)
	}
	return names
}

func (r *Report) setError(err error) {
	r.err = err
	r.Error = logging.FilterSensitiveValue(err.Error())
}
