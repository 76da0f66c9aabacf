package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/RickCogley/nagare-sub001/internal/hook"
)

// outcomeStyles colors hook outcomes in text output.
// lipgloss drops the styling when stdout is not a terminal.
type outcomeStyles struct {
	name    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	dim     lipgloss.Style
}

func newOutcomeStyles() *outcomeStyles {
	return &outcomeStyles{
		name:    lipgloss.NewStyle().Bold(true),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("#00D787")),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
	}
}

// outcome renders o, highlighting failures as warnings.
func (s *outcomeStyles) outcome(o hook.Outcome) string {
	if o.Failed() {
		return s.failure.Render(o.String())
	}
	return s.success.Render(o.String())
}
