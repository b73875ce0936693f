package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Result styles
	Pass    lipgloss.Style
	Fail    lipgloss.Style
	Warn    lipgloss.Style
	Advise  lipgloss.Style
	Accept  lipgloss.Style
	Reject  lipgloss.Style

	// Strength styles
	Weak   lipgloss.Style
	Medium lipgloss.Style
	Strong lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Rule      lipgloss.Style
	Help      lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconPass   string
	IconFail   string
	IconWarn   string
	IconAdvise string
}

// NewStyles creates a new Styles instance.
// When enabled is false, styles return text unchanged (for non-TTY output).
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Pass = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))   // Green
		s.Fail = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))    // Red
		s.Warn = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))   // Yellow
		s.Advise = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // Cyan
		s.Accept = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
		s.Reject = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

		s.Weak = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		s.Medium = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		s.Strong = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Rule = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))               // Gray
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))               // Gray

		// Unicode icons
		s.IconPass = "✓"   // ✓
		s.IconFail = "✗"   // ✗
		s.IconWarn = "⚠"   // ⚠
		s.IconAdvise = "ℹ" // ℹ
	} else {
		// No-op styles for non-TTY (plain text output)
		s.Pass = lipgloss.NewStyle()
		s.Fail = lipgloss.NewStyle()
		s.Warn = lipgloss.NewStyle()
		s.Advise = lipgloss.NewStyle()
		s.Accept = lipgloss.NewStyle()
		s.Reject = lipgloss.NewStyle()

		s.Weak = lipgloss.NewStyle()
		s.Medium = lipgloss.NewStyle()
		s.Strong = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Rule = lipgloss.NewStyle()
		s.Help = lipgloss.NewStyle()

		// ASCII fallback icons
		s.IconPass = "PASS:"
		s.IconFail = "FAIL:"
		s.IconWarn = "WARN:"
		s.IconAdvise = "NOTE:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}
