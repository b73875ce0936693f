package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/passlint/passlint/internal/evaluator"
	"github.com/passlint/passlint/internal/rules"
)

// Model is the Bubbletea model for the live password checker. Every
// keystroke re-evaluates the current input in full; no state survives
// between evaluations beyond the displayed result.
type Model struct {
	evaluator *evaluator.Evaluator
	styles    *Styles

	input    textinput.Model
	meter    progress.Model
	eval     evaluator.Evaluation
	width    int
	show     bool
	quitting bool
}

// NewModel creates a new checker model
func NewModel(ev *evaluator.Evaluator, styles *Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "type a password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Prompt = "> "
	ti.Focus()

	p := progress.New(progress.WithDefaultGradient())
	p.Width = 40

	return Model{
		evaluator: ev,
		styles:    styles,
		input:     ti,
		meter:     p,
		eval:      ev.Evaluate(""),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+r":
			m.show = !m.show
			if m.show {
				m.input.EchoMode = textinput.EchoNormal
			} else {
				m.input.EchoMode = textinput.EchoPassword
			}
			return m, nil

		case "ctrl+u":
			m.input.SetValue("")
			m.eval = m.evaluator.Evaluate("")
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.meter.Width = msg.Width - 4
		if m.meter.Width > 40 {
			m.meter.Width = 40
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.eval = m.evaluator.Evaluate(m.input.Value())
	return m, cmd
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("Password Checker"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	for _, f := range m.eval.Findings {
		switch f.Kind {
		case rules.Composition:
			if f.Passed {
				sb.WriteString(m.styles.Pass.Render(fmt.Sprintf("  %s %s", m.styles.IconPass, f.Message)))
			} else {
				sb.WriteString(m.styles.Fail.Render(fmt.Sprintf("  %s %s", m.styles.IconFail, f.Message)))
			}
			sb.WriteString("\n")

		case rules.Pattern:
			if !f.Detected {
				continue
			}
			style, icon := m.styles.Warn, m.styles.IconWarn
			if f.Rule == "ambiguous-characters" {
				style, icon = m.styles.Advise, m.styles.IconAdvise
			}
			sb.WriteString(style.Render(fmt.Sprintf("  %s %s: %s", icon, f.Message, f.Detail)))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n  ")
	pct := float64(m.eval.Score) / float64(m.eval.MaxScore)
	sb.WriteString(m.meter.ViewAs(pct))
	sb.WriteString("\n  ")
	sb.WriteString(m.styles.StrengthStyle(m.eval.Strength).Render(
		fmt.Sprintf("Password strength: %s", m.eval.Strength)))
	sb.WriteString("\n")

	if m.input.Value() != "" {
		sb.WriteString("\n  ")
		if m.eval.Accepted() {
			sb.WriteString(m.styles.Accept.Render(fmt.Sprintf("Accepted %s", m.styles.IconPass)))
		} else {
			sb.WriteString(m.styles.Reject.Render(fmt.Sprintf("Rejected %s", m.styles.IconFail)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("  ctrl+r show/hide · ctrl+u clear · esc quit"))
	sb.WriteString("\n")

	return sb.String()
}
