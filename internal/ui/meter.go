package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/passlint/passlint/internal/evaluator"
)

// meterWidth is the total width of the strength bar in cells.
const meterWidth = 20

// StrengthStyle returns the style for a strength classification.
func (s *Styles) StrengthStyle(strength evaluator.Strength) lipgloss.Style {
	switch strength {
	case evaluator.Strong:
		return s.Strong
	case evaluator.Medium:
		return s.Medium
	default:
		return s.Weak
	}
}

// RenderMeter renders a fixed-width strength bar, filled in proportion to
// score/max and colored by strength. In plain mode the bar degrades to
// ASCII brackets.
func (s *Styles) RenderMeter(score, max int, strength evaluator.Strength) string {
	if max <= 0 {
		max = 1
	}
	filled := score * meterWidth / max
	if filled > meterWidth {
		filled = meterWidth
	}
	if filled < 0 {
		filled = 0
	}

	if !s.enabled {
		return "[" + strings.Repeat("#", filled) + strings.Repeat("-", meterWidth-filled) + "]"
	}

	bar := s.StrengthStyle(strength).Render(strings.Repeat("█", filled))
	rest := s.Rule.Render(strings.Repeat("░", meterWidth-filled))
	return bar + rest
}
