package evaluator

import (
	"github.com/passlint/passlint/internal/policy"
	"github.com/passlint/passlint/internal/rules"
)

// Strength is the aggregate classification of a password.
type Strength int

const (
	Weak Strength = iota
	Medium
	Strong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// score counts passed composition rules and subtracts the policy penalty for
// each detected pattern. Never negative.
func score(findings []rules.Finding, pol *policy.Policy) int {
	total := 0
	for _, f := range findings {
		switch f.Kind {
		case rules.Composition:
			if f.Passed {
				total++
			}
		case rules.Pattern:
			if f.Detected {
				total -= penaltyFor(f.Rule, pol)
			}
		}
	}
	if total < 0 {
		total = 0
	}
	return total
}

func penaltyFor(rule string, pol *policy.Policy) int {
	switch rule {
	case "keyboard-sequence":
		return pol.Penalties.KeyboardSequence
	case "excessive-repetition":
		return pol.Penalties.Repetition
	case "ambiguous-characters":
		return pol.Penalties.Ambiguous
	default:
		return 0
	}
}

// classify maps a score to a strength band using the policy thresholds.
func classify(score int, pol *policy.Policy) Strength {
	switch {
	case score >= pol.Thresholds.Strong:
		return Strong
	case score >= pol.Thresholds.Medium:
		return Medium
	default:
		return Weak
	}
}
