// Package evaluator runs the rule set against a password and derives the
// aggregate strength classification. Evaluation is a pure function: no I/O,
// no shared mutable state, identical results for identical inputs.
package evaluator

import (
	"github.com/passlint/passlint/internal/policy"
	"github.com/passlint/passlint/internal/rules"
)

// Evaluation is the full result of checking one password.
type Evaluation struct {
	// Findings holds one finding per rule, composition rules first,
	// in registry order.
	Findings []rules.Finding

	// Score is the aggregate score: one point per passed composition rule
	// minus the penalty for each detected pattern, clamped at zero.
	Score int

	// MaxScore is the number of composition rules.
	MaxScore int

	// Strength is the classification derived from Score.
	Strength Strength
}

// RuleResult returns the pass/fail state of each composition rule keyed by
// rule name.
func (e Evaluation) RuleResult() map[string]bool {
	result := make(map[string]bool)
	for _, f := range e.Findings {
		if f.Kind == rules.Composition {
			result[f.Rule] = f.Passed
		}
	}
	return result
}

// Patterns returns the names of detected disqualifying patterns.
// An empty slice means none were detected.
func (e Evaluation) Patterns() []string {
	var detected []string
	for _, f := range e.Findings {
		if f.Kind == rules.Pattern && f.Detected {
			detected = append(detected, f.Rule)
		}
	}
	return detected
}

// PassedCount returns the number of passed composition rules.
func (e Evaluation) PassedCount() int {
	count := 0
	for _, f := range e.Findings {
		if f.Kind == rules.Composition && f.Passed {
			count++
		}
	}
	return count
}

// Accepted reports whether the password meets the policy outright: every
// composition rule passes and no disqualifying pattern is present. The
// ambiguous-characters pattern is advisory and does not reject.
func (e Evaluation) Accepted() bool {
	for _, f := range e.Findings {
		switch f.Kind {
		case rules.Composition:
			if !f.Passed {
				return false
			}
		case rules.Pattern:
			if f.Detected && f.Rule != "ambiguous-characters" {
				return false
			}
		}
	}
	return true
}

// Evaluator binds a policy to a rule registry.
type Evaluator struct {
	policy   *policy.Policy
	registry *rules.Registry
}

// New creates an evaluator over the default rule registry.
func New(pol *policy.Policy) *Evaluator {
	return NewWithRegistry(pol, rules.DefaultRegistry())
}

// NewWithRegistry creates an evaluator with a custom registry.
func NewWithRegistry(pol *policy.Policy, reg *rules.Registry) *Evaluator {
	return &Evaluator{
		policy:   pol,
		registry: reg,
	}
}

// Evaluate checks a password against every registered rule. Any string is
// accepted as input, including the empty string, which fails every
// composition rule and scores Weak.
func (ev *Evaluator) Evaluate(password string) Evaluation {
	ctx := rules.NewEvalContext(password, ev.policy)

	e := Evaluation{
		Findings: make([]rules.Finding, 0, len(ev.registry.All())),
	}
	for _, rule := range ev.registry.All() {
		e.Findings = append(e.Findings, rule.Check(ctx))
	}

	e.MaxScore = len(ev.registry.Rules(rules.Composition))
	e.Score = score(e.Findings, ev.policy)
	e.Strength = classify(e.Score, ev.policy)
	return e
}
