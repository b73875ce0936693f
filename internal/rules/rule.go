package rules

import (
	"github.com/passlint/passlint/internal/policy"
)

// Kind categorizes a rule.
type Kind int

const (
	// Composition rules are hard pass/fail checks (length, character classes,
	// whitespace, blocklist). Each passed rule contributes one point.
	Composition Kind = iota
	// Pattern rules detect weaknesses independent of composition (keyboard
	// sequences, repetition, ambiguous characters). Detections subtract a
	// penalty from the score.
	Pattern
)

func (k Kind) String() string {
	switch k {
	case Composition:
		return "composition"
	case Pattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// Finding is the outcome of running a single rule against a password.
type Finding struct {
	// Rule is the name of the rule that produced this finding
	Rule string
	// Kind mirrors the rule's kind
	Kind Kind
	// Passed is set for composition rules
	Passed bool
	// Detected is set for pattern rules when the weakness is present
	Detected bool
	// Message is the checklist label for this rule
	Message string
	// Detail describes what specifically passed or was detected
	Detail string
}

// EvalContext carries the password under evaluation and the active policy.
// The rune slice is precomputed so rules don't re-decode the string.
type EvalContext struct {
	Password string
	Runes    []rune
	Policy   *policy.Policy
}

// NewEvalContext builds an evaluation context for a single password.
func NewEvalContext(password string, pol *policy.Policy) *EvalContext {
	return &EvalContext{
		Password: password,
		Runes:    []rune(password),
		Policy:   pol,
	}
}

// Empty reports whether the password is the empty string.
// An empty password satisfies no composition rule.
func (ctx *EvalContext) Empty() bool {
	return len(ctx.Runes) == 0
}

// Rule defines the interface for password rules. Checks are pure: the same
// context always produces the same finding, and no rule performs I/O.
type Rule interface {
	// Name returns the unique identifier for this rule
	Name() string

	// Description returns the human-readable checklist label
	Description() string

	// Kind returns whether this is a composition or pattern rule
	Kind() Kind

	// Check evaluates the rule against the password in ctx
	Check(ctx *EvalContext) Finding
}
