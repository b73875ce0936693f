package reporter

import (
	"encoding/json"
	"io"

	"github.com/passlint/passlint/internal/evaluator"
	"github.com/passlint/passlint/internal/rules"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Rules    []JSONRule    `json:"rules"`
	Patterns []JSONPattern `json:"patterns"`
	Score    int           `json:"score"`
	MaxScore int           `json:"maxScore"`
	Strength string        `json:"strength"`
	Accepted bool          `json:"accepted"`
}

// JSONRule represents a composition rule result in JSON format
type JSONRule struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Passed  bool   `json:"passed"`
	Detail  string `json:"detail,omitempty"`
}

// JSONPattern represents a pattern detection in JSON format
type JSONPattern struct {
	Name     string `json:"name"`
	Detected bool   `json:"detected"`
	Detail   string `json:"detail,omitempty"`
}

// Report outputs the evaluation as JSON
func (r *JSONReporter) Report(eval evaluator.Evaluation) error {
	output := JSONOutput{
		Rules:    make([]JSONRule, 0, eval.MaxScore),
		Patterns: make([]JSONPattern, 0),
		Score:    eval.Score,
		MaxScore: eval.MaxScore,
		Strength: eval.Strength.String(),
		Accepted: eval.Accepted(),
	}

	for _, f := range eval.Findings {
		switch f.Kind {
		case rules.Composition:
			output.Rules = append(output.Rules, JSONRule{
				Name:    f.Rule,
				Message: f.Message,
				Passed:  f.Passed,
				Detail:  f.Detail,
			})
		case rules.Pattern:
			output.Patterns = append(output.Patterns, JSONPattern{
				Name:     f.Rule,
				Detected: f.Detected,
				Detail:   f.Detail,
			})
		}
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
