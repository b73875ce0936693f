package reporter

import (
	"github.com/passlint/passlint/internal/evaluator"
)

// Reporter defines the interface for outputting evaluation results.
// Reporters never echo the password itself, only derived results.
type Reporter interface {
	// Report outputs the evaluation
	Report(eval evaluator.Evaluation) error
}
