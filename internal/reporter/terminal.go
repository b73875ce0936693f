package reporter

import (
	"fmt"
	"io"

	"github.com/passlint/passlint/internal/evaluator"
	"github.com/passlint/passlint/internal/rules"
	"github.com/passlint/passlint/internal/ui"
)

// TerminalReporter renders the checklist, patterns and strength meter.
type TerminalReporter struct {
	w      io.Writer
	styles *ui.Styles
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI) *TerminalReporter {
	return &TerminalReporter{w: w, styles: u.Styles}
}

// Report outputs the evaluation as a checklist followed by a summary
func (r *TerminalReporter) Report(eval evaluator.Evaluation) error {
	for _, f := range eval.Findings {
		if f.Kind != rules.Composition {
			continue
		}
		if f.Passed {
			fmt.Fprintln(r.w, r.styles.Pass.Render(fmt.Sprintf("  %s %s", r.styles.IconPass, f.Message)))
		} else {
			line := fmt.Sprintf("  %s %s", r.styles.IconFail, f.Message)
			if f.Detail != "" {
				line += fmt.Sprintf(" (%s)", f.Detail)
			}
			fmt.Fprintln(r.w, r.styles.Fail.Render(line))
		}
	}

	for _, f := range eval.Findings {
		if f.Kind != rules.Pattern || !f.Detected {
			continue
		}
		style, icon := r.styles.Warn, r.styles.IconWarn
		if f.Rule == "ambiguous-characters" {
			style, icon = r.styles.Advise, r.styles.IconAdvise
		}
		fmt.Fprintln(r.w, style.Render(fmt.Sprintf("  %s %s: %s", icon, f.Message, f.Detail)))
	}

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "  %s\n", r.styles.RenderMeter(eval.Score, eval.MaxScore, eval.Strength))
	fmt.Fprintf(r.w, "  %s  %s\n",
		r.styles.StrengthStyle(eval.Strength).Render(fmt.Sprintf("Strength: %s", eval.Strength)),
		r.styles.Subheader.Render(fmt.Sprintf("(%d/%d rules passed)", eval.PassedCount(), eval.MaxScore)))

	fmt.Fprintln(r.w)
	if eval.Accepted() {
		fmt.Fprintln(r.w, r.styles.Accept.Render(fmt.Sprintf("  Accepted %s", r.styles.IconPass)))
	} else {
		fmt.Fprintln(r.w, r.styles.Reject.Render(fmt.Sprintf("  Rejected %s", r.styles.IconFail)))
	}

	return nil
}
