package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/passlint/passlint/internal/evaluator"
	"github.com/passlint/passlint/internal/policy"
	"github.com/passlint/passlint/internal/ui"
)

func testEvaluation(t *testing.T, password string) evaluator.Evaluation {
	t.Helper()
	pol, err := policy.Default()
	if err != nil {
		t.Fatalf("policy.Default() failed: %v", err)
	}
	return evaluator.New(pol).Evaluate(password)
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := NewJSONReporter(&buf)

	if err := rep.Report(testEvaluation(t, "qwerty1234")); err != nil {
		t.Fatalf("Report() failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(out.Rules) != 7 {
		t.Errorf("rules = %d entries, want 7", len(out.Rules))
	}
	if len(out.Patterns) != 3 {
		t.Errorf("patterns = %d entries, want 3", len(out.Patterns))
	}
	if out.MaxScore != 7 {
		t.Errorf("maxScore = %d, want 7", out.MaxScore)
	}
	if out.Strength != "Weak" {
		t.Errorf("strength = %q, want Weak", out.Strength)
	}
	if out.Accepted {
		t.Error("accepted = true, want false")
	}

	keyboard := false
	for _, p := range out.Patterns {
		if p.Name == "keyboard-sequence" && p.Detected {
			keyboard = true
		}
	}
	if !keyboard {
		t.Error("keyboard-sequence not reported as detected")
	}
}

func TestJSONReporterNeverEchoesPassword(t *testing.T) {
	var buf bytes.Buffer
	rep := NewJSONReporter(&buf)

	const password = "VerySecret#Xy42"
	if err := rep.Report(testEvaluation(t, password)); err != nil {
		t.Fatalf("Report() failed: %v", err)
	}
	if strings.Contains(buf.String(), password) {
		t.Error("JSON output contains the password")
	}
}

func TestTerminalReporter(t *testing.T) {
	var buf bytes.Buffer
	u := ui.New(&buf, &buf, "terminal") // non-TTY writer, plain styles
	rep := NewTerminalReporter(&buf, u)

	if err := rep.Report(testEvaluation(t, "Str@ngXy42")); err != nil {
		t.Fatalf("Report() failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Strength: Strong", "7/7 rules passed", "Accepted"} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := rep.Report(testEvaluation(t, "aaaaaaaa")); err != nil {
		t.Fatalf("Report() failed: %v", err)
	}
	out = buf.String()
	for _, want := range []string{"Strength: Weak", "Excessive repetition", "Rejected"} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q:\n%s", want, out)
		}
	}
}
