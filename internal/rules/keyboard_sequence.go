package rules

import (
	"fmt"
	"strings"
)

// minSequenceRun is the shortest adjacent-key run that counts as a pattern.
const minSequenceRun = 4

// KeyboardSequenceRule detects runs of adjacent keys ("qwerty", "12345",
// "asdfgh") in forward or reverse order anywhere in the password.
type KeyboardSequenceRule struct{}

func (r *KeyboardSequenceRule) Name() string {
	return "keyboard-sequence"
}

func (r *KeyboardSequenceRule) Description() string {
	return "Avoids keyboard sequences"
}

func (r *KeyboardSequenceRule) Kind() Kind {
	return Pattern
}

func (r *KeyboardSequenceRule) Check(ctx *EvalContext) Finding {
	f := Finding{
		Rule:    r.Name(),
		Kind:    r.Kind(),
		Message: "Keyboard sequence",
	}

	lower := strings.ToLower(ctx.Password)

	best := ""
	for _, row := range ctx.Policy.KeyboardRows {
		if match := longestCommonRun(lower, row); len(match) > len(best) {
			best = match
		}
		if match := longestCommonRun(lower, reverseString(row)); len(match) > len(best) {
			best = match
		}
	}

	if len(best) >= minSequenceRun {
		f.Detected = true
		f.Detail = fmt.Sprintf("contains the key sequence %q", best)
	}
	return f
}

// longestCommonRun returns the longest substring common to a and b.
// Quadratic, which is fine for password-sized inputs.
func longestCommonRun(a, b string) string {
	best := ""
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			k := 0
			for i+k < len(a) && j+k < len(b) && a[i+k] == b[j+k] {
				k++
			}
			if k > len(best) {
				best = a[i : i+k]
			}
		}
	}
	return best
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
