package rules

import "fmt"

// maxRepeatRun is the longest allowed run of a single repeated character.
const maxRepeatRun = 3

// RepetitionRule detects excessive repetition: a single character repeated
// four or more times in a row, or the whole password tiled by a short
// repeating unit ("abab", "121212").
type RepetitionRule struct{}

func (r *RepetitionRule) Name() string {
	return "excessive-repetition"
}

func (r *RepetitionRule) Description() string {
	return "Avoids repeated characters"
}

func (r *RepetitionRule) Kind() Kind {
	return Pattern
}

func (r *RepetitionRule) Check(ctx *EvalContext) Finding {
	f := Finding{
		Rule:    r.Name(),
		Kind:    r.Kind(),
		Message: "Excessive repetition",
	}

	if run, c := longestRepeatRun(ctx.Runes); run > maxRepeatRun {
		f.Detected = true
		f.Detail = fmt.Sprintf("%q repeated %d times in a row", c, run)
		return f
	}

	if unit := repeatingUnit(ctx.Runes); unit != "" {
		f.Detected = true
		f.Detail = fmt.Sprintf("repeats the unit %q", unit)
	}
	return f
}

// longestRepeatRun returns the longest consecutive run of a single rune and
// the rune itself.
func longestRepeatRun(runes []rune) (int, rune) {
	if len(runes) == 0 {
		return 0, 0
	}

	best, bestRune := 1, runes[0]
	current := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			current++
			if current > best {
				best = current
				bestRune = runes[i]
			}
		} else {
			current = 1
		}
	}
	return best, bestRune
}

// repeatingUnit reports the unit when the whole password is a tiling of a
// unit of length 1-3 ("abab" -> "ab"). Passwords shorter than two units
// never match. Returns "" when no unit tiles the password.
func repeatingUnit(runes []rune) string {
	n := len(runes)
	if n < 4 {
		return ""
	}
	for size := 1; size <= 3; size++ {
		if n < size*2 || n%size != 0 {
			continue
		}
		tiled := true
		for i := size; i < n; i++ {
			if runes[i] != runes[i-size] {
				tiled = false
				break
			}
		}
		if tiled {
			return string(runes[:size])
		}
	}
	return ""
}
