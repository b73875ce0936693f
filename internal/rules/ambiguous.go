package rules

import "fmt"

// AmbiguousRule detects visually confusable characters (l, 1, I, O, 0, o).
// Advisory: it costs a minor penalty but never rejects a password.
type AmbiguousRule struct{}

func (r *AmbiguousRule) Name() string {
	return "ambiguous-characters"
}

func (r *AmbiguousRule) Description() string {
	return "Avoids easily confused characters"
}

func (r *AmbiguousRule) Kind() Kind {
	return Pattern
}

func (r *AmbiguousRule) Check(ctx *EvalContext) Finding {
	f := Finding{
		Rule:    r.Name(),
		Kind:    r.Kind(),
		Message: "Ambiguous characters",
	}

	seen := make(map[rune]bool)
	var found []rune
	for _, c := range ctx.Runes {
		if ctx.Policy.IsAmbiguous(c) && !seen[c] {
			seen[c] = true
			found = append(found, c)
		}
	}

	if len(found) > 0 {
		f.Detected = true
		f.Detail = fmt.Sprintf("contains %q, which is easy to misread", string(found))
	}
	return f
}
