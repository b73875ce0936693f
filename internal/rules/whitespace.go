package rules

import "unicode"

// WhitespaceRule checks that the password contains no whitespace anywhere.
// unicode.IsSpace is used so non-ASCII spaces fail too.
type WhitespaceRule struct{}

func (r *WhitespaceRule) Name() string {
	return "no-whitespace"
}

func (r *WhitespaceRule) Description() string {
	return "Contains no whitespace"
}

func (r *WhitespaceRule) Kind() Kind {
	return Composition
}

func (r *WhitespaceRule) Check(ctx *EvalContext) Finding {
	f := Finding{
		Rule:    r.Name(),
		Kind:    r.Kind(),
		Message: "No whitespace",
	}

	// The empty password satisfies nothing, vacuously or otherwise.
	if ctx.Empty() {
		return f
	}

	for _, c := range ctx.Runes {
		if unicode.IsSpace(c) {
			f.Detail = "whitespace character found"
			return f
		}
	}
	f.Passed = true
	return f
}
