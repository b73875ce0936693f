package rules

import "fmt"

// LengthRule checks that the password meets the minimum length.
// Length is counted in runes, not bytes.
type LengthRule struct{}

func (r *LengthRule) Name() string {
	return "length"
}

func (r *LengthRule) Description() string {
	return "Meets the minimum length"
}

func (r *LengthRule) Kind() Kind {
	return Composition
}

func (r *LengthRule) Check(ctx *EvalContext) Finding {
	min := ctx.Policy.MinLength
	got := len(ctx.Runes)

	f := Finding{
		Rule:    r.Name(),
		Kind:    r.Kind(),
		Message: fmt.Sprintf("At least %d characters", min),
		Passed:  got >= min,
	}
	if !f.Passed {
		f.Detail = fmt.Sprintf("%d of %d characters", got, min)
	}
	return f
}
