package rules

// CommonPasswordRule checks that the password does not appear in the
// policy's blocklist. Matching is case-insensitive, so "Password" matches
// a blocklist entry "password".
type CommonPasswordRule struct{}

func (r *CommonPasswordRule) Name() string {
	return "not-common"
}

func (r *CommonPasswordRule) Description() string {
	return "Not a common password"
}

func (r *CommonPasswordRule) Kind() Kind {
	return Composition
}

func (r *CommonPasswordRule) Check(ctx *EvalContext) Finding {
	f := Finding{
		Rule:    r.Name(),
		Kind:    r.Kind(),
		Message: "Not a common password",
	}

	if ctx.Empty() {
		return f
	}

	if ctx.Policy.IsCommon(ctx.Password) {
		f.Detail = "appears in the common password list"
		return f
	}
	f.Passed = true
	return f
}
