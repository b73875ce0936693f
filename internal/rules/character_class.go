package rules

import "unicode"

// Character class membership is ASCII by design: the composition rules ask
// for A-Z, a-z and 0-9 specifically. Anything outside those classes counts
// as a special character, except whitespace, which has its own rule.

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSpecial(r rune) bool {
	return !isUpper(r) && !isLower(r) && !isDigit(r) && !unicode.IsSpace(r)
}

func containsClass(runes []rune, class func(rune) bool) bool {
	for _, r := range runes {
		if class(r) {
			return true
		}
	}
	return false
}

// UppercaseRule checks for at least one uppercase letter (A-Z).
type UppercaseRule struct{}

func (r *UppercaseRule) Name() string        { return "uppercase" }
func (r *UppercaseRule) Description() string { return "Contains an uppercase letter" }
func (r *UppercaseRule) Kind() Kind          { return Composition }

func (r *UppercaseRule) Check(ctx *EvalContext) Finding {
	return Finding{
		Rule:    r.Name(),
		Kind:    r.Kind(),
		Message: "Contains an uppercase letter (A-Z)",
		Passed:  containsClass(ctx.Runes, isUpper),
	}
}

// LowercaseRule checks for at least one lowercase letter (a-z).
type LowercaseRule struct{}

func (r *LowercaseRule) Name() string        { return "lowercase" }
func (r *LowercaseRule) Description() string { return "Contains a lowercase letter" }
func (r *LowercaseRule) Kind() Kind          { return Composition }

func (r *LowercaseRule) Check(ctx *EvalContext) Finding {
	return Finding{
		Rule:    r.Name(),
		Kind:    r.Kind(),
		Message: "Contains a lowercase letter (a-z)",
		Passed:  containsClass(ctx.Runes, isLower),
	}
}

// DigitRule checks for at least one digit (0-9).
type DigitRule struct{}

func (r *DigitRule) Name() string        { return "digit" }
func (r *DigitRule) Description() string { return "Contains a digit" }
func (r *DigitRule) Kind() Kind          { return Composition }

func (r *DigitRule) Check(ctx *EvalContext) Finding {
	return Finding{
		Rule:    r.Name(),
		Kind:    r.Kind(),
		Message: "Contains a digit (0-9)",
		Passed:  containsClass(ctx.Runes, isDigit),
	}
}

// SpecialRule checks for at least one character outside the alphanumeric
// classes. Whitespace does not count.
type SpecialRule struct{}

func (r *SpecialRule) Name() string        { return "special" }
func (r *SpecialRule) Description() string { return "Contains a special character" }
func (r *SpecialRule) Kind() Kind          { return Composition }

func (r *SpecialRule) Check(ctx *EvalContext) Finding {
	return Finding{
		Rule:    r.Name(),
		Kind:    r.Kind(),
		Message: "Contains a special character (!@#$ etc.)",
		Passed:  containsClass(ctx.Runes, isSpecial),
	}
}
