package rules

import "testing"

func TestCharacterClassRules(t *testing.T) {
	tests := []struct {
		name     string
		password string
		upper    bool
		lower    bool
		digit    bool
		special  bool
	}{
		{"empty", "", false, false, false, false},
		{"all classes", "Aa1!", true, true, true, true},
		{"lower only", "abcdef", false, true, false, false},
		{"upper only", "ABCDEF", true, false, false, false},
		{"digits only", "123456", false, false, true, false},
		{"symbols only", "!@#$%^", false, false, false, true},
		{"space is not special", "abc def", false, true, false, false},
		{"underscore is special", "Harsh_2025", true, true, true, true},
		{"non-ascii letter is special", "abcñ", false, true, false, true},
	}

	upperRule := &UppercaseRule{}
	lowerRule := &LowercaseRule{}
	digitRule := &DigitRule{}
	specialRule := &SpecialRule{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t, tt.password)

			if got := upperRule.Check(ctx).Passed; got != tt.upper {
				t.Errorf("uppercase(%q) = %v, want %v", tt.password, got, tt.upper)
			}
			if got := lowerRule.Check(ctx).Passed; got != tt.lower {
				t.Errorf("lowercase(%q) = %v, want %v", tt.password, got, tt.lower)
			}
			if got := digitRule.Check(ctx).Passed; got != tt.digit {
				t.Errorf("digit(%q) = %v, want %v", tt.password, got, tt.digit)
			}
			if got := specialRule.Check(ctx).Passed; got != tt.special {
				t.Errorf("special(%q) = %v, want %v", tt.password, got, tt.special)
			}
		})
	}
}
