package rules

import "testing"

func TestLengthRule(t *testing.T) {
	rule := &LengthRule{}

	tests := []struct {
		name     string
		password string
		passed   bool
	}{
		{"empty", "", false},
		{"one char", "a", false},
		{"seven chars", "abcdefg", false},
		{"eight chars", "abcdefgh", true},
		{"long", "a very long passphrase indeed", true},
		{"multibyte runes counted once", "pässwörd", true},
		{"seven multibyte runes", "pässwör", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := rule.Check(testContext(t, tt.password))
			if f.Passed != tt.passed {
				t.Errorf("Check(%q).Passed = %v, want %v", tt.password, f.Passed, tt.passed)
			}
		})
	}
}

func TestWhitespaceRule(t *testing.T) {
	rule := &WhitespaceRule{}

	tests := []struct {
		name     string
		password string
		passed   bool
	}{
		{"empty fails", "", false},
		{"no whitespace", "MyPass@123", true},
		{"inner space", "Pass word1!", false},
		{"leading space", " Password1!", false},
		{"tab", "Pass\tword1!", false},
		{"newline", "Pass\nword1!", false},
		{"non-breaking space", "Pass word1!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := rule.Check(testContext(t, tt.password))
			if f.Passed != tt.passed {
				t.Errorf("Check(%q).Passed = %v, want %v", tt.password, f.Passed, tt.passed)
			}
		})
	}
}
