package rules

import "testing"

func TestKeyboardSequenceRule(t *testing.T) {
	rule := &KeyboardSequenceRule{}

	tests := []struct {
		name     string
		password string
		detected bool
	}{
		{"empty", "", false},
		{"qwerty run", "qwerty1234", true},
		{"home row run", "asdfgh", true},
		{"digit run", "pass12345", true},
		{"reversed digit run", "pass09876", true},
		{"reversed letter run", "ytrewq!", true},
		{"case insensitive", "QWERty1!", true},
		{"three keys is not a run", "MyPass@123", false},
		{"embedded run", "xxqazwsxzz", true},
		{"no run", "Str@ngXy42", false},
		{"alphabet is not a keyboard row", "abcdefgh", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := rule.Check(testContext(t, tt.password))
			if f.Detected != tt.detected {
				t.Errorf("Check(%q).Detected = %v, want %v", tt.password, f.Detected, tt.detected)
			}
		})
	}
}

func TestLongestCommonRun(t *testing.T) {
	tests := []struct {
		a, b     string
		expected string
	}{
		{"qwerty1234", "qwertyuiop", "qwerty"},
		{"xxasdfxx", "asdfghjkl", "asdf"},
		{"abc", "xyz", ""},
		{"", "qwerty", ""},
	}

	for _, tt := range tests {
		if got := longestCommonRun(tt.a, tt.b); got != tt.expected {
			t.Errorf("longestCommonRun(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.expected)
		}
	}
}
