package rules

import "testing"

func TestCommonPasswordRule(t *testing.T) {
	rule := &CommonPasswordRule{}

	tests := []struct {
		name     string
		password string
		passed   bool
	}{
		{"empty fails", "", false},
		{"blocklisted", "password", false},
		{"blocklisted uppercase first", "Password", false},
		{"blocklisted all caps", "PASSWORD", false},
		{"blocklisted with digits", "password123", false},
		{"blocklisted digits only", "123456", false},
		{"not blocklisted", "qwerty1234", true},
		{"strong password", "Str@ngXy42", true},
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
