package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	if p.MinLength != 8 {
		t.Errorf("MinLength = %d, want 8", p.MinLength)
	}
	if p.Thresholds.Medium != 4 || p.Thresholds.Strong != 6 {
		t.Errorf("Thresholds = %+v, want medium 4, strong 6", p.Thresholds)
	}
	if p.Penalties.KeyboardSequence != 2 || p.Penalties.Repetition != 2 || p.Penalties.Ambiguous != 1 {
		t.Errorf("Penalties = %+v, want 2/2/1", p.Penalties)
	}
	if len(p.Blocklist) == 0 {
		t.Error("Blocklist is empty")
	}
	if len(p.KeyboardRows) == 0 {
		t.Error("KeyboardRows is empty")
	}
}

func TestDefaultIsShared(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	b, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if a != b {
		t.Error("Default() returned different instances")
	}
}

func TestIsCommon(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	tests := []struct {
		password string
		common   bool
	}{
		{"password", true},
		{"Password", true},
		{"PASSWORD", true},
		{"password123", true},
		{"123456", true},
		{"Str@ngXy42", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := p.IsCommon(tt.password); got != tt.common {
			t.Errorf("IsCommon(%q) = %v, want %v", tt.password, got, tt.common)
		}
	}
}

func TestIsAmbiguous(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	for _, r := range "l1IO0o" {
		if !p.IsAmbiguous(r) {
			t.Errorf("IsAmbiguous(%q) = false, want true", r)
		}
	}
	for _, r := range "aZ9@" {
		if p.IsAmbiguous(r) {
			t.Errorf("IsAmbiguous(%q) = true, want false", r)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := `min_length: 12
blocklist:
  - hunter2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write policy file: %v", err)
	}

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if p.MinLength != 12 {
		t.Errorf("MinLength = %d, want 12 (overridden)", p.MinLength)
	}
	if !p.IsCommon("hunter2") {
		t.Error("IsCommon(hunter2) = false, want true (custom blocklist)")
	}
	if p.IsCommon("password") {
		t.Error("IsCommon(password) = true, want false (blocklist replaced)")
	}

	// Fields absent from the file keep their defaults
	if p.Thresholds.Medium != 4 || p.Thresholds.Strong != 6 {
		t.Errorf("Thresholds = %+v, want defaults 4/6", p.Thresholds)
	}
	if len(p.KeyboardRows) == 0 {
		t.Error("KeyboardRows lost on override")
	}

	// The shared default is untouched
	base, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if base.MinLength != 8 {
		t.Errorf("Default MinLength = %d after LoadFile, want 8", base.MinLength)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFile(missing) = nil error, want error")
	}
}
