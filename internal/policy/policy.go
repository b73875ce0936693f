package policy

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/default.yaml
var defaultFS embed.FS

// Thresholds map the aggregate score to a strength classification.
// A score below Medium is Weak, below Strong is Medium, otherwise Strong.
type Thresholds struct {
	Medium int `yaml:"medium"`
	Strong int `yaml:"strong"`
}

// Penalties are subtracted from the score when a pattern is detected.
type Penalties struct {
	KeyboardSequence int `yaml:"keyboard_sequence"`
	Repetition       int `yaml:"repetition"`
	Ambiguous        int `yaml:"ambiguous"`
}

// Policy holds the static configuration for password evaluation.
// It is loaded once and treated as read-only afterwards.
type Policy struct {
	// MinLength is the minimum password length in runes
	MinLength int `yaml:"min_length"`

	// Thresholds define the strength classification bands
	Thresholds Thresholds `yaml:"thresholds"`

	// Penalties define the score deduction per detected pattern
	Penalties Penalties `yaml:"penalties"`

	// Blocklist contains common passwords, matched case-insensitively
	Blocklist []string `yaml:"blocklist"`

	// KeyboardRows define adjacent-key sequences, matched forward and reversed
	KeyboardRows []string `yaml:"keyboard_rows"`

	// AmbiguousChars are visually confusable characters
	AmbiguousChars string `yaml:"ambiguous_chars"`

	blocklist map[string]struct{}
	ambiguous map[rune]struct{}
}

var (
	defaultOnce   sync.Once
	defaultPolicy *Policy
	defaultErr    error
)

// Default returns the embedded default policy. The returned value is shared
// and must not be modified.
func Default() (*Policy, error) {
	defaultOnce.Do(func() {
		data, err := defaultFS.ReadFile("defaults/default.yaml")
		if err != nil {
			defaultErr = fmt.Errorf("read embedded policy: %w", err)
			return
		}
		p := &Policy{}
		if err := yaml.Unmarshal(data, p); err != nil {
			defaultErr = fmt.Errorf("parse embedded policy: %w", err)
			return
		}
		p.compile()
		defaultPolicy = p
	})
	return defaultPolicy, defaultErr
}

// LoadFile loads a policy from a YAML file. Fields not present in the file
// fall back to the embedded defaults; list fields replace them wholesale.
func LoadFile(path string) (*Policy, error) {
	base, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}

	p := base.clone()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse policy file %s: %w", path, err)
	}
	p.compile()
	return p, nil
}

// clone returns a shallow copy without the compiled lookup tables.
func (p *Policy) clone() *Policy {
	c := &Policy{
		MinLength:      p.MinLength,
		Thresholds:     p.Thresholds,
		Penalties:      p.Penalties,
		Blocklist:      append([]string(nil), p.Blocklist...),
		KeyboardRows:   append([]string(nil), p.KeyboardRows...),
		AmbiguousChars: p.AmbiguousChars,
	}
	return c
}

// compile builds the lookup tables from the declarative fields.
func (p *Policy) compile() {
	p.blocklist = make(map[string]struct{}, len(p.Blocklist))
	for _, entry := range p.Blocklist {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		p.blocklist[strings.ToLower(entry)] = struct{}{}
	}

	p.ambiguous = make(map[rune]struct{}, len(p.AmbiguousChars))
	for _, r := range p.AmbiguousChars {
		p.ambiguous[r] = struct{}{}
	}
}

// IsCommon reports whether the password appears in the blocklist.
// Matching is case-insensitive.
func (p *Policy) IsCommon(password string) bool {
	_, ok := p.blocklist[strings.ToLower(password)]
	return ok
}

// IsAmbiguous reports whether the rune is visually confusable.
func (p *Policy) IsAmbiguous(r rune) bool {
	_, ok := p.ambiguous[r]
	return ok
}
