// Package generator produces random passwords that satisfy the active
// policy's composition rules and carry no disqualifying pattern.
package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/passlint/passlint/internal/evaluator"
	"github.com/passlint/passlint/internal/policy"
)

const maxAttempts = 1000

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{};:,.<>?"
)

// Generator creates candidate passwords for a policy.
type Generator struct {
	policy    *policy.Policy
	evaluator *evaluator.Evaluator
	length    int
}

// New creates a generator. length is the target password length; values
// below the policy minimum are raised to it.
func New(pol *policy.Policy, length int) *Generator {
	if length < pol.MinLength {
		length = pol.MinLength
	}
	// Room for one character from each required class
	if length < 4 {
		length = 4
	}
	return &Generator{
		policy:    pol,
		evaluator: evaluator.New(pol),
		length:    length,
	}
}

// Generate returns a password that the evaluator accepts. Candidates are
// drawn with crypto/rand and re-checked against the full rule set;
// rejected candidates (keyboard runs, repetition) are retried.
func (g *Generator) Generate() (string, error) {
	for i := 0; i < maxAttempts; i++ {
		pwd, err := g.candidate()
		if err != nil {
			return "", err
		}
		eval := g.evaluator.Evaluate(pwd)
		if eval.Accepted() && len(eval.Patterns()) == 0 {
			return pwd, nil
		}
	}
	return "", fmt.Errorf("no acceptable password after %d attempts", maxAttempts)
}

// candidate builds one random password with at least one character from
// each required class placed at random positions. Ambiguous characters are
// excluded from the charsets so suggestions read unambiguously.
func (g *Generator) candidate() (string, error) {
	classes := []string{
		g.stripAmbiguous(lowerChars),
		g.stripAmbiguous(upperChars),
		g.stripAmbiguous(numberChars),
		g.stripAmbiguous(symbolChars),
	}
	charset := strings.Join(classes, "")

	positions := make([]int, g.length)
	for i := range positions {
		positions[i] = i
	}
	for i := len(positions) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		positions[i], positions[j] = positions[j], positions[i]
	}

	pwd := make([]byte, g.length)
	pos := 0

	// One character from each required class first
	for _, class := range classes {
		n, err := randInt(len(class))
		if err != nil {
			return "", err
		}
		pwd[positions[pos]] = class[n]
		pos++
	}

	// Fill the rest from the full charset
	for ; pos < g.length; pos++ {
		n, err := randInt(len(charset))
		if err != nil {
			return "", err
		}
		pwd[positions[pos]] = charset[n]
	}

	return string(pwd), nil
}

func (g *Generator) stripAmbiguous(chars string) string {
	var b strings.Builder
	for _, r := range chars {
		if !g.policy.IsAmbiguous(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
