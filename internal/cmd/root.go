package cmd

import (
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/passlint/passlint/internal/policy"
	"github.com/passlint/passlint/internal/ui"
)

var (
	// Global flags
	verbose    bool
	format     string
	configPath string
)

// RootCmd is the base command for passlint
var RootCmd = &cobra.Command{
	Use:   "passlint",
	Short: "A password strength checker",
	Long: `passlint checks passwords against a set of composition rules
(length, character classes, whitespace, common-password blocklist) and
pattern detectors (keyboard sequences, repetition, ambiguous characters),
then reports a checklist and an aggregate strength.

Evaluation is entirely local: no password ever leaves the process.`,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Policy file overriding the built-in defaults")
}

var (
	uiOnce   sync.Once
	globalUI *ui.UI
)

// GetUI returns the shared UI instance, creating it on first use
func GetUI() *ui.UI {
	uiOnce.Do(func() {
		globalUI = ui.New(os.Stdout, os.Stderr, format)
	})
	return globalUI
}

// loadPolicy returns the active policy, honoring the --config flag
func loadPolicy() (*policy.Policy, error) {
	if configPath != "" {
		return policy.LoadFile(configPath)
	}
	return policy.Default()
}
