package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/passlint/passlint/internal/evaluator"
	"github.com/passlint/passlint/internal/ui"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Check passwords interactively",
	Long: `Open a live checker: the checklist, strength meter and verdict
update on every keystroke.

Keys:
  ctrl+r  show or hide the password
  ctrl+u  clear the input
  esc     quit`,
	Args:         cobra.NoArgs,
	RunE:         runPrompt,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	u := GetUI()
	if !u.IsInteractive() {
		return fmt.Errorf("prompt requires an interactive terminal")
	}

	pol, err := loadPolicy()
	if err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}

	m := ui.NewModel(evaluator.New(pol), u.Styles)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("checker failed: %w", err)
	}
	return nil
}
