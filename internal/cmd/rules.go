package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/passlint/passlint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rules a password is checked against",
	Run:   runRules,
}

func init() {
	RootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) {
	u := GetUI()
	registry := rules.DefaultRegistry()

	fmt.Fprintln(os.Stdout, u.Styles.Header.Render("Composition rules"))
	for _, r := range registry.Rules(rules.Composition) {
		fmt.Fprintf(os.Stdout, "  %-22s %s\n",
			u.Styles.Rule.Render(r.Name()), r.Description())
	}

	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, u.Styles.Header.Render("Pattern detectors"))
	for _, r := range registry.Rules(rules.Pattern) {
		fmt.Fprintf(os.Stdout, "  %-22s %s\n",
			u.Styles.Rule.Render(r.Name()), r.Description())
	}
}
