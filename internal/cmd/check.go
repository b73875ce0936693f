package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/passlint/passlint/internal/evaluator"
	"github.com/passlint/passlint/internal/reporter"
)

var fromStdin bool

var checkCmd = &cobra.Command{
	Use:   "check [password]",
	Short: "Check a password against the policy",
	Long: `Evaluate a single password and print the rule checklist, detected
patterns and strength classification.

With no argument, the password is read from an interactive prompt (input
hidden), or from stdin with --stdin.

Examples:
  passlint check 'MyPass@123'
  passlint check
  echo -n 'MyPass@123' | passlint check --stdin
  passlint check --format json 'MyPass@123' > result.json`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	checkCmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the password from stdin")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	password, err := readPassword(args)
	if err != nil {
		return err
	}

	pol, err := loadPolicy()
	if err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}

	u := GetUI()

	if verbose {
		fmt.Fprintf(u.ErrWriter, "Policy: min length %d, %d blocklist entries\n\n",
			pol.MinLength, len(pol.Blocklist))
	}

	eval := evaluator.New(pol).Evaluate(password)

	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(os.Stdout)
	default:
		rep = reporter.NewTerminalReporter(os.Stdout, u)
	}

	if err := rep.Report(eval); err != nil {
		return err
	}

	if !eval.Accepted() {
		return fmt.Errorf("password does not meet the policy")
	}
	return nil
}

// readPassword resolves the password from the argument, stdin, or an
// interactive no-echo prompt, in that order.
func readPassword(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if fromStdin {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("read stdin: %w", err)
			}
			return "", nil
		}
		return strings.TrimSuffix(scanner.Text(), "\r"), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	return "", fmt.Errorf("no password given: pass an argument, use --stdin, or run interactively")
}
