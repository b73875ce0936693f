package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passlint/passlint/internal/generator"
)

var (
	genLength int
	genCount  int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate passwords that pass the policy",
	Long: `Generate random passwords that satisfy every composition rule and
carry no detectable pattern. Ambiguous characters are excluded.

Examples:
  passlint generate
  passlint generate --length 24 --count 5`,
	Args:         cobra.NoArgs,
	RunE:         runGenerate,
	SilenceUsage: true,
}

func init() {
	generateCmd.Flags().IntVarP(&genLength, "length", "l", 16, "Password length")
	generateCmd.Flags().IntVarP(&genCount, "count", "n", 1, "Number of passwords to generate")
	RootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	pol, err := loadPolicy()
	if err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}

	gen := generator.New(pol, genLength)
	for i := 0; i < genCount; i++ {
		pwd, err := gen.Generate()
		if err != nil {
			return err
		}
		fmt.Println(pwd)
	}
	return nil
}
