package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate growth rates against the level cap",
	Long: `Checks that every growth rate resolves each level up to the cap
(from its table or formula) and that exp thresholds never decrease.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	if err := rates.Validate(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d growth rates ok up to level %d\n", rates.Count(), levelCap.MaxLevel())
	return nil
}
