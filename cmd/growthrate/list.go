package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List growth rates",
	Long:  `Shows every registered growth rate with the exp needed to reach the level cap.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	all := rates.All()
	out := cmd.OutOrStdout()

	maxIDLen := 2 // "ID" header
	for _, r := range all {
		maxIDLen = max(maxIDLen, len(r.ID()))
	}

	fmt.Fprintf(out, "Level cap: %d\n\n", levelCap.MaxLevel())
	fmt.Fprintf(out, "  %-*s  %-14s  %s\n", maxIDLen, "ID", "Name", "Max exp")
	fmt.Fprintf(out, "  %-*s  %-14s  %s\n", maxIDLen, "--", "----", "-------")

	for _, r := range all {
		maxExp, err := r.MaximumExp()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-*s  %-14s  %d\n", maxIDLen, r.ID(), r.Name(), maxExp)
	}
	return nil
}
