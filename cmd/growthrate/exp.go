package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/udisondev/growthrate/internal/data"
)

var expCmd = &cobra.Command{
	Use:   "exp <rate> <level>",
	Short: "Show the minimum exp for a level",
	Args:  cobra.ExactArgs(2),
	RunE:  runExp,
}

func runExp(cmd *cobra.Command, args []string) error {
	rate, err := rates.Get(data.GrowthRateID(args[0]))
	if err != nil {
		return err
	}
	level, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("parsing level %q: %w", args[1], err)
	}

	exp, err := rate.MinimumExpForLevel(level)
	if err != nil {
		return err
	}
	if level > levelCap.MaxLevel() {
		fmt.Fprintf(cmd.ErrOrStderr(), "level %d is above the cap, showing level %d\n", level, levelCap.MaxLevel())
	}
	fmt.Fprintln(cmd.OutOrStdout(), exp)
	return nil
}
