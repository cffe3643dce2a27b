package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/udisondev/growthrate/internal/data"
)

var levelCmd = &cobra.Command{
	Use:   "level <rate> <exp>",
	Short: "Show the level reached with an exp amount",
	Args:  cobra.ExactArgs(2),
	RunE:  runLevel,
}

func runLevel(cmd *cobra.Command, args []string) error {
	rate, err := rates.Get(data.GrowthRateID(args[0]))
	if err != nil {
		return err
	}
	exp, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("parsing exp %q: %w", args[1], err)
	}

	level, err := rate.LevelFromExp(exp)
	if err != nil {
		return err
	}
	toNext, err := rate.ExpToNextLevel(exp)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "level: %d\n", level)
	if level < levelCap.MaxLevel() {
		fmt.Fprintf(out, "to next level: %d\n", toNext)
	}
	return nil
}
