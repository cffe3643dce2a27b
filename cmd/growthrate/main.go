// growthrate inspects the built-in exp growth rates.
//
// Usage:
//
//	growthrate list                  - List growth rates and their exp ceilings
//	growthrate exp <rate> <level>    - Minimum exp for a level
//	growthrate level <rate> <exp>    - Level reached with an exp amount
//	growthrate check                 - Validate every growth rate against the level cap
//
// Global flags:
//
//	--config <path>    - Config file (default: config/growthrate.yaml, env GROWTHRATE_CONFIG)
//	--max-level <n>    - Override the configured level cap
//	--locale <tag>     - Override the configured display locale
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/udisondev/growthrate/internal/config"
	"github.com/udisondev/growthrate/internal/data"
	"github.com/udisondev/growthrate/internal/i18n"
)

const DefaultConfigPath = "config/growthrate.yaml"

var (
	flagConfigPath string
	flagMaxLevel   int
	flagLocale     string
)

// Set up by loadRegistry before any subcommand runs.
var (
	levelCap config.LevelCap
	rates    *data.GrowthRateRegistry
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "growthrate",
	Short: "Inspect exp growth rates",
	Long: `growthrate converts between levels and exp for the built-in growth rates
(Medium, Erratic, Fluctuating, Parabolic, Fast, Slow).

Examples:
  growthrate list
  growthrate exp Fast 100
  growthrate level Erratic 250000
  growthrate check --max-level 150`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadRegistry,
}

func init() {
	defaultPath := DefaultConfigPath
	if p := os.Getenv("GROWTHRATE_CONFIG"); p != "" {
		defaultPath = p
	}

	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", defaultPath, "Path to config file")
	rootCmd.PersistentFlags().IntVar(&flagMaxLevel, "max-level", 0, "Level cap (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Display locale (empty = use config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(expCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadRegistry loads config, configures logging and builds the growth rate registry.
func loadRegistry(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagMaxLevel != 0 {
		cfg.MaxLevel = flagMaxLevel
	}
	if flagLocale != "" {
		cfg.Locale = flagLocale
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	if err := levelCap.Set(cfg.MaxLevel); err != nil {
		return fmt.Errorf("setting level cap: %w", err)
	}

	tr, err := i18n.New(cfg.Locale)
	if err != nil {
		return fmt.Errorf("loading translations: %w", err)
	}

	rates = data.NewGrowthRateRegistry(&levelCap, tr)
	if err := data.LoadGrowthRates(rates); err != nil {
		return fmt.Errorf("loading growth rates: %w", err)
	}

	slog.Debug("config loaded",
		"path", flagConfigPath,
		"max_level", levelCap.MaxLevel(),
		"locale", tr.Locale())
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
