// Package main is the entry point for the mapgen CLI
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
)

var (
	logLevel   string
	configPath string
	redisAddr  string
)

var rootCmd = &cobra.Command{
	Use:   "mapgen",
	Short: "Procedural dungeon and terrain generation",
	Long: `mapgen runs procedural map generators on an 80x50 grid and plays back
every intermediate frame they record.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for bad input, 130 for an interrupted run and 1 otherwise
func exitCode(err error) int {
	switch {
	case errors.IsInvalidArgument(err), errors.IsOutOfRange(err):
		return 2
	case errors.IsCanceled(err):
		return 130
	default:
		return 1
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML file with flag defaults")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "redis address for the run store")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(serveCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	if configPath != "" {
		fc, err := loadFileConfig(configPath)
		if err != nil {
			return err
		}
		if err := fc.apply(cmd); err != nil {
			return err
		}
	}

	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", s)
	}
}
