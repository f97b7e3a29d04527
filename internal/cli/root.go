package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/keithbhunter/AdventOfCode-2021/internal/setup"
	"github.com/keithbhunter/AdventOfCode-2021/internal/setup/logger"
	"github.com/spf13/cobra"
)

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

type app struct {
	deps *setup.Dependencies
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var configPath string
	var logLevel string
	a := &app{}

	cmd := &cobra.Command{
		Use:          "aoc",
		Short:        "Advent of Code 2021 solutions",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			envErr := godotenv.Load()

			cfg, err := setup.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			l := logger.New(stderr, cfg.LogLevel)
			if envErr != nil {
				l.Debug().Err(envErr).Msg("No .env file found, using environment variables")
			}
			a.deps = setup.Wire(cfg, &l)
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $AOC_CONFIG_PATH or configs/aoc.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug|info|warn|error")

	cmd.AddCommand(runCmd(a), listCmd(a))
	return cmd
}
