package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/keithbhunter/AdventOfCode-2021/internal/runner"
	"github.com/spf13/cobra"
)

func runCmd(a *app) *cobra.Command {
	var day int
	var inputFile string
	var format string

	c := &cobra.Command{
		Use:   "run",
		Short: "Solve both parts of a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "pretty" && format != "json" {
				return fmt.Errorf("invalid format %q: supported pretty, json", format)
			}

			path := inputFile
			if path == "" {
				path = a.deps.Config.InputPath(day)
			}

			result, err := a.deps.Runner.Run(cmd.Context(), day, path)
			if err != nil {
				a.deps.Logger.Error().Err(err).Int("day", day).Str("file", path).Msg("Failed to solve")
				return err
			}

			return printResult(cmd.OutOrStdout(), result, format)
		},
	}

	c.Flags().IntVarP(&day, "day", "d", 0, "Day to solve (required)")
	c.Flags().StringVarP(&inputFile, "input", "i", "", "Input file path (defaults to the configured input of the day)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("day")
	return c
}

func printResult(w io.Writer, result runner.Result, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if _, err := fmt.Fprintf(w, "AoC2021, Day%02d, Part1 solution is: %d\n", result.Day, result.Part1); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "AoC2021, Day%02d, Part2 solution is: %d\n", result.Day, result.Part2)
	return err
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the solved days and the input file each one reads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, day := range a.deps.Runner.Days() {
				fmt.Fprintf(cmd.OutOrStdout(), "Day%02d\t%s\n", day, a.deps.Config.InputPath(day))
			}
			return nil
		},
	}
}
