package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/hupe1980/eulerkit"
	"github.com/hupe1980/eulerkit/prime"
	"github.com/hupe1980/eulerkit/snapshot"
)

// config holds the environment-driven settings of the CLI.
type config struct {
	LogLevel  string `env:"EULER_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"EULER_LOG_FORMAT" envDefault:"text"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "euler",
		Short:        "Run numeric puzzle solvers",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newListCmd(), newSolveCmd(), newSieveCmd(), newInspectCmd())
	return rootCmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered problems",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range eulerkit.Problems() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newSolveCmd() *cobra.Command {
	var all bool
	var quiet bool

	solveCmd := &cobra.Command{
		Use:   "solve [name]",
		Short: "Solve one problem by name, or every problem with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return fmt.Errorf("pass exactly one problem name, or --all")
			}

			logger, err := newLogger(quiet)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if all {
				answers, err := eulerkit.SolveAll(ctx, eulerkit.WithLogger(logger))
				if err != nil {
					return err
				}
				names := make([]string, 0, len(answers))
				for name := range answers {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					fmt.Fprintf(cmd.OutOrStdout(), "Solved %s: %s\n", name, answers[name])
				}
				return nil
			}

			answer, err := eulerkit.Solve(ctx, args[0], eulerkit.WithLogger(logger))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Solved %s: %s\n", args[0], answer)
			return nil
		},
	}
	solveCmd.Flags().BoolVar(&all, "all", false, "solve every registered problem")
	solveCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress solver logging")
	return solveCmd
}

func newSieveCmd() *cobra.Command {
	var out string
	var compress string

	sieveCmd := &cobra.Command{
		Use:   "sieve <limit>",
		Short: "Sieve all primes below a limit and save them as a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[0], err)
			}

			compression, err := parseCompression(compress)
			if err != nil {
				return err
			}

			set, err := prime.Sieve(limit)
			if err != nil {
				return err
			}
			if err := snapshot.Save(out, set, compression); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d primes below %d to %s\n", set.Cardinality(), limit, out)
			return nil
		},
	}
	sieveCmd.Flags().StringVarP(&out, "out", "o", "primes.snap", "snapshot output path")
	sieveCmd.Flags().StringVar(&compress, "compression", "zstd", "payload compression: none, lz4 or zstd")
	return sieveCmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path>",
		Short: "Print the limit and prime count of a saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := snapshot.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d primes below %d\n", args[0], set.Cardinality(), set.Limit())
			return nil
		},
	}
}

func parseCompression(name string) (snapshot.Compression, error) {
	switch strings.ToLower(name) {
	case "none":
		return snapshot.CompressionNone, nil
	case "lz4":
		return snapshot.CompressionLZ4, nil
	case "zstd":
		return snapshot.CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("invalid compression %q: want none, lz4 or zstd", name)
	}
}

func newLogger(quiet bool) (*eulerkit.Logger, error) {
	if quiet {
		return eulerkit.NoopLogger(), nil
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid EULER_LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "text":
		return eulerkit.NewTextLogger(level), nil
	case "json":
		return eulerkit.NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("invalid EULER_LOG_FORMAT %q: want text or json", cfg.LogFormat)
	}
}
