package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/meghashyamc/vectorcalc/calculator"
	"github.com/meghashyamc/vectorcalc/config"
	"github.com/meghashyamc/vectorcalc/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("error running vectorcalc", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var env string

	rootCmd := &cobra.Command{
		Use:   "vectorcalc",
		Short: "Fixed-precision vector calculator",
		Long: `vectorcalc runs geometric vector operations with decimal precision.

Vectors are comma separated coordinate lists, e.g. 1,2,3 or [1,2,3].
Wrap vectors that start with a minus sign in brackets: [-1,2].

Precision, parallel tolerance and log level come from config/config.<env>.yaml
or the PRECISION, PARALLEL_TOLERANCE and LOG_LEVEL environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "config environment (defaults to $ENV, then local)")

	for _, op := range calculator.Operations() {
		usage, _ := calculator.Usage(op)
		rootCmd.AddCommand(&cobra.Command{
			Use:   op + " " + usage,
			Short: fmt.Sprintf("Run %s on %s", op, usage),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, env, op, args)
			},
		})
	}

	return rootCmd
}

func runOperation(cmd *cobra.Command, env string, op string, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	calc, err := calculator.New(cfg.GetPrecision(), cfg.GetParallelTolerance(), logger.New(cfg.GetLogLevel()))
	if err != nil {
		return fmt.Errorf("failed to create calculator: %w", err)
	}

	result, err := calc.Run(op, args...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
