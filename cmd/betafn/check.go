package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	betafn "github.com/ieee0824/betafn-go"
)

func newCheckCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Verify a golden table of reference values",
		Long: `Evaluates every row of a YAML golden table concurrently and reports the
rows whose results fall outside their tolerance.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := betafn.LoadTable(args[0])
			if err != nil {
				return err
			}
			n := a.cfg.Workers
			if cmd.Flags().Changed("workers") {
				n = workers
			}
			checker := betafn.NewChecker(
				betafn.WithConfig(a.cfg.Special()),
				betafn.WithWorkers(n),
				betafn.WithLogger(a.logger.With(zap.String("table", args[0]))),
			)
			rep, err := checker.Run(cmd.Context(), table)
			if err != nil {
				return err
			}

			total := len(rep.Results)
			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d cases passed\n", total-rep.Failed, total)
			if !rep.Passed() {
				return fmt.Errorf("%d of %d cases failed", rep.Failed, total)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent evaluations (0 = GOMAXPROCS)")
	return cmd
}
