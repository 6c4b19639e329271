package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ieee0824/betafn-go/special"
)

func newLogBetaCmd(a *app) *cobra.Command {
	var exp bool
	cmd := &cobra.Command{
		Use:   "logbeta A B",
		Short: "Print log B(a, b)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args, "a", "b")
			if err != nil {
				return err
			}
			v := special.LogBeta(vals[0], vals[1])
			if exp {
				v = special.Beta(vals[0], vals[1])
			}
			a.logger.Debug("logbeta", zap.Float64("a", vals[0]), zap.Float64("b", vals[1]), zap.Float64("result", v))
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(v))
			return nil
		},
	}
	cmd.Flags().BoolVar(&exp, "exp", false, "print B(a, b) instead of its logarithm")
	return cmd
}
