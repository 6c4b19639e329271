package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ieee0824/betafn-go/internal/config"
	"github.com/ieee0824/betafn-go/internal/logging"
)

// app carries state shared by every subcommand once the root command has
// loaded the configuration.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "betafn",
		Short:         "Evaluate and verify the Beta function family",
		Long:          `betafn evaluates log B(a, b) and the regularized incomplete Beta function I_x(a, b), and checks them against golden tables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")

	cmd.AddCommand(
		newLogBetaCmd(a),
		newRegBetaCmd(a),
		newCheckCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.NewOrNop(cfg.Logging(), os.Stderr)
	return nil
}
