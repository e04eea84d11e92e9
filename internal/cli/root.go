package cli

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/suyash01/splitease/internal/config"
	"github.com/suyash01/splitease/internal/logger"
	"go.uber.org/zap"
)

// NewRootCommand builds the splitease command tree. templates holds
// web/templates for the serve command.
func NewRootCommand(templates fs.FS) *cobra.Command {
	var verbose bool
	var cfg *config.Config
	log := zap.NewNop()

	rootCmd := &cobra.Command{
		Use:           "splitease",
		Short:         "Settle shared expenses with as few payments as possible",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log, err = logger.New(cfg.LogLevel, verbose)
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newServeCommand(templates, func() (*config.Config, *zap.Logger) { return cfg, log }),
		newSettleCommand(),
	)
	return rootCmd
}

func Execute(templates fs.FS) {
	if err := NewRootCommand(templates).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
