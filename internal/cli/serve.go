package cli

import (
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/suyash01/splitease/internal/config"
	"github.com/suyash01/splitease/internal/server"
	"github.com/suyash01/splitease/internal/web"
	"go.uber.org/zap"
)

func newServeCommand(templates fs.FS, deps func() (*config.Config, *zap.Logger)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the settle page and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := deps()
			web.InitTemplates(templates)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, log).Run(ctx)
		},
	}
}
