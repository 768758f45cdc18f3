package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/coli-team/coli-web/internal/app"
	"github.com/coli-team/coli-web/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the COLI web front-end.

The server listens on APP_ADDR and talks to the API at API_BASE_URL.
SESSION_SECRET is required. It stops gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	injector := app.New(cfg)
	defer injector.Shutdown()

	srv, err := app.Server(injector)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Start(ctx, cfg.Addr)
}
