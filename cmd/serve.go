package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"eduhub/models"
	"eduhub/visit"
	"eduhub/web"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the course listing over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("address", "", "listen address (overrides server.address)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("address"); addr != "" {
		cfg.Server.Address = addr
	}

	if err := openCatalog(cfg); err != nil {
		return serr.Wrap(err, "failed to open catalog")
	}
	defer models.CloseDB()

	if cfg.DevSecret() {
		logger.Info("Signing view tokens with the development secret; set views.token_secret in production")
	}

	registry, err := visit.NewRegistry(visit.Options{
		TTL:         cfg.Views.TTL,
		TokenSecret: cfg.Views.TokenSecret,
		Max:         cfg.Views.Max,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	swept := make(chan struct{})
	go func() {
		registry.Run(ctx, cfg.Views.SweepInterval)
		close(swept)
	}()

	srv := web.NewServer(cfg, registry)
	errCh := make(chan error, 1)
	go func() {
		errCh <- web.Run(srv, cfg.Server.Address)
	}()

	var runErr error
	select {
	case err := <-errCh:
		if err != nil {
			runErr = serr.Wrap(err, "server stopped")
		}
	case <-ctx.Done():
		logger.Info("Shutting down", "views", registry.Len())
	}

	// The registry refuses new views from here on; wait until every view is
	// unmounted before the catalog closes and the listener goes with the process.
	stop()
	<-swept
	logger.Info("All views unmounted")
	return runErr
}
