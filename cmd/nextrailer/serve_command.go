package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"nextrailer/internal/api"
	"nextrailer/internal/awards/resolve"
	"nextrailer/internal/logging"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the awards API over HTTP",
		Long: `Fetch the nomination feed once, then serve per-year reconciled award data
as JSON until interrupted. The frontend drives year selection through
GET /api/v1/awards/{year}.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			feed, coordinator, err := ctx.newEngine(cfg, logger)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			session, err := resolve.LoadSession(runCtx, feed, coordinator, logger)
			if err != nil {
				return err
			}

			server := &http.Server{
				Addr:              cfg.API.Bind,
				Handler:           api.NewServer(session, cfg, logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("api listening", logging.String("bind", cfg.API.Bind))
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serve api: %w", err)
				}
				return nil
			case <-runCtx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown api: %w", err)
			}
			logger.Info("api stopped")
			return nil
		},
	}
}
