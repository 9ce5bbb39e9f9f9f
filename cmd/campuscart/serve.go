package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jananikuppan04-sys/Campus-Cart/docstore"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/auth"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/config"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/handlers"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/marketplace"
	"github.com/jananikuppan04-sys/Campus-Cart/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Init(cfg.Log.Level)

		store, err := docstore.Open(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Errorf("closing store: %v", err)
			}
		}()

		m := marketplace.New(store)
		issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
		router := handlers.NewRouter(m, issuer)

		srv := &http.Server{
			Addr:    cfg.Addr(),
			Handler: router,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Infof("listening on %s (store: %s)", cfg.Addr(), cfg.Store.Path)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		logger.Infof("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
