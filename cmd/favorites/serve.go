package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wikimedia/favorites/favorites"
	"github.com/wikimedia/favorites/httpapi"
	"github.com/wikimedia/favorites/internal/pathutil"
	"github.com/wikimedia/favorites/token"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the favorites HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		ctx := cmd.Context()

		gdb, err := openDB(ctx, log)
		if err != nil {
			return err
		}

		store, err := favorites.NewGormStore(gdb)
		if err != nil {
			return err
		}

		secrets, err := token.NewSQLiteSecretStore(tokenSecretDSN())
		if err != nil {
			return fmt.Errorf("open token secret store: %w", err)
		}
		defer secrets.Close()

		tokens := token.NewService(secrets, viper.GetDuration("token.ttl"))

		srv := httpapi.NewServer(httpapi.Config{
			Store:   store,
			Engine:  favorites.NewEngine(store, log),
			Reactor: favorites.NewReactor(store, log),
			Tokens:  tokens,
			Log:     log,
		})

		addr := viper.GetString("http.addr")
		if addr == "" {
			addr = ":8080"
		}

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			log.Info("shutting down", "signal", sig.String())
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func tokenSecretDSN() string {
	if v := viper.GetString("token.secret_db"); v != "" {
		return pathutil.ExpandHomePath(v)
	}
	return "favorites_secrets.db"
}
