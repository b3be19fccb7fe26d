// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/oauthcore/cmd/oauthcore-demo/app/api"
	"github.com/stacklok/oauthcore/pkg/logger"
	"github.com/stacklok/oauthcore/pkg/oauth"
	"github.com/stacklok/oauthcore/pkg/oauth/memstore"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the demo OAuth server",
	Long: `Start the demo OAuth server with an in-memory store seeded with one
user (alice/secret) and one client (demo-client/demo-secret).`,
	RunE: runServe,
}

const (
	defaultGracefulTimeout = 30 * time.Second
	serverRequestTimeout   = 10 * time.Second
	serverReadTimeout      = 10 * time.Second
	serverWriteTimeout     = 15 * time.Second // Must be > serverRequestTimeout to let middleware handle timeout
	serverIdleTimeout      = 60 * time.Second
)

func init() {
	serveCmd.Flags().String("address", ":8080", "Address to listen on")
	serveCmd.Flags().Duration("token-ttl", memstore.DefaultTokenTTL, "Access token lifetime")
	serveCmd.Flags().Bool("public-password-clients", false, "Allow the password grant without a client credential")

	if err := viper.BindPFlag("address", serveCmd.Flags().Lookup("address")); err != nil {
		logger.Fatalf("Failed to bind address flag: %v", err)
	}
	if err := viper.BindPFlag("token-ttl", serveCmd.Flags().Lookup("token-ttl")); err != nil {
		logger.Fatalf("Failed to bind token-ttl flag: %v", err)
	}
	if err := viper.BindPFlag("public-password-clients", serveCmd.Flags().Lookup("public-password-clients")); err != nil {
		logger.Fatalf("Failed to bind public-password-clients flag: %v", err)
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	address := viper.GetString("address")
	tokenTTL := viper.GetDuration("token-ttl")

	store := memstore.New(memstore.WithTokenTTL(tokenTTL))
	defer store.Close()

	store.AddUser(memstore.User{ID: "u-alice", Username: "alice", Password: "secret"})
	store.AddClient("demo-client", "demo-secret")

	endpointOpts := []oauth.TokenEndpointOption[memstore.User]{
		oauth.WithLogger[memstore.User](logger.Get()),
	}
	if viper.GetBool("public-password-clients") {
		endpointOpts = append(endpointOpts, oauth.WithPublicPasswordClients[memstore.User]())
	}

	server := api.NewServer(
		store,
		oauth.NewTokenEndpoint(store, endpointOpts...),
		oauth.NewProtectedResource[memstore.User](store, oauth.WithResourceLogger[memstore.User](logger.Get())),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Timeout(serverRequestTimeout),
	)
	server.Routes(r)

	httpServer := &http.Server{
		Addr:         address,
		Handler:      r,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	go func() {
		logger.Infof("Server listening on %s", address)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logger.Info("Server shutdown complete")
	return nil
}
