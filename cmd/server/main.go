// Package main starts the AccountKeeper HTTP server: configuration, logging,
// the key/value backend, the account service and the JSON API.
package main

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/AccountKeeper/internal/config"
	"github.com/atinyakov/AccountKeeper/internal/logger"
	"github.com/atinyakov/AccountKeeper/internal/models"
	"github.com/atinyakov/AccountKeeper/internal/repository"
	"github.com/atinyakov/AccountKeeper/internal/server/handler/http"
	"github.com/atinyakov/AccountKeeper/internal/service"
	"github.com/atinyakov/AccountKeeper/internal/storage"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	options, err := config.Parse("server", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storageConfig := options.StorageConfig()
	storageConfig.Logger = zapLogger
	store, closeStore, err := storage.Open(ctx, storageConfig)
	if err != nil {
		zapLogger.Fatal("cannot open storage", zap.String("backend", options.Storage), zap.Error(err))
	}
	defer func() {
		if err := closeStore(); err != nil {
			zapLogger.Warn("failed to close storage", zap.Error(err))
		}
	}()

	accountsStorage := repository.NewAccountsStorage(store, options.StorageKey, zapLogger)
	accountsService := service.NewAccountsService(accountsStorage, models.NewUUID, zapLogger)
	accountsService.Load(ctx)

	router := http.NewRouter(&http.AccountsHandler{AccountsService: accountsService, Logger: zapLogger}, zapLogger)

	server := &nethttp.Server{
		Addr:              options.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLogger.Warn("graceful shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("starting HTTP server",
		zap.String("addr", options.Port),
		zap.String("storage", options.Storage),
	)
	if err := server.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
		zapLogger.Error("failed to start HTTP server", zap.Error(err))
		return
	}
	zapLogger.Info("server stopped")
}
