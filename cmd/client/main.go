// Package main runs the AccountKeeper interactive shell against a local
// key/value backend.
package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"go.uber.org/zap"

	"github.com/atinyakov/AccountKeeper/internal/client/shell"
	"github.com/atinyakov/AccountKeeper/internal/config"
	"github.com/atinyakov/AccountKeeper/internal/logger"
	"github.com/atinyakov/AccountKeeper/internal/models"
	"github.com/atinyakov/AccountKeeper/internal/repository"
	"github.com/atinyakov/AccountKeeper/internal/service"
	"github.com/atinyakov/AccountKeeper/internal/storage"
)

var (
	version   string
	buildDate string
)

func main() {
	args := os.Args[1:]
	if slices.Contains(args, "-version") || slices.Contains(args, "--version") {
		fmt.Printf("AccountKeeper Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	options, err := config.Parse("client", args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// The shell owns stdout, so diagnostics only go out at warn and above
	// unless a level was asked for explicitly.
	level := options.LogLevel
	if level == "info" {
		level = "warn"
	}
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(level); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	storageConfig := options.StorageConfig()
	storageConfig.Logger = log.Log
	store, closeStore, err := storage.Open(ctx, storageConfig)
	if err != nil {
		log.Log.Fatal("cannot open storage", zap.String("backend", options.Storage), zap.Error(err))
	}
	defer func() { _ = closeStore() }()

	svc := service.NewAccountsService(
		repository.NewAccountsStorage(store, options.StorageKey, log.Log),
		models.NewUUID,
		log.Log,
	)
	svc.Load(ctx)

	shell.New(svc, os.Stdin, os.Stdout).Run(ctx)
}
