package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/voltdesk/voltdesk/internal/app/bootstrap"
	"github.com/voltdesk/voltdesk/internal/app/seed"
	"github.com/voltdesk/voltdesk/internal/app/store/datastore"
	"github.com/voltdesk/voltdesk/internal/app/store/snapshot"
)

// voltdesk opens the configured snapshot backend, performs the first-boot
// seeding if the snapshot does not exist yet, and logs a short inventory.
// Embedding applications construct the datastore the same way and then
// drive it from their own surfaces.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	coreCfg, appCfg, err := bootstrap.LoadConfig(logger)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if err := bootstrap.ValidateConfig(coreCfg, appCfg, logger); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	backend, err := bootstrap.OpenBackend(ctx, appCfg, logger)
	if err != nil {
		logger.Fatal("failed to open snapshot backend", zap.Error(err))
	}

	var seedFn func() snapshot.Snapshot
	if appCfg.SeedDemoData {
		seedFn = seed.Snapshot
	}

	store := datastore.New(backend, seedFn, logger)
	defer store.Close(ctx)

	if err := store.Bootstrap(ctx); err != nil {
		logger.Fatal("failed to bootstrap snapshot", zap.Error(err))
	}

	projects, err := store.Projects(ctx)
	if err != nil {
		logger.Fatal("failed to read projects", zap.Error(err))
	}
	designs, err := store.Designs(ctx, "")
	if err != nil {
		logger.Fatal("failed to read designs", zap.Error(err))
	}

	logger.Info("voltdesk data store ready",
		zap.String("backend", appCfg.StorageBackend),
		zap.Int("projects", len(projects)),
		zap.Int("designs", len(designs)))
}
