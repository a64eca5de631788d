// internal/app/bootstrap/backends.go
package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/voltdesk/voltdesk/internal/app/store/snapshot"
)

// OpenBackend builds the snapshot backend selected by config.
func OpenBackend(ctx context.Context, appCfg AppConfig, logger *zap.Logger) (snapshot.Backend, error) {
	switch appCfg.StorageBackend {
	case "memory":
		return snapshot.NewMemory(), nil

	case "file":
		b, err := snapshot.NewFile(appCfg.SnapshotPath)
		if err != nil {
			return nil, err
		}
		logger.Info("snapshot backend ready",
			zap.String("backend", "file"),
			zap.String("path", appCfg.SnapshotPath))
		return b, nil

	case "sqlite":
		b, err := snapshot.NewSQLite(appCfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("snapshot backend ready",
			zap.String("backend", "sqlite"),
			zap.String("path", appCfg.SQLitePath))
		return b, nil

	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			return nil, fmt.Errorf("ping mongo: %w", err)
		}
		logger.Info("snapshot backend ready",
			zap.String("backend", "mongo"),
			zap.String("database", appCfg.MongoDatabase))
		return snapshot.NewMongo(client.Database(appCfg.MongoDatabase), appCfg.MongoCollection), nil
	}
	return nil, fmt.Errorf("unknown storage_backend %q", appCfg.StorageBackend)
}
