// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for VoltDesk.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: storage_backend, snapshot_path, etc.
//   - Environment variables: VOLTDESK_STORAGE_BACKEND, VOLTDESK_SNAPSHOT_PATH, etc.
//   - Command-line flags: --storage_backend, --snapshot_path, etc.
var appConfigKeys = []config.AppKey{
	{Name: "storage_backend", Default: "file", Desc: "Snapshot backend: 'memory', 'file', 'sqlite', or 'mongo'"},
	{Name: "snapshot_path", Default: "./data/voltdesk.json", Desc: "Snapshot file path (file backend)"},
	{Name: "sqlite_path", Default: "./data/voltdesk.db", Desc: "SQLite database path (sqlite backend)"},
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (mongo backend)"},
	{Name: "mongo_database", Default: "voltdesk", Desc: "MongoDB database name"},
	{Name: "mongo_collection", Default: "snapshots", Desc: "MongoDB collection holding the snapshot"},
	{Name: "seed_demo_data", Default: true, Desc: "Seed demo collections on first boot"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so configuration is available before the
// storage backend is opened. CoreConfig comes from the shared WAFFLE
// layer; AppConfig is specific to this app.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "VOLTDESK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		StorageBackend:  appValues.String("storage_backend"),
		SnapshotPath:    appValues.String("snapshot_path"),
		SQLitePath:      appValues.String("sqlite_path"),
		MongoURI:        appValues.String("mongo_uri"),
		MongoDatabase:   appValues.String("mongo_database"),
		MongoCollection: appValues.String("mongo_collection"),
		SeedDemoData:    appValues.Bool("seed_demo_data"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation before any
// backend is opened.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.StorageBackend {
	case "memory", "file", "sqlite", "mongo":
	default:
		return fmt.Errorf("unknown storage_backend %q (want memory, file, sqlite, or mongo)", appCfg.StorageBackend)
	}

	if appCfg.StorageBackend == "mongo" {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	}
	return nil
}
