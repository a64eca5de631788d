// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for VoltDesk.
//
// Values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). The only required decision
// is where the snapshot lives: in memory, in a plain file, in a SQLite
// database, or in a MongoDB document.
type AppConfig struct {
	// Snapshot backend selection: "memory", "file", "sqlite", or "mongo".
	StorageBackend string

	// File backend
	SnapshotPath string // path of the snapshot JSON file

	// SQLite backend
	SQLitePath string // path of the SQLite database file

	// MongoDB backend
	MongoURI        string // MongoDB connection string
	MongoDatabase   string // database name within MongoDB
	MongoCollection string // collection holding the snapshot document

	// SeedDemoData controls whether first boot writes the demo
	// collections or an empty snapshot.
	SeedDemoData bool
}
