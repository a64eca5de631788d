// internal/app/store/snapshot/backend.go
package snapshot

import "context"

// Backend persists the snapshot blob under the fixed Key. Implementations
// do not interpret the blob; codec concerns stay in this package and the
// data store owns all mutation ordering.
type Backend interface {
	// Load returns the stored blob. ok is false when nothing has been
	// stored yet, which triggers the data store's first-boot seeding.
	Load(ctx context.Context) (b []byte, ok bool, err error)

	// Store replaces the stored blob in one write.
	Store(ctx context.Context, b []byte) error

	// Close releases any underlying resources.
	Close(ctx context.Context) error
}
