// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/voltdesk/voltdesk/internal/app/seed"
	"github.com/voltdesk/voltdesk/internal/app/store/datastore"
	"github.com/voltdesk/voltdesk/internal/app/store/snapshot"
	"github.com/voltdesk/voltdesk/internal/domain/models"
)

// TestContext returns a context with a generous deadline for store calls.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// NewStore builds a datastore over a fresh in-memory backend, seeded with
// the demo collections.
func NewStore(t *testing.T) *datastore.Store {
	t.Helper()
	return datastore.New(snapshot.NewMemory(), seed.Snapshot, nil)
}

// NewEmptyStore builds a datastore whose first boot writes an empty
// snapshot instead of the demo collections.
func NewEmptyStore(t *testing.T) *datastore.Store {
	t.Helper()
	return datastore.New(snapshot.NewMemory(), nil, nil)
}

// SignIn signs the seeded engineer account in and returns its projection.
func SignIn(t *testing.T, ctx context.Context, store *datastore.Store) models.AuthUser {
	t.Helper()
	u, err := store.Login(ctx, seed.EngineerEmail, seed.DemoSecret)
	if err != nil {
		t.Fatalf("test sign-in failed: %v", err)
	}
	return u
}

// SignInAdmin signs the seeded admin account in.
func SignInAdmin(t *testing.T, ctx context.Context, store *datastore.Store) models.AuthUser {
	t.Helper()
	u, err := store.Login(ctx, seed.AdminEmail, seed.DemoSecret)
	if err != nil {
		t.Fatalf("test sign-in failed: %v", err)
	}
	return u
}
