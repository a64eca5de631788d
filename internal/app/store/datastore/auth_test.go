package datastore_test

import (
	"errors"
	"testing"

	"github.com/voltdesk/voltdesk/internal/app/seed"
	"github.com/voltdesk/voltdesk/internal/app/store/datastore"
	"github.com/voltdesk/voltdesk/internal/domain/models"
	"github.com/voltdesk/voltdesk/internal/testutil"
)

func TestLogin_Success(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	auth, err := store.Login(ctx, seed.EngineerEmail, seed.DemoSecret)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if auth.Email != seed.EngineerEmail {
		t.Errorf("Email: got %q, want %q", auth.Email, seed.EngineerEmail)
	}
	if auth.ID == "" {
		t.Error("expected a user id in the projection")
	}

	u, err := store.User(ctx, auth.ID)
	if err != nil {
		t.Fatalf("User failed: %v", err)
	}
	if u.LoginCount != 1 {
		t.Errorf("LoginCount: got %d, want 1", u.LoginCount)
	}
	if u.LastLoginAt == nil {
		t.Error("expected LastLoginAt to be stamped")
	}

	current, ok, err := store.CurrentUser(ctx)
	if err != nil || !ok {
		t.Fatalf("CurrentUser: ok=%v err=%v", ok, err)
	}
	if current.ID != auth.ID {
		t.Errorf("cached session id: got %q, want %q", current.ID, auth.ID)
	}
}

func TestLogin_CountsEachCall(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a, err := store.Login(ctx, seed.EngineerEmail, seed.DemoSecret)
	if err != nil {
		t.Fatalf("first Login failed: %v", err)
	}
	if _, err := store.Login(ctx, seed.EngineerEmail, seed.DemoSecret); err != nil {
		t.Fatalf("second Login failed: %v", err)
	}

	u, err := store.User(ctx, a.ID)
	if err != nil {
		t.Fatalf("User failed: %v", err)
	}
	if u.LoginCount != 2 {
		t.Errorf("LoginCount: got %d, want 2", u.LoginCount)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Login(ctx, seed.EngineerEmail, "nope")
	if !errors.Is(err, datastore.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// Nothing mutated: no session, no counter bump.
	if _, ok, _ := store.CurrentUser(ctx); ok {
		t.Error("expected no session after failed login")
	}
	auth := testutil.SignIn(t, ctx, store)
	u, _ := store.User(ctx, auth.ID)
	if u.LoginCount != 1 {
		t.Errorf("LoginCount after one good login: got %d, want 1", u.LoginCount)
	}
}

func TestLogin_InactiveAccount(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Login(ctx, seed.ViewerEmail, seed.DemoSecret)
	if !errors.Is(err, datastore.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for disabled account, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Login(ctx, "nobody@voltdesk.io", seed.DemoSecret)
	if !errors.Is(err, datastore.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLogin_EmailNormalized(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Login(ctx, "  SCHEN@VoltDesk.IO  ", seed.DemoSecret); err != nil {
		t.Errorf("expected normalized email to match, got %v", err)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Logged out already: still fine.
	if err := store.Logout(ctx); err != nil {
		t.Fatalf("Logout while signed out failed: %v", err)
	}

	testutil.SignIn(t, ctx, store)
	if err := store.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, ok, _ := store.CurrentUser(ctx); ok {
		t.Error("expected no session after logout")
	}
	if err := store.Logout(ctx); err != nil {
		t.Fatalf("repeated Logout failed: %v", err)
	}
}

func TestRegister_Success(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	auth, err := store.Register(ctx, datastore.NewUser{
		Email:     "new@voltdesk.io",
		Secret:    "s3cret",
		FirstName: "Nina",
		LastName:  "Okafor",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if auth.Role != models.RoleEngineer {
		t.Errorf("Role: got %q, want %q", auth.Role, models.RoleEngineer)
	}

	// Registration does not sign the new user in.
	if _, ok, _ := store.CurrentUser(ctx); ok {
		t.Error("expected no session after registration")
	}

	// The new account can sign in with its own credentials.
	if _, err := store.Login(ctx, "new@voltdesk.io", "s3cret"); err != nil {
		t.Errorf("new account cannot sign in: %v", err)
	}

	u, err := store.User(ctx, auth.ID)
	if err != nil {
		t.Fatalf("User failed: %v", err)
	}
	if u.Preferences.Units != "imperial" || !u.Preferences.AutoSave {
		t.Errorf("expected default preference bundle, got %+v", u.Preferences)
	}
	if u.ProjectsCreated != 0 || u.DesignsGenerated != 0 {
		t.Errorf("expected zeroed counters, got %+v", u)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	testutil.SignIn(t, ctx, store)
	before, err := store.Analytics(ctx)
	if err != nil {
		t.Fatalf("Analytics failed: %v", err)
	}

	_, err = store.Register(ctx, datastore.NewUser{Email: seed.EngineerEmail, Secret: "x"})
	if !errors.Is(err, datastore.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	after, err := store.Analytics(ctx)
	if err != nil {
		t.Fatalf("Analytics failed: %v", err)
	}
	if after.TotalUsers != before.TotalUsers {
		t.Errorf("user count changed on duplicate: got %d, want %d", after.TotalUsers, before.TotalUsers)
	}
}

func TestRegister_IgnoresRequestedRole(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// NewUser has no role field at all; every registration is an engineer.
	auth, err := store.Register(ctx, datastore.NewUser{Email: "x@voltdesk.io", Secret: "x"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if auth.Role != models.RoleEngineer {
		t.Errorf("Role: got %q, want %q", auth.Role, models.RoleEngineer)
	}
}

func TestUpdateUser_PatchesAndSyncsSession(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	auth := testutil.SignIn(t, ctx, store)

	first := "Sara"
	prefs := models.DefaultPreferences()
	prefs.Theme = "dark"
	u, err := store.UpdateUser(ctx, auth.ID, datastore.UserPatch{
		FirstName:   &first,
		Preferences: &prefs,
	})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if u.FirstName != "Sara" {
		t.Errorf("FirstName: got %q, want %q", u.FirstName, "Sara")
	}
	if u.Preferences.Theme != "dark" {
		t.Errorf("Theme: got %q, want %q", u.Preferences.Theme, "dark")
	}
	// Untouched fields survive.
	if u.LastName != "Chen" {
		t.Errorf("LastName: got %q, want %q", u.LastName, "Chen")
	}

	current, ok, _ := store.CurrentUser(ctx)
	if !ok || current.FirstName != "Sara" {
		t.Errorf("session projection not synced: %+v", current)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.UpdateUser(ctx, "user-missing", datastore.UserPatch{})
	if !errors.Is(err, datastore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
