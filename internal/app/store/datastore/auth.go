// internal/app/store/datastore/auth.go
package datastore

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/voltdesk/voltdesk/internal/app/system/metrics"
	"github.com/voltdesk/voltdesk/internal/app/system/normalize"
	"github.com/voltdesk/voltdesk/internal/domain/models"
)

var (
	// ErrInvalidCredentials covers wrong password, unknown email, and
	// disabled accounts alike; callers cannot distinguish them.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrDuplicateEmail is returned when registering an email that
	// already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
)

// BcryptCost for hashing account secrets.
const BcryptCost = 10

// Login matches the credential pair against an active account. On match
// it bumps the login counter, stamps the last-login time, caches the
// session projection, and persists, all in one snapshot write.
func (s *Store) Login(ctx context.Context, email, secret string) (models.AuthUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return models.AuthUser{}, err
	}

	email = normalize.Email(email)
	for i := range snap.Users {
		u := &snap.Users[i]
		if u.Email != email || !u.IsActive {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.SecretHash), []byte(secret)) != nil {
			break
		}

		now := nowUTC()
		u.LastLoginAt = &now
		u.LoginCount++
		auth := u.AuthUser()
		snap.CurrentUser = &auth
		if err := s.save(ctx, snap); err != nil {
			return models.AuthUser{}, err
		}
		metrics.Logins.WithLabelValues("ok").Inc()
		s.logger.Info("user signed in", zap.String("user_id", u.ID))
		return auth, nil
	}

	metrics.Logins.WithLabelValues("denied").Inc()
	return models.AuthUser{}, ErrInvalidCredentials
}

// Logout clears the cached session. Idempotent when already signed out.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return err
	}
	if snap.CurrentUser == nil {
		return nil
	}
	snap.CurrentUser = nil
	return s.save(ctx, snap)
}

// CurrentUser returns the cached session projection. It does not
// re-validate that the underlying account still exists or is active.
func (s *Store) CurrentUser(ctx context.Context) (models.AuthUser, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return models.AuthUser{}, false, err
	}
	if snap.CurrentUser == nil {
		return models.AuthUser{}, false, nil
	}
	return *snap.CurrentUser, true, nil
}

// NewUser is the input to Register. Role is not accepted: every new
// registration starts as engineer.
type NewUser struct {
	Email     string
	Secret    string
	FirstName string
	LastName  string
	Phone     string
}

// Register appends a new user with defaults and zeroed counters. The new
// user is not signed in.
func (s *Store) Register(ctx context.Context, nu NewUser) (models.AuthUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return models.AuthUser{}, err
	}

	email := normalize.Email(nu.Email)
	for i := range snap.Users {
		if snap.Users[i].Email == email {
			metrics.Registrations.WithLabelValues("duplicate").Inc()
			return models.AuthUser{}, ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nu.Secret), BcryptCost)
	if err != nil {
		return models.AuthUser{}, err
	}

	now := nowUTC()
	u := models.User{
		ID:          newID("user"),
		Email:       email,
		SecretHash:  string(hash),
		FirstName:   normalize.Name(nu.FirstName),
		LastName:    normalize.Name(nu.LastName),
		Phone:       nu.Phone,
		Role:        models.RoleEngineer,
		IsVerified:  false,
		IsActive:    true,
		Preferences: models.DefaultPreferences(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	snap.Users = append(snap.Users, u)

	if err := s.save(ctx, snap); err != nil {
		return models.AuthUser{}, err
	}
	metrics.Registrations.WithLabelValues("ok").Inc()
	s.logger.Info("user registered", zap.String("user_id", u.ID))
	return u.AuthUser(), nil
}

// User looks a full user record up by id. The settings surface uses this
// to read the preference bundle the AuthUser projection drops.
func (s *Store) User(ctx context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range snap.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// UserPatch enumerates the user fields a settings page may change. Nil
// fields are left untouched.
type UserPatch struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	AvatarURL   *string
	Preferences *models.Preferences
}

// UpdateUser applies a patch to the identified user and refreshes its
// UpdatedAt stamp.
func (s *Store) UpdateUser(ctx context.Context, id string, patch UserPatch) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return models.User{}, err
	}

	for i := range snap.Users {
		u := &snap.Users[i]
		if u.ID != id {
			continue
		}
		if patch.FirstName != nil {
			u.FirstName = normalize.Name(*patch.FirstName)
		}
		if patch.LastName != nil {
			u.LastName = normalize.Name(*patch.LastName)
		}
		if patch.Phone != nil {
			u.Phone = *patch.Phone
		}
		if patch.AvatarURL != nil {
			u.AvatarURL = *patch.AvatarURL
		}
		if patch.Preferences != nil {
			u.Preferences = *patch.Preferences
		}
		u.UpdatedAt = nowUTC()

		// Keep the cached session projection in sync with the record
		// it was cut from.
		if snap.CurrentUser != nil && snap.CurrentUser.ID == u.ID {
			auth := u.AuthUser()
			snap.CurrentUser = &auth
		}

		if err := s.save(ctx, snap); err != nil {
			return models.User{}, err
		}
		return *u, nil
	}
	return models.User{}, ErrNotFound
}
