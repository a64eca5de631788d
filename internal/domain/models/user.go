// internal/domain/models/user.go
package models

import "time"

// User represents an account that can sign in to the dashboard.
//
// SecretHash holds a bcrypt hash of the account password; the plaintext
// is never stored. Email is unique across the user collection and is the
// only uniqueness the data store enforces anywhere.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	SecretHash string `json:"secret_hash"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	Role       string `json:"role"` // admin | senior_engineer | engineer | viewer

	IsVerified bool `json:"is_verified"`
	IsActive   bool `json:"is_active"`

	Preferences Preferences `json:"preferences"`

	// Activity counters, bumped by the data store as a side effect of
	// login, project creation, and design generation.
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	LoginCount       int        `json:"login_count"`
	ProjectsCreated  int        `json:"projects_created"`
	DesignsGenerated int        `json:"designs_generated"`
	TotalUsageHours  float64    `json:"total_usage_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Roles assignable to users. New registrations always start as engineer.
const (
	RoleAdmin          = "admin"
	RoleSeniorEngineer = "senior_engineer"
	RoleEngineer       = "engineer"
	RoleViewer         = "viewer"
)

// Preferences is the per-user settings bundle edited on the settings page.
type Preferences struct {
	Notifications NotificationPrefs `json:"notifications"`
	Units         string            `json:"units"` // imperial | metric
	CodeStandards []string          `json:"code_standards"`
	AutoSave      bool              `json:"auto_save"`
	Theme         string            `json:"theme"` // light | dark
}

// NotificationPrefs toggles notification delivery channels.
type NotificationPrefs struct {
	Email   bool `json:"email"`
	Desktop bool `json:"desktop"`
	Mobile  bool `json:"mobile"`
}

// DefaultPreferences returns the preference bundle assigned at registration.
func DefaultPreferences() Preferences {
	return Preferences{
		Notifications: NotificationPrefs{Email: true, Desktop: true, Mobile: true},
		Units:         "imperial",
		CodeStandards: []string{"NEC"},
		AutoSave:      true,
		Theme:         "light",
	}
}
