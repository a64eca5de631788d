// internal/domain/models/authuser.go
package models

// AuthUser is the reduced session projection of a User: no secret, no
// counters. It is what login and registration return and what the store
// caches as the current-user slot.
type AuthUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// AuthUser projects a full User record down to its session view.
func (u User) AuthUser() AuthUser {
	return AuthUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
	}
}
