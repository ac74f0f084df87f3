// Package user defines dashboard users and the requests that create and authenticate them.
package user

import (
	"time"

	"github.com/chainsafe/helisync/pkg/credential"
	"github.com/chainsafe/helisync/pkg/preference"
)

// Roles a user can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents the domain model for a registered dashboard user.
type User struct {
	ID          int64      `json:"id"`
	ExternalID  string     `json:"externalId,omitempty"`
	Email       string     `json:"email"`
	Password    string     `json:"-"`
	Username    string     `json:"username"`
	DisplayName string     `json:"displayName,omitempty"`
	PhotoURL    string     `json:"photoURL,omitempty"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
}

// Summary is the public part of a user returned alongside a token.
type Summary struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	Role        string `json:"role"`
}

// Summary returns the token-response view of u.
func (u *User) Summary() Summary {
	return Summary{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
	}
}

// SignupRequest creates a password user.
type SignupRequest struct {
	Username    string `json:"username" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"displayName,omitempty"`
}

// LoginRequest authenticates a password user.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	User  Summary `json:"user"`
	Token string  `json:"token"`
}

// ExternalRegisterRequest registers a user authenticated by an external identity provider.
type ExternalRegisterRequest struct {
	UserID      string `json:"userId" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

// Profile is a user together with their database credentials and indexing preferences.
// Either may be nil when the user has not configured it yet.
type Profile struct {
	ID          int64                  `json:"id"`
	Username    string                 `json:"username"`
	Email       string                 `json:"email"`
	DisplayName string                 `json:"displayName,omitempty"`
	PhotoURL    string                 `json:"photoURL,omitempty"`
	Role        string                 `json:"role"`
	Credentials *credential.Credential `json:"credentials"`
	Preferences *preference.Preference `json:"preferences"`
}
