// Package credential holds the connection parameters a user supplies for their own Postgres database.
package credential

import "time"

// Credential is the per-user external database connection record.
// At most one exists per user; the stores do not enforce it.
type Credential struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	Hostname     string    `json:"hostname"`
	Port         string    `json:"port"`
	Username     string    `json:"username"`
	Password     string    `json:"password"`
	DatabaseName string    `json:"databaseName"`
	IsValidated  bool      `json:"isValidated"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Patch carries the fields of a partial update. Nil fields are left unchanged.
type Patch struct {
	Hostname     *string
	Port         *string
	Username     *string
	Password     *string
	DatabaseName *string
	IsValidated  *bool
}

// SaveRequest is the body of a create-or-update call.
type SaveRequest struct {
	Hostname     string `json:"hostname" validate:"required"`
	Port         string `json:"port" validate:"required"`
	Username     string `json:"username" validate:"required"`
	Password     string `json:"password" validate:"required"`
	DatabaseName string `json:"databaseName" validate:"required"`
	IsValidated  *bool  `json:"isValidated,omitempty"`
}

// New builds a credential for userID from a save request.
func New(userID int64, req *SaveRequest) *Credential {
	c := &Credential{
		UserID:       userID,
		Hostname:     req.Hostname,
		Port:         req.Port,
		Username:     req.Username,
		Password:     req.Password,
		DatabaseName: req.DatabaseName,
	}
	if req.IsValidated != nil {
		c.IsValidated = *req.IsValidated
	}
	return c
}

// Patch converts a save request into a full-field patch.
func (req *SaveRequest) Patch() *Patch {
	return &Patch{
		Hostname:     &req.Hostname,
		Port:         &req.Port,
		Username:     &req.Username,
		Password:     &req.Password,
		DatabaseName: &req.DatabaseName,
		IsValidated:  req.IsValidated,
	}
}

// ValidateResponse is returned after a connection check.
type ValidateResponse struct {
	Success     bool        `json:"success"`
	Credentials *Credential `json:"credentials"`
}
