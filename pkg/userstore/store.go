package userstore

import (
	"context"
	"errors"

	"github.com/chainsafe/helisync/pkg/user"
)

var (
	// ErrUserNotFound is returned when a user lookup finds no matching record.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when an insert hits a unique username, email or external id.
	ErrUserExists = errors.New("user already exists")
)

// Store defines the interface for user data persistence
type Store interface {
	CreateUser(ctx context.Context, user *user.User) (*user.User, error)
	GetUser(ctx context.Context, opts ...QueryOption) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

// QueryOptions defines options for querying users
type QueryOptions struct {
	ID         *int64
	Username   *string
	Email      *string
	ExternalID *string
}

// QueryOption is a functional option for querying users
type QueryOption func(*QueryOptions)

// WithID sets the primary key filter
func WithID(id int64) QueryOption {
	return func(opts *QueryOptions) {
		opts.ID = &id
	}
}

// WithUsername sets the username filter
func WithUsername(username string) QueryOption {
	return func(opts *QueryOptions) {
		opts.Username = &username
	}
}

// WithEmail sets the email filter
func WithEmail(email string) QueryOption {
	return func(opts *QueryOptions) {
		opts.Email = &email
	}
}

// WithExternalID sets the external identity filter
func WithExternalID(externalID string) QueryOption {
	return func(opts *QueryOptions) {
		opts.ExternalID = &externalID
	}
}
