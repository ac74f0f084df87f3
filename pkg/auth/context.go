package auth

import (
	"context"

	"github.com/chainsafe/helisync/pkg/user"
)

// Context keys for authentication data
type contextKey string

const (
	// ContextKeyPrincipal is the context key for the verified token principal
	ContextKeyPrincipal contextKey = "principal"
	// ContextKeyUser is the context key for the resolved user record
	ContextKeyUser contextKey = "user"
)

// WithPrincipal adds the token principal to the context
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ContextKeyPrincipal, p)
}

// PrincipalFromContext retrieves the token principal from the context
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(ContextKeyPrincipal).(*Principal)
	return p, ok && p != nil
}

// WithUser adds the resolved user to the context
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, ContextKeyUser, u)
}

// UserFromContext retrieves the resolved user from the context
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(ContextKeyUser).(*user.User)
	return u, ok && u != nil
}
