package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
	apphttp "github.com/chainsafe/helisync/pkg/app/http"
	"github.com/chainsafe/helisync/pkg/auth"
	"github.com/chainsafe/helisync/pkg/user"
	"github.com/chainsafe/helisync/pkg/userstore"
)

// ResolvedBy tells which lookup found the user behind a principal.
type ResolvedBy int

const (
	ResolvedNotFound ResolvedBy = iota
	ResolvedByID
	ResolvedByExternalID
)

func (r ResolvedBy) String() string {
	switch r {
	case ResolvedByID:
		return "id"
	case ResolvedByExternalID:
		return "external_id"
	default:
		return "not_found"
	}
}

// Resolution is the outcome of mapping a principal to a stored user.
type Resolution struct {
	By   ResolvedBy
	User *user.User
}

// UserGetter is the lookup the resolver needs.
type UserGetter interface {
	GetUser(ctx context.Context, opts ...userstore.QueryOption) (*user.User, error)
}

// Resolver maps token principals to users, trying the numeric id first and
// the external identity second. Hits are cached for a short TTL.
type Resolver struct {
	store UserGetter
	cache *expirable.LRU[string, *user.User]
}

// NewResolver creates a Resolver caching up to size users for ttl.
func NewResolver(store UserGetter, size int, ttl time.Duration) *Resolver {
	if size <= 0 {
		size = 1024
	}
	return &Resolver{
		store: store,
		cache: expirable.NewLRU[string, *user.User](size, nil, ttl),
	}
}

// Resolve finds the user a principal refers to.
func (r *Resolver) Resolve(ctx context.Context, p *auth.Principal) (Resolution, error) {
	if p == nil {
		return Resolution{By: ResolvedNotFound}, nil
	}

	id := p.UserID
	if id == 0 && p.Subject != "" {
		if parsed, err := strconv.ParseInt(p.Subject, 10, 64); err == nil {
			id = parsed
		}
	}

	if id != 0 {
		u, err := r.lookup(ctx, "id:"+strconv.FormatInt(id, 10), userstore.WithID(id))
		if err != nil {
			return Resolution{}, err
		}
		if u != nil {
			return Resolution{By: ResolvedByID, User: u}, nil
		}
	}

	if p.Subject != "" {
		u, err := r.lookup(ctx, "ext:"+p.Subject, userstore.WithExternalID(p.Subject))
		if err != nil {
			return Resolution{}, err
		}
		if u != nil {
			return Resolution{By: ResolvedByExternalID, User: u}, nil
		}
	}

	return Resolution{By: ResolvedNotFound}, nil
}

func (r *Resolver) lookup(ctx context.Context, key string, opt userstore.QueryOption) (*user.User, error) {
	if u, ok := r.cache.Get(key); ok {
		return u, nil
	}

	u, err := r.store.GetUser(ctx, opt)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	r.cache.Add(key, u)
	return u, nil
}

// RequireUser resolves the authenticated principal to a user and stores it in
// the request context. It must run after auth.RequireAuth.
func RequireUser(resolver *Resolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := auth.PrincipalFromContext(r.Context())
			if !ok {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "Unauthorized"))
				return
			}

			res, err := resolver.Resolve(r.Context(), principal)
			if err != nil {
				logger.Error("user resolution failed", zap.String("subject", principal.Subject), zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.GeneralError(err))
				return
			}
			if res.By == ResolvedNotFound {
				apphttp.DefaultErrorHandler(w, apperrors.ResourceNotFoundError(nil, "User not found"))
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), res.User)))
		})
	}
}
