package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
	"github.com/chainsafe/helisync/pkg/auth"
	"github.com/chainsafe/helisync/pkg/credential"
	"github.com/chainsafe/helisync/pkg/user"
	"github.com/chainsafe/helisync/pkg/user/service/mocks"
	"github.com/chainsafe/helisync/pkg/userstore"
)

func newTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	ts, err := auth.NewTokenService("test-secret-at-least-16-chars!!", "helisync", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService() failed: %v", err)
	}
	return ts
}

func queryFor(opt userstore.QueryOption) userstore.QueryOptions {
	var q userstore.QueryOptions
	opt(&q)
	return q
}

func byUsername(name string) interface{} {
	return mock.MatchedBy(func(opt userstore.QueryOption) bool {
		q := queryFor(opt)
		return q.Username != nil && *q.Username == name
	})
}

func byEmail(email string) interface{} {
	return mock.MatchedBy(func(opt userstore.QueryOption) bool {
		q := queryFor(opt)
		return q.Email != nil && *q.Email == email
	})
}

func byExternalID(id string) interface{} {
	return mock.MatchedBy(func(opt userstore.QueryOption) bool {
		q := queryFor(opt)
		return q.ExternalID != nil && *q.ExternalID == id
	})
}

func byID(id int64) interface{} {
	return mock.MatchedBy(func(opt userstore.QueryOption) bool {
		q := queryFor(opt)
		return q.ID != nil && *q.ID == id
	})
}

func newTestService(t *testing.T, store Store) (Service, *auth.TokenService) {
	t.Helper()
	tokens := newTokens(t)
	return NewService(store, mocks.NewCredentialReader(t), mocks.NewPreferenceReader(t), tokens, zap.NewNop()), tokens
}

func TestUserService_Signup_Success(t *testing.T) {
	ctx := context.Background()
	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().GetUser(ctx, byUsername("alice")).Return(nil, userstore.ErrUserNotFound).Once()
	storeMock.EXPECT().GetUser(ctx, byEmail("alice@helisync.com")).Return(nil, userstore.ErrUserNotFound).Once()
	storeMock.EXPECT().
		CreateUser(ctx, mock.MatchedBy(func(u *user.User) bool {
			ok, err := auth.VerifyPassword(u.Password, "secret1")
			return err == nil && ok && u.DisplayName == "alice" && u.Role == user.RoleUser
		})).
		RunAndReturn(func(_ context.Context, u *user.User) (*user.User, error) {
			created := *u
			created.ID = 5
			return &created, nil
		}).Once()
	storeMock.EXPECT().UpdateLastLogin(ctx, int64(5)).Return(nil).Once()

	svc, tokens := newTestService(t, storeMock)

	resp, err := svc.Signup(ctx, &user.SignupRequest{Username: "alice", Email: "alice@helisync.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Signup() failed: %v", err)
	}
	if resp.User.ID != 5 || resp.User.Username != "alice" || resp.User.Role != user.RoleUser {
		t.Fatalf("unexpected user summary: %+v", resp.User)
	}

	p, err := tokens.Verify(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if p.UserID != 5 || p.Username != "alice" {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestUserService_Signup_MissingFields(t *testing.T) {
	svc, _ := newTestService(t, mocks.NewStore(t))

	_, err := svc.Signup(context.Background(), &user.SignupRequest{Username: "alice"})
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError, got %v", err)
	}
}

func TestUserService_Signup_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().GetUser(ctx, byUsername("alice")).Return(&user.User{ID: 1, Username: "alice"}, nil).Once()

	svc, _ := newTestService(t, storeMock)

	_, err := svc.Signup(ctx, &user.SignupRequest{Username: "alice", Email: "new@helisync.com", Password: "secret1"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError, got %v", err)
	}
}

func TestUserService_Signup_EmailTaken(t *testing.T) {
	ctx := context.Background()
	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().GetUser(ctx, byUsername("bob")).Return(nil, userstore.ErrUserNotFound).Once()
	storeMock.EXPECT().GetUser(ctx, byEmail("taken@helisync.com")).Return(&user.User{ID: 2}, nil).Once()

	svc, _ := newTestService(t, storeMock)

	_, err := svc.Signup(ctx, &user.SignupRequest{Username: "bob", Email: "taken@helisync.com", Password: "secret1"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Signup_ConcurrentDuplicateIsConflict(t *testing.T) {
	ctx := context.Background()
	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().GetUser(ctx, byUsername("erin")).Return(nil, userstore.ErrUserNotFound).Once()
	storeMock.EXPECT().GetUser(ctx, byEmail("erin@helisync.com")).Return(nil, userstore.ErrUserNotFound).Once()
	storeMock.EXPECT().CreateUser(ctx, mock.Anything).
		Return(nil, fmt.Errorf("%w: duplicate key", userstore.ErrUserExists)).Once()

	svc, _ := newTestService(t, storeMock)

	_, err := svc.Signup(ctx, &user.SignupRequest{Username: "erin", Email: "erin@helisync.com", Password: "secret1"})
	if !apperrors.Is(err, apperrors.CategoryDataConflict) {
		t.Fatalf("expected CategoryDataConflict, got %v", err)
	}
}

func TestUserService_RegisterExternal_ConcurrentDuplicateIsConflict(t *testing.T) {
	ctx := context.Background()
	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().GetUser(ctx, byExternalID("fb-9")).Return(nil, userstore.ErrUserNotFound).Once()
	storeMock.EXPECT().CreateUser(ctx, mock.Anything).
		Return(nil, fmt.Errorf("%w: duplicate key", userstore.ErrUserExists)).Once()

	svc, _ := newTestService(t, storeMock)

	_, _, err := svc.RegisterExternal(ctx, &user.ExternalRegisterRequest{UserID: "fb-9", Email: "fb9@helisync.com"})
	if !apperrors.Is(err, apperrors.CategoryDataConflict) {
		t.Fatalf("expected CategoryDataConflict, got %v", err)
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword() failed: %v", err)
	}
	admin := &user.User{ID: 1, Username: "admin", Email: "admin@helisync.com", Password: hash, Role: user.RoleAdmin}

	t.Run("success", func(t *testing.T) {
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().GetUser(ctx, byUsername("admin")).Return(admin, nil).Once()
		storeMock.EXPECT().UpdateLastLogin(ctx, int64(1)).Return(nil).Once()
		svc, _ := newTestService(t, storeMock)

		resp, err := svc.Login(ctx, &user.LoginRequest{Username: "admin", Password: "admin123"})
		if err != nil {
			t.Fatalf("Login() failed: %v", err)
		}
		if resp.User.Role != user.RoleAdmin || resp.Token == "" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().GetUser(ctx, byUsername("admin")).Return(admin, nil).Once()
		svc, _ := newTestService(t, storeMock)

		_, err := svc.Login(ctx, &user.LoginRequest{Username: "admin", Password: "nope"})
		if !errors.Is(err, ErrInvalidCredentials) || !apperrors.Is(err, apperrors.CategoryUnauthorized) {
			t.Fatalf("expected unauthorized ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().GetUser(ctx, byUsername("ghost")).Return(nil, userstore.ErrUserNotFound).Once()
		svc, _ := newTestService(t, storeMock)

		_, err := svc.Login(ctx, &user.LoginRequest{Username: "ghost", Password: "x"})
		if !apperrors.Is(err, apperrors.CategoryUnauthorized) {
			t.Fatalf("expected CategoryUnauthorized, got %v", err)
		}
	})

	t.Run("external user has no password", func(t *testing.T) {
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().GetUser(ctx, byUsername("user_abc")).Return(&user.User{ID: 3, Username: "user_abc"}, nil).Once()
		svc, _ := newTestService(t, storeMock)

		_, err := svc.Login(ctx, &user.LoginRequest{Username: "user_abc", Password: "x"})
		if !apperrors.Is(err, apperrors.CategoryUnauthorized) {
			t.Fatalf("expected CategoryUnauthorized, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := newTestService(t, mocks.NewStore(t))
		_, err := svc.Login(ctx, &user.LoginRequest{Username: "admin"})
		if !apperrors.Is(err, apperrors.CategoryDataError) {
			t.Fatalf("expected CategoryDataError, got %v", err)
		}
	})
}

func TestUserService_RegisterExternal(t *testing.T) {
	ctx := context.Background()

	t.Run("existing user is returned", func(t *testing.T) {
		existing := &user.User{ID: 9, ExternalID: "fb-1", Username: "user_existing"}
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().GetUser(ctx, byExternalID("fb-1")).Return(existing, nil).Once()
		svc, _ := newTestService(t, storeMock)

		got, created, err := svc.RegisterExternal(ctx, &user.ExternalRegisterRequest{UserID: "fb-1", Email: "x@helisync.com"})
		if err != nil {
			t.Fatalf("RegisterExternal() failed: %v", err)
		}
		if created || got.ID != 9 {
			t.Fatalf("expected existing user, got created=%v user=%+v", created, got)
		}
	})

	t.Run("new user gets generated username", func(t *testing.T) {
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().GetUser(ctx, byExternalID("fb-2")).Return(nil, userstore.ErrUserNotFound).Once()
		storeMock.EXPECT().
			CreateUser(ctx, mock.MatchedBy(func(u *user.User) bool {
				return strings.HasPrefix(u.Username, "user_") && len(u.Username) == len("user_")+8 &&
					u.ExternalID == "fb-2" && u.Password == "" && u.PhotoURL == "https://img"
			})).
			RunAndReturn(func(_ context.Context, u *user.User) (*user.User, error) {
				created := *u
				created.ID = 10
				return &created, nil
			}).Once()
		svc, _ := newTestService(t, storeMock)

		got, created, err := svc.RegisterExternal(ctx, &user.ExternalRegisterRequest{
			UserID:   "fb-2",
			Email:    "y@helisync.com",
			PhotoURL: "https://img",
		})
		if err != nil {
			t.Fatalf("RegisterExternal() failed: %v", err)
		}
		if !created || got.ID != 10 {
			t.Fatalf("expected created user 10, got created=%v user=%+v", created, got)
		}
	})

	t.Run("missing user id", func(t *testing.T) {
		svc, _ := newTestService(t, mocks.NewStore(t))
		_, _, err := svc.RegisterExternal(ctx, &user.ExternalRegisterRequest{Email: "y@helisync.com"})
		if !apperrors.Is(err, apperrors.CategoryDataError) {
			t.Fatalf("expected CategoryDataError, got %v", err)
		}
	})
}

func TestUserService_Profile(t *testing.T) {
	ctx := context.Background()
	creds := mocks.NewCredentialReader(t)
	prefs := mocks.NewPreferenceReader(t)
	creds.EXPECT().Get(ctx, int64(4)).Return(&credential.Credential{ID: 1, UserID: 4, Hostname: "db"}, nil).Once()
	prefs.EXPECT().Get(ctx, int64(4)).Return(nil, nil).Once()

	svc := NewService(mocks.NewStore(t), creds, prefs, newTokens(t), zap.NewNop())

	got, err := svc.Profile(ctx, &user.User{ID: 4, Username: "dana", Role: user.RoleUser})
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if got.Credentials == nil || got.Credentials.Hostname != "db" {
		t.Fatalf("expected credentials in profile, got %+v", got.Credentials)
	}
	if got.Preferences != nil {
		t.Fatalf("expected nil preferences, got %+v", got.Preferences)
	}
}

func TestUserService_SeedDemoUsers(t *testing.T) {
	ctx := context.Background()
	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().GetUser(ctx, byUsername("admin")).Return(&user.User{ID: 1}, nil).Once()
	storeMock.EXPECT().GetUser(ctx, byUsername("user")).Return(nil, userstore.ErrUserNotFound).Once()
	storeMock.EXPECT().
		CreateUser(ctx, mock.MatchedBy(func(u *user.User) bool {
			ok, err := auth.VerifyPassword(u.Password, "user123")
			return err == nil && ok && u.Username == "user" && u.Role == user.RoleUser
		})).
		Return(&user.User{ID: 2, Username: "user"}, nil).Once()

	svc, _ := newTestService(t, storeMock)

	if err := svc.SeedDemoUsers(ctx); err != nil {
		t.Fatalf("SeedDemoUsers() failed: %v", err)
	}
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("by id and cached", func(t *testing.T) {
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().GetUser(ctx, byID(7)).Return(&user.User{ID: 7}, nil).Once()
		r := NewResolver(storeMock, 8, time.Minute)

		for i := 0; i < 2; i++ {
			res, err := r.Resolve(ctx, &auth.Principal{UserID: 7, Subject: "7"})
			if err != nil {
				t.Fatalf("Resolve() failed: %v", err)
			}
			if res.By != ResolvedByID || res.User.ID != 7 {
				t.Fatalf("unexpected resolution: %+v", res)
			}
		}
	})

	t.Run("numeric subject falls back to external id", func(t *testing.T) {
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().GetUser(ctx, byID(12345)).Return(nil, userstore.ErrUserNotFound).Once()
		storeMock.EXPECT().GetUser(ctx, byExternalID("12345")).Return(&user.User{ID: 3, ExternalID: "12345"}, nil).Once()
		r := NewResolver(storeMock, 8, time.Minute)

		res, err := r.Resolve(ctx, &auth.Principal{Subject: "12345"})
		if err != nil {
			t.Fatalf("Resolve() failed: %v", err)
		}
		if res.By != ResolvedByExternalID || res.User.ID != 3 {
			t.Fatalf("unexpected resolution: %+v", res)
		}
	})

	t.Run("not found", func(t *testing.T) {
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().GetUser(ctx, byExternalID("fb-x")).Return(nil, userstore.ErrUserNotFound).Once()
		r := NewResolver(storeMock, 8, time.Minute)

		res, err := r.Resolve(ctx, &auth.Principal{Subject: "fb-x"})
		if err != nil {
			t.Fatalf("Resolve() failed: %v", err)
		}
		if res.By != ResolvedNotFound || res.User != nil {
			t.Fatalf("expected not found, got %+v", res)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().GetUser(ctx, byID(1)).Return(nil, errors.New("pool exhausted")).Once()
		r := NewResolver(storeMock, 8, time.Minute)

		if _, err := r.Resolve(ctx, &auth.Principal{UserID: 1}); err == nil {
			t.Fatal("expected store error to propagate")
		}
	})
}
