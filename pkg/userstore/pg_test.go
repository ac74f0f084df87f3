package userstore

import (
	"context"
	"errors"
	"testing"

	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/helisync/pkg/pgutil"
	mghelper "github.com/chainsafe/helisync/pkg/pgutil/migrations"
	"github.com/chainsafe/helisync/pkg/user"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &UserDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return ctx, NewStore(db)
}

func newTestUser(username string) *user.User {
	return &user.User{
		Username:    username,
		Email:       username + "@helisync.com",
		Password:    "hash.salt",
		DisplayName: "Test " + username,
	}
}

func TestUserPGStore_CreateUserAndConstraints(t *testing.T) {
	ctx, s := setupStore(t)

	created, err := s.CreateUser(ctx, newTestUser("alice"))
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if created.Role != user.RoleUser {
		t.Fatalf("expected default role %q, got %q", user.RoleUser, created.Role)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	dup := newTestUser("alice")
	dup.Email = "other@helisync.com"
	_, err = s.CreateUser(ctx, dup)
	if err == nil {
		t.Fatalf("expected duplicate username to fail")
	}
	var pgErr pgdriver.Error
	if !errors.As(err, &pgErr) {
		t.Fatalf("expected postgres error type, got: %v", err)
	}
	if !pgErr.IntegrityViolation() {
		t.Fatalf("expected unique violation SQLSTATE=23505, got %s (%v)", pgErr.Field('C'), err)
	}
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	dupEmail := newTestUser("alice2")
	dupEmail.Email = created.Email
	if _, err = s.CreateUser(ctx, dupEmail); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected duplicate email to fail with ErrUserExists, got %v", err)
	}
}

func TestUserPGStore_GetUserLookups(t *testing.T) {
	ctx, s := setupStore(t)

	u := newTestUser("carol")
	u.ExternalID = "ext-carol"
	created, err := s.CreateUser(ctx, u)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	byID, err := s.GetUser(ctx, WithID(created.ID))
	if err != nil {
		t.Fatalf("GetUser(WithID) failed: %v", err)
	}
	if byID.Username != "carol" || byID.DisplayName != "Test carol" {
		t.Fatalf("unexpected user: %+v", byID)
	}

	byName, err := s.GetUser(ctx, WithUsername("carol"))
	if err != nil {
		t.Fatalf("GetUser(WithUsername) failed: %v", err)
	}
	if byName.ID != created.ID {
		t.Fatalf("id mismatch: got %d want %d", byName.ID, created.ID)
	}

	byEmail, err := s.GetUser(ctx, WithEmail("carol@helisync.com"))
	if err != nil {
		t.Fatalf("GetUser(WithEmail) failed: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Fatalf("id mismatch: got %d want %d", byEmail.ID, created.ID)
	}

	byExternal, err := s.GetUser(ctx, WithExternalID("ext-carol"))
	if err != nil {
		t.Fatalf("GetUser(WithExternalID) failed: %v", err)
	}
	if byExternal.Password != "hash.salt" {
		t.Fatalf("password hash not round-tripped")
	}

	_, err = s.GetUser(ctx, WithUsername("nobody"))
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserPGStore_UpdateLastLogin(t *testing.T) {
	ctx, s := setupStore(t)

	created, err := s.CreateUser(ctx, newTestUser("dave"))
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	if created.LastLogin != nil {
		t.Fatalf("expected no last login on a fresh user")
	}

	if err := s.UpdateLastLogin(ctx, created.ID); err != nil {
		t.Fatalf("UpdateLastLogin() failed: %v", err)
	}

	got, err := s.GetUser(ctx, WithID(created.ID))
	if err != nil {
		t.Fatalf("GetUser() failed: %v", err)
	}
	if got.LastLogin == nil {
		t.Fatalf("expected last login to be set")
	}
}
