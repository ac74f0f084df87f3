package credentialstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/helisync/pkg/credential"
)

// Store persists per-user database credentials.
type Store interface {
	Get(ctx context.Context, userID int64) (*credential.Credential, error)
	Create(ctx context.Context, c *credential.Credential) (*credential.Credential, error)
	Update(ctx context.Context, id int64, patch *credential.Patch) (*credential.Credential, error)
}

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the credential store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// Get returns the user's credential, or nil when the user has none.
func (s *pgStore) Get(ctx context.Context, userID int64) (*credential.Credential, error) {
	dao := new(CredentialDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("user_id = ?", userID).
		OrderExpr("id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}
	return toCredential(dao), nil
}

func (s *pgStore) Create(ctx context.Context, c *credential.Credential) (*credential.Credential, error) {
	dao := toCredentialDao(c)
	_, err := s.db.NewInsert().
		Model(dao).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create credentials: %w", err)
	}
	return toCredential(dao), nil
}

// Update applies the non-nil patch fields and returns the updated row, or nil when id does not exist.
func (s *pgStore) Update(ctx context.Context, id int64, patch *credential.Patch) (*credential.Credential, error) {
	q := s.db.NewUpdate().
		Model((*CredentialDao)(nil)).
		Set("updated_at = NOW()").
		Where("id = ?", id)

	if patch != nil {
		if patch.Hostname != nil {
			q = q.Set("hostname = ?", *patch.Hostname)
		}
		if patch.Port != nil {
			q = q.Set("port = ?", *patch.Port)
		}
		if patch.Username != nil {
			q = q.Set("username = ?", *patch.Username)
		}
		if patch.Password != nil {
			q = q.Set("password = ?", *patch.Password)
		}
		if patch.DatabaseName != nil {
			q = q.Set("database_name = ?", *patch.DatabaseName)
		}
		if patch.IsValidated != nil {
			q = q.Set("is_validated = ?", *patch.IsValidated)
		}
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update credentials: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, nil
	}

	dao := new(CredentialDao)
	if err := s.db.NewSelect().Model(dao).Where("id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to reload credentials: %w", err)
	}
	return toCredential(dao), nil
}
