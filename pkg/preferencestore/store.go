package preferencestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/helisync/pkg/preference"
)

// Store persists per-user indexing preferences.
type Store interface {
	Get(ctx context.Context, userID int64) (*preference.Preference, error)
	Create(ctx context.Context, p *preference.Preference) (*preference.Preference, error)
	Update(ctx context.Context, id int64, patch *preference.Patch) (*preference.Preference, error)
}

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the preference store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// Get returns the user's preferences, or nil when the user has none.
func (s *pgStore) Get(ctx context.Context, userID int64) (*preference.Preference, error) {
	dao := new(PreferenceDao)
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
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return toPreference(dao), nil
}

func (s *pgStore) Create(ctx context.Context, p *preference.Preference) (*preference.Preference, error) {
	dao := toPreferenceDao(p)
	_, err := s.db.NewInsert().
		Model(dao).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create preferences: %w", err)
	}
	return toPreference(dao), nil
}

// Update applies the non-nil patch flags and returns the updated row, or nil when id does not exist.
func (s *pgStore) Update(ctx context.Context, id int64, patch *preference.Patch) (*preference.Preference, error) {
	q := s.db.NewUpdate().
		Model((*PreferenceDao)(nil)).
		Set("updated_at = NOW()").
		Where("id = ?", id)

	if patch != nil {
		if patch.NFTBids != nil {
			q = q.Set("nft_bids = ?", *patch.NFTBids)
		}
		if patch.TokenPrices != nil {
			q = q.Set("token_prices = ?", *patch.TokenPrices)
		}
		if patch.BorrowableTokens != nil {
			q = q.Set("borrowable_tokens = ?", *patch.BorrowableTokens)
		}
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, nil
	}

	dao := new(PreferenceDao)
	if err := s.db.NewSelect().Model(dao).Where("id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to reload preferences: %w", err)
	}
	return toPreference(dao), nil
}
