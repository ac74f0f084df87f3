package preferencestore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/helisync/pkg/preference"
)

// PreferenceDao maps to the 'indexing_preferences' table.
type PreferenceDao struct {
	bun.BaseModel    `bun:"table:indexing_preferences,alias:ip"`
	ID               int64     `bun:"id,pk,autoincrement"`
	UserID           int64     `bun:"user_id,notnull"`
	NFTBids          bool      `bun:"nft_bids,notnull,default:false"`
	TokenPrices      bool      `bun:"token_prices,notnull,default:false"`
	BorrowableTokens bool      `bun:"borrowable_tokens,notnull,default:false"`
	CreatedAt        time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt        time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toPreferenceDao(p *preference.Preference) *PreferenceDao {
	return &PreferenceDao{
		UserID:           p.UserID,
		NFTBids:          p.NFTBids,
		TokenPrices:      p.TokenPrices,
		BorrowableTokens: p.BorrowableTokens,
	}
}

func toPreference(dao *PreferenceDao) *preference.Preference {
	return &preference.Preference{
		ID:               dao.ID,
		UserID:           dao.UserID,
		NFTBids:          dao.NFTBids,
		TokenPrices:      dao.TokenPrices,
		BorrowableTokens: dao.BorrowableTokens,
		CreatedAt:        dao.CreatedAt,
		UpdatedAt:        dao.UpdatedAt,
	}
}
