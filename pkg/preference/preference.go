// Package preference holds the per-user flags selecting which event categories are indexed.
package preference

import "time"

// Preference is the per-user set of enabled event categories.
type Preference struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"userId"`
	NFTBids          bool      `json:"nftBids"`
	TokenPrices      bool      `json:"tokenPrices"`
	BorrowableTokens bool      `json:"borrowableTokens"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Patch carries the flags of a partial update. Nil fields are left unchanged.
type Patch struct {
	NFTBids          *bool `json:"nftBids,omitempty"`
	TokenPrices      *bool `json:"tokenPrices,omitempty"`
	BorrowableTokens *bool `json:"borrowableTokens,omitempty"`
}

// New builds a preference for userID. Missing flags default to false.
func New(userID int64, p *Patch) *Preference {
	pref := &Preference{UserID: userID}
	if p == nil {
		return pref
	}
	if p.NFTBids != nil {
		pref.NFTBids = *p.NFTBids
	}
	if p.TokenPrices != nil {
		pref.TokenPrices = *p.TokenPrices
	}
	if p.BorrowableTokens != nil {
		pref.BorrowableTokens = *p.BorrowableTokens
	}
	return pref
}
