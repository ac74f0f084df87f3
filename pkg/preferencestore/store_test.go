package preferencestore

import (
	"context"
	"testing"

	"github.com/chainsafe/helisync/pkg/pgutil"
	mghelper "github.com/chainsafe/helisync/pkg/pgutil/migrations"
	"github.com/chainsafe/helisync/pkg/preference"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &PreferenceDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return ctx, NewStore(db)
}

func boolPtr(b bool) *bool { return &b }

func TestPreferenceStore_GetMissingReturnsNil(t *testing.T) {
	ctx, s := setupStore(t)

	got, err := s.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil preference, got %+v", got)
	}
}

func TestPreferenceStore_CreateDefaultsToDisabled(t *testing.T) {
	ctx, s := setupStore(t)

	created, err := s.Create(ctx, preference.New(3, &preference.Patch{NFTBids: boolPtr(true)}))
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if !created.NFTBids || created.TokenPrices || created.BorrowableTokens {
		t.Fatalf("unexpected flags: %+v", created)
	}

	got, err := s.Get(ctx, 3)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Fatalf("unexpected preference: %+v", got)
	}
}

func TestPreferenceStore_UpdatePartialKeepsOtherFlags(t *testing.T) {
	ctx, s := setupStore(t)

	created, err := s.Create(ctx, preference.New(4, &preference.Patch{
		NFTBids:     boolPtr(true),
		TokenPrices: boolPtr(true),
	}))
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	updated, err := s.Update(ctx, created.ID, &preference.Patch{TokenPrices: boolPtr(false), BorrowableTokens: boolPtr(true)})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if updated == nil {
		t.Fatalf("expected updated preference")
	}
	if !updated.NFTBids || updated.TokenPrices || !updated.BorrowableTokens {
		t.Fatalf("unexpected flags after update: %+v", updated)
	}

	got, err := s.Get(ctx, 4)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !got.NFTBids || got.TokenPrices || !got.BorrowableTokens {
		t.Fatalf("unexpected stored flags: %+v", got)
	}
}

func TestPreferenceStore_UpdateUnknownIDReturnsNil(t *testing.T) {
	ctx, s := setupStore(t)

	got, err := s.Update(ctx, 999, &preference.Patch{NFTBids: boolPtr(true)})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown id, got %+v", got)
	}
}
