package service

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
	"github.com/chainsafe/helisync/pkg/auth"
	"github.com/chainsafe/helisync/pkg/preference"
	"github.com/chainsafe/helisync/pkg/preference/service/mocks"
	"github.com/chainsafe/helisync/pkg/user"
)

func boolPtr(b bool) *bool { return &b }

func TestPreferenceService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore(t)
	store.EXPECT().Get(ctx, int64(1)).Return(nil, nil).Once()

	_, err := NewService(store).Get(ctx, 1)
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected CategoryResourceNotFound, got %v", err)
	}
}

func TestPreferenceService_Save_CreatesWithDefaults(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore(t)
	store.EXPECT().Get(ctx, int64(3)).Return(nil, nil).Once()
	store.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *preference.Preference) bool {
			return p.UserID == 3 && p.NFTBids && !p.TokenPrices && !p.BorrowableTokens
		})).
		Return(&preference.Preference{ID: 8, UserID: 3, NFTBids: true}, nil).Once()

	got, created, err := NewService(store).Save(ctx, 3, &preference.Patch{NFTBids: boolPtr(true)})
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if !created || got.ID != 8 {
		t.Fatalf("expected created preference 8, got created=%v %+v", created, got)
	}
}

func TestPreferenceService_Save_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	patch := &preference.Patch{TokenPrices: boolPtr(true)}

	store := mocks.NewStore(t)
	store.EXPECT().Get(ctx, int64(3)).Return(&preference.Preference{ID: 8, UserID: 3, NFTBids: true}, nil).Once()
	store.EXPECT().Update(ctx, int64(8), patch).
		Return(&preference.Preference{ID: 8, UserID: 3, NFTBids: true, TokenPrices: true}, nil).Once()

	got, created, err := NewService(store).Save(ctx, 3, patch)
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if created {
		t.Fatal("expected update, not create")
	}
	if !got.NFTBids || !got.TokenPrices {
		t.Fatalf("expected both flags set, got %+v", got)
	}
}

func newTestRouter(svc Service, u *user.User) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if u != nil {
				req = req.WithContext(auth.WithUser(req.Context(), u))
			}
			next.ServeHTTP(w, req)
		})
	})
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestHTTP_SavePreferences(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Save(mock.Anything, int64(2), &preference.Patch{NFTBids: boolPtr(true), BorrowableTokens: boolPtr(false)}).
		Return(&preference.Preference{ID: 1, UserID: 2, NFTBids: true}, true, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/indexing/preferences",
		bytes.NewBufferString(`{"nftBids":true,"borrowableTokens":false}`))
	rec := httptest.NewRecorder()
	newTestRouter(svc, &user.User{ID: 2}).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHTTP_SavePreferences_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/indexing/preferences", bytes.NewBufferString(`{"nftBids":"yes"}`))
	rec := httptest.NewRecorder()
	newTestRouter(mocks.NewService(t), &user.User{ID: 2}).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHTTP_GetPreferences(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Get(mock.Anything, int64(2)).Return(&preference.Preference{ID: 1, UserID: 2}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/indexing/preferences", nil)
	rec := httptest.NewRecorder()
	newTestRouter(svc, &user.User{ID: 2}).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
