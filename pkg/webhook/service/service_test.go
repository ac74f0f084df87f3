package service

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
	"github.com/chainsafe/helisync/pkg/credential"
	"github.com/chainsafe/helisync/pkg/preference"
	"github.com/chainsafe/helisync/pkg/webhook"
	"github.com/chainsafe/helisync/pkg/webhook/service/mocks"
)

type testDeps struct {
	prefs    *mocks.PreferenceReader
	creds    *mocks.CredentialReader
	logs     *mocks.LogStore
	provider *mocks.Provider
}

func newTestService(t *testing.T) (*webhookService, testDeps) {
	t.Helper()
	deps := testDeps{
		prefs:    mocks.NewPreferenceReader(t),
		creds:    mocks.NewCredentialReader(t),
		logs:     mocks.NewLogStore(t),
		provider: mocks.NewProvider(t),
	}
	svc := NewService(deps.prefs, deps.creds, deps.logs, deps.provider).(*webhookService)
	return svc, deps
}

func mustPayload(t *testing.T, raw string) *webhook.Payload {
	t.Helper()
	var p webhook.Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	return &p
}

func entryOfType(typ string) interface{} {
	return mock.MatchedBy(func(e *webhook.LogEntry) bool { return e.Type == typ })
}

func TestIngest_OnlyEnabledNonEmptyCategories(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)

	deps.prefs.EXPECT().Get(ctx, int64(1)).
		Return(&preference.Preference{UserID: 1, NFTBids: true, TokenPrices: false, BorrowableTokens: true}, nil).Once()
	deps.creds.EXPECT().Get(ctx, int64(1)).Return(&credential.Credential{UserID: 1}, nil).Once()

	var logged []*webhook.LogEntry
	deps.logs.EXPECT().Append(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, e *webhook.LogEntry) (*webhook.LogEntry, error) {
			logged = append(logged, e)
			return e, nil
		}).Once()

	payload := mustPayload(t, `{
		"accountData": [],
		"events": [
			{"type": "nft_bid", "amount": 1},
			{"type": "nft_bid", "amount": 2},
			{"type": "token_price", "price": 3}
		],
		"slot": 42,
		"blockTime": 1700000000
	}`)

	res, err := svc.Ingest(ctx, 1, payload)
	if err != nil {
		t.Fatalf("Ingest() failed: %v", err)
	}
	if !res.Success || res.EventCount != 3 || res.Message != "Processed 3 events successfully" {
		t.Fatalf("unexpected result: %+v", res)
	}

	if len(logged) != 1 {
		t.Fatalf("expected exactly one log entry, got %d", len(logged))
	}
	e := logged[0]
	if e.Type != "nft_bid" || e.Message != "Processed 2 nft_bid events" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	var data webhook.CountData
	if err := json.Unmarshal(e.Data, &data); err != nil || data.Count != 2 {
		t.Fatalf("expected count 2 in data, got %s (%v)", e.Data, err)
	}
	if !e.Timestamp.Equal(time.Unix(1700000000, 0)) {
		t.Fatalf("expected block time timestamp, got %v", e.Timestamp)
	}
}

func TestIngest_ZeroBlockTimeLeavesTimestampToStore(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)

	deps.prefs.EXPECT().Get(ctx, int64(1)).Return(&preference.Preference{TokenPrices: true}, nil).Once()
	deps.creds.EXPECT().Get(ctx, int64(1)).Return(&credential.Credential{}, nil).Once()
	deps.logs.EXPECT().
		Append(ctx, mock.MatchedBy(func(e *webhook.LogEntry) bool { return e.Timestamp.IsZero() })).
		Return(&webhook.LogEntry{ID: 1}, nil).Once()

	if _, err := svc.Ingest(ctx, 1, mustPayload(t, `{"events":[{"type":"token_price"}]}`)); err != nil {
		t.Fatalf("Ingest() failed: %v", err)
	}
}

func TestIngest_NoMatchesWritesNothing(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)

	deps.prefs.EXPECT().Get(ctx, int64(1)).
		Return(&preference.Preference{NFTBids: true, TokenPrices: true, BorrowableTokens: true}, nil).Once()
	deps.creds.EXPECT().Get(ctx, int64(1)).Return(&credential.Credential{}, nil).Once()

	res, err := svc.Ingest(ctx, 1, mustPayload(t, `{"events":[{"type":"NFT_BID"},{"type":"swap"}]}`))
	if err != nil {
		t.Fatalf("Ingest() failed: %v", err)
	}
	if res.EventCount != 2 {
		t.Fatalf("expected event count 2, got %d", res.EventCount)
	}
}

func TestIngest_MissingPreferencesWritesNothing(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)

	deps.prefs.EXPECT().Get(ctx, int64(9)).Return(nil, nil).Once()

	_, err := svc.Ingest(ctx, 9, mustPayload(t, `{"events":[{"type":"nft_bid"}]}`))
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected CategoryResourceNotFound, got %v", err)
	}
	// mocks fail the test on any unexpected Append or provider call
}

func TestIngest_MissingCredentialsWritesNothing(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)

	deps.prefs.EXPECT().Get(ctx, int64(9)).Return(&preference.Preference{NFTBids: true}, nil).Once()
	deps.creds.EXPECT().Get(ctx, int64(9)).Return(nil, nil).Once()

	_, err := svc.Ingest(ctx, 9, mustPayload(t, `{"events":[{"type":"nft_bid"}]}`))
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected CategoryResourceNotFound, got %v", err)
	}
}

func TestIngest_StoreFailureWritesErrorEntry(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	boom := errors.New("disk full")
	deps.prefs.EXPECT().Get(ctx, int64(1)).Return(&preference.Preference{NFTBids: true}, nil).Once()
	deps.creds.EXPECT().Get(ctx, int64(1)).Return(&credential.Credential{}, nil).Once()
	deps.logs.EXPECT().Append(ctx, entryOfType("nft_bid")).Return(nil, boom).Once()
	deps.logs.EXPECT().
		Append(ctx, mock.MatchedBy(func(e *webhook.LogEntry) bool {
			return e.Type == webhook.LogTypeError &&
				strings.HasPrefix(e.Message, "Error processing webhook: ") &&
				strings.Contains(e.Message, "disk full") &&
				e.Timestamp.Equal(now) && e.Data == nil
		})).
		Return(&webhook.LogEntry{ID: 2}, nil).Once()

	_, err := svc.Ingest(ctx, 1, mustPayload(t, `{"events":[{"type":"nft_bid"}],"blockTime":1}`))
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error, got %v", err)
	}
}

func TestIngest_LaterCategoryFailureKeepsEarlierEntries(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)

	boom := errors.New("deadlock detected")
	deps.prefs.EXPECT().Get(ctx, int64(1)).
		Return(&preference.Preference{UserID: 1, NFTBids: true, BorrowableTokens: true}, nil).Once()
	deps.creds.EXPECT().Get(ctx, int64(1)).Return(&credential.Credential{UserID: 1}, nil).Once()

	var written []*webhook.LogEntry
	deps.logs.EXPECT().Append(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, e *webhook.LogEntry) (*webhook.LogEntry, error) {
			if e.Type == "borrowable_token" {
				return nil, boom
			}
			written = append(written, e)
			return e, nil
		}).Times(3)

	_, err := svc.Ingest(ctx, 1, mustPayload(t, `{
		"events": [{"type": "nft_bid"}, {"type": "borrowable_token"}],
		"blockTime": 1700000000
	}`))
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error, got %v", err)
	}

	if len(written) != 2 {
		t.Fatalf("expected 2 written entries, got %d", len(written))
	}
	if written[0].Type != "nft_bid" || written[0].Message != "Processed 1 nft_bid events" {
		t.Fatalf("earlier category entry not kept: %+v", written[0])
	}
	if written[1].Type != webhook.LogTypeError || !strings.Contains(written[1].Message, "deadlock detected") {
		t.Fatalf("expected error entry, got %+v", written[1])
	}
}

func TestIngest_LookupFailureWritesErrorEntry(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)

	boom := errors.New("timeout")
	deps.prefs.EXPECT().Get(ctx, int64(1)).Return(nil, boom).Once()
	deps.logs.EXPECT().Append(ctx, entryOfType(webhook.LogTypeError)).Return(&webhook.LogEntry{ID: 1}, nil).Once()

	_, err := svc.Ingest(ctx, 1, mustPayload(t, `{"events":[]}`))
	if !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}

func TestIngest_DiagnosticFailureReturnsSecondaryError(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)

	primary := errors.New("insert failed")
	secondary := errors.New("connection closed")
	deps.prefs.EXPECT().Get(ctx, int64(1)).Return(&preference.Preference{BorrowableTokens: true}, nil).Once()
	deps.creds.EXPECT().Get(ctx, int64(1)).Return(&credential.Credential{}, nil).Once()
	deps.logs.EXPECT().Append(ctx, entryOfType("borrowable_token")).Return(nil, primary).Once()
	deps.logs.EXPECT().Append(ctx, entryOfType(webhook.LogTypeError)).Return(nil, secondary).Once()

	_, err := svc.Ingest(ctx, 1, mustPayload(t, `{"events":[{"type":"borrowable_token"}]}`))
	if !errors.Is(err, secondary) {
		t.Fatalf("expected secondary error, got %v", err)
	}
}

func TestIngest_ConcurrentDuplicatesAreBothLogged(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)

	deps.prefs.EXPECT().Get(ctx, int64(1)).Return(&preference.Preference{NFTBids: true}, nil).Times(2)
	deps.creds.EXPECT().Get(ctx, int64(1)).Return(&credential.Credential{}, nil).Times(2)

	var mu sync.Mutex
	var logged []webhook.LogEntry
	deps.logs.EXPECT().Append(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, e *webhook.LogEntry) (*webhook.LogEntry, error) {
			mu.Lock()
			defer mu.Unlock()
			logged = append(logged, *e)
			return e, nil
		}).Times(2)

	raw := `{"events":[{"type":"nft_bid"},{"type":"nft_bid"}],"blockTime":1700000000}`
	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		p := mustPayload(t, raw)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Ingest(ctx, 1, p)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("Ingest() failed: %v", err)
		}
	}
	if len(logged) != 2 {
		t.Fatalf("expected two entries, got %d", len(logged))
	}
	if !reflect.DeepEqual(logged[0], logged[1]) {
		t.Fatalf("expected identical entries, got %+v and %+v", logged[0], logged[1])
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("returns provider object", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.provider.EXPECT().CreateWebhook(ctx, "https://example.com/webhook/1").
			Return(json.RawMessage(`{"id":"wh_1"}`), nil).Once()

		got, err := svc.Register(ctx, 1, &webhook.RegisterRequest{WebhookURL: "https://example.com/webhook/1"})
		if err != nil {
			t.Fatalf("Register() failed: %v", err)
		}
		if string(got) != `{"id":"wh_1"}` {
			t.Fatalf("unexpected provider object %s", got)
		}
	})

	t.Run("missing url", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.Register(ctx, 1, &webhook.RegisterRequest{})
		if !apperrors.Is(err, apperrors.CategoryDataError) {
			t.Fatalf("expected CategoryDataError, got %v", err)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.provider.EXPECT().CreateWebhook(ctx, mock.Anything).
			Return(nil, apperrors.ExternalServiceError(errors.New("503"), "Failed to register webhook")).Once()

		_, err := svc.Register(ctx, 1, &webhook.RegisterRequest{WebhookURL: "https://x"})
		if !apperrors.Is(err, apperrors.CategoryDependencyFailure) {
			t.Fatalf("expected CategoryDependencyFailure, got %v", err)
		}
	})
}

func TestUnregister(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t)
	deps.provider.EXPECT().DeleteWebhook(ctx, "wh_1").Return(nil).Once()

	resp, err := svc.Unregister(ctx, "wh_1")
	if err != nil {
		t.Fatalf("Unregister() failed: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success")
	}
}
