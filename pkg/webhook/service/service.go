package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/chainsafe/helisync/internal/metrics"
	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
	"github.com/chainsafe/helisync/pkg/credential"
	"github.com/chainsafe/helisync/pkg/preference"
	"github.com/chainsafe/helisync/pkg/webhook"
)

// PreferenceReader reads a user's indexing preferences.
//
//go:generate mockery --name PreferenceReader --output mocks --outpkg mocks --filename mock_preference_reader.go --with-expecter
type PreferenceReader interface {
	Get(ctx context.Context, userID int64) (*preference.Preference, error)
}

// CredentialReader reads a user's database credentials.
//
//go:generate mockery --name CredentialReader --output mocks --outpkg mocks --filename mock_credential_reader.go --with-expecter
type CredentialReader interface {
	Get(ctx context.Context, userID int64) (*credential.Credential, error)
}

// LogStore appends and lists activity log entries.
//
//go:generate mockery --name LogStore --output mocks --outpkg mocks --filename mock_log_store.go --with-expecter
type LogStore interface {
	Append(ctx context.Context, entry *webhook.LogEntry) (*webhook.LogEntry, error)
	List(ctx context.Context, userID int64, limit int) ([]*webhook.LogEntry, error)
}

// Provider manages webhooks at the event provider.
//
//go:generate mockery --name Provider --output mocks --outpkg mocks --filename mock_provider.go --with-expecter
type Provider interface {
	CreateWebhook(ctx context.Context, webhookURL string) (json.RawMessage, error)
	DeleteWebhook(ctx context.Context, webhookID string) error
}

// Service defines the interface for webhook ingestion and management
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Ingest(ctx context.Context, userID int64, payload *webhook.Payload) (*webhook.IngestResult, error)
	Register(ctx context.Context, userID int64, req *webhook.RegisterRequest) (json.RawMessage, error)
	Unregister(ctx context.Context, webhookID string) (*webhook.UnregisterResponse, error)
	Logs(ctx context.Context, userID int64, limit int) ([]*webhook.LogEntry, error)
}

type webhookService struct {
	prefs     PreferenceReader
	creds     CredentialReader
	logs      LogStore
	provider  Provider
	validator *validator.Validate
	now       func() time.Time
}

// NewService creates a new webhook service
func NewService(prefs PreferenceReader, creds CredentialReader, logs LogStore, provider Provider) Service {
	return &webhookService{
		prefs:     prefs,
		creds:     creds,
		logs:      logs,
		provider:  provider,
		validator: validator.New(),
		now:       time.Now,
	}
}

// Ingest writes one summary entry per enabled category present in the batch.
// Categories are written independently; a failure leaves earlier ones in place.
func (s *webhookService) Ingest(ctx context.Context, userID int64, payload *webhook.Payload) (*webhook.IngestResult, error) {
	if payload == nil {
		payload = &webhook.Payload{}
	}

	res, err := s.ingest(ctx, userID, payload)
	switch {
	case err == nil:
		metrics.WebhookDeliveries.WithLabelValues("success").Inc()
		return res, nil
	case apperrors.Is(err, apperrors.CategoryResourceNotFound):
		metrics.WebhookDeliveries.WithLabelValues("not_found").Inc()
		return nil, err
	}

	metrics.WebhookDeliveries.WithLabelValues("error").Inc()
	if _, logErr := s.logs.Append(ctx, &webhook.LogEntry{
		UserID:    userID,
		Type:      webhook.LogTypeError,
		Message:   fmt.Sprintf("Error processing webhook: %s", err),
		Timestamp: s.now(),
	}); logErr != nil {
		return nil, fmt.Errorf("failed to record ingestion error (%v): %w", err, logErr)
	}
	return nil, err
}

func (s *webhookService) ingest(ctx context.Context, userID int64, payload *webhook.Payload) (*webhook.IngestResult, error) {
	prefs, err := s.prefs.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if prefs == nil {
		return nil, apperrors.ResourceNotFoundError(nil, "User preferences not found")
	}

	creds, err := s.creds.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	if creds == nil {
		return nil, apperrors.ResourceNotFoundError(nil, "Database credentials not found")
	}

	var ts time.Time
	if payload.BlockTime > 0 {
		ts = time.Unix(payload.BlockTime, 0).UTC()
	}

	for _, category := range webhook.Categories {
		if !enabled(prefs, category) {
			continue
		}
		count := payload.CountByType(category)
		if count == 0 {
			continue
		}

		data, err := json.Marshal(&webhook.CountData{Count: count})
		if err != nil {
			return nil, err
		}
		if _, err := s.logs.Append(ctx, &webhook.LogEntry{
			UserID:    userID,
			Type:      string(category),
			Message:   fmt.Sprintf("Processed %d %s events", count, category),
			Data:      data,
			Timestamp: ts,
		}); err != nil {
			return nil, fmt.Errorf("failed to log %s events: %w", category, err)
		}
		metrics.WebhookEvents.WithLabelValues(string(category)).Add(float64(count))
	}

	return &webhook.IngestResult{
		Success:    true,
		EventCount: len(payload.Events),
		Message:    fmt.Sprintf("Processed %d events successfully", len(payload.Events)),
	}, nil
}

func enabled(p *preference.Preference, c webhook.Category) bool {
	switch c {
	case webhook.CategoryNFTBid:
		return p.NFTBids
	case webhook.CategoryTokenPrice:
		return p.TokenPrices
	case webhook.CategoryBorrowableToken:
		return p.BorrowableTokens
	default:
		return false
	}
}

// Register creates a provider webhook. The provider's response is returned as is.
func (s *webhookService) Register(ctx context.Context, _ int64, req *webhook.RegisterRequest) (json.RawMessage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.BadRequestError(err, "Webhook URL is required")
	}
	return s.provider.CreateWebhook(ctx, req.WebhookURL)
}

func (s *webhookService) Unregister(ctx context.Context, webhookID string) (*webhook.UnregisterResponse, error) {
	if webhookID == "" {
		return nil, apperrors.BadRequestError(errors.New("empty webhook id"), "Webhook ID is required")
	}
	if err := s.provider.DeleteWebhook(ctx, webhookID); err != nil {
		return nil, err
	}
	return &webhook.UnregisterResponse{Success: true}, nil
}

func (s *webhookService) Logs(ctx context.Context, userID int64, limit int) ([]*webhook.LogEntry, error) {
	return s.logs.List(ctx, userID, limit)
}
