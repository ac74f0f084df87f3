package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/helisync/pkg/webhook"
)

const serviceName = "WebhookService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the webhook Service
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Ingest wraps the service method with logging
func (ls *logService) Ingest(ctx context.Context, userID int64, payload *webhook.Payload) (res *webhook.IngestResult, err error) {
	start := time.Now()
	events := 0
	if payload != nil {
		events = len(payload.Events)
	}
	ls.logger.Info("Ingest started",
		zap.String("service", serviceName),
		zap.String("method", "Ingest"),
		zap.Int64("user_id", userID),
		zap.Int("events", events),
	)
	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Ingest"),
			zap.Int64("user_id", userID),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("Ingest failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info("Ingest completed", append(fields, zap.Int("event_count", res.EventCount))...)
	}()

	return ls.svc.Ingest(ctx, userID, payload)
}

// Register wraps the service method with logging
func (ls *logService) Register(ctx context.Context, userID int64, req *webhook.RegisterRequest) (raw json.RawMessage, err error) {
	start := time.Now()
	ls.logger.Info("Register started",
		zap.String("service", serviceName),
		zap.String("method", "Register"),
		zap.Int64("user_id", userID),
		zap.String("webhook_url", req.WebhookURL),
	)
	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Register"),
			zap.Int64("user_id", userID),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("Register failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info("Register completed", fields...)
	}()

	return ls.svc.Register(ctx, userID, req)
}

// Unregister wraps the service method with logging
func (ls *logService) Unregister(ctx context.Context, webhookID string) (resp *webhook.UnregisterResponse, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Unregister"),
			zap.String("webhook_id", webhookID),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("Unregister failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info("Unregister completed", fields...)
	}()

	return ls.svc.Unregister(ctx, webhookID)
}

// Logs wraps the service method with logging
func (ls *logService) Logs(ctx context.Context, userID int64, limit int) (entries []*webhook.LogEntry, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Error("Logs failed",
				zap.String("service", serviceName),
				zap.String("method", "Logs"),
				zap.Int64("user_id", userID),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.Logs(ctx, userID, limit)
}
