package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/helisync/pkg/preference"
)

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the preference Service
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger.With(zap.String("service", "PreferenceService")),
	}
}

// Get wraps the service method with logging
func (ls *logService) Get(ctx context.Context, userID int64) (p *preference.Preference, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("method", "Get"),
			zap.Int64("user_id", userID),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("Get failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Debug("Get completed", fields...)
	}()

	return ls.svc.Get(ctx, userID)
}

// Save wraps the service method with logging
func (ls *logService) Save(ctx context.Context, userID int64, patch *preference.Patch) (p *preference.Preference, created bool, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("method", "Save"),
			zap.Int64("user_id", userID),
			zap.Bool("created", created),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("Save failed", append(fields, zap.Error(err))...)
			return
		}
		if p != nil {
			fields = append(fields,
				zap.Bool("nft_bids", p.NFTBids),
				zap.Bool("token_prices", p.TokenPrices),
				zap.Bool("borrowable_tokens", p.BorrowableTokens),
			)
		}
		ls.logger.Info("Save completed", fields...)
	}()

	return ls.svc.Save(ctx, userID, patch)
}
