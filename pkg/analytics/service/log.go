package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/helisync/pkg/analytics"
)

const serviceName = "AnalyticsService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the analytics Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Summary wraps the service method with logging
func (ls *logService) Summary(ctx context.Context, userID int64) (s *analytics.Summary, err error) {
	start := time.Now()
	defer func() {
		ls.log("Summary", start, err, zap.Int64("user_id", userID))
	}()

	return ls.svc.Summary(ctx, userID)
}

// Historical wraps the service method with logging
func (ls *logService) Historical(ctx context.Context, userID int64, metric, timeframe string) (points []analytics.DataPoint, err error) {
	start := time.Now()
	defer func() {
		ls.log("Historical", start, err,
			zap.Int64("user_id", userID),
			zap.String("metric", metric),
			zap.String("timeframe", timeframe),
			zap.Int("points", len(points)),
		)
	}()

	return ls.svc.Historical(ctx, userID, metric, timeframe)
}

func (ls *logService) log(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Debug(method+" completed", fields...)
}
