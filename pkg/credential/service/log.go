package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/helisync/pkg/credential"
)

const serviceName = "CredentialService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the credential Service.
// Database passwords are never logged.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Get wraps the service method with logging
func (ls *logService) Get(ctx context.Context, userID int64) (c *credential.Credential, err error) {
	start := time.Now()
	defer func() {
		ls.log("Get", start, err, zap.Int64("user_id", userID), zap.Bool("found", c != nil))
	}()

	return ls.svc.Get(ctx, userID)
}

// Save wraps the service method with logging
func (ls *logService) Save(ctx context.Context, userID int64, req *credential.SaveRequest) (c *credential.Credential, created bool, err error) {
	start := time.Now()
	ls.logger.Info("Save started",
		zap.String("service", serviceName),
		zap.String("method", "Save"),
		zap.Int64("user_id", userID),
		zap.String("hostname", req.Hostname),
		zap.String("database", req.DatabaseName),
	)
	defer func() {
		ls.log("Save", start, err, zap.Int64("user_id", userID), zap.Bool("created", created))
	}()

	return ls.svc.Save(ctx, userID, req)
}

// Validate wraps the service method with logging
func (ls *logService) Validate(ctx context.Context, userID int64) (resp *credential.ValidateResponse, err error) {
	start := time.Now()
	defer func() {
		ls.log("Validate", start, err, zap.Int64("user_id", userID))
	}()

	return ls.svc.Validate(ctx, userID)
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
