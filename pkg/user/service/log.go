package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/helisync/pkg/user"
)

const serviceName = "UserService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the user Service.
// Passwords and tokens are never logged.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Info(method+" completed", fields...)
}

// Signup wraps the service method with logging
func (ls *logService) Signup(ctx context.Context, req *user.SignupRequest) (resp *user.AuthResponse, err error) {
	start := time.Now()
	ls.logger.Info("Signup started",
		zap.String("service", serviceName),
		zap.String("method", "Signup"),
		zap.String("username", req.Username),
		zap.String("email", req.Email),
	)
	defer func() {
		var fields []zap.Field
		if resp != nil {
			fields = append(fields, zap.Int64("user_id", resp.User.ID))
		}
		ls.done("Signup", start, err, fields...)
	}()

	return ls.svc.Signup(ctx, req)
}

// Login wraps the service method with logging
func (ls *logService) Login(ctx context.Context, req *user.LoginRequest) (resp *user.AuthResponse, err error) {
	start := time.Now()
	ls.logger.Info("Login started",
		zap.String("service", serviceName),
		zap.String("method", "Login"),
		zap.String("username", req.Username),
	)
	defer func() {
		var fields []zap.Field
		if resp != nil {
			fields = append(fields, zap.Int64("user_id", resp.User.ID))
		}
		ls.done("Login", start, err, fields...)
	}()

	return ls.svc.Login(ctx, req)
}

// RegisterExternal wraps the service method with logging
func (ls *logService) RegisterExternal(ctx context.Context, req *user.ExternalRegisterRequest) (u *user.User, created bool, err error) {
	start := time.Now()
	ls.logger.Info("RegisterExternal started",
		zap.String("service", serviceName),
		zap.String("method", "RegisterExternal"),
		zap.String("external_id", req.UserID),
	)
	defer func() {
		fields := []zap.Field{zap.Bool("created", created)}
		if u != nil {
			fields = append(fields, zap.Int64("user_id", u.ID))
		}
		ls.done("RegisterExternal", start, err, fields...)
	}()

	return ls.svc.RegisterExternal(ctx, req)
}

// Profile wraps the service method with logging
func (ls *logService) Profile(ctx context.Context, u *user.User) (p *user.Profile, err error) {
	start := time.Now()
	defer func() {
		ls.done("Profile", start, err, zap.Int64("user_id", u.ID))
	}()

	return ls.svc.Profile(ctx, u)
}

// SeedDemoUsers wraps the service method with logging
func (ls *logService) SeedDemoUsers(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		ls.done("SeedDemoUsers", start, err)
	}()

	return ls.svc.SeedDemoUsers(ctx)
}
