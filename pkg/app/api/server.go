// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/chainsafe/helisync/internal/metrics"
	analyticsservice "github.com/chainsafe/helisync/pkg/analytics/service"
	apphttp "github.com/chainsafe/helisync/pkg/app/http"
	"github.com/chainsafe/helisync/pkg/auth"
	"github.com/chainsafe/helisync/pkg/config"
	credentialservice "github.com/chainsafe/helisync/pkg/credential/service"
	"github.com/chainsafe/helisync/pkg/credentialstore"
	"github.com/chainsafe/helisync/pkg/helius"
	"github.com/chainsafe/helisync/pkg/logstore"
	"github.com/chainsafe/helisync/pkg/pgutil"
	preferenceservice "github.com/chainsafe/helisync/pkg/preference/service"
	"github.com/chainsafe/helisync/pkg/preferencestore"
	userservice "github.com/chainsafe/helisync/pkg/user/service"
	"github.com/chainsafe/helisync/pkg/userstore"
	webhookservice "github.com/chainsafe/helisync/pkg/webhook/service"
)

const defaultRequestTimeout = 60

// Server holds cfg to init the api server.
type Server struct {
	cfg    *config.APIServerConfig
	tokens *auth.TokenService
}

// services bundles everything the router mounts.
type services struct {
	users     userservice.Service
	resolver  *userservice.Resolver
	creds     credentialservice.Service
	prefs     preferenceservice.Service
	webhooks  webhookservice.Service
	analytics analyticsservice.Service
	verifier  auth.Verifier
	limiter   *apphttp.RateLimiter
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting helisync API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	if err := s.initAuth(); err != nil {
		return err
	}

	db, err := s.openDB(ctx, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	svcs := s.buildServices(db, logger)

	if cfg.Auth.SeedDemoUsers {
		if err := svcs.users.SeedDemoUsers(ctx); err != nil {
			return fmt.Errorf("seed demo users: %w", err)
		}
	}

	router := s.setupRouter(svcs, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

// initAuth builds the token service once from the secret in the environment.
func (s *Server) initAuth() error {
	if s.tokens != nil {
		return errors.New("auth already initialized")
	}

	secret := os.Getenv(s.cfg.Auth.JWTSecretEnv)
	if secret == "" {
		return fmt.Errorf(
			"jwt secret not set: env=%s (hint: openssl rand -base64 32)",
			s.cfg.Auth.JWTSecretEnv,
		)
	}

	tokens, err := auth.NewTokenService(secret, s.cfg.Auth.Issuer, s.cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("create token service: %w", err)
	}
	s.tokens = tokens
	return nil
}

func (s *Server) openDB(ctx context.Context, logger *zap.Logger) (*bun.DB, error) {
	db, err := pgutil.ConnectDB(ctx, &s.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	logger.Info("Connected to database",
		zap.String("host", s.cfg.Database.Host),
		zap.String("database", s.cfg.Database.Database),
	)
	return db, nil
}

func (s *Server) buildServices(db *bun.DB, logger *zap.Logger) *services {
	cfg := s.cfg

	userStore := userstore.NewStore(db)
	credStore := credentialstore.NewStore(db)
	prefStore := preferencestore.NewStore(db)
	logStore := logstore.NewStore(db)

	apiKey := os.Getenv(cfg.Provider.APIKeyEnv)
	if apiKey == "" {
		logger.Warn("Provider API key not set; webhook registration will fail",
			zap.String("env", cfg.Provider.APIKeyEnv),
		)
	}
	provider := helius.NewClient(
		cfg.Provider.BaseURL,
		apiKey,
		cfg.Provider.TransactionTypes,
		helius.WithTimeout(cfg.Provider.Timeout),
	)

	return &services{
		users: userservice.NewLog(
			userservice.NewService(userStore, credStore, prefStore, s.tokens, logger),
			logger,
		),
		resolver: userservice.NewResolver(userStore, cfg.Cache.UserSize, cfg.Cache.UserTTL),
		creds:    credentialservice.NewLog(credentialservice.NewService(credStore), logger),
		prefs:    preferenceservice.NewLog(preferenceservice.NewService(prefStore), logger),
		webhooks: webhookservice.NewLog(
			webhookservice.NewService(prefStore, credStore, logStore, provider),
			logger,
		),
		analytics: analyticsservice.NewLog(analyticsservice.NewService(logStore), logger),
		verifier:  s.tokens,
		limiter:   apphttp.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.RateLimit.Burst),
	}
}

func (s *Server) setupRouter(svcs *services, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Second * defaultRequestTimeout))

	if s.cfg.Monitoring.Enabled {
		r.Use(metrics.Middleware)
		r.Handle("/metrics", promhttp.Handler())
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Provider deliveries are unauthenticated
	webhookservice.RegisterIngestRoutes(r, svcs.webhooks, logger)

	r.Route("/api", func(r chi.Router) {
		userservice.RegisterAuthRoutes(r, svcs.users, svcs.limiter.Middleware, logger)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(svcs.verifier))
			r.Use(userservice.RequireUser(svcs.resolver, logger))

			userservice.RegisterRoutes(r, svcs.users, logger)
			credentialservice.RegisterRoutes(r, svcs.creds, logger)
			preferenceservice.RegisterRoutes(r, svcs.prefs, logger)
			webhookservice.RegisterRoutes(r, svcs.webhooks, logger)
			analyticsservice.RegisterRoutes(r, svcs.analytics, logger)
		})
	})

	return r
}
