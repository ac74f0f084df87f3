package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	analyticsmocks "github.com/chainsafe/helisync/pkg/analytics/service/mocks"
	apphttp "github.com/chainsafe/helisync/pkg/app/http"
	"github.com/chainsafe/helisync/pkg/auth"
	"github.com/chainsafe/helisync/pkg/config"
	"github.com/chainsafe/helisync/pkg/credential"
	credentialmocks "github.com/chainsafe/helisync/pkg/credential/service/mocks"
	preferencemocks "github.com/chainsafe/helisync/pkg/preference/service/mocks"
	"github.com/chainsafe/helisync/pkg/user"
	userservice "github.com/chainsafe/helisync/pkg/user/service"
	usermocks "github.com/chainsafe/helisync/pkg/user/service/mocks"
	webhookmocks "github.com/chainsafe/helisync/pkg/webhook/service/mocks"
)

const testSecretEnv = "HELISYNC_TEST_JWT_SECRET"

func testConfig(t *testing.T) *config.APIServerConfig {
	t.Helper()
	cfg, err := config.ParseAPIServer([]byte(`
database:
  user: helisync
auth:
  jwt_secret_env: ` + testSecretEnv + `
`))
	if err != nil {
		t.Fatalf("ParseAPIServer() failed: %v", err)
	}
	return cfg
}

type testRouter struct {
	handler http.Handler
	tokens  *auth.TokenService
	store   *usermocks.Store
	creds   *credentialmocks.Service
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()
	t.Setenv(testSecretEnv, "router-test-secret-0123456789")

	s := NewServer(testConfig(t))
	if err := s.initAuth(); err != nil {
		t.Fatalf("initAuth() failed: %v", err)
	}

	store := usermocks.NewStore(t)
	creds := credentialmocks.NewService(t)
	svcs := &services{
		users:     usermocks.NewService(t),
		resolver:  userservice.NewResolver(store, 16, time.Minute),
		creds:     creds,
		prefs:     preferencemocks.NewService(t),
		webhooks:  webhookmocks.NewService(t),
		analytics: analyticsmocks.NewService(t),
		verifier:  s.tokens,
		limiter:   apphttp.NewRateLimiter(5, time.Minute, 5),
	}

	return &testRouter{
		handler: s.setupRouter(svcs, zap.NewNop()),
		tokens:  s.tokens,
		store:   store,
		creds:   creds,
	}
}

func (tr *testRouter) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, req)
	return rec
}

func TestInitAuth_OnlyOnce(t *testing.T) {
	t.Setenv(testSecretEnv, "router-test-secret-0123456789")
	s := NewServer(testConfig(t))

	if err := s.initAuth(); err != nil {
		t.Fatalf("initAuth() failed: %v", err)
	}
	if err := s.initAuth(); err == nil {
		t.Fatal("expected second initAuth() to fail")
	}
}

func TestInitAuth_MissingSecret(t *testing.T) {
	t.Setenv(testSecretEnv, "")
	if err := NewServer(testConfig(t)).initAuth(); err == nil {
		t.Fatal("expected missing secret to fail")
	}
}

func TestRouter_PublicEndpoints(t *testing.T) {
	tr := newTestRouter(t)

	if rec := tr.do(http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}
	if rec := tr.do(http.MethodGet, "/metrics", ""); rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
	if rec := tr.do(http.MethodPost, "/webhook/not-a-number", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("webhook: expected 400, got %d", rec.Code)
	}
	if rec := tr.do(http.MethodPost, "/api/auth/logout", ""); rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}
}

func TestRouter_AuthenticatedRoutesRequireToken(t *testing.T) {
	tr := newTestRouter(t)

	for _, path := range []string{
		"/api/user/profile",
		"/api/database/credentials",
		"/api/indexing/preferences",
		"/api/webhook/logs",
		"/api/analytics/summary",
	} {
		if rec := tr.do(http.MethodGet, path, ""); rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, rec.Code)
		}
	}
}

func TestRouter_ResolvesUserForAuthenticatedRoutes(t *testing.T) {
	tr := newTestRouter(t)
	u := &user.User{ID: 21, Username: "erin", Role: user.RoleUser}

	tr.store.EXPECT().GetUser(mock.Anything, mock.Anything).Return(u, nil).Once()
	tr.creds.EXPECT().Get(mock.Anything, int64(21)).Return(&credential.Credential{ID: 1, UserID: 21}, nil).Once()

	token, err := tr.tokens.Issue(u)
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}

	rec := tr.do(http.MethodGet, "/api/database/credentials", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
