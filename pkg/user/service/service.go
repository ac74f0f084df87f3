package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
	"github.com/chainsafe/helisync/pkg/auth"
	"github.com/chainsafe/helisync/pkg/credential"
	"github.com/chainsafe/helisync/pkg/preference"
	"github.com/chainsafe/helisync/pkg/user"
	"github.com/chainsafe/helisync/pkg/userstore"
)

const (
	generatedUsernamePrefix = "user_"
	generatedUsernameLength = 8
	usernameAlphabet        = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// demoUsers are created on startup when seeding is enabled.
var demoUsers = []struct {
	username, email, password, displayName, role string
}{
	{"admin", "admin@helisync.com", "admin123", "Admin User", user.RoleAdmin},
	{"user", "user@helisync.com", "user123", "Demo User", user.RoleUser},
}

// Store is the narrow data-access interface for the user service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateUser(ctx context.Context, user *user.User) (*user.User, error)
	GetUser(ctx context.Context, opts ...userstore.QueryOption) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

// CredentialReader reads a user's database credentials.
//
//go:generate mockery --name CredentialReader --output mocks --outpkg mocks --filename mock_credential_reader.go --with-expecter
type CredentialReader interface {
	Get(ctx context.Context, userID int64) (*credential.Credential, error)
}

// PreferenceReader reads a user's indexing preferences.
//
//go:generate mockery --name PreferenceReader --output mocks --outpkg mocks --filename mock_preference_reader.go --with-expecter
type PreferenceReader interface {
	Get(ctx context.Context, userID int64) (*preference.Preference, error)
}

// TokenIssuer signs bearer tokens for users.
type TokenIssuer interface {
	Issue(u *user.User) (string, error)
}

// Service defines the interface for account and profile operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Signup(ctx context.Context, req *user.SignupRequest) (*user.AuthResponse, error)
	Login(ctx context.Context, req *user.LoginRequest) (*user.AuthResponse, error)
	RegisterExternal(ctx context.Context, req *user.ExternalRegisterRequest) (*user.User, bool, error)
	Profile(ctx context.Context, u *user.User) (*user.Profile, error)
	SeedDemoUsers(ctx context.Context) error
}

type userService struct {
	store     Store
	creds     CredentialReader
	prefs     PreferenceReader
	tokens    TokenIssuer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewService creates a new user service
func NewService(
	store Store,
	creds CredentialReader,
	prefs PreferenceReader,
	tokens TokenIssuer,
	logger *zap.Logger,
) Service {
	return &userService{
		store:     store,
		creds:     creds,
		prefs:     prefs,
		tokens:    tokens,
		validator: validator.New(),
		logger:    logger,
	}
}

// Signup creates a password user and returns a token for it.
func (s *userService) Signup(ctx context.Context, req *user.SignupRequest) (*user.AuthResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.BadRequestError(nil, "Username, email and password are required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.BadRequestError(err, "Invalid signup data")
	}

	if _, err := s.store.GetUser(ctx, userstore.WithUsername(req.Username)); err == nil {
		return nil, apperrors.BadRequestError(ErrUsernameTaken, "Username is already taken")
	} else if !errors.Is(err, userstore.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.store.GetUser(ctx, userstore.WithEmail(req.Email)); err == nil {
		return nil, apperrors.BadRequestError(ErrEmailTaken, "Email is already registered")
	} else if !errors.Is(err, userstore.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	created, err := s.store.CreateUser(ctx, &user.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    hash,
		DisplayName: displayName,
		Role:        user.RoleUser,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrUserExists) {
			return nil, apperrors.ConflictError(err, "Username or email is already registered")
		}
		return nil, err
	}

	return s.authenticate(ctx, created)
}

// Login checks a username/password pair and returns a token.
func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.BadRequestError(nil, "Username and password are required")
	}

	u, err := s.store.GetUser(ctx, userstore.WithUsername(req.Username))
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.UnAuthorizedError(ErrInvalidCredentials, "Invalid username or password")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	// externally registered users have no password
	if u.Password == "" {
		return nil, apperrors.UnAuthorizedError(ErrInvalidCredentials, "Invalid username or password")
	}

	ok, err := auth.VerifyPassword(u.Password, req.Password)
	if err != nil && !errors.Is(err, auth.ErrMalformedHash) {
		return nil, err
	}
	if !ok {
		return nil, apperrors.UnAuthorizedError(ErrInvalidCredentials, "Invalid username or password")
	}

	return s.authenticate(ctx, u)
}

func (s *userService) authenticate(ctx context.Context, u *user.User) (*user.AuthResponse, error) {
	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateLastLogin(ctx, u.ID); err != nil {
		return nil, err
	}
	return &user.AuthResponse{User: u.Summary(), Token: token}, nil
}

// RegisterExternal returns the user bound to the external id, creating one if needed.
// The bool reports whether a new user was created.
func (s *userService) RegisterExternal(ctx context.Context, req *user.ExternalRegisterRequest) (*user.User, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, apperrors.BadRequestError(err, "userId and email are required")
	}

	existing, err := s.store.GetUser(ctx, userstore.WithExternalID(req.UserID))
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, userstore.ErrUserNotFound) {
		return nil, false, fmt.Errorf("failed to look up external user: %w", err)
	}

	username, err := generateUsername()
	if err != nil {
		return nil, false, err
	}

	created, err := s.store.CreateUser(ctx, &user.User{
		ExternalID:  req.UserID,
		Username:    username,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Role:        user.RoleUser,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrUserExists) {
			return nil, false, apperrors.ConflictError(err, "User is already registered")
		}
		return nil, false, err
	}
	return created, true, nil
}

// Profile joins the user with their credentials and preferences.
func (s *userService) Profile(ctx context.Context, u *user.User) (*user.Profile, error) {
	creds, err := s.creds.Get(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	prefs, err := s.prefs.Get(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return &user.Profile{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Role:        u.Role,
		Credentials: creds,
		Preferences: prefs,
	}, nil
}

// SeedDemoUsers creates the demo admin and regular accounts when they are missing.
func (s *userService) SeedDemoUsers(ctx context.Context) error {
	for _, demo := range demoUsers {
		_, err := s.store.GetUser(ctx, userstore.WithUsername(demo.username))
		if err == nil {
			continue
		}
		if !errors.Is(err, userstore.ErrUserNotFound) {
			return fmt.Errorf("failed to check demo user %s: %w", demo.username, err)
		}

		hash, err := auth.HashPassword(demo.password)
		if err != nil {
			return err
		}
		if _, err := s.store.CreateUser(ctx, &user.User{
			Username:    demo.username,
			Email:       demo.email,
			Password:    hash,
			DisplayName: demo.displayName,
			Role:        demo.role,
		}); err != nil {
			return fmt.Errorf("failed to create demo user %s: %w", demo.username, err)
		}
		s.logger.Info("Created demo user", zap.String("username", demo.username), zap.String("role", demo.role))
	}
	return nil
}

func generateUsername() (string, error) {
	var b strings.Builder
	b.WriteString(generatedUsernamePrefix)
	max := big.NewInt(int64(len(usernameAlphabet)))
	for i := 0; i < generatedUsernameLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate username: %w", err)
		}
		b.WriteByte(usernameAlphabet[n.Int64()])
	}
	return b.String(), nil
}
