// Package auth issues and verifies bearer tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/chainsafe/helisync/pkg/user"
)

const minSecretLength = 16

// ErrTokenExpired is returned by Verify for well-formed tokens past their expiry.
var ErrTokenExpired = errors.New("token expired")

// Principal is the identity carried by a verified token.
// UserID is zero when the token only names an external identity in Subject.
type Principal struct {
	UserID   int64
	Subject  string
	Username string
	Email    string
	Role     string
}

// Verifier checks bearer tokens.
type Verifier interface {
	Verify(token string) (*Principal, error)
}

// Claims is the token payload.
type Claims struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 tokens.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a TokenService. The secret must be at least 16 characters.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", minSecretLength)
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), issuer: issuer, ttl: ttl}, nil
}

// Issue signs a token for u.
func (s *TokenService) Issue(u *user.User) (string, error) {
	return s.issue(u, time.Now(), s.ttl)
}

func (s *TokenService) issue(u *user.User, now time.Time, ttl time.Duration) (string, error) {
	c := Claims{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(u.ID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses tokenStr and returns its principal.
func (s *TokenService) Verify(tokenStr string) (*Principal, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	c, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if c.ID == 0 && c.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &Principal{
		UserID:   c.ID,
		Subject:  c.Subject,
		Username: c.Username,
		Email:    c.Email,
		Role:     c.Role,
	}, nil
}
