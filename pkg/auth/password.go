package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters; N=16384, r=8, p=1 with a 64 byte key.
const (
	scryptN      = 1 << 14
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltBytes    = 16
)

// ErrMalformedHash is returned when a stored password hash cannot be parsed.
var ErrMalformedHash = errors.New("malformed password hash")

// HashPassword returns "<hex key>.<hex salt>". The hex salt string itself is the scrypt salt.
func HashPassword(password string) (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)

	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hex.EncodeToString(key) + "." + salt, nil
}

// VerifyPassword reports whether password matches the stored hash.
func VerifyPassword(stored, password string) (bool, error) {
	hashHex, salt, ok := strings.Cut(stored, ".")
	if !ok || hashHex == "" || salt == "" {
		return false, ErrMalformedHash
	}
	want, err := hex.DecodeString(hashHex)
	if err != nil {
		return false, ErrMalformedHash
	}

	got, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, len(want))
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
