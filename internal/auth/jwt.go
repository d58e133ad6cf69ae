// Package auth issues and verifies the signed session tokens that carry a
// caller's resolved identity between requests.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"webintake-backend-go/internal/models"
)

// ErrInvalidToken is returned for tokens that fail signature or expiry checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims embeds the registered JWT claims and the identity fields the
// middleware restores into the request context.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// Manager signs and verifies HS256 session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token manager with the given signing secret and validity duration.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the identity.
func (m *Manager) Issue(identity models.Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID:   identity.UserID,
		Username: identity.Username,
		Name:     identity.Name,
		Email:    identity.Email,
		Phone:    identity.Phone,
		Role:     identity.Role,
	})
	return token.SignedString(m.secret)
}

// Remaining reports how long a token stays valid. Tokens that fail
// verification, or that carry no expiry, report zero.
func (m *Manager) Remaining(tokenString string) (time.Duration, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.ExpiresAt == nil {
		return 0, ErrInvalidToken
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Verify parses and validates a token and restores the embedded identity.
func (m *Manager) Verify(tokenString string) (models.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return models.Identity{}, ErrInvalidToken
	}
	return models.Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Name:     claims.Name,
		Email:    claims.Email,
		Phone:    claims.Phone,
		Role:     claims.Role,
	}, nil
}
