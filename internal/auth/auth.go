// Package auth issues and verifies the session tokens that guard the
// dashboard API. Tokens are HS256 JWTs with a unique ID per session.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "nfl-records-service"

var (
	// ErrDisabled means no signing secret is configured.
	ErrDisabled = errors.New("auth is not configured")
	// ErrInvalidToken covers expired, malformed, and badly signed tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrBadKey means the presented dashboard key did not match.
	ErrBadKey = errors.New("invalid access key")
)

// Manager signs and verifies session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager constructs a Manager. An empty secret yields a disabled manager
// whose Issue and Verify always fail with ErrDisabled.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Enabled reports whether a signing secret is configured.
func (m *Manager) Enabled() bool {
	return m != nil && len(m.secret) > 0
}

// Issue signs a fresh session token for the subject.
func (m *Manager) Issue(subject string) (string, error) {
	if !m.Enabled() {
		return "", ErrDisabled
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// IssueForKey exchanges the shared dashboard key for a session token. The
// comparison is constant-time.
func (m *Manager) IssueForKey(key, subject string) (string, error) {
	if !m.Enabled() {
		return "", ErrDisabled
	}
	if subtle.ConstantTimeCompare([]byte(key), m.secret) != 1 {
		return "", ErrBadKey
	}
	return m.Issue(subject)
}

// Verify parses a session token and returns its claims.
func (m *Manager) Verify(raw string) (*jwt.RegisteredClaims, error) {
	if !m.Enabled() {
		return nil, ErrDisabled
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
