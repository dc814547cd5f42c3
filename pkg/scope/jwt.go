// Package scope turns bearer tokens into viewer identities and carries the
// viewer through request contexts.
package scope

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"task-tracker-app/internal/model"
)

// DefaultTokenTTL is the lifetime of tokens issued by CreateToken.
const DefaultTokenTTL = 24 * time.Hour

type implManager struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// New creates an HS256 token manager.
func New(secretKey string) Manager {
	return &implManager{
		secretKey: []byte(secretKey),
		ttl:       DefaultTokenTTL,
		now:       time.Now,
	}
}

// Verify parses and validates an HS256 token.
func (m *implManager) Verify(token string) (Payload, error) {
	if len(m.secretKey) == 0 {
		return Payload{}, ErrMissingSecret
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	var payload Payload
	parsed, err := parser.ParseWithClaims(token, &payload, func(t *jwt.Token) (any, error) {
		return m.secretKey, nil
	})
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return Payload{}, ErrInvalidToken
	}
	if strings.TrimSpace(payload.Subject) == "" {
		return Payload{}, ErrMissingSubject
	}
	return payload, nil
}

// CreateToken issues a token for viewer.
func (m *implManager) CreateToken(viewer model.Viewer) (string, error) {
	if len(m.secretKey) == 0 {
		return "", ErrMissingSecret
	}

	now := m.now()
	active := viewer.IsActive
	payload := Payload{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   viewer.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Role:   string(viewer.Role),
		Active: &active,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(m.secretKey)
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(authz string) (string, bool) {
	parts := strings.Fields(authz)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

type viewerKey struct{}

// SetViewerToContext stores the viewer in ctx.
func SetViewerToContext(ctx context.Context, viewer model.Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, viewer)
}

// GetViewerFromContext returns the viewer stored in ctx, if any.
func GetViewerFromContext(ctx context.Context) (model.Viewer, bool) {
	v, ok := ctx.Value(viewerKey{}).(model.Viewer)
	return v, ok
}
