package scope

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"secure-intent-router/internal/model"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
	ErrMissingSecret  = errors.New("jwt secret not configured")
	ErrMissingSubject = errors.New("subject claim required")
)

// Payload is the claim set issued by the identity provider. Subject is the tenant id.
type Payload struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Manager verifies and issues HS256 tokens.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(subject, email string, ttl time.Duration) (string, error)
}

type implManager struct {
	secret []byte
	parser *jwt.Parser
}

// New creates a Manager for secret. An empty secret makes every Verify fail.
func New(secret string) Manager {
	return &implManager{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

func (m *implManager) Verify(token string) (Payload, error) {
	if len(m.secret) == 0 {
		return Payload{}, ErrMissingSecret
	}

	claims := &Payload{}
	parsed, err := m.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrExpiredToken
		}
		return Payload{}, ErrInvalidToken
	}
	if !parsed.Valid {
		return Payload{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return Payload{}, ErrMissingSubject
	}
	return *claims, nil
}

func (m *implManager) CreateToken(subject, email string, ttl time.Duration) (string, error) {
	if len(m.secret) == 0 {
		return "", ErrMissingSecret
	}
	now := time.Now()
	claims := Payload{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header value.
func BearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

type scopeKey struct{}

func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	return sc, ok && sc.Valid()
}
