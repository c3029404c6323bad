package scope

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"secure-intent-router/internal/model"
)

func TestVerify(t *testing.T) {
	m := New("top-secret")
	sub := "6f1c3d52-8a43-4b8e-9a53-0c3e2f6b1a01"

	t.Run("round trip", func(t *testing.T) {
		token, err := m.CreateToken(sub, "ana@example.com", time.Hour)
		if err != nil {
			t.Fatalf("CreateToken: %v", err)
		}
		p, err := m.Verify(token)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if p.Subject != sub || p.Email != "ana@example.com" {
			t.Errorf("unexpected payload: %+v", p)
		}
	})

	t.Run("expired", func(t *testing.T) {
		token, _ := m.CreateToken(sub, "", -time.Minute)
		if _, err := m.Verify(token); !errors.Is(err, ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := New("other").CreateToken(sub, "", time.Hour)
		if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("none algorithm", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		token, _ := m.CreateToken("", "", time.Hour)
		if _, err := m.Verify(token); !errors.Is(err, ErrMissingSubject) {
			t.Errorf("expected ErrMissingSubject, got %v", err)
		}
	})

	t.Run("no secret", func(t *testing.T) {
		if _, err := New("").Verify("x"); !errors.Is(err, ErrMissingSecret) {
			t.Errorf("expected ErrMissingSecret, got %v", err)
		}
	})
}

func TestBearerToken(t *testing.T) {
	if tok, ok := BearerToken("Bearer abc"); !ok || tok != "abc" {
		t.Errorf("expected abc, got %q %v", tok, ok)
	}
	if _, ok := BearerToken("Basic abc"); ok {
		t.Errorf("basic auth must be rejected")
	}
	if _, ok := BearerToken("Bearer"); ok {
		t.Errorf("missing token must be rejected")
	}
}

func TestScopeContext(t *testing.T) {
	if _, ok := GetScopeFromContext(context.Background()); ok {
		t.Errorf("empty context must not carry a scope")
	}
	ctx := SetScopeToContext(context.Background(), model.Scope{TenantID: "t"})
	sc, ok := GetScopeFromContext(ctx)
	if !ok || sc.TenantID != "t" {
		t.Errorf("unexpected scope %+v", sc)
	}
}
