package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopor/catalog-api/internal/core/domain"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour)

	signed, err := svc.Issue(domain.Principal{Username: "alice", Role: domain.RoleCreator})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	p, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if p.Username != "alice" || p.Role != domain.RoleCreator {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestVerify_Expired(t *testing.T) {
	svc := NewService("secret", time.Hour)

	signed, err := svc.IssueFor(domain.Principal{Username: "bob", Role: domain.RoleAdmin}, -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Verify(signed); err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_ZeroTTLExpires(t *testing.T) {
	svc := NewService("secret", time.Hour)

	signed, err := svc.IssueFor(domain.Principal{Username: "bob", Role: domain.RoleAdmin}, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Verify(signed); err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := NewService("secret-a", time.Hour).Issue(domain.Principal{Username: "carol", Role: domain.RoleConsumer})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewService("secret-b", time.Hour).Verify(signed); err != ErrSignature {
		t.Fatalf("expected ErrSignature, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	svc := NewService("secret", time.Hour)

	if _, err := svc.Verify("not-a-token"); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestVerify_RejectsUnknownRole(t *testing.T) {
	claims := jwt.MapClaims{
		"username": "mallory",
		"role":     "superuser",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewService("secret", time.Hour).Verify(signed); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestVerify_RejectsWrongAlgorithm(t *testing.T) {
	// alg=none tokens must never verify, regardless of claims.
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"username": "mallory",
		"role":     "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewService("secret", time.Hour).Verify(signed); err == nil {
		t.Fatalf("expected verification failure for alg=none token")
	}
}
