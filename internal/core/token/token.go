// Package token issues and verifies the signed identity assertions that back
// every authenticated request. Verification is stateless: a token is trusted
// as-is until it expires, there is no revocation.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopor/catalog-api/internal/core/domain"
)

var (
	ErrExpired   = errors.New("token expired")
	ErrMalformed = errors.New("token malformed")
	ErrSignature = errors.New("token signature invalid")
)

// Service signs and verifies HS256 JWTs carrying {username, role, exp}.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService builds a token service. A non-positive ttl falls back to the
// one hour default.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the principal using the service's configured TTL.
func (s *Service) Issue(p domain.Principal) (string, error) {
	return s.IssueFor(p, s.ttl)
}

// IssueFor signs a token expiring at now+ttl. The ttl is honoured literally,
// so a zero or negative ttl produces an already-expired token.
func (s *Service) IssueFor(p domain.Principal, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"username": p.Username,
		"role":     string(p.Role),
		"exp":      time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token and returns the principal it asserts.
// Failures are collapsed into ErrExpired, ErrSignature, or ErrMalformed.
func (s *Service) Verify(tokenString string) (domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.Principal{}, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.Principal{}, ErrSignature
	case err != nil, !tkn.Valid:
		return domain.Principal{}, ErrMalformed
	}

	username, _ := claims["username"].(string)
	rawRole, _ := claims["role"].(string)
	role, roleErr := domain.ParseRole(rawRole)
	if username == "" || roleErr != nil {
		return domain.Principal{}, ErrMalformed
	}

	return domain.Principal{Username: username, Role: role}, nil
}
