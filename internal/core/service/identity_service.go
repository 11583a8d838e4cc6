package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopor/catalog-api/internal/core/domain"
	"github.com/shopor/catalog-api/internal/core/ports"
	"github.com/shopor/catalog-api/internal/core/token"
)

// IdentityService implements registration and login over the document store.
type IdentityService struct {
	store  ports.DocumentStore
	tokens *token.Service
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewIdentityService(store ports.DocumentStore, tokens *token.Service, audit ports.AuditRecorder, log zerolog.Logger) *IdentityService {
	return &IdentityService{store: store, tokens: tokens, audit: audit, log: log}
}

// Register creates a new user and issues a token for it. The uniqueness scan,
// id allocation, append, and save all happen inside one store update so a
// concurrent registration can neither steal the username nor the id.
func (s *IdentityService) Register(ctx context.Context, username, password, rawRole string) (*domain.User, string, error) {
	if username == "" || password == "" || rawRole == "" {
		return nil, "", domain.ErrMissingField
	}
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return nil, "", err
	}

	var user domain.User
	err = s.store.Update(ctx, func(cat *domain.Catalog) error {
		if cat.FindUser(username) != nil {
			return domain.ErrUserExists
		}
		user = domain.User{
			ID:       cat.NextUserID(),
			Username: username,
			Password: password,
			Role:     role,
		}
		cat.Users = append(cat.Users, user)
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	signed, err := s.tokens.Issue(domain.Principal{Username: user.Username, Role: user.Role})
	if err != nil {
		return nil, "", err
	}

	s.audit.Record(domain.AuditEvent{
		Actor:     user.Username,
		Action:    domain.AuditUserRegistered,
		Timestamp: time.Now().UTC(),
	})
	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("user registered")

	return &user, signed, nil
}

// Login issues a token for a matching (username, password) pair. A missing
// user and a wrong password produce the same failure so responses cannot be
// used to enumerate usernames.
func (s *IdentityService) Login(ctx context.Context, username, password string) (string, error) {
	cat, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}

	user := cat.FindUser(username)
	if user == nil || !domain.VerifyPassword(user.Password, password) {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(domain.Principal{Username: user.Username, Role: user.Role})
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return signed, nil
}

// ListUsers returns every user exactly as persisted.
func (s *IdentityService) ListUsers(ctx context.Context) ([]domain.User, error) {
	cat, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if cat.Users == nil {
		return []domain.User{}, nil
	}
	return cat.Users, nil
}
