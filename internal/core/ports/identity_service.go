package ports

import (
	"context"

	"github.com/shopor/catalog-api/internal/core/domain"
)

// IdentityService handles registration and login against the document store.
type IdentityService interface {
	// Register creates a user and returns it together with a fresh token.
	Register(ctx context.Context, username, password, role string) (*domain.User, string, error)
	// Login returns a token for a matching (username, password) pair. Unknown
	// users and wrong passwords fail identically with ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
	// ListUsers returns all users verbatim. Admin gating is the router's job.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
