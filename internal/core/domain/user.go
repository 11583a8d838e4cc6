package domain

// Role governs which operations a principal may invoke.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCreator  Role = "creator"
	RoleConsumer Role = "consumer"
)

// ParseRole maps a raw string onto the closed role set. Unrecognised values
// are rejected at registration rather than carried through into tokens.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleCreator, RoleConsumer:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// User models a registered account in the shared catalog document.
//
// The password is stored and serialized in the clear: login compares stored
// credentials verbatim and the user list endpoint returns records exactly as
// persisted. Verification is isolated in VerifyPassword so a hashing scheme
// can be swapped in without touching call sites.
type User struct {
	ID       int    `json:"id" bson:"id"`
	Username string `json:"username" bson:"username"`
	Password string `json:"password" bson:"password"`
	Role     Role   `json:"role" bson:"role"`
}

// Principal is the authenticated identity derived from a verified token.
// It is reconstructed per request and never persisted.
type Principal struct {
	Username string
	Role     Role
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
