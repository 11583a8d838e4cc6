package domain

import "errors"

var (
	// ErrMissingField signals a required registration field was absent.
	ErrMissingField = errors.New("username, password, and role are required")
	// ErrInvalidRole signals a role outside the closed {admin, creator, consumer} set.
	ErrInvalidRole = errors.New("invalid role")
	// ErrUserExists signals a registration with an already-taken username.
	ErrUserExists = errors.New("username already exists")
	// ErrInvalidCredentials is returned uniformly for unknown users and wrong
	// passwords so login failures cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrItemNotFound signals a lookup for an item id that is not in the catalog.
	ErrItemNotFound = errors.New("item not found")
	// ErrForbidden signals a role or ownership policy violation.
	ErrForbidden = errors.New("access forbidden")
)
