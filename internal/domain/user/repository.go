package user

import "context"

type UserRepository interface {
	// GetByID retrieves a user by primary key.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByUsername retrieves a user by unique username.
	GetByUsername(ctx context.Context, username string) (User, error)

	// ListByRole retrieves every user holding the given role.
	ListByRole(ctx context.Context, role Role) ([]User, error)
}
