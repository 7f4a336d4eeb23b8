package users

import (
	"context"
)

// Repository is the durable identity store. Implementations must
// enforce username and email uniqueness atomically at write time; a
// losing concurrent Create observes the corresponding conflict
// sentinel, never a duplicate row.
type Repository interface {
	Exists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	// GetByUsername returns common.ErrorNotFound when no record matches.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create returns common.ErrorUsernameExists or common.ErrorEmailExists
	// on a unique-constraint conflict.
	Create(ctx context.Context, user *User) (*User, error)
}
