package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access surface for user records. It also serves as
// the author directory consumed by the blog query engine.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// ResolveAuthors returns the ids of users whose first name, last name or
	// email contains the fragment, case-insensitively.
	ResolveAuthors(ctx context.Context, fragment string) ([]uuid.UUID, error)
}
