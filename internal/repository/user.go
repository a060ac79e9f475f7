package repository

import (
	"context"

	"userhub/internal/domain"
)

// UserRepository defines the persistence operations for users.
//
// Identifiers are the store's hex form; implementations decide how to
// surface identifiers that do not match the store's key format (see
// ErrInvalidID).
type UserRepository interface {
	// Create persists a new user and returns it with the
	// store-assigned identifier filled in.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetAll retrieves a snapshot of the full collection.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// Update merges the non-nil fields of patch into the stored user
	// and returns the post-merge document. Absent fields keep their
	// prior value.
	Update(ctx context.Context, id string, patch *domain.User) (*domain.User, error)

	// Delete removes a user and returns the document as it existed
	// immediately before removal.
	Delete(ctx context.Context, id string) (*domain.User, error)
}
