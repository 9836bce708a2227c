package favorites

import (
	"context"

	"github.com/google/uuid"
)

// RepositoryInterface defines the interface for favorites repository operations
type RepositoryInterface interface {
	// List retrieves all favorites owned by the given user
	List(ctx context.Context, ownerID uuid.UUID) ([]*Favorite, error)

	// GetByID retrieves a single favorite by owner and record id.
	// Both predicates apply; a record owned by someone else is not found.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Favorite, error)

	// Create inserts a favorite and returns it with its generated id
	Create(ctx context.Context, fav *Favorite) error

	// UpdateByVideoID updates the mutable fields of every favorite matching
	// owner and videoId, returning the post-update rows (possibly none)
	UpdateByVideoID(ctx context.Context, ownerID uuid.UUID, videoID, title, thumbnail string) ([]*Favorite, error)

	// Delete removes the favorite matching owner and id and returns the
	// deleted row
	Delete(ctx context.Context, ownerID, id uuid.UUID) (*Favorite, error)
}
