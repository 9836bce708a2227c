package names

import "context"

// RepositoryInterface defines the interface for names repository operations.
// The table is reference data; there is no write path.
type RepositoryInterface interface {
	// List retrieves every name in the table
	List(ctx context.Context) ([]*Name, error)

	// GetByID retrieves the names matching the given id (zero or more)
	GetByID(ctx context.Context, id int64) ([]*Name, error)
}
