package names

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles database operations for the names table
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new names repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List retrieves every name in the table
func (r *Repository) List(ctx context.Context) ([]*Name, error) {
	query := `
		SELECT id, name
		FROM names
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list names: %w", err)
	}
	defer rows.Close()

	return scanNames(rows)
}

// GetByID retrieves the names matching the given id
func (r *Repository) GetByID(ctx context.Context, id int64) ([]*Name, error) {
	query := `
		SELECT id, name
		FROM names
		WHERE id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get name: %w", err)
	}
	defer rows.Close()

	return scanNames(rows)
}

func scanNames(rows *sql.Rows) ([]*Name, error) {
	result := make([]*Name, 0)
	for rows.Next() {
		n := &Name{}
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			return nil, fmt.Errorf("failed to scan name: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read names: %w", err)
	}

	return result, nil
}
