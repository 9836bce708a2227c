package favorites

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles database operations for favorites
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new favorites repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// List retrieves all favorites owned by the given user
func (r *Repository) List(ctx context.Context, ownerID uuid.UUID) ([]*Favorite, error) {
	query := `
		SELECT id, video_id, title, thumbnail, owner_id, created_at
		FROM favorites
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	return scanFavorites(rows)
}

// GetByID retrieves a single favorite scoped by owner AND record id. The
// conjunction is what keeps one user's records invisible to another.
func (r *Repository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Favorite, error) {
	query := `
		SELECT id, video_id, title, thumbnail, owner_id, created_at
		FROM favorites
		WHERE id = $1 AND owner_id = $2
	`

	fav := &Favorite{}
	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&fav.ID, &fav.VideoID, &fav.Title, &fav.Thumbnail, &fav.OwnerID, &fav.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite: %w", err)
	}

	return fav, nil
}

// Create inserts a favorite and fills in the generated id and timestamp
func (r *Repository) Create(ctx context.Context, fav *Favorite) error {
	query := `
		INSERT INTO favorites (id, video_id, title, thumbnail, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	fav.ID = uuid.New()
	err := r.db.QueryRow(ctx, query,
		fav.ID, fav.VideoID, fav.Title, fav.Thumbnail, fav.OwnerID,
	).Scan(&fav.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}

	return nil
}

// UpdateByVideoID updates every favorite matching owner and videoId and
// returns the post-update rows. No match is not an error; the result is
// simply empty.
func (r *Repository) UpdateByVideoID(ctx context.Context, ownerID uuid.UUID, videoID, title, thumbnail string) ([]*Favorite, error) {
	query := `
		UPDATE favorites
		SET title = $1, thumbnail = $2
		WHERE owner_id = $3 AND video_id = $4
		RETURNING id, video_id, title, thumbnail, owner_id, created_at
	`

	rows, err := r.db.Query(ctx, query, title, thumbnail, ownerID, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to update favorite: %w", err)
	}
	defer rows.Close()

	return scanFavorites(rows)
}

// Delete removes the favorite matching owner and id and returns the deleted row
func (r *Repository) Delete(ctx context.Context, ownerID, id uuid.UUID) (*Favorite, error) {
	query := `
		DELETE FROM favorites
		WHERE owner_id = $1 AND id = $2
		RETURNING id, video_id, title, thumbnail, owner_id, created_at
	`

	fav := &Favorite{}
	err := r.db.QueryRow(ctx, query, ownerID, id).Scan(
		&fav.ID, &fav.VideoID, &fav.Title, &fav.Thumbnail, &fav.OwnerID, &fav.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to delete favorite: %w", err)
	}

	return fav, nil
}

func scanFavorites(rows pgx.Rows) ([]*Favorite, error) {
	result := make([]*Favorite, 0)
	for rows.Next() {
		fav := &Favorite{}
		err := rows.Scan(&fav.ID, &fav.VideoID, &fav.Title, &fav.Thumbnail, &fav.OwnerID, &fav.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		result = append(result, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}

	return result, nil
}
