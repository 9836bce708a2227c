package favorites

import (
	"time"

	"github.com/google/uuid"
)

// Favorite represents a saved karaoke video owned by a user
type Favorite struct {
	ID        uuid.UUID `json:"id" db:"id"`
	VideoID   string    `json:"videoId" db:"video_id"`
	Title     string    `json:"title" db:"title"`
	Thumbnail string    `json:"thumbnail" db:"thumbnail"`
	OwnerID   uuid.UUID `json:"ownerId" db:"owner_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CreateFavoriteRequest is the API request for saving a favorite
type CreateFavoriteRequest struct {
	VideoID   string `json:"videoId" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Thumbnail string `json:"thumbnail" binding:"required,url"`
}

// UpdateFavoriteRequest is the API request for updating the mutable fields
// of a favorite. The target is addressed by videoId in the path.
type UpdateFavoriteRequest struct {
	Title     string `json:"title" binding:"required"`
	Thumbnail string `json:"thumbnail" binding:"required,url"`
}
