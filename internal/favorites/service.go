package favorites

import (
	"context"
	"errors"

	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/common"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Service handles favorites business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new favorites service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// List returns all favorites owned by the given user
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*Favorite, error) {
	favs, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, common.CollaboratorUnavailableError("favorites store unavailable", err)
	}
	return favs, nil
}

// GetByID returns a single favorite. A record id belonging to another owner
// fails closed with NotFound.
func (s *Service) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Favorite, error) {
	fav, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundError("favorite not found")
		}
		return nil, common.CollaboratorUnavailableError("favorites store unavailable", err)
	}
	return fav, nil
}

// Create saves a favorite for the given owner and returns it with its
// generated id
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, req *CreateFavoriteRequest) (*Favorite, error) {
	fav := &Favorite{
		VideoID:   req.VideoID,
		Title:     req.Title,
		Thumbnail: req.Thumbnail,
		OwnerID:   ownerID,
	}

	if err := s.repo.Create(ctx, fav); err != nil {
		return nil, common.CollaboratorUnavailableError("favorites store unavailable", err)
	}

	return fav, nil
}

// UpdateByVideoID updates the favorites matching owner and videoId. No match
// is an idempotent no-op returning an empty list, not an error.
func (s *Service) UpdateByVideoID(ctx context.Context, ownerID uuid.UUID, videoID string, req *UpdateFavoriteRequest) ([]*Favorite, error) {
	favs, err := s.repo.UpdateByVideoID(ctx, ownerID, videoID, req.Title, req.Thumbnail)
	if err != nil {
		return nil, common.CollaboratorUnavailableError("favorites store unavailable", err)
	}
	return favs, nil
}

// Delete removes the favorite matching owner and id and returns the deleted
// record
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) (*Favorite, error) {
	fav, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundError("favorite not found")
		}
		return nil, common.CollaboratorUnavailableError("favorites store unavailable", err)
	}
	return fav, nil
}
