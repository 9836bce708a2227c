package names

import (
	"context"
	"math/rand"

	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/common"
)

// Service handles names business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new names service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// List returns every name in the reference table
func (s *Service) List(ctx context.Context) ([]*Name, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, common.CollaboratorUnavailableError("names store unavailable", err)
	}
	return result, nil
}

// Random picks one name uniformly at random over the whole table. Every row
// is eligible, including the last. An empty table fails with EmptyResultSet.
func (s *Service) Random(ctx context.Context) (*Name, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, common.CollaboratorUnavailableError("names store unavailable", err)
	}

	if len(result) == 0 {
		return nil, common.EmptyResultSetError("no names to pick from")
	}

	return result[rand.Intn(len(result))], nil
}

// GetByID returns the names matching the given id; id is conceptually unique
// but the contract allows zero or more matches
func (s *Service) GetByID(ctx context.Context, id int64) ([]*Name, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, common.CollaboratorUnavailableError("names store unavailable", err)
	}
	return result, nil
}
