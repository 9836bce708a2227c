package videos

import (
	"context"
	"fmt"
)

const (
	// searchMaxResults caps a user-driven search page
	searchMaxResults = 25
	// randomPoolSize is the candidate pool for the random pick; the
	// provider caps search pages at 50
	randomPoolSize = 50
	// randomPoolQuery is the fixed query used to build the random pool
	randomPoolQuery = `karaoke popular "karaoke version"`
)

// Service handles video search business logic
type Service struct {
	client SearchClient
}

// NewService creates a new videos service
func NewService(client SearchClient) *Service {
	return &Service{client: client}
}

// Search wraps the user's term in the karaoke search template and returns
// the shaped candidate list in provider order
func (s *Service) Search(ctx context.Context, term string) ([]VideoCandidate, error) {
	query := fmt.Sprintf("karaoke %s karaoke version", term)

	resp, err := s.client.Search(ctx, query, searchMaxResults)
	if err != nil {
		return nil, err
	}

	return ShapeAll(resp)
}

// Random fetches the popular-karaoke pool and picks one candidate uniformly
// at random
func (s *Service) Random(ctx context.Context) (VideoCandidate, error) {
	resp, err := s.client.Search(ctx, randomPoolQuery, randomPoolSize)
	if err != nil {
		return VideoCandidate{}, err
	}

	candidates, err := ShapeAll(resp)
	if err != nil {
		return VideoCandidate{}, err
	}

	return RandomCandidate(candidates)
}
