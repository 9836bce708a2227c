package videos

import (
	"math/rand"

	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/common"
)

// ShapeAll flattens a provider search response into a list of candidates.
// Fields are extracted verbatim, order matches the provider's, and an empty
// item list yields an empty slice.
func ShapeAll(resp *SearchResponse) ([]VideoCandidate, error) {
	if resp == nil || resp.Items == nil {
		return nil, common.MalformedProviderResponseError("search provider returned an unexpected response shape", nil)
	}

	candidates := make([]VideoCandidate, len(resp.Items))
	for i, item := range resp.Items {
		candidates[i] = VideoCandidate{
			VideoID:   item.ID.VideoID,
			Title:     item.Snippet.Title,
			Thumbnail: item.Snippet.Thumbnails.Default.URL,
		}
	}

	return candidates, nil
}

// RandomCandidate picks one candidate uniformly at random from the whole
// list. Every index is eligible, including the last. An empty list fails
// with EmptyResultSet rather than an indexing fault.
func RandomCandidate(candidates []VideoCandidate) (VideoCandidate, error) {
	if len(candidates) == 0 {
		return VideoCandidate{}, common.EmptyResultSetError("no videos to pick from")
	}

	return candidates[rand.Intn(len(candidates))], nil
}
