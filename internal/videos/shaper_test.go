package videos

import (
	"fmt"
	"testing"

	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildResponse(count int) *SearchResponse {
	items := make([]SearchItem, count)
	for i := range items {
		items[i] = SearchItem{
			ID: SearchItemID{VideoID: fmt.Sprintf("video-%d", i)},
			Snippet: Snippet{
				Title:      fmt.Sprintf("Song %d", i),
				Thumbnails: Thumbnails{Default: Thumbnail{URL: fmt.Sprintf("http://img/%d.png", i)}},
			},
		}
	}
	return &SearchResponse{Items: items}
}

func TestShapeAll(t *testing.T) {
	t.Run("preserves count and order", func(t *testing.T) {
		resp := buildResponse(5)

		candidates, err := ShapeAll(resp)

		require.NoError(t, err)
		require.Len(t, candidates, 5)
		for i, c := range candidates {
			assert.Equal(t, fmt.Sprintf("video-%d", i), c.VideoID)
			assert.Equal(t, fmt.Sprintf("Song %d", i), c.Title)
			assert.Equal(t, fmt.Sprintf("http://img/%d.png", i), c.Thumbnail)
		}
	})

	t.Run("empty item list yields empty slice", func(t *testing.T) {
		candidates, err := ShapeAll(&SearchResponse{Items: []SearchItem{}})

		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("extracts fields verbatim without defaulting", func(t *testing.T) {
		resp := &SearchResponse{Items: []SearchItem{{}}}

		candidates, err := ShapeAll(resp)

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, VideoCandidate{}, candidates[0])
	})

	t.Run("missing item list is malformed", func(t *testing.T) {
		_, err := ShapeAll(&SearchResponse{})

		require.Error(t, err)
		appErr, ok := common.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, common.CodeMalformedProviderResponse, appErr.Code)
	})

	t.Run("nil response is malformed", func(t *testing.T) {
		_, err := ShapeAll(nil)

		require.Error(t, err)
		appErr, ok := common.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, common.CodeMalformedProviderResponse, appErr.Code)
	})
}

func TestRandomCandidate(t *testing.T) {
	t.Run("single candidate is always returned", func(t *testing.T) {
		candidates, err := ShapeAll(buildResponse(1))
		require.NoError(t, err)

		for i := 0; i < 20; i++ {
			picked, err := RandomCandidate(candidates)
			require.NoError(t, err)
			assert.Equal(t, candidates[0], picked)
		}
	})

	t.Run("selection covers the whole list including the last element", func(t *testing.T) {
		// The last index used to be unreachable; this pins the fix.
		candidates, err := ShapeAll(buildResponse(5))
		require.NoError(t, err)

		seen := make(map[string]bool)
		for i := 0; i < 2000; i++ {
			picked, err := RandomCandidate(candidates)
			require.NoError(t, err)
			seen[picked.VideoID] = true
		}

		for _, c := range candidates {
			assert.True(t, seen[c.VideoID], "candidate %s was never picked", c.VideoID)
		}
	})

	t.Run("empty list fails with EmptyResultSet not an index fault", func(t *testing.T) {
		_, err := RandomCandidate([]VideoCandidate{})

		require.Error(t, err)
		appErr, ok := common.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, common.CodeEmptyResultSet, appErr.Code)
	})
}
