package videos

import "context"

// SearchClient defines the interface to the external video search provider
type SearchClient interface {
	// Search runs a video search for the given query and returns the raw
	// provider response
	Search(ctx context.Context, query string, maxResults int) (*SearchResponse, error)
}
