package videos

// VideoCandidate is a normalized search result ready for the client.
// It lives for the duration of one request and is never persisted.
type VideoCandidate struct {
	VideoID   string `json:"videoId"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

// SearchResponse is the subset of the YouTube Data API v3 search response
// this service reads
type SearchResponse struct {
	Items []SearchItem `json:"items"`
}

// SearchItem is a single search result
type SearchItem struct {
	ID      SearchItemID `json:"id"`
	Snippet Snippet      `json:"snippet"`
}

// SearchItemID holds the nested video identifier
type SearchItemID struct {
	VideoID string `json:"videoId"`
}

// Snippet holds the displayable metadata of a result
type Snippet struct {
	Title      string     `json:"title"`
	Thumbnails Thumbnails `json:"thumbnails"`
}

// Thumbnails holds the thumbnail variants; only the default size is used
type Thumbnails struct {
	Default Thumbnail `json:"default"`
}

// Thumbnail is a single thumbnail image reference
type Thumbnail struct {
	URL string `json:"url"`
}
