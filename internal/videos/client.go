package videos

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/common"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/config"
)

// defaultTimeout bounds provider calls when no timeout is configured. A hung
// provider must never pin a goroutine past the request deadline.
const defaultTimeout = 10 * time.Second

// Client calls the YouTube Data API v3 search endpoint
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new YouTube search client. A zero config timeout falls
// back to the default.
func NewClient(cfg *config.YouTubeConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

// Search runs an embeddable-video search against the provider. Transport
// failures and non-2xx statuses surface as CollaboratorUnavailable; a body
// that doesn't decode surfaces as MalformedProviderResponse.
func (c *Client) Search(ctx context.Context, query string, maxResults int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("videoEmbeddable", "true")
	params.Set("key", c.apiKey)

	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, common.CollaboratorUnavailableError("video search provider unavailable", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, common.CollaboratorUnavailableError("video search provider unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, common.CollaboratorUnavailableError(
			"video search provider unavailable",
			fmt.Errorf("provider returned status %d", resp.StatusCode),
		)
	}

	var searchResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, common.MalformedProviderResponseError("search provider returned an undecodable response", err)
	}

	return &searchResp, nil
}
