// Package clients provides thin HTTP clients for the external services the
// recommender reads from: the tool catalog and the flow-session store.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jonathan/tool-recommender/internal/types"
)

const defaultRequestTimeout = 10 * time.Second

// CatalogClient fetches published tools from the tool service.
type CatalogClient struct {
	baseURL string
	http    *http.Client
}

// NewCatalogClient creates a catalog client for the given base URL.
func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultRequestTimeout},
	}
}

// ListPublished returns the published tool catalog. Callers treat any
// error as an empty catalog; recommendations are best-effort.
func (c *CatalogClient) ListPublished(ctx context.Context) ([]types.Tool, error) {
	endpoint := fmt.Sprintf("%s/tools?status=%s", c.baseURL, url.QueryEscape("published"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch returned status %d", resp.StatusCode)
	}

	var body struct {
		Tools []types.Tool `json:"tools"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return body.Tools, nil
}
