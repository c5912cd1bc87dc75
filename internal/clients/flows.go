package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrSessionNotFound signals that a flow session does not exist or has not
// produced extracted tags yet. The API surfaces it as 404 so the frontend
// can distinguish "flow not completed" from "zero matches".
var ErrSessionNotFound = errors.New("flow session not found")

// FlowClient resolves flow sessions from the flow service.
type FlowClient struct {
	baseURL string
	http    *http.Client
}

// NewFlowClient creates a flow-session client for the given base URL.
func NewFlowClient(baseURL string) *FlowClient {
	return &FlowClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultRequestTimeout},
	}
}

// ExtractedTags returns the tags a completed flow session extracted from
// the user's answers. Returns ErrSessionNotFound when the session is
// missing.
func (c *FlowClient) ExtractedTags(ctx context.Context, sessionID string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/sessions/%s", c.baseURL, url.PathEscape(sessionID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build session request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("session fetch returned status %d", resp.StatusCode)
	}

	var body struct {
		ExtractedTags []string `json:"extractedTags"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode session response: %w", err)
	}
	return body.ExtractedTags, nil
}
