// Package hub talks to the public skill index. Search results point at
// GitHub sources that install commands can consume directly.
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/skillyard-labs/skillyard/internal/branding"
	"github.com/skillyard-labs/skillyard/internal/errdefs"
)

// searchLimit caps how many results one query returns.
const searchLimit = 20

// Result is one hub search hit. Source is an "owner/repo" reference.
type Result struct {
	ID       string `json:"id"`
	SkillID  string `json:"skillId"`
	Name     string `json:"name"`
	Installs uint64 `json:"installs"`
	Source   string `json:"source"`
}

type searchResponse struct {
	Skills []Result `json:"skills"`
}

// Client queries the hub API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(h *Client) {
		h.httpClient = c
	}
}

// WithBaseURL points the client at a different hub instance.
func WithBaseURL(base string) Option {
	return func(h *Client) {
		h.baseURL = base
	}
}

// New creates a hub client with the branded default endpoint.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    branding.HubBaseURL(),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search queries the hub for skills matching query.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	u := fmt.Sprintf("%s/api/search?q=%s&limit=%d", c.baseURL, url.QueryEscape(query), searchLimit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errdefs.Networkf("building hub request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", branding.CLIName())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errdefs.Networkf("failed to reach %s: %v", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errdefs.Networkf("hub returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errdefs.Networkf("reading hub response: %v", err)
	}
	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errdefs.Networkf("invalid response from %s: %v", c.baseURL, err)
	}
	return parsed.Skills, nil
}
