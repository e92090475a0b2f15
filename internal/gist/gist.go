// Package gist publishes skill excerpts as private GitHub gists. An excerpt
// is a small markdown document carrying the skill's identity and a fenced
// copy of the selected text; the caller gets back the gist's browser URL.
package gist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/skillyard-labs/skillyard/internal/branding"
	"github.com/skillyard-labs/skillyard/internal/errdefs"
	"github.com/skillyard-labs/skillyard/internal/slug"
)

// ExcerptRequest describes one excerpt to publish.
type ExcerptRequest struct {
	SkillName        string
	SkillDescription string
	FilePath         string
	SelectedText     string
}

// Client talks to the GitHub gists API.
type Client struct {
	apiBase    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(g *Client) {
		g.httpClient = c
	}
}

// WithAPIBase points the client at a different GitHub API endpoint.
func WithAPIBase(base string) Option {
	return func(g *Client) {
		g.apiBase = strings.TrimRight(base, "/")
	}
}

// New creates a gist client against the public GitHub API.
func New(opts ...Option) *Client {
	c := &Client{
		apiBase:    "https://api.github.com",
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type gistFile struct {
	Content string `json:"content"`
}

type createGistBody struct {
	Description string              `json:"description"`
	Public      bool                `json:"public"`
	Files       map[string]gistFile `json:"files"`
}

type createGistResponse struct {
	HTMLURL string `json:"html_url"`
}

// CreateExcerpt publishes req as a private gist and returns its URL. The
// token is required: gist creation is always authenticated.
func (c *Client) CreateExcerpt(ctx context.Context, token string, req ExcerptRequest) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errdefs.Validationf("a GitHub token is required; set one first")
	}
	selected := strings.TrimSpace(req.SelectedText)
	if selected == "" {
		return "", errdefs.Validationf("select some text before creating a gist")
	}

	name := strings.TrimSpace(req.SkillName)
	safeName := name
	if safeName == "" {
		safeName = "skill"
	}

	body := createGistBody{
		Description: fmt.Sprintf("%s excerpt from %s", branding.DisplayName(), safeName),
		Public:      false,
		Files: map[string]gistFile{
			slug.Make(safeName) + "-excerpt.md": {Content: excerptDocument(name, req.SkillDescription, req.FilePath, selected)},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", errdefs.Networkf("encoding gist request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/gists", bytes.NewReader(payload))
	if err != nil {
		return "", errdefs.Networkf("building gist request: %v", err)
	}
	httpReq.Header.Set("Accept", "application/vnd.github+json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", branding.CLIName())
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", errdefs.Networkf("failed to create gist: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errdefs.Networkf("reading gist response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errdefs.Networkf("GitHub gist API failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed createGistResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", errdefs.Networkf("invalid GitHub response: %v", err)
	}
	if parsed.HTMLURL == "" {
		return "", errdefs.Networkf("GitHub response missing gist URL")
	}
	return parsed.HTMLURL, nil
}

// excerptDocument renders the markdown body. The code fence widens to four
// backticks when the selection itself contains a three-backtick fence.
func excerptDocument(name, description, filePath, selected string) string {
	fence := "```"
	if strings.Contains(selected, "```") {
		fence = "````"
	}
	return fmt.Sprintf(
		"# %s Excerpt\n\n## Skill\n- Name: %s\n- Description: %s\n- File: %s\n\n## Selected Text\n%s\n%s\n%s\n",
		branding.DisplayName(),
		strings.TrimSpace(name),
		strings.TrimSpace(description),
		strings.TrimSpace(filePath),
		fence, selected, fence,
	)
}
