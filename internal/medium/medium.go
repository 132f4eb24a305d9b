// Copyright Punit Mishra, 2026. All rights reserved.

// Package medium cross-posts articles through the Medium API.
package medium

import (
	"context"
	"fmt"
	"net/http"

	"github.com/punitmishra/publish-engine/internal/httputil"
	"github.com/punitmishra/publish-engine/pkg/types"
)

// apiBase is the Medium API root. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://api.medium.com/v1"

// Client talks to the Medium API with an integration token.
type Client struct {
	httpClient *http.Client
}

// New builds a Client. The token is the user's Medium integration token
// (settings → security → integration tokens).
func New(token string, cfg types.HTTPConfig) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("medium token missing: pass --token or set MEDIUM_TOKEN")
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &httputil.Transport{
				Headers: map[string]string{
					"Authorization": "Bearer " + token,
					"User-Agent":    cfg.UserAgent,
				},
			},
		},
	}, nil
}

type userResponse struct {
	Data struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"data"`
}

type postResponse struct {
	Data struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"data"`
}

// Me resolves the integration token to the authenticated user's ID,
// required by the posts endpoint.
func (c *Client) Me(ctx context.Context) (string, error) {
	var resp userResponse
	if err := httputil.DoJSON(ctx, c.httpClient, http.MethodGet, apiBase+"/me", nil, &resp, http.StatusOK); err != nil {
		return "", fmt.Errorf("resolving medium user: %w", err)
	}
	return resp.Data.ID, nil
}

// CreatePost submits the payload as a new post under userID and returns
// the post's public URL.
func (c *Client) CreatePost(ctx context.Context, userID string, payload types.MediumPayload) (string, error) {
	var resp postResponse
	url := apiBase + "/users/" + userID + "/posts"
	if err := httputil.DoJSON(ctx, c.httpClient, http.MethodPost, url, payload, &resp, http.StatusCreated); err != nil {
		return "", fmt.Errorf("creating medium post: %w", err)
	}
	return resp.Data.URL, nil
}
