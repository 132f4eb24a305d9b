// Copyright Punit Mishra, 2026. All rights reserved.

// Package twitter posts tweets through the X API v2. Request signing uses
// OAuth 1.0a via dghubble/oauth1 rather than a hand-rolled HMAC-SHA1
// assembly.
package twitter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dghubble/oauth1"

	"github.com/punitmishra/publish-engine/internal/httputil"
	"github.com/punitmishra/publish-engine/internal/secrets"
	"github.com/punitmishra/publish-engine/pkg/types"
)

// apiBase is the X API root. Declared as a var so tests can substitute an
// httptest server.
var apiBase = "https://api.twitter.com"

// Client posts to the X API on behalf of one user.
type Client struct {
	httpClient *http.Client
}

// New builds a Client whose underlying transport signs every request with
// the supplied OAuth 1.0a credentials.
func New(creds secrets.Credentials, cfg types.HTTPConfig) (*Client, error) {
	if !creds.TwitterComplete() {
		return nil, fmt.Errorf("twitter credentials incomplete: set %s, %s, %s and %s",
			secrets.EnvTwitterAPIKey, secrets.EnvTwitterAPISecret,
			secrets.EnvTwitterAccessToken, secrets.EnvTwitterAccessSecret)
	}

	config := oauth1.NewConfig(creds.TwitterAPIKey, creds.TwitterAPISecret)
	token := oauth1.NewToken(creds.TwitterAccessToken, creds.TwitterAccessSecret)

	httpClient := config.Client(oauth1.NoContext, token)
	httpClient.Timeout = cfg.Timeout
	httpClient.Transport = &httputil.Transport{
		Base:    httpClient.Transport,
		Headers: map[string]string{"User-Agent": cfg.UserAgent},
	}

	return &Client{httpClient: httpClient}, nil
}

type tweetRequest struct {
	Text string `json:"text"`
}

type tweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// PostTweet publishes text and returns the new tweet's ID. The API
// responds 201 on success; anything else surfaces the raw error body.
func (c *Client) PostTweet(ctx context.Context, text string) (string, error) {
	var resp tweetResponse
	err := httputil.DoJSON(ctx, c.httpClient, http.MethodPost, apiBase+"/2/tweets",
		tweetRequest{Text: text}, &resp, http.StatusCreated)
	if err != nil {
		return "", fmt.Errorf("posting tweet: %w", err)
	}
	return resp.Data.ID, nil
}
