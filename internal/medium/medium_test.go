// Copyright Punit Mishra, 2026. All rights reserved.

package medium

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punitmishra/publish-engine/pkg/types"
)

func testHTTPCfg() types.HTTPConfig {
	return types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "publish-engine-test/0.1"}
}

func withTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	orig := apiBase
	apiBase = ts.URL
	t.Cleanup(func() { apiBase = orig })

	client, err := New("integration-token", testHTTPCfg())
	require.NoError(t, err)
	return client
}

func TestNewRequiresToken(t *testing.T) {
	_, err := New("", testHTTPCfg())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MEDIUM_TOKEN")
}

func TestMe(t *testing.T) {
	client := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "Bearer integration-token", r.Header.Get("Authorization"))
		assert.Equal(t, "publish-engine-test/0.1", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"data":{"id":"u123","username":"punit"}}`))
	})

	id, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u123", id)
}

func TestCreatePost(t *testing.T) {
	payload := types.MediumPayload{
		Title:         "Scaling Static Sites",
		ContentFormat: "markdown",
		Content:       "# Scaling Static Sites\n\nbody\n",
		Tags:          []string{"Web", "Performance"},
		CanonicalURL:  "https://punitmishra.github.io/blog/scaling-static-sites",
		PublishStatus: types.StatusDraft,
		License:       "all-rights-reserved",
	}

	client := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/u123/posts", r.URL.Path)

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "markdown", got["contentFormat"])
		assert.Equal(t, "draft", got["publishStatus"])
		assert.Equal(t, "all-rights-reserved", got["license"])
		assert.Equal(t, payload.CanonicalURL, got["canonicalUrl"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"p1","url":"https://medium.com/@punit/p1"}}`))
	})

	url, err := client.CreatePost(context.Background(), "u123", payload)
	require.NoError(t, err)
	assert.Equal(t, "https://medium.com/@punit/p1", url)
}

func TestCreatePostAPIError(t *testing.T) {
	client := withTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"message":"Invalid tags","code":2002}]}`))
	})

	_, err := client.CreatePost(context.Background(), "u123", types.MediumPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid tags")
}
