// Copyright Punit Mishra, 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the publishing clients.
package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Transport sets fixed headers (auth, User-Agent) on every request before
// delegating to Base. A nil Base falls back to http.DefaultTransport.
type Transport struct {
	Base    http.RoundTripper
	Headers map[string]string
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	for k, v := range t.Headers {
		if v != "" {
			clone.Header.Set(k, v)
		}
	}
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// maxErrorBody caps how much of an API error body is kept for display.
const maxErrorBody = 2048

// APIError is a non-success HTTP response from a publishing API. Body
// holds up to maxErrorBody bytes of the raw response so the API's own
// error message reaches the user.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("API returned HTTP %d: %s", e.StatusCode, e.Body)
}

// ErrorFromResponse drains resp.Body and builds an APIError. The body is
// closed before returning.
func ErrorFromResponse(resp *http.Response) *APIError {
	defer resp.Body.Close()
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	io.Copy(io.Discard, resp.Body)
	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       string(bytes.TrimSpace(data)),
	}
}

// DoJSON sends a JSON request and decodes a JSON response into out.
// A nil in sends no body; a nil out discards the response body. Any
// status other than want produces an *APIError. There is no retry: the
// tool is one-shot and a failed call should surface immediately.
func DoJSON(ctx context.Context, client *http.Client, method, url string, in, out any, want int) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}

	if resp.StatusCode != want {
		return ErrorFromResponse(resp)
	}

	defer resp.Body.Close()
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
