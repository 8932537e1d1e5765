package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// authHeader carries the API key. Stockfighter uses a bare custom header, not
// a standard Authorization scheme.
const authHeader = "X-Starfighter-Authorization"

// get performs a GET request and returns the raw response body.
//
// path is appended to the base URL verbatim; callers must pre-encode any path
// segments that need it. Status codes are not inspected: the server reports
// failures through the per-endpoint success flag, even on non-200 responses.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &RequestError{Path: path, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(authHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Path: path, Err: err}
	}

	return body, nil
}

// getJSON performs a GET request and decodes the body into result.
//
// A body that is not valid JSON yields a *ResponseBodyError. A body that is
// valid JSON but does not fit result's shape (non-object top level, mistyped
// field) yields a *ShapeError.
func (c *Client) getJSON(ctx context.Context, path string, result any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ShapeError{
				Path:   path,
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("unexpected JSON %s", typeErr.Value),
			}
		}
		return &ResponseBodyError{Path: path, Err: err}
	}

	return nil
}
