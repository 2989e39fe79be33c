package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrUnauthorized is returned by Read when the server answers 401 and the
// caller asked for OnUnauthorizedError.
var ErrUnauthorized = errors.New("unauthorized")

// HTTPError carries a non-success response from the API.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// UnauthorizedPolicy controls how Read reacts to a 401 response.
type UnauthorizedPolicy int

const (
	// OnUnauthorizedReturnNull makes Read report a miss without error,
	// for resources that are simply absent for anonymous callers.
	OnUnauthorizedReturnNull UnauthorizedPolicy = iota
	// OnUnauthorizedError makes Read fail with ErrUnauthorized.
	OnUnauthorizedError
)

// Client is a typed API client with a read-through, write-invalidate
// cache keyed by resource path. Cached entries have no TTL; callers
// invalidate the affected keys after every mutation.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	store      Store
}

// New builds a client against baseURL using store for cached reads.
// A nil store falls back to an in-memory one.
func New(baseURL string, store Store) *Client {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		store:      store,
	}
}

// SetToken sets the bearer token attached to every request.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Request performs an authenticated call and returns the raw response
// body. Non-success statuses produce an *HTTPError whose message comes
// from the JSON error body when present, falling back to the status
// text. An empty success body is valid and returns nil.
func (c *Client) Request(ctx context.Context, method, resource string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+resource, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	}
	if len(data) == 0 {
		return nil, nil
	}
	return data, nil
}

// Read resolves key from the cache, fetching it with a GET on a miss
// and storing the result. dst is left untouched and found is false when
// the resource resolves to nothing (empty body, or 401 under
// OnUnauthorizedReturnNull).
func (c *Client) Read(ctx context.Context, key string, dst any, onUnauthorized UnauthorizedPolicy) (bool, error) {
	cached, hit, err := c.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("cache lookup failed: %w", err)
	}
	if hit {
		if err := json.Unmarshal(cached, dst); err != nil {
			// Corrupt entry: drop it and refetch.
			_ = c.store.Delete(ctx, key)
		} else {
			return true, nil
		}
	}

	data, err := c.Request(ctx, http.MethodGet, key, nil)
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == http.StatusUnauthorized {
			if onUnauthorized == OnUnauthorizedReturnNull {
				return false, nil
			}
			return false, ErrUnauthorized
		}
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}
	if err := c.store.Set(ctx, key, data); err != nil {
		return false, fmt.Errorf("cache store failed: %w", err)
	}
	return true, nil
}

// Invalidate drops the exact keys from the cache so the next Read
// refetches them.
func (c *Client) Invalidate(ctx context.Context, keys ...string) error {
	return c.store.Delete(ctx, keys...)
}

// InvalidatePrefix drops every cached key starting with prefix.
func (c *Client) InvalidatePrefix(ctx context.Context, prefix string) error {
	return c.store.DeletePrefix(ctx, prefix)
}

func errorMessage(status int, body []byte) string {
	if len(body) > 0 {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
			return payload.Error
		}
	}
	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}
