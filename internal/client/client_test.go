package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"talenthub/internal/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type job struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func TestClient_Request(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(`{"id":1,"title":"Backend Engineer"}`))
		case "/empty":
			w.WriteHeader(http.StatusNoContent)
		case "/error-json":
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error":"application already in progress"}`))
		case "/error-plain":
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream exploded"))
		case "/echo-auth":
			w.Write([]byte(`"` + r.Header.Get("Authorization") + `"`))
		}
	}))
	defer server.Close()

	c := client.New(server.URL, nil)
	ctx := context.Background()

	t.Run("Success body returned", func(t *testing.T) {
		data, err := c.Request(ctx, http.MethodGet, "/ok", nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":1,"title":"Backend Engineer"}`, string(data))
	})

	t.Run("Empty success body is not an error", func(t *testing.T) {
		data, err := c.Request(ctx, http.MethodGet, "/empty", nil)
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("JSON error body becomes the message", func(t *testing.T) {
		_, err := c.Request(ctx, http.MethodPost, "/error-json", map[string]int64{"job_id": 1})
		require.Error(t, err)

		var httpErr *client.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, "application already in progress", httpErr.Message)
	})

	t.Run("Non-JSON error body falls back to status text", func(t *testing.T) {
		_, err := c.Request(ctx, http.MethodGet, "/error-plain", nil)
		require.Error(t, err)

		var httpErr *client.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadGateway, httpErr.Status)
		assert.Equal(t, "502 Bad Gateway", httpErr.Message)
	})

	t.Run("Token attached to every call", func(t *testing.T) {
		c.SetToken("abc123")
		defer c.SetToken("")

		data, err := c.Request(ctx, http.MethodGet, "/echo-auth", nil)
		require.NoError(t, err)
		assert.Equal(t, `"Bearer abc123"`, string(data))
	})
}

func TestClient_Read_CacheRoundTrip(t *testing.T) {
	var hits atomic.Int64
	var title atomic.Value
	title.Store("Backend Engineer")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"id":1,"title":"` + title.Load().(string) + `"}`))
	}))
	defer server.Close()

	c := client.New(server.URL, client.NewMemoryStore())
	ctx := context.Background()
	key := "/api/v1/jobs/1"

	var got job
	found, err := c.Read(ctx, key, &got, client.OnUnauthorizedError)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Backend Engineer", got.Title)
	assert.Equal(t, int64(1), hits.Load())

	// Second read is served from the cache.
	got = job{}
	found, err = c.Read(ctx, key, &got, client.OnUnauthorizedError)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Backend Engineer", got.Title)
	assert.Equal(t, int64(1), hits.Load())

	// After a mutation the caller invalidates; the next read refetches and
	// sees the new value.
	title.Store("Staff Engineer")
	require.NoError(t, c.Invalidate(ctx, key))

	got = job{}
	found, err = c.Read(ctx, key, &got, client.OnUnauthorizedError)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Staff Engineer", got.Title)
	assert.Equal(t, int64(2), hits.Load())
}

func TestClient_Read_EmptyBodyIsMiss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := client.New(server.URL, nil)

	var got job
	found, err := c.Read(context.Background(), "/api/v1/jobs/404", &got, client.OnUnauthorizedError)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, got.ID)
}

func TestClient_Read_UnauthorizedPolicies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer server.Close()

	c := client.New(server.URL, nil)
	ctx := context.Background()

	t.Run("ReturnNull reports a miss", func(t *testing.T) {
		var got job
		found, err := c.Read(ctx, "/api/v1/users/me", &got, client.OnUnauthorizedReturnNull)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Error policy fails", func(t *testing.T) {
		var got job
		_, err := c.Read(ctx, "/api/v1/users/me", &got, client.OnUnauthorizedError)
		require.Error(t, err)
		assert.True(t, errors.Is(err, client.ErrUnauthorized))
	})
}

func TestClient_InvalidatePrefix(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"id":1,"title":"x"}`))
	}))
	defer server.Close()

	c := client.New(server.URL, client.NewMemoryStore())
	ctx := context.Background()

	var got job
	_, err := c.Read(ctx, client.JobKeys.Item(1), &got, client.OnUnauthorizedError)
	require.NoError(t, err)
	_, err = c.Read(ctx, client.JobKeys.List(), &got, client.OnUnauthorizedError)
	require.NoError(t, err)
	require.Equal(t, int64(2), hits.Load())

	// One prefix invalidation covers the item key and the list key.
	require.NoError(t, c.InvalidatePrefix(ctx, client.JobKeys.List()))

	_, err = c.Read(ctx, client.JobKeys.Item(1), &got, client.OnUnauthorizedError)
	require.NoError(t, err)
	_, err = c.Read(ctx, client.JobKeys.List(), &got, client.OnUnauthorizedError)
	require.NoError(t, err)
	assert.Equal(t, int64(4), hits.Load())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "/api/v1/jobs", client.JobKeys.List())
	assert.Equal(t, "/api/v1/jobs/7", client.JobKeys.Item(7))
	assert.Equal(t, "/api/v1/jobs/7/applications", client.JobKeys.Child(7, "applications"))
	assert.Equal(t, "/api/v1/jobs/saved", client.JobKeys.Named("saved"))
}
