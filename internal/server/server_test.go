package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tripmap/internal/server/response"
	"github.com/agentstation/tripmap/internal/transport"
	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/logging"
	"github.com/agentstation/tripmap/pkg/ratings"
	"github.com/agentstation/tripmap/pkg/ratings/memory"
)

func newTestServer(t *testing.T, cfg Config) (*httptest.Server, *memory.Store) {
	t.Helper()
	local := memory.New()
	s, err := New(local, cfg, logging.NewNopLogger())
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv, local
}

func newClient(t *testing.T, url string, opts ...transport.Option) *transport.Client {
	t.Helper()
	c, err := transport.New(url, append([]transport.Option{transport.WithLogger(logging.NewNopLogger())}, opts...)...)
	require.NoError(t, err)
	return c
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/api/ratings", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestNewRequiresStore(t *testing.T) {
	_, err := New(nil, DefaultConfig(), nil)
	var cfgErr *errors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestClientRoundTrip(t *testing.T) {
	srv, local := newTestServer(t, DefaultConfig())
	c := newClient(t, srv.URL)
	ctx := context.Background()

	m, err := c.Fetch(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)

	m, err = c.Set(ctx, "Caruso's", 4)
	require.NoError(t, err)
	assert.Equal(t, ratings.Mapping{"Caruso's": 4}, m)

	m, err = c.Set(ctx, "Solvang Bakery", 2)
	require.NoError(t, err)
	assert.Equal(t, ratings.Mapping{"Caruso's": 4, "Solvang Bakery": 2}, m)

	m, err = c.Set(ctx, "Caruso's", ratings.Unrated)
	require.NoError(t, err)
	assert.Equal(t, ratings.Mapping{"Solvang Bakery": 2}, m)

	m, err = c.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, ratings.Mapping{"Solvang Bakery": 2}, m)

	stored, err := ratings.ReadMapping(local, DefaultConfig().Key)
	require.NoError(t, err)
	assert.Equal(t, m, stored)
}

func TestGetReturnsBareMapping(t *testing.T) {
	srv, local := newTestServer(t, DefaultConfig())
	require.NoError(t, ratings.WriteMapping(local, DefaultConfig().Key, ratings.Mapping{"Lux One": 5}))

	resp, err := http.Get(srv.URL + "/api/ratings")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]int{"Lux One": 5}, body)
}

func TestSetRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed json", `{"name":`, http.StatusBadRequest, "BAD_REQUEST"},
		{"missing name", `{"star":3}`, http.StatusBadRequest, "BAD_REQUEST"},
		{"star too high", `{"name":"Lux One","star":6}`, http.StatusBadRequest, "BAD_REQUEST"},
		{"negative star", `{"name":"Lux One","star":-1}`, http.StatusBadRequest, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, local := newTestServer(t, DefaultConfig())
			resp := post(t, srv.URL, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)

			var env response.Response
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)

			_, found, err := local.Get(DefaultConfig().Key)
			require.NoError(t, err)
			assert.False(t, found, "rejected requests must not touch the store")
		})
	}
}

func TestSetRejectsOversizedBody(t *testing.T) {
	local := memory.New()
	s, err := New(local, DefaultConfig(), logging.NewNopLogger())
	require.NoError(t, err)

	body := `{"name":"` + strings.Repeat("x", 70<<10) + `","star":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/ratings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "64 KiB")
}

func TestClientSeesRejectionAsRemoteError(t *testing.T) {
	srv, _ := newTestServer(t, DefaultConfig())
	c := newClient(t, srv.URL)

	_, err := c.Set(context.Background(), "Lux One", 9)
	require.Error(t, err)
	assert.True(t, errors.IsRemoteUnavailable(err))
	var remote *errors.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusBadRequest, remote.StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t, DefaultConfig())

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/ratings", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, DefaultConfig())

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	var env struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "healthy", env.Data["status"])
}

func TestTokenAuth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Token = "s3cret"
	srv, _ := newTestServer(t, cfg)
	ctx := context.Background()

	_, err := newClient(t, srv.URL).Fetch(ctx)
	var remote *errors.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusUnauthorized, remote.StatusCode)

	clients := map[string]*transport.Client{
		"bearer": newClient(t, srv.URL, transport.WithAuth(transport.NewAuthenticator("bearer"), "s3cret")),
		"header": newClient(t, srv.URL, transport.WithAuth(transport.NewAuthenticator("header:X-API-Key"), "s3cret")),
		"query":  newClient(t, srv.URL, transport.WithAuth(transport.NewAuthenticator("query:api_key"), "s3cret")),
	}
	for name, c := range clients {
		t.Run(name, func(t *testing.T) {
			m, err := c.Set(ctx, "Lux One", 3)
			require.NoError(t, err)
			assert.Equal(t, ratings.Rating(3), m.Get("Lux One"))
		})
	}

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t, DefaultConfig())

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/ratings", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestServeStopsOnCancel(t *testing.T) {
	s, err := New(memory.New(), DefaultConfig(), logging.NewNopLogger())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	c := newClient(t, "http://"+ln.Addr().String())
	require.Eventually(t, func() bool {
		_, err := c.Fetch(context.Background())
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestConfigAddr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Host = "0.0.0.0"
	cfg.Port = 9090
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
}
