//go:build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/learninglog-backend/internal/adapter/redis/session"
	"github.com/heartmarshall/learninglog-backend/internal/app"
	"github.com/heartmarshall/learninglog-backend/internal/config"
)

const testPassword = "correct-horse-battery"

// ---------------------------------------------------------------------------
// Server setup.
// ---------------------------------------------------------------------------

type testServer struct {
	*httptest.Server
	redis *miniredis.Miniredis
}

func testConfig() *config.Config {
	return &config.Config{
		Redis: config.RedisConfig{
			KeyPrefix:  "session:",
			SessionTTL: time.Hour,
		},
		Auth: config.AuthConfig{
			JWTSecret:        "e2e-secret-at-least-32-characters-long",
			JWTIssuer:        "learninglog-e2e",
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  24 * time.Hour,
			PasswordHashCost: bcrypt.MinCost,
			SessionCookie:    "learninglog_session",
			SecureCookie:     false,
			LoginURL:         "/users/login",
		},
	}
}

// setupTestServer runs the full HTTP stack against a containerised Postgres
// and an in-memory Redis.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := app.NewHandler(cfg, logger, app.Infra{
		Pool:     pool,
		Sessions: session.NewStoreWithClient(client, cfg.Redis.KeyPrefix),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, redis: mr}
}

// ---------------------------------------------------------------------------
// Browser-like client: cookie jar, redirects are not followed.
// ---------------------------------------------------------------------------

type browser struct {
	t        *testing.T
	ts       *testServer
	client   *http.Client
	username string
}

func newBrowser(t *testing.T, ts *testServer) *browser {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &browser{
		t:  t,
		ts: ts,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
			Timeout: 10 * time.Second,
		},
	}
}

// uniqueUsername keeps tests independent on the shared database.
func uniqueUsername(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString()[:8], "-", "")
}

// registeredBrowser registers a fresh user and keeps the session cookie.
func registeredBrowser(t *testing.T, ts *testServer, prefix string) *browser {
	t.Helper()
	b := newBrowser(t, ts)
	b.username = uniqueUsername(prefix)

	resp := b.postForm("/users/register", url.Values{
		"username":         {b.username},
		"password":         {testPassword},
		"password_confirm": {testPassword},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode, "register %s", b.username)
	require.Equal(t, "/topics", resp.Header.Get("Location"))
	return b
}

func (b *browser) do(req *http.Request) *http.Response {
	b.t.Helper()
	resp, err := b.client.Do(req)
	require.NoError(b.t, err)
	return resp
}

func (b *browser) get(path string) *http.Response {
	b.t.Helper()
	req, err := http.NewRequest(http.MethodGet, b.ts.URL+path, nil)
	require.NoError(b.t, err)
	return b.do(req)
}

func (b *browser) postForm(path string, form url.Values) *http.Response {
	b.t.Helper()
	req, err := http.NewRequest(http.MethodPost, b.ts.URL+path, strings.NewReader(form.Encode()))
	require.NoError(b.t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

// getJSON fetches path and decodes the body into a generic map.
func (b *browser) getJSON(path string) (int, map[string]any) {
	b.t.Helper()
	resp := b.get(path)
	defer resp.Body.Close()
	return resp.StatusCode, decodeBody(b.t, resp)
}

// ---------------------------------------------------------------------------
// API client: JSON bodies, optional bearer token.
// ---------------------------------------------------------------------------

func apiRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		Timeout:       10 * time.Second,
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if resp.ContentLength == 0 {
		return body
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ---------------------------------------------------------------------------
// Journal response helpers.
// ---------------------------------------------------------------------------

func topicList(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()
	return objects(t, body["topics"])
}

func entryList(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()
	return objects(t, body["entries"])
}

func objects(t *testing.T, v any) []map[string]any {
	t.Helper()
	raw, ok := v.([]any)
	require.True(t, ok, "expected array, got %T", v)
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		require.True(t, ok, "expected object, got %T", item)
		out = append(out, obj)
	}
	return out
}

// createTopic posts the new-topic form and returns the id of the created topic.
func (b *browser) createTopic(text string) string {
	b.t.Helper()
	resp := b.postForm("/topics/new", url.Values{"text": {text}})
	resp.Body.Close()
	require.Equal(b.t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(b.t, "/topics", resp.Header.Get("Location"))

	status, body := b.getJSON("/topics")
	require.Equal(b.t, http.StatusOK, status)
	topics := topicList(b.t, body)
	require.NotEmpty(b.t, topics)
	last := topics[len(topics)-1]
	require.Equal(b.t, text, last["text"])
	return last["id"].(string)
}
