package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

func newTestServer(t *testing.T, cfg config.ServerConfig) (*httptest.Server, *dictionary.MemoryStore) {
	t.Helper()

	validator, err := dictionary.NewValidator()
	require.NoError(t, err)
	store := dictionary.NewMemoryStore()
	handler, err := NewHandler(cfg, store, validator)
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, store
}

func TestNewHandler(t *testing.T) {
	srv, store := newTestServer(t, config.ServerConfig{
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
		Static: config.StaticConfig{Enabled: true, Index: "store.html"},
	})

	resp, err := http.PostForm(srv.URL+"/api/definitions", url.Values{
		"word":       {"Book"},
		"definition": {"A set of pages."},
	})
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"requestId": 1, "word": "Book", "definition": "A set of pages."}`, string(body))
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, 1, store.Len())

	resp, err = http.Get(srv.URL + "/search/?term=book")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "A set of pages.", string(body))

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/anything", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.True(t, strings.Contains(string(body), "storeForm"))

	resp, err = http.Get(srv.URL + "/foo/bar")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNewHandler_StaticDisabled(t *testing.T) {
	srv, _ := newTestServer(t, config.ServerConfig{})

	resp, err := http.Get(srv.URL + "/store.html")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "404 Not Found", string(body))
}

func TestNewHandler_StaticDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("custom"), 0644))

	srv, _ := newTestServer(t, config.ServerConfig{
		Static: config.StaticConfig{Enabled: true, Directory: dir, Index: "index.html"},
	})

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "custom", string(body))
}

func TestNewHandler_MissingStaticDirectory(t *testing.T) {
	validator, err := dictionary.NewValidator()
	require.NoError(t, err)

	_, err = NewHandler(config.ServerConfig{
		Static: config.StaticConfig{Enabled: true, Directory: filepath.Join(t.TempDir(), "missing")},
	}, dictionary.NewMemoryStore(), validator)
	assert.Error(t, err)
}
