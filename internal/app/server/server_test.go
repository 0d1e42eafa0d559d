package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reajuste/internal/platform/config"
	"reajuste/internal/platform/metrics"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{margin:0}"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	return config.Config{
		Addr:                 ":0",
		StaticDir:            dir,
		Environment:          "test",
		DefaultReferenceYear: 2024,
		RateLimitPerMinute:   0,
		MetricsEnabled:       true,
		ShutdownTimeout:      time.Second,
	}
}

func newTestServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router, err := NewRouter(cfg, logger, metrics.New())
	require.NoError(t, err)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func fetch(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestServerJourney(t *testing.T) {
	srv := newTestServer(t, testConfig(t))

	resp, body := fetch(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)

	resp, body = fetch(t, srv.URL+"/style.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "body{margin:0}", body)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))

	resp, _ = fetch(t, srv.URL+"/sub")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = fetch(t, srv.URL+"/missing.js")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = fetch(t, srv.URL+"/?idade=45&sexo=F&salario_base=2000&anoContratacao=2010&matricula=1&anoReferencia=2024")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "R$ 2.186,00")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, body = fetch(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"calculationsTotal":1`)
}

func TestServerRateLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimitPerMinute = 1
	srv := newTestServer(t, cfg)

	resp, _ := fetch(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = fetch(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestMetricsCanBeDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.MetricsEnabled = false
	srv := newTestServer(t, cfg)

	resp, _ := fetch(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
