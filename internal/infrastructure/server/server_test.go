package server

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/utilkit/internal/infrastructure/config"
	"github.com/GriffinCanCode/utilkit/internal/infrastructure/logging"
)

func post(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Logging.Development = true
	if mutate != nil {
		mutate(cfg)
	}
	srv, err := NewServerWithLogger(cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })
	return srv
}

func TestNewServerRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Formatter.MaxLength = 0
	_, err := NewServerWithLogger(cfg, logging.NewNop())
	assert.Error(t, err)

	_, err = NewServerWithLogger(nil, logging.NewNop())
	assert.Error(t, err)
}

func TestServerAppliesEvaluatorConfig(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.Calculator.Precision = 0
		cfg.Formatter.TruncateSuffix = "~"
		cfg.Formatter.MaxLength = 4
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, post("/calculate", `{"operation":"divide","value1":"10","value2":"4"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var calc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &calc))
	assert.Equal(t, float64(3), calc["result"])

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, post("/format", `{"operation":"truncate","input":"hello world"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var formatted map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &formatted))
	assert.Equal(t, "hel~", formatted["formatted"])
}

func TestServerTracingHeaders(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("X-Trace-ID"), "trace_"))
	assert.True(t, strings.HasPrefix(rec.Header().Get("X-Span-ID"), "span_"))
}

func TestServerMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, post("/calculate", `{"operation":"sqrt","value1":"-1"}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `utilkit_evaluation_errors_total{code="NEGATIVE_DOMAIN",evaluator="calculator"} 1`)
	assert.Contains(t, rec.Body.String(), `utilkit_http_requests_total{method="POST",path="/calculate",status="400"} 1`)
}

func TestServerCompressesLargeResponses(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"id":"calculator"`)
	assert.Contains(t, string(body), `"id":"formatter"`)
}

func TestServerRateLimit(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.RequestsPerSecond = 1
		cfg.RateLimit.Burst = 1
	})

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv := newTestServer(t, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + ln.Addr().String() + "/")
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
