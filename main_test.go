package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mager/woodshed/config"
	"github.com/mager/woodshed/handler/scales"
	"github.com/mager/woodshed/logger"
	"github.com/mager/woodshed/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

type noCache struct {
	scales.RankingCache
}

func (noCache) Enabled() bool { return false }

func newTestRouter(t *testing.T) (http.Handler, *metrics.Metrics) {
	t.Helper()
	log, _ := logger.NewTestLogger()
	m := metrics.New()
	cfg := config.Config{DefaultAlpha: 0.1}
	router := NewRouter(RouterParams{
		Log:     log,
		Metrics: m,
		Routes: []Route{
			scales.NewRankingHandler(log, cfg, noCache{}, m),
			scales.NewAnalyzeHandler(log, cfg),
		},
	})
	return router, m
}

func TestRouter(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/scales/analyze?notes=0,4,7", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/scales/analyze?notes=0,4,7", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `route="/api/scales/analyze"`)
}

func TestRequestID(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/scales/analyze?notes=0", nil))
	_, err := uuid.Parse(rr.Header().Get(requestIDHeader))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/scales/analyze?notes=0", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get(requestIDHeader))
}

func TestApp(t *testing.T) {
	require.NoError(t, fx.ValidateApp(appOptions(), fx.NopLogger))
}
