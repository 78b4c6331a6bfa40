package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatencyRecorder_Record(t *testing.T) {
	r := NewLatencyRecorder()
	for _, ms := range []int{1, 2, 3, 4, 100} {
		r.Record("GET /explore", time.Duration(ms)*time.Millisecond)
	}
	r.Record("GET /feed/:user_id", 0)
	r.Record("GET /feed/:user_id", time.Hour)

	snap := r.Snapshot()
	require.Len(t, snap, 2)

	explore := snap[0]
	assert.Equal(t, "GET /explore", explore.Route)
	assert.EqualValues(t, 5, explore.Count)
	assert.InDelta(t, 3000, explore.P50, 10)
	assert.InDelta(t, 100000, explore.Max, 100)

	feed := snap[1]
	assert.Equal(t, "GET /feed/:user_id", feed.Route)
	assert.EqualValues(t, 2, feed.Count)
	assert.InDelta(t, float64(maxLatencyMicros), float64(feed.Max), float64(maxLatencyMicros)/100, "clamped to range")

	r.Reset()
	assert.Empty(t, r.Snapshot())
}

func TestLatencyRecorder_Middleware(t *testing.T) {
	r := NewLatencyRecorder()
	e := echo.New()
	e.Use(r.Middleware())
	e.GET("/posts/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/debug/latency", r.Handler)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/abc", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/latency", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var snap []RouteLatency
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.NotEmpty(t, snap)

	byRoute := map[string]RouteLatency{}
	for _, s := range snap {
		byRoute[s.Route] = s
	}
	assert.EqualValues(t, 3, byRoute["GET /posts/:id"].Count)
}
