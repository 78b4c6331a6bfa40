package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/labstack/echo/v4"
)

const (
	minLatencyMicros = 1
	maxLatencyMicros = int64(60 * time.Second / time.Microsecond)
)

// RouteLatency summarises the recorded latencies of one route, in microseconds.
type RouteLatency struct {
	Route string  `json:"route"`
	Count int64   `json:"count"`
	Mean  float64 `json:"mean_us"`
	P50   int64   `json:"p50_us"`
	P95   int64   `json:"p95_us"`
	P99   int64   `json:"p99_us"`
	Max   int64   `json:"max_us"`
}

// LatencyRecorder keeps one histogram per "METHOD /route/:pattern".
type LatencyRecorder struct {
	mu         sync.Mutex
	histograms map[string]*hdrhistogram.Histogram
	now        func() time.Time
}

func NewLatencyRecorder() *LatencyRecorder {
	return &LatencyRecorder{
		histograms: make(map[string]*hdrhistogram.Histogram),
		now:        time.Now,
	}
}

// Middleware times every request, including ones that end in an error.
func (r *LatencyRecorder) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := r.now()
			err := next(c)
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			r.Record(c.Request().Method+" "+route, r.now().Sub(start))
			return err
		}
	}
}

// Record adds one observation. Values outside the histogram range are clamped.
func (r *LatencyRecorder) Record(route string, d time.Duration) {
	v := d.Microseconds()
	if v < minLatencyMicros {
		v = minLatencyMicros
	}
	if v > maxLatencyMicros {
		v = maxLatencyMicros
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.histograms[route]
	if !ok {
		h = hdrhistogram.New(minLatencyMicros, maxLatencyMicros, 3)
		r.histograms[route] = h
	}
	_ = h.RecordValue(v)
}

// Snapshot returns per-route summaries sorted by route.
func (r *LatencyRecorder) Snapshot() []RouteLatency {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]RouteLatency, 0, len(r.histograms))
	for route, h := range r.histograms {
		out = append(out, RouteLatency{
			Route: route,
			Count: h.TotalCount(),
			Mean:  h.Mean(),
			P50:   h.ValueAtQuantile(50),
			P95:   h.ValueAtQuantile(95),
			P99:   h.ValueAtQuantile(99),
			Max:   h.Max(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Route < out[j].Route })
	return out
}

// Reset drops every histogram.
func (r *LatencyRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.histograms = make(map[string]*hdrhistogram.Histogram)
}

// Handler serves the current snapshot as JSON.
func (r *LatencyRecorder) Handler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.Snapshot())
}
