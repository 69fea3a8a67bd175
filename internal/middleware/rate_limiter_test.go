package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// resetLimiterState clears the visitor table and restores the default
// limits so tests do not leak configuration into each other.
func resetLimiterState() {
	mu.Lock()
	visitors = make(map[string]*visitor)
	requestsPerSecond = 5
	burstSize = 10
	mu.Unlock()
}

// serveFrom sends one GET /api/v1/transactions through the limited handler,
// pretending it came from the given client address.
func serveFrom(e *echo.Echo, handler echo.HandlerFunc, addr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// SendError writes the 429 itself and returns nil.
	_ = handler(c)
	return rec
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func TestRateLimiterAllowsBurstThenThrottles(t *testing.T) {
	resetLimiterState()

	e := echo.New()
	handler := RateLimiter()(okHandler)

	for i := 0; i < 5; i++ {
		rec := serveFrom(e, handler, "10.1.0.7:40001")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass within the burst", i)
	}

	throttled := false
	for i := 0; i < 20; i++ {
		if serveFrom(e, handler, "10.1.0.7:40001").Code == http.StatusTooManyRequests {
			throttled = true
			break
		}
	}
	assert.True(t, throttled, "a rapid client should hit the limit")
}

func TestRateLimiterWithConfigHonorsBurst(t *testing.T) {
	resetLimiterState()

	e := echo.New()
	handler := RateLimiterWithConfig(1, 3)(okHandler)

	for i := 0; i < 3; i++ {
		rec := serveFrom(e, handler, "10.1.0.8:40002")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := serveFrom(e, handler, "10.1.0.8:40002")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiterTracksClientsIndependently(t *testing.T) {
	resetLimiterState()

	e := echo.New()
	handler := RateLimiter()(okHandler)

	// One client burning its budget must not starve the others.
	for _, addr := range []string{"10.1.0.11:4000", "10.1.0.12:4000", "10.1.0.13:4000"} {
		for i := 0; i < 5; i++ {
			rec := serveFrom(e, handler, addr)
			assert.Equal(t, http.StatusOK, rec.Code, "request %d from %s should pass", i, addr)
		}
	}
}

func TestGetIPHeaderPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "forwarded-for from a proxy",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9"},
			remoteAddr: "10.1.0.1:9999",
			expected:   "203.0.113.9",
		},
		{
			name:       "real-ip from a proxy",
			headers:    map[string]string{"X-Real-IP": "203.0.113.10"},
			remoteAddr: "10.1.0.1:9999",
			expected:   "203.0.113.10",
		},
		{
			name: "forwarded-for wins over real-ip",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.9",
				"X-Real-IP":       "203.0.113.10",
			},
			remoteAddr: "10.1.0.1:9999",
			expected:   "203.0.113.9",
		},
		{
			name:       "no proxy headers falls back to the socket address",
			headers:    map[string]string{},
			remoteAddr: "10.1.0.22:9999",
			expected:   "10.1.0.22",
		},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.expected, getIP(c))
		})
	}
}

func TestStaleVisitorsAreDropped(t *testing.T) {
	resetLimiterState()

	mu.Lock()
	visitors["10.1.0.30"] = &visitor{lastSeen: time.Now().Add(-5 * time.Minute)}
	visitors["10.1.0.31"] = &visitor{lastSeen: time.Now()}
	mu.Unlock()

	// Same sweep cleanupVisitors runs every minute.
	mu.Lock()
	for ip, v := range visitors {
		if time.Since(v.lastSeen) > 3*time.Minute {
			delete(visitors, ip)
		}
	}
	mu.Unlock()

	mu.RLock()
	_, staleKept := visitors["10.1.0.30"]
	_, activeKept := visitors["10.1.0.31"]
	mu.RUnlock()

	assert.False(t, staleKept, "an idle client should be forgotten")
	assert.True(t, activeKept, "an active client must survive the sweep")
}

func TestRateLimiterUnderConcurrentLoad(t *testing.T) {
	resetLimiterState()

	e := echo.New()
	handler := RateLimiter()(okHandler)

	var wg sync.WaitGroup
	var tally sync.Mutex
	allowed := 0
	throttled := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := serveFrom(e, handler, "10.1.0.40:50000")

			tally.Lock()
			switch rec.Code {
			case http.StatusOK:
				allowed++
			case http.StatusTooManyRequests:
				throttled++
			}
			tally.Unlock()
		}()
	}
	wg.Wait()

	assert.Greater(t, allowed, 0, "the burst allowance should let some through")
	assert.Greater(t, throttled, 0, "the rest should be throttled")
	assert.Equal(t, 20, allowed+throttled)
}
