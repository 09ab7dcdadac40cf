package metrotracker

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"metrotracker/internal/clock"
	"metrotracker/metrics"
)

// statusRecorder captures the response status for the request metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestMetrics counts requests and observes their latency per
// method/path.
func withRequestMetrics(mx *metrics.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		mx.HTTPRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rec.status)).Inc()
		mx.HTTPRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

const (
	rateLimiterSweepEvery = 5 * time.Minute
	rateLimiterIdleAfter  = 10 * time.Minute
)

// rateClient pairs a client's limiter with its last request time so idle
// entries can be evicted.
type rateClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter applies a per-client-IP token bucket. A zero rate disables
// limiting entirely. Clients idle longer than rateLimiterIdleAfter are
// swept from the map.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateClient
	limit   rate.Limit
	burst   int
	clk     clock.Clock
	mx      *metrics.Metrics
}

func newRateLimiter(perSec, burst int, clk clock.Clock, mx *metrics.Metrics) *rateLimiter {
	if burst < perSec {
		burst = perSec
	}
	return &rateLimiter{
		clients: make(map[string]*rateClient),
		limit:   rate.Limit(perSec),
		burst:   burst,
		clk:     clk,
		mx:      mx,
	}
}

func (rl *rateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	c, ok := rl.clients[ip]
	if !ok {
		c = &rateClient{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = rl.clk.Now()
	return c.limiter
}

// sweepOnce drops clients that have not been seen within
// rateLimiterIdleAfter. Separate from the ticker loop so tests can run it
// synchronously.
func (rl *rateLimiter) sweepOnce() {
	cutoff := rl.clk.Now().Add(-rateLimiterIdleAfter)
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *rateLimiter) sweep() {
	t := time.NewTicker(rateLimiterSweepEvery)
	defer t.Stop()
	for range t.C {
		rl.sweepOnce()
	}
}

func (rl *rateLimiter) clientCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

func (rl *rateLimiter) wrap(next http.Handler) http.Handler {
	if rl.limit <= 0 {
		return next
	}
	go rl.sweep()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.limiterFor(ip).Allow() {
			rl.mx.RateLimitedTotal.Inc()
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
