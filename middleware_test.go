package metrotracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"metrotracker/internal/clock"
	"metrotracker/metrics"
)

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC))
	rl := newRateLimiter(10, 20, clk, metrics.New())

	rl.limiterFor("198.51.100.1")
	clk.Advance(rateLimiterIdleAfter + time.Minute)
	rl.limiterFor("198.51.100.2")

	rl.sweepOnce()
	assert.Equal(t, 1, rl.clientCount())

	// The surviving client keeps its bucket.
	lim := rl.limiterFor("198.51.100.2")
	assert.True(t, lim.Allow())
	assert.Equal(t, 1, rl.clientCount())
}

func TestRateLimiterSweepKeepsActiveClients(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC))
	rl := newRateLimiter(10, 20, clk, metrics.New())

	rl.limiterFor("198.51.100.1")
	clk.Advance(rateLimiterIdleAfter / 2)
	rl.limiterFor("198.51.100.1")
	clk.Advance(rateLimiterIdleAfter / 2)

	// Seen halfway through the idle window, so still inside it.
	rl.sweepOnce()
	assert.Equal(t, 1, rl.clientCount())
}
