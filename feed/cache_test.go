package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"metrotracker/internal/clock"
	"metrotracker/metrics"
)

func TestCacheServesFreshSnapshotWithoutRefetch(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC))
	calls := 0
	c := NewCache(func(context.Context) ([]Vehicle, error) {
		calls++
		return []Vehicle{{ID: "v1"}}, nil
	}, clk, metrics.New())

	got, src := c.Vehicles(context.Background(), time.Minute)
	assert.Len(t, got, 1)
	assert.Equal(t, SourceLive, src)
	assert.Equal(t, 1, calls)

	clk.Advance(30 * time.Second)
	got, src = c.Vehicles(context.Background(), time.Minute)
	assert.Len(t, got, 1)
	assert.Equal(t, SourceLive, src)
	assert.Equal(t, 1, calls, "fresh snapshot must not trigger a fetch")

	clk.Advance(31 * time.Second)
	_, _ = c.Vehicles(context.Background(), time.Minute)
	assert.Equal(t, 2, calls, "expired snapshot must refresh")
}

func TestCacheFallsBackToStaleOnFailure(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC))
	var fail bool
	c := NewCache(func(context.Context) ([]Vehicle, error) {
		if fail {
			return nil, errors.New("feed down")
		}
		return []Vehicle{{ID: "v1"}, {ID: "v2"}}, nil
	}, clk, metrics.New())

	_, src := c.Vehicles(context.Background(), time.Minute)
	assert.Equal(t, SourceLive, src)

	fail = true
	clk.Advance(2 * time.Minute)
	got, src := c.Vehicles(context.Background(), time.Minute)
	assert.Equal(t, SourceStale, src)
	assert.Len(t, got, 2)

	last, ok := c.LastUpdate()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC), last)
	assert.Equal(t, 2, c.CachedCount())
}

func TestCacheEmptyWhenNeverFetched(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC))
	c := NewCache(func(context.Context) ([]Vehicle, error) {
		return nil, errors.New("feed down")
	}, clk, metrics.New())

	got, src := c.Vehicles(context.Background(), time.Minute)
	assert.Nil(t, got)
	assert.Equal(t, SourceNone, src)

	_, ok := c.LastUpdate()
	assert.False(t, ok)
}

func TestCacheIgnoresEmptySuccessfulFetch(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC))
	responses := [][]Vehicle{{{ID: "v1"}}, {}}
	c := NewCache(func(context.Context) ([]Vehicle, error) {
		out := responses[0]
		if len(responses) > 1 {
			responses = responses[1:]
		}
		return out, nil
	}, clk, metrics.New())

	_, _ = c.Vehicles(context.Background(), time.Minute)
	clk.Advance(2 * time.Minute)

	// The empty refresh result keeps the earlier snapshot, marked stale.
	got, src := c.Vehicles(context.Background(), time.Minute)
	assert.Equal(t, SourceStale, src)
	assert.Len(t, got, 1)
}
