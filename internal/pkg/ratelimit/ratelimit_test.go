package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAllow_SlidingWindow(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	lim := New(2, time.Minute)
	lim.now = func() time.Time { return now }

	ok, remaining, _ := lim.Allow("ip")
	require.True(t, ok)
	require.Equal(t, 1, remaining)

	ok, remaining, _ = lim.Allow("ip")
	require.True(t, ok)
	require.Equal(t, 0, remaining)

	ok, _, reset := lim.Allow("ip")
	require.False(t, ok)
	require.Equal(t, now.Add(time.Minute), reset)

	now = now.Add(61 * time.Second)
	ok, _, _ = lim.Allow("ip")
	require.True(t, ok)
}

func TestCleanupDropsIdleKeys(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	lim := New(5, time.Minute)
	lim.now = func() time.Time { return now }

	lim.Allow("a")
	lim.Allow("b")
	require.Equal(t, 2, lim.Keys())

	now = now.Add(2 * time.Minute)
	lim.Cleanup()
	require.Equal(t, 0, lim.Keys())

	lim.Allow("c")
	lim.Reset("c")
	require.Equal(t, 0, lim.Keys())
}

func TestStartCleanup_NonPositiveInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lim := New(5, 0)
	require.NotPanics(t, func() {
		lim.StartCleanup(ctx, lim.Window())
		lim.StartCleanup(ctx, -time.Second)
	})
}
