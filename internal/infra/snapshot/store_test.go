//go:build unit

package snapshot_test

import (
	"sync"
	"testing"
	"time"

	"booking-calculator/internal/infra/snapshot"
	"booking-calculator/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLStorage_Expiry(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	store := snapshot.NewTTLStorage[string, int](time.Minute, clk)

	store.Set("a", 1)
	v, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	clk.Add(59 * time.Second)
	_, ok = store.Get("a")
	assert.True(t, ok)

	clk.Add(time.Second)
	_, ok = store.Get("a")
	assert.False(t, ok, "entry expires exactly at its ttl")
	assert.Equal(t, 1, store.Len(), "expired entries stay until swept")

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, store.Len())
}

func TestTTLStorage_SetRestartsTTL(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	store := snapshot.NewTTLStorage[string, int](time.Minute, clk)

	store.Set("a", 1)
	clk.Add(45 * time.Second)
	store.Set("a", 2)
	clk.Add(45 * time.Second)

	v, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestTTLStorage_Delete(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	store := snapshot.NewTTLStorage[string, int](time.Minute, clk)

	store.Set("a", 1)
	store.Set("b", 2)
	store.Delete("b")

	_, ok := store.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())
}

func TestTTLStorage_GetOrSet(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	store := snapshot.NewTTLStorage[string, int](time.Minute, clk)
	created := 0
	next := func() int {
		created++
		return created * 10
	}

	assert.Equal(t, 10, store.GetOrSet("a", next))
	clk.Add(45 * time.Second)
	assert.Equal(t, 10, store.GetOrSet("a", next), "live value is kept")
	clk.Add(45 * time.Second)
	assert.Equal(t, 10, store.GetOrSet("a", next), "each call restarts the ttl")
	assert.Equal(t, 1, created)

	clk.Add(time.Minute)
	assert.Equal(t, 20, store.GetOrSet("a", next), "expired value is replaced")
	assert.Equal(t, 1, store.Len())
}

func TestTTLStorage_GetOrSetConcurrentFirstUse(t *testing.T) {
	store := snapshot.NewTTLStorage[string, *int](time.Minute, clock.NewRealClock())

	var wg sync.WaitGroup
	got := make([]*int, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = store.GetOrSet("a", func() *int { return new(int) })
		}(i)
	}
	wg.Wait()

	for _, p := range got {
		assert.Same(t, got[0], p)
	}
}

func TestTTLStorage_ConcurrentAccess(t *testing.T) {
	store := snapshot.NewTTLStorage[int, int](time.Minute, clock.NewRealClock())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Set(i%4, i)
			store.Get(i % 4)
			store.Sweep()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, store.Len())
}
