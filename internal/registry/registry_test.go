package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HazyCorp/statscalc/pkg/statcalc"
)

func TestRegistry_HandlesStartAtZero(t *testing.T) {
	r := New(DefaultConfig())

	require.Equal(t, 0, r.Create())
	require.Equal(t, 1, r.Create())
	require.Equal(t, 2, r.Create())
	require.Equal(t, []int{0, 1, 2}, r.Handles())
}

func TestRegistry_DestroyUnknownIsNoop(t *testing.T) {
	r := New(DefaultConfig())
	h := r.Create()

	require.False(t, r.Destroy(999))
	require.Equal(t, 1, r.Len())

	require.True(t, r.Destroy(h))
	require.Equal(t, 0, r.Len())
}

func TestRegistry_ReuseAfterMaxDeletion(t *testing.T) {
	r := New(DefaultConfig())

	h := r.Create()
	require.Equal(t, 0, h)

	// with only handle 0 live, destroy+create hands out 0 again
	r.Destroy(h)
	require.Equal(t, 0, r.Create())
}

func TestRegistry_CompatHandleIsMaxLivePlusOne(t *testing.T) {
	r := New(DefaultConfig())

	h0 := r.Create()
	h1 := r.Create()
	h2 := r.Create()
	require.Equal(t, []int{0, 1, 2}, []int{h0, h1, h2})

	// destroying a non-max handle does not affect the next handle
	r.Destroy(h1)
	require.Equal(t, 3, r.Create())

	// destroying the max makes its value available again
	r.Destroy(3)
	r.Destroy(h2)
	require.Equal(t, 1, r.Create())
}

func TestRegistry_RoundTripLeavesNoTrace(t *testing.T) {
	r := New(DefaultConfig())

	r.Destroy(r.Create())

	require.Equal(t, 0, r.Len())
	require.Empty(t, r.Handles())
	require.Equal(t, 0, r.Create())
}

func TestRegistry_MonotonicModeNeverReuses(t *testing.T) {
	r := New(Config{HandleMode: HandleModeMonotonic})

	h0 := r.Create()
	require.Equal(t, 0, h0)

	r.Destroy(h0)
	require.Equal(t, 1, r.Create())
	require.Equal(t, 2, r.Create())
}

func TestRegistry_WithRunsOnOwnedInstance(t *testing.T) {
	r := New(DefaultConfig())
	h := r.Create()

	exists := r.With(h, func(c *statcalc.Calculator) {
		c.Append(1.5)
	})
	require.True(t, exists)

	// the same instance is visited on every call
	var sum float64
	exists = r.With(h, func(c *statcalc.Calculator) {
		sum = c.Sum()
	})
	require.True(t, exists)
	require.Equal(t, 1.5, sum)

	called := false
	exists = r.With(h+1, func(c *statcalc.Calculator) {
		called = true
	})
	require.False(t, exists)
	require.False(t, called)
}

func TestRegistry_IndependentInstances(t *testing.T) {
	r := New(DefaultConfig())

	h0 := r.Create()
	h1 := r.Create()

	r.With(h0, func(c *statcalc.Calculator) { c.Append(10.0) })

	sums := map[int]float64{}
	for _, h := range []int{h0, h1} {
		r.With(h, func(c *statcalc.Calculator) { sums[h] = c.Sum() })
	}

	require.Equal(t, 10.0, sums[h0])
	require.Equal(t, 0.0, sums[h1])
}

func TestRegistry_ConcurrentWithSerializes(t *testing.T) {
	const (
		goroutines = 8
		appends    = 1000
	)

	r := New(DefaultConfig())
	h := r.Create()

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for a := 0; a < appends; a++ {
				r.With(h, func(c *statcalc.Calculator) { c.Append(1.0) })
			}
		}()
	}
	wg.Wait()

	var count int
	var sum float64
	r.With(h, func(c *statcalc.Calculator) {
		count = c.Count()
		sum = c.Sum()
	})

	require.Equal(t, goroutines*appends, count)
	require.Equal(t, float64(goroutines*appends), sum)
}
