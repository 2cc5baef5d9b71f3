//go:build unit

package ratelimit_test

import (
	"sync"
	"testing"
	"time"

	"eatyaar/internal/pkg/clock"
	"eatyaar/internal/pkg/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "9876543210"

func TestLimiter_CheckAndRecord(t *testing.T) {
	t.Run("admits up to the limit then refuses", func(t *testing.T) {
		clk := clock.NewFakeClock(time.Now())
		l := ratelimit.NewLimiter(clk, ratelimit.WithWindow(10*time.Minute), ratelimit.WithLimit(3))

		for i := 0; i < 3; i++ {
			require.NoError(t, l.CheckAndRecord(testKey))
		}
		require.ErrorIs(t, l.CheckAndRecord(testKey), ratelimit.ErrRateLimited)
		// Refusal leaves the window untouched; still refused, not extended.
		require.ErrorIs(t, l.CheckAndRecord(testKey), ratelimit.ErrRateLimited)
	})

	t.Run("keys are independent", func(t *testing.T) {
		clk := clock.NewFakeClock(time.Now())
		l := ratelimit.NewLimiter(clk, ratelimit.WithLimit(1))

		require.NoError(t, l.CheckAndRecord("1111111111"))
		require.NoError(t, l.CheckAndRecord("2222222222"))
		require.ErrorIs(t, l.CheckAndRecord("1111111111"), ratelimit.ErrRateLimited)
	})

	t.Run("elapsed window readmits", func(t *testing.T) {
		clk := clock.NewFakeClock(time.Now())
		l := ratelimit.NewLimiter(clk, ratelimit.WithWindow(10*time.Minute), ratelimit.WithLimit(3))

		for i := 0; i < 3; i++ {
			require.NoError(t, l.CheckAndRecord(testKey))
		}
		require.ErrorIs(t, l.CheckAndRecord(testKey), ratelimit.ErrRateLimited)

		clk.Advance(10*time.Minute + time.Second)

		for i := 0; i < 3; i++ {
			require.NoError(t, l.CheckAndRecord(testKey))
		}
		require.ErrorIs(t, l.CheckAndRecord(testKey), ratelimit.ErrRateLimited)
	})

	t.Run("refusal does not extend the window", func(t *testing.T) {
		clk := clock.NewFakeClock(time.Now())
		l := ratelimit.NewLimiter(clk, ratelimit.WithWindow(10*time.Minute), ratelimit.WithLimit(1))

		require.NoError(t, l.CheckAndRecord(testKey))

		clk.Advance(9 * time.Minute)
		require.ErrorIs(t, l.CheckAndRecord(testKey), ratelimit.ErrRateLimited)

		// Window is anchored to the first admit, not the refusal above.
		clk.Advance(1*time.Minute + time.Second)
		require.NoError(t, l.CheckAndRecord(testKey))
	})

	t.Run("concurrent requests never exceed the limit", func(t *testing.T) {
		clk := clock.NewFakeClock(time.Now())
		const limit = 3
		l := ratelimit.NewLimiter(clk, ratelimit.WithLimit(limit))

		const goroutines = 50
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			admitted int
		)
		wg.Add(goroutines)
		for i := 0; i < goroutines; i++ {
			go func() {
				defer wg.Done()
				if l.CheckAndRecord(testKey) == nil {
					mu.Lock()
					admitted++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, limit, admitted)
	})
}
