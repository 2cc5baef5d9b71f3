// Package ratelimit caps how often a keyed action may run inside a fixed
// counting window. Like the challenge store it is process-local by design;
// multi-instance deploys need a shared backend instead.
package ratelimit

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"eatyaar/internal/pkg/clock"
)

// ErrRateLimited reports that the window ceiling for the key is already spent.
var ErrRateLimited = errors.New("rate limit exceeded")

const (
	DefaultWindow = 10 * time.Minute
	DefaultLimit  = 3
)

// window values are immutable; mutations replace the pointer via CompareAndSwap.
type window struct {
	start time.Time
	count int
}

type Limiter struct {
	windows sync.Map // key -> *window
	clock   clock.Clock
	window  time.Duration
	limit   int
}

type Option func(*Limiter)

func WithWindow(d time.Duration) Option {
	return func(l *Limiter) { l.window = d }
}

func WithLimit(n int) Option {
	return func(l *Limiter) { l.limit = n }
}

func NewLimiter(clk clock.Clock, opts ...Option) *Limiter {
	l := &Limiter{
		clock:  clk,
		window: DefaultWindow,
		limit:  DefaultLimit,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CheckAndRecord admits one request for key or fails with ErrRateLimited.
//
// A fresh or elapsed window restarts at count 1; otherwise the count is
// incremented atomically. A refused request leaves the window untouched, and
// two racing requests at the boundary count cannot both be admitted.
func (l *Limiter) CheckAndRecord(key string) error {
	for {
		now := l.clock.Now()

		v, ok := l.windows.Load(key)
		if !ok {
			if _, loaded := l.windows.LoadOrStore(key, &window{start: now, count: 1}); !loaded {
				return nil
			}
			continue
		}

		w := v.(*window)
		if now.After(w.start.Add(l.window)) {
			if l.windows.CompareAndSwap(key, v, &window{start: now, count: 1}) {
				return nil
			}
			continue
		}

		if w.count >= l.limit {
			slog.Warn("rate limit hit", "key", maskKey(key))
			return ErrRateLimited
		}

		if l.windows.CompareAndSwap(key, v, &window{start: w.start, count: w.count + 1}) {
			return nil
		}
	}
}

func maskKey(key string) string {
	if len(key) <= 5 {
		return key + "***"
	}
	return key[:5] + "***"
}
