// Package ratelimit enforces per-client consultation quotas. Bureau lookups
// are billed per consultation, so a runaway client is a cost incident as much
// as a load problem.
package ratelimit

import (
	"sync"
	"time"
)

// Result describes one admission decision.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter is a sliding-window limiter keyed by client ID. Windows live in
// memory, per instance; distributed enforcement would move them into Redis.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	windows map[string]*slidingWindow
}

// slidingWindow tracks request timestamps. The sliding window avoids the
// boundary burst a fixed window allows.
type slidingWindow struct {
	timestamps []time.Time
}

func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  window,
		windows: make(map[string]*slidingWindow),
	}
}

// Allow admits or rejects one request for the given key.
func (l *Limiter) Allow(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	sw := l.windows[key]
	if sw == nil {
		sw = &slidingWindow{}
		l.windows[key] = sw
	}
	sw.cleanup(now.Add(-l.window))

	if len(sw.timestamps) >= l.limit {
		return Result{
			Allowed:   false,
			Limit:     l.limit,
			Remaining: 0,
			ResetAt:   sw.timestamps[0].Add(l.window),
		}
	}

	sw.timestamps = append(sw.timestamps, now)
	return Result{
		Allowed:   true,
		Limit:     l.limit,
		Remaining: l.limit - len(sw.timestamps),
		ResetAt:   sw.timestamps[0].Add(l.window),
	}
}

func (sw *slidingWindow) cleanup(cutoff time.Time) {
	i := 0
	for ; i < len(sw.timestamps); i++ {
		if sw.timestamps[i].After(cutoff) {
			break
		}
	}
	sw.timestamps = sw.timestamps[i:]
}
