package rate

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Limiter gates outbound API calls so we respect host rate limits.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Interval releases one call at a time, spaced at least every apart. The
// first call proceeds immediately.
type Interval struct {
	every time.Duration
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	mu   sync.Mutex
	last time.Time
}

func NewInterval(every time.Duration) *Interval {
	return &Interval{every: every, now: time.Now, sleep: sleepContext}
}

// Wait blocks until the interval since the previous release has passed or the
// context is canceled.
func (l *Interval) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("rate wait canceled: %w", err)
	}

	if !l.last.IsZero() && l.every > 0 {
		if remaining := l.every - l.now().Sub(l.last); remaining > 0 {
			if err := l.sleep(ctx, remaining); err != nil {
				return fmt.Errorf("rate wait canceled: %w", err)
			}
		}
	}

	l.last = l.now()
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Unlimited never blocks.
type Unlimited struct{}

func (Unlimited) Wait(ctx context.Context) error {
	return ctx.Err()
}

var (
	_ Limiter = (*Interval)(nil)
	_ Limiter = Unlimited{}
)
