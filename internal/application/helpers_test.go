package application

import (
	"context"
	"sync"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/stretchr/testify/mock"
)

func mockAnyContext() any {
	return mock.Anything
}

// recordingProgress collects every milestone in order.
type recordingProgress struct {
	mu     sync.Mutex
	stages []string
}

func (r *recordingProgress) Progress(stage string, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, stage)
}

func (r *recordingProgress) Stages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.stages...)
}

type countingLimiter struct {
	calls int
}

func (l *countingLimiter) Wait(ctx context.Context) error {
	l.calls++
	return ctx.Err()
}

func postURI(did, rkey string) string {
	return "at://" + did + "/app.bsky.feed.post/" + rkey
}

func profileFor(did, handle string) domain.Profile {
	return domain.Profile{DID: did, Handle: handle, DisplayName: handle}
}
