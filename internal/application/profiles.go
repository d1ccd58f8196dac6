package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/logging"
	"github.com/bnema/skycircle/internal/ports"
	"github.com/bnema/skycircle/internal/rate"
)

const (
	ProfileBatchSize = 25
	// MaxProfileCandidates bounds how many targets are sent for profile
	// resolution.
	MaxProfileCandidates = 250
	// MaxMentionHandles bounds how many distinct mention handles are resolved.
	MaxMentionHandles = 100
)

// ProfileResolver looks up profiles in sequential, paced batches. A failed
// batch resolves nothing and never stops the remaining batches.
type ProfileResolver struct {
	Source  ports.ProfileSource
	Limiter rate.Limiter
	Logger  *slog.Logger
}

// ResolveProfiles returns the profiles found for dids, keyed by DID. Only the
// context error is fatal.
func (r ProfileResolver) ResolveProfiles(ctx context.Context, dids []string, progress ports.ProgressObserver) (map[string]domain.Profile, error) {
	if progress == nil {
		progress = ports.NoProgress
	}

	profiles := make(map[string]domain.Profile, len(dids))
	err := r.batches(ctx, dids, func(batch int, found []domain.Profile) {
		for _, profile := range found {
			profiles[profile.DID] = profile
		}
		done := min((batch+1)*ProfileBatchSize, len(dids))
		progress.Progress(fmt.Sprintf("Fetching profiles... (%d/%d)", done, len(dids)), done)
	})
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

// ResolveMentions resolves the most-mentioned handles and merges their counts
// into counts under the resolved DID. Handles resolving to selfDID are skipped.
// The returned profiles are keyed by DID.
func (r ProfileResolver) ResolveMentions(ctx context.Context, tally *domain.MentionTally, selfDID string, counts *domain.TargetCounts, progress ports.ProgressObserver) (map[string]domain.Profile, error) {
	if progress == nil {
		progress = ports.NoProgress
	}
	if tally == nil || tally.Len() == 0 {
		return map[string]domain.Profile{}, nil
	}

	handles := tally.Handles()
	sort.SliceStable(handles, func(i, j int) bool {
		return tally.Count(handles[i]) > tally.Count(handles[j])
	})
	if len(handles) > MaxMentionHandles {
		handles = handles[:MaxMentionHandles]
	}

	profiles := map[string]domain.Profile{}
	err := r.batches(ctx, handles, func(batch int, found []domain.Profile) {
		for _, profile := range found {
			handle := domain.NormalizeHandle(profile.Handle)
			n := tally.Count(handle)
			if n == 0 || profile.DID == "" || profile.DID == selfDID {
				continue
			}
			counts.Add(profile.DID, domain.KindMention, n)
			profiles[profile.DID] = profile
		}
		done := min((batch+1)*ProfileBatchSize, len(handles))
		progress.Progress(fmt.Sprintf("Resolving mentions... (%d/%d)", done, len(handles)), done)
	})
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r ProfileResolver) batches(ctx context.Context, actors []string, onBatch func(batch int, found []domain.Profile)) error {
	logger := r.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	limiter := r.Limiter
	if limiter == nil {
		limiter = rate.Unlimited{}
	}

	for batch, start := 0, 0; start < len(actors); batch, start = batch+1, start+ProfileBatchSize {
		end := min(start+ProfileBatchSize, len(actors))
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		found, err := r.Source.GetProfiles(ctx, actors[start:end])
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			logger.Warn("profile batch failed", "batch", batch, "did", actors[start], "err", err)
			found = nil
		}
		onBatch(batch, found)
	}

	return nil
}

// TopTargets returns up to n target DIDs ordered by total count, descending.
// Ties keep first-seen order.
func TopTargets(counts *domain.TargetCounts, n int) []string {
	dids := counts.DIDs()
	sort.SliceStable(dids, func(i, j int) bool {
		left, _ := counts.Get(dids[i])
		right, _ := counts.Get(dids[j])
		return left.Total() > right.Total()
	})
	if n > 0 && len(dids) > n {
		dids = dids[:n]
	}
	return dids
}
