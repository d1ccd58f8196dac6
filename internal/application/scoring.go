package application

import (
	"sort"

	"github.com/bnema/skycircle/internal/domain"
)

// MaxRankedAccounts caps the ranked list.
const MaxRankedAccounts = 200

// Score is the weighted sum of counts.
func Score(counts domain.InteractionCounts, weights domain.ScoringWeights) float64 {
	return float64(counts.Likes)*weights.Likes +
		float64(counts.Replies)*weights.Replies +
		float64(counts.Reposts)*weights.Reposts +
		float64(counts.Mentions)*weights.Mentions +
		float64(counts.Quotes)*weights.Quotes
}

// Rank scores every target that has a profile and orders them by score,
// descending. Equal scores keep first-seen order. A non-positive limit means
// MaxRankedAccounts.
func Rank(counts *domain.TargetCounts, profiles map[string]domain.Profile, weights domain.ScoringWeights, limit int) []domain.RankedAccount {
	if limit <= 0 || limit > MaxRankedAccounts {
		limit = MaxRankedAccounts
	}

	ranked := make([]domain.RankedAccount, 0, len(profiles))
	for _, did := range counts.DIDs() {
		profile, ok := profiles[did]
		if !ok {
			continue
		}
		tally, _ := counts.Get(did)
		ranked = append(ranked, domain.RankedAccount{
			DID:         did,
			Handle:      profile.Handle,
			DisplayName: profile.DisplayName,
			Avatar:      profile.Avatar,
			Score:       Score(tally, weights),
			Counts:      tally,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
