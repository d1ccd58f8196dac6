package application

import (
	"github.com/bnema/skycircle/internal/domain"
)

// Aggregation is the per-target tally of one parsed repository. Mentions stay
// keyed by handle until ResolveMentions folds them into Counts.
type Aggregation struct {
	Counts   *domain.TargetCounts
	Mentions *domain.MentionTally
}

// Aggregate counts interactions per target DID. References whose authority
// is selfDID or is not a DID are dropped.
func Aggregate(parsed domain.ParsedInteractions, selfDID string) Aggregation {
	agg := Aggregation{
		Counts:   domain.NewTargetCounts(),
		Mentions: domain.NewMentionTally(),
	}

	tally := func(entries []domain.Interaction, kind domain.InteractionKind) {
		for _, entry := range entries {
			did, ok := domain.TargetDID(entry.Target)
			if !ok || did == selfDID {
				continue
			}
			agg.Counts.Add(did, kind, 1)
		}
	}
	tally(parsed.Likes, domain.KindLike)
	tally(parsed.Replies, domain.KindReply)
	tally(parsed.Reposts, domain.KindRepost)
	tally(parsed.Quotes, domain.KindQuote)

	for _, mention := range parsed.Mentions {
		handle := domain.NormalizeHandle(mention.Target)
		if handle == "" {
			continue
		}
		agg.Mentions.Add(handle)
	}

	return agg
}
