package domain

import (
	"fmt"
	"time"
)

// Interaction is one outbound interaction. Target is an AT-URI for likes,
// replies, reposts and quotes, and a bare handle for mentions.
type Interaction struct {
	Target    string
	CreatedAt time.Time
}

type ParsedInteractions struct {
	Likes    []Interaction
	Replies  []Interaction
	Reposts  []Interaction
	Quotes   []Interaction
	Mentions []Interaction
	Revision string
}

func (p ParsedInteractions) Summary() string {
	return fmt.Sprintf("%d likes, %d replies, %d reposts, %d quotes, %d mentions",
		len(p.Likes), len(p.Replies), len(p.Reposts), len(p.Quotes), len(p.Mentions))
}

type Period string

const (
	Period7Days   Period = "7d"
	Period30Days  Period = "30d"
	Period90Days  Period = "90d"
	PeriodYear    Period = "1y"
	PeriodAllTime Period = "all"
)

func ParsePeriod(raw string) (Period, error) {
	period := Period(raw)
	switch period {
	case Period7Days, Period30Days, Period90Days, PeriodYear, PeriodAllTime:
		return period, nil
	default:
		return "", fmt.Errorf("unsupported period %q (want 7d|30d|90d|1y|all)", raw)
	}
}

// Duration returns the trailing window length. PeriodAllTime and unknown
// periods report false.
func (p Period) Duration() (time.Duration, bool) {
	const day = 24 * time.Hour
	switch p {
	case Period7Days:
		return 7 * day, true
	case Period30Days:
		return 30 * day, true
	case Period90Days:
		return 90 * day, true
	case PeriodYear:
		return 365 * day, true
	default:
		return 0, false
	}
}

func (p Period) Label() string {
	switch p {
	case Period7Days:
		return "last 7 days"
	case Period30Days:
		return "last 30 days"
	case Period90Days:
		return "last 90 days"
	case PeriodYear:
		return "last year"
	case PeriodAllTime:
		return "all time"
	default:
		return string(p)
	}
}

// FilterByPeriod returns a copy keeping entries created at or after now minus
// the period. Entries exactly on the cutoff are kept.
func (p ParsedInteractions) FilterByPeriod(period Period, now time.Time) ParsedInteractions {
	window, ok := period.Duration()
	if !ok {
		return p
	}
	cutoff := now.Add(-window)

	return ParsedInteractions{
		Likes:    keepSince(p.Likes, cutoff),
		Replies:  keepSince(p.Replies, cutoff),
		Reposts:  keepSince(p.Reposts, cutoff),
		Quotes:   keepSince(p.Quotes, cutoff),
		Mentions: keepSince(p.Mentions, cutoff),
		Revision: p.Revision,
	}
}

func keepSince(entries []Interaction, cutoff time.Time) []Interaction {
	kept := make([]Interaction, 0, len(entries))
	for _, entry := range entries {
		if entry.CreatedAt.Before(cutoff) {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

// RepoArchive is a downloaded repository snapshot.
type RepoArchive struct {
	Bytes    []byte
	Revision string
}

// RevisionProbe is the result of a metadata-only revision lookup.
type RevisionProbe struct {
	Revision string
	HostURL  string
}

type RepositoryCacheEntry struct {
	DID      string
	Revision string
	Parsed   ParsedInteractions
}
