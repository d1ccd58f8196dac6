package application

import (
	"time"

	"github.com/bnema/skycircle/internal/domain"
)

type AnalysisResult struct {
	Run     domain.AnalysisRun
	Outcome CacheOutcome
	// Interactions is the number of entries left after the period filter.
	Interactions int
	Targets      int
}

// StarterPackView is a starter pack as the network reports it.
type StarterPackView struct {
	URI           string
	Name          string
	Description   string
	CreatorDID    string
	CreatorHandle string
	ListURI       string
	ListItemCount int
	JoinedAllTime int
	SampleHandles []string
	IndexedAt     time.Time
}
