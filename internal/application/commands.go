package application

import (
	"github.com/bnema/skycircle/internal/domain"
)

type LoginCommand struct {
	Identifier string
	Password   string
}

type AnalyzeCommand struct {
	Handle string
	Period domain.Period
	// Weights defaults to domain.DefaultWeights when zero.
	Weights     domain.ScoringWeights
	Limit       int
	SaveHistory bool
}

// PublishCommand selects members either from a stored run (RunID) or from a
// fresh analysis of Handle.
type PublishCommand struct {
	Name        string
	Description string
	RunID       string
	Handle      string
	Period      domain.Period
	Weights     domain.ScoringWeights
	Top         int
	Exclude     []string
}
