package domain

import "time"

// PackMember is an account selected for a starter pack.
type PackMember struct {
	DID    string
	Handle string
}

// StarterPack is the local record of a published starter pack.
type StarterPack struct {
	URI         string
	ListURI     string
	URL         string
	Name        string
	Description string
	Creator     string
	Members     int
	Skipped     int
	CreatedAt   time.Time
}

// RecordRef identifies a record written to a repository.
type RecordRef struct {
	URI string `json:"uri"`
	CID string `json:"cid"`
}

// AnalysisRun is a stored ranking result.
type AnalysisRun struct {
	ID        string
	Handle    string
	DID       string
	Period    Period
	Revision  string
	CacheHit  bool
	Weights   ScoringWeights
	Accounts  []RankedAccount
	CreatedAt time.Time
}

// Members returns up to top accounts in rank order. exclude holds DIDs or
// normalized handles. A non-positive top means every account.
func (r AnalysisRun) Members(top int, exclude map[string]struct{}) []PackMember {
	members := make([]PackMember, 0, len(r.Accounts))
	for _, account := range r.Accounts {
		if top > 0 && len(members) >= top {
			break
		}
		if _, skip := exclude[account.DID]; skip {
			continue
		}
		if _, skip := exclude[NormalizeHandle(account.Handle)]; skip {
			continue
		}
		members = append(members, PackMember{DID: account.DID, Handle: account.Handle})
	}
	return members
}
