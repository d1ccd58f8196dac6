package domain

type InteractionKind string

const (
	KindLike    InteractionKind = "likes"
	KindReply   InteractionKind = "replies"
	KindRepost  InteractionKind = "reposts"
	KindMention InteractionKind = "mentions"
	KindQuote   InteractionKind = "quotes"
)

type InteractionCounts struct {
	Likes    int `json:"likes" yaml:"likes"`
	Replies  int `json:"replies" yaml:"replies"`
	Reposts  int `json:"reposts" yaml:"reposts"`
	Mentions int `json:"mentions" yaml:"mentions"`
	Quotes   int `json:"quotes" yaml:"quotes"`
}

func (c InteractionCounts) Total() int {
	return c.Likes + c.Replies + c.Reposts + c.Mentions + c.Quotes
}

func (c *InteractionCounts) Add(kind InteractionKind, n int) {
	switch kind {
	case KindLike:
		c.Likes += n
	case KindReply:
		c.Replies += n
	case KindRepost:
		c.Reposts += n
	case KindMention:
		c.Mentions += n
	case KindQuote:
		c.Quotes += n
	}
}

type ScoringWeights struct {
	Likes    float64 `json:"likes" yaml:"likes" mapstructure:"likes"`
	Replies  float64 `json:"replies" yaml:"replies" mapstructure:"replies"`
	Reposts  float64 `json:"reposts" yaml:"reposts" mapstructure:"reposts"`
	Mentions float64 `json:"mentions" yaml:"mentions" mapstructure:"mentions"`
	Quotes   float64 `json:"quotes" yaml:"quotes" mapstructure:"quotes"`
}

// DefaultWeights favors reposts and quotes over likes.
var DefaultWeights = ScoringWeights{
	Likes:    1,
	Replies:  3,
	Reposts:  5,
	Mentions: 3,
	Quotes:   5,
}

type Profile struct {
	DID         string
	Handle      string
	DisplayName string
	Avatar      string
	Description string
}

type RankedAccount struct {
	DID         string            `json:"did" yaml:"did"`
	Handle      string            `json:"handle" yaml:"handle"`
	DisplayName string            `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Avatar      string            `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Score       float64           `json:"score" yaml:"score"`
	Counts      InteractionCounts `json:"interactions" yaml:"interactions"`
}

// TargetCounts accumulates counts per target DID and remembers first-seen order.
type TargetCounts struct {
	order  []string
	counts map[string]*InteractionCounts
}

func NewTargetCounts() *TargetCounts {
	return &TargetCounts{counts: map[string]*InteractionCounts{}}
}

func (t *TargetCounts) Add(did string, kind InteractionKind, n int) {
	entry, ok := t.counts[did]
	if !ok {
		entry = &InteractionCounts{}
		t.counts[did] = entry
		t.order = append(t.order, did)
	}
	entry.Add(kind, n)
}

func (t *TargetCounts) Get(did string) (InteractionCounts, bool) {
	entry, ok := t.counts[did]
	if !ok {
		return InteractionCounts{}, false
	}
	return *entry, true
}

// DIDs returns targets in first-seen order.
func (t *TargetCounts) DIDs() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

func (t *TargetCounts) Len() int {
	return len(t.order)
}

// MentionTally groups raw mention handles before they are resolved.
type MentionTally struct {
	order  []string
	counts map[string]int
}

func NewMentionTally() *MentionTally {
	return &MentionTally{counts: map[string]int{}}
}

func (m *MentionTally) Add(handle string) {
	if _, ok := m.counts[handle]; !ok {
		m.order = append(m.order, handle)
	}
	m.counts[handle]++
}

func (m *MentionTally) Count(handle string) int {
	return m.counts[handle]
}

func (m *MentionTally) Handles() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

func (m *MentionTally) Len() int {
	return len(m.order)
}
