package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByPeriodAllIsIdentity(t *testing.T) {
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	parsed := ParsedInteractions{
		Likes:    []Interaction{{Target: "at://did:plc:a/app.bsky.feed.post/1", CreatedAt: now.AddDate(-5, 0, 0)}},
		Replies:  []Interaction{{Target: "at://did:plc:b/app.bsky.feed.post/2", CreatedAt: now}},
		Reposts:  []Interaction{{Target: "at://did:plc:c/app.bsky.feed.post/3", CreatedAt: now.AddDate(0, -2, 0)}},
		Quotes:   []Interaction{{Target: "at://did:plc:d/app.bsky.feed.post/4", CreatedAt: now.AddDate(-1, -1, 0)}},
		Mentions: []Interaction{{Target: "alice.bsky.social", CreatedAt: now.AddDate(-3, 0, 0)}},
		Revision: "rev-1",
	}

	assert.Equal(t, parsed, parsed.FilterByPeriod(PeriodAllTime, now))
}

func TestFilterByPeriodKeepsEntriesOnOrAfterCutoff(t *testing.T) {
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-7 * 24 * time.Hour)

	parsed := ParsedInteractions{
		Likes: []Interaction{
			{Target: "on-cutoff", CreatedAt: cutoff},
			{Target: "before", CreatedAt: cutoff.Add(-time.Nanosecond)},
			{Target: "after", CreatedAt: cutoff.Add(time.Minute)},
		},
		Mentions: []Interaction{
			{Target: "old.bsky.social", CreatedAt: cutoff.Add(-time.Hour)},
		},
		Revision: "rev-2",
	}

	filtered := parsed.FilterByPeriod(Period7Days, now)

	require.Len(t, filtered.Likes, 2)
	assert.Equal(t, "on-cutoff", filtered.Likes[0].Target)
	assert.Equal(t, "after", filtered.Likes[1].Target)
	assert.Empty(t, filtered.Mentions)
	assert.Equal(t, "rev-2", filtered.Revision)
	assert.Len(t, parsed.Likes, 3, "source must not be mutated")
}

func TestPeriodDurations(t *testing.T) {
	tests := []struct {
		period Period
		want   time.Duration
		ok     bool
	}{
		{period: Period7Days, want: 7 * 24 * time.Hour, ok: true},
		{period: Period30Days, want: 30 * 24 * time.Hour, ok: true},
		{period: Period90Days, want: 90 * 24 * time.Hour, ok: true},
		{period: PeriodYear, want: 365 * 24 * time.Hour, ok: true},
		{period: PeriodAllTime, ok: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			got, ok := tt.period.Duration()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePeriodRejectsUnknown(t *testing.T) {
	_, err := ParsePeriod("2w")
	assert.ErrorContains(t, err, "unsupported period")

	period, err := ParsePeriod("90d")
	require.NoError(t, err)
	assert.Equal(t, Period90Days, period)
}

func TestTargetDID(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
		ok   bool
	}{
		{name: "post uri", uri: "at://did:plc:abc123/app.bsky.feed.post/3k2", want: "did:plc:abc123", ok: true},
		{name: "did web", uri: "at://did:web:example.com/app.bsky.feed.post/1", want: "did:web:example.com", ok: true},
		{name: "handle authority", uri: "at://alice.bsky.social/app.bsky.feed.post/1", ok: false},
		{name: "missing scheme", uri: "https://bsky.app/profile/alice", ok: false},
		{name: "empty", uri: "", ok: false},
		{name: "too many segments", uri: "at://did:plc:a/b/c/d", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TargetDID(tt.uri)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestATURIString(t *testing.T) {
	uri, err := ParseATURI("at://did:plc:abc/app.bsky.graph.starterpack/3kx")
	require.NoError(t, err)
	assert.Equal(t, "app.bsky.graph.starterpack", uri.Collection)
	assert.Equal(t, "3kx", uri.RecordKey)
	assert.Equal(t, "at://did:plc:abc/app.bsky.graph.starterpack/3kx", uri.String())
}

func TestTargetCountsKeepsInsertionOrder(t *testing.T) {
	counts := NewTargetCounts()
	counts.Add("did:plc:b", KindLike, 1)
	counts.Add("did:plc:a", KindReply, 1)
	counts.Add("did:plc:b", KindQuote, 2)

	assert.Equal(t, []string{"did:plc:b", "did:plc:a"}, counts.DIDs())
	got, ok := counts.Get("did:plc:b")
	require.True(t, ok)
	assert.Equal(t, InteractionCounts{Likes: 1, Quotes: 2}, got)
	assert.Equal(t, 3, got.Total())
}

func TestSessionValid(t *testing.T) {
	assert.True(t, Session{DID: "did:plc:a", Handle: "a.test", AccessToken: "x", RefreshToken: "y"}.Valid())
	assert.False(t, Session{DID: "did:plc:a", Handle: "a.test", AccessToken: "x"}.Valid())
}

func TestSessionExpiredErrorMatchesSentinelAndCause(t *testing.T) {
	cause := &APIError{Status: 400, Code: "ExpiredToken", Message: "Token has expired"}
	err := error(&SessionExpiredError{Err: cause})

	assert.ErrorIs(t, err, ErrSessionExpired)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "ExpiredToken", apiErr.Code)
	assert.Equal(t, "session expired, please log in again", err.Error())
}

func TestAuthErrorUnwrapsToAPIError(t *testing.T) {
	err := error(&AuthError{APIError: APIError{Status: 401, Code: "AuthMissing"}})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.Status)
}

func TestAnalysisRunMembersAppliesTopAfterExclusions(t *testing.T) {
	run := AnalysisRun{Accounts: []RankedAccount{
		{DID: "did:plc:1", Handle: "one"},
		{DID: "did:plc:2", Handle: "two"},
		{DID: "did:plc:3", Handle: "three"},
	}}

	members := run.Members(2, map[string]struct{}{"did:plc:1": {}})

	assert.Equal(t, []PackMember{{DID: "did:plc:2", Handle: "two"}, {DID: "did:plc:3", Handle: "three"}}, members)
}

func TestAnalysisRunMembersExcludesByHandle(t *testing.T) {
	run := AnalysisRun{Accounts: []RankedAccount{
		{DID: "did:plc:1", Handle: "One.bsky.social"},
		{DID: "did:plc:2", Handle: "two.bsky.social"},
	}}

	members := run.Members(0, map[string]struct{}{"one.bsky.social": {}})

	assert.Equal(t, []PackMember{{DID: "did:plc:2", Handle: "two.bsky.social"}}, members)
}
