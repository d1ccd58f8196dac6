package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var analysisNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type analysisFixture struct {
	resolver   *mocks.MockIdentityResolver
	fetcher    *mocks.MockRepoFetcher
	classifier *mocks.MockArchiveClassifier
	source     *mocks.MockProfileSource
	history    *mocks.MockRunHistory
	service    *AnalysisService
}

func newAnalysisFixture(t *testing.T) analysisFixture {
	t.Helper()

	f := analysisFixture{
		resolver:   mocks.NewMockIdentityResolver(t),
		fetcher:    mocks.NewMockRepoFetcher(t),
		classifier: mocks.NewMockArchiveClassifier(t),
		source:     mocks.NewMockProfileSource(t),
		history:    mocks.NewMockRunHistory(t),
	}
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(analysisNow).Maybe()

	f.service = NewAnalysisService(
		f.resolver,
		NewRepositoryCache(f.fetcher, f.classifier),
		ProfileResolver{Source: f.source},
		f.history,
		clock,
		nil,
	)
	return f
}

func (f analysisFixture) expectRepository(parsed domain.ParsedInteractions) {
	f.resolver.EXPECT().ResolveHandle(mockAnyContext(), "alice.bsky.social").Return("did:plc:alice", nil).Once()
	f.fetcher.EXPECT().LatestRevision(mockAnyContext(), "did:plc:alice").
		Return(domain.RevisionProbe{Revision: parsed.Revision, HostURL: "https://pds.example"}, nil).Once()
	f.fetcher.EXPECT().Download(mockAnyContext(), "did:plc:alice", mock.Anything, "https://pds.example").
		Return(domain.RepoArchive{Bytes: []byte("car"), Revision: parsed.Revision}, nil).Once()
	f.classifier.EXPECT().Classify(mockAnyContext(), mock.Anything).Return(parsed, nil).Once()
}

func TestAnalyzeRanksFilteredInteractions(t *testing.T) {
	f := newAnalysisFixture(t)

	recent := analysisNow.Add(-24 * time.Hour)
	old := analysisNow.Add(-60 * 24 * time.Hour)
	f.expectRepository(domain.ParsedInteractions{
		Likes: []domain.Interaction{
			{Target: postURI("did:plc:bob", "1"), CreatedAt: recent},
			{Target: postURI("did:plc:carol", "2"), CreatedAt: old},
			{Target: postURI("did:plc:alice", "3"), CreatedAt: recent},
		},
		Replies:  []domain.Interaction{{Target: postURI("did:plc:dave", "4"), CreatedAt: recent}},
		Mentions: []domain.Interaction{{Target: "Erin.test", CreatedAt: recent}, {Target: "bob.test", CreatedAt: recent}},
		Revision: "3krev",
	})

	f.source.EXPECT().GetProfiles(mockAnyContext(), []string{"erin.test", "bob.test"}).
		Return([]domain.Profile{profileFor("did:plc:erin", "erin.test"), profileFor("did:plc:bob", "bob.test")}, nil).Once()
	f.source.EXPECT().GetProfiles(mockAnyContext(), []string{"did:plc:dave"}).
		Return([]domain.Profile{profileFor("did:plc:dave", "dave.test")}, nil).Once()

	var saved domain.AnalysisRun
	f.history.EXPECT().SaveRun(mockAnyContext(), mock.Anything).
		RunAndReturn(func(_ context.Context, run domain.AnalysisRun) error {
			saved = run
			return nil
		}).Once()

	progress := &recordingProgress{}
	result, err := f.service.Analyze(context.Background(), AnalyzeCommand{
		Handle:      "@Alice.bsky.social",
		Period:      domain.Period30Days,
		SaveHistory: true,
	}, progress)
	require.NoError(t, err)

	run := result.Run
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "alice.bsky.social", run.Handle)
	assert.Equal(t, "did:plc:alice", run.DID)
	assert.Equal(t, "3krev", run.Revision)
	assert.False(t, run.CacheHit)
	assert.Equal(t, domain.DefaultWeights, run.Weights)
	assert.Equal(t, analysisNow, run.CreatedAt)
	assert.Equal(t, CacheMiss, result.Outcome)
	assert.Equal(t, 5, result.Interactions)

	got := map[string]float64{}
	for _, account := range run.Accounts {
		got[account.DID] = account.Score
	}
	assert.Equal(t, map[string]float64{
		"did:plc:bob":  4,
		"did:plc:dave": 3,
		"did:plc:erin": 3,
	}, got)
	assert.Equal(t, "did:plc:bob", run.Accounts[0].DID)
	assert.Equal(t, run, saved)

	stages := progress.Stages()
	require.NotEmpty(t, stages)
	assert.Equal(t, "Resolving handle...", stages[0])
	assert.Contains(t, stages, "Found 3 likes, 1 replies, 0 reposts, 0 quotes, 2 mentions")
	assert.Contains(t, stages, "Filtered to 2 likes, 1 replies, 0 reposts, 0 quotes, 2 mentions (last 30 days)")
	assert.Contains(t, stages, "Resolving mentions... (2/2)")
	assert.Contains(t, stages, "Fetching profiles... (1/1)")
}

func TestAnalyzeSkipsHistoryWhenDisabled(t *testing.T) {
	f := newAnalysisFixture(t)
	f.expectRepository(domain.ParsedInteractions{Revision: "3krev"})

	result, err := f.service.Analyze(context.Background(), AnalyzeCommand{Handle: "alice.bsky.social"}, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Run.Accounts)
	assert.Equal(t, domain.PeriodAllTime, result.Run.Period)
}

func TestAnalyzeHistoryFailureIsNotFatal(t *testing.T) {
	f := newAnalysisFixture(t)
	f.expectRepository(domain.ParsedInteractions{Revision: "3krev"})
	f.history.EXPECT().SaveRun(mockAnyContext(), mock.Anything).Return(errors.New("disk full")).Once()

	_, err := f.service.Analyze(context.Background(), AnalyzeCommand{Handle: "alice.bsky.social", SaveHistory: true}, nil)
	assert.NoError(t, err)
}

func TestAnalyzeResolutionFailure(t *testing.T) {
	f := newAnalysisFixture(t)
	f.resolver.EXPECT().ResolveHandle(mockAnyContext(), "nobody.test").
		Return("", &domain.ResolutionError{Subject: "nobody.test", Err: errors.New("unable to resolve")}).Once()

	_, err := f.service.Analyze(context.Background(), AnalyzeCommand{Handle: "nobody.test"}, nil)
	require.Error(t, err)

	var resErr *domain.ResolutionError
	assert.ErrorAs(t, err, &resErr)
}

func TestAnalyzeUsesCustomWeights(t *testing.T) {
	f := newAnalysisFixture(t)
	f.expectRepository(domain.ParsedInteractions{
		Likes:    []domain.Interaction{{Target: postURI("did:plc:bob", "1")}},
		Reposts:  []domain.Interaction{{Target: postURI("did:plc:carol", "1")}},
		Revision: "3krev",
	})
	f.source.EXPECT().GetProfiles(mockAnyContext(), []string{"did:plc:bob", "did:plc:carol"}).
		Return([]domain.Profile{profileFor("did:plc:bob", "bob.test"), profileFor("did:plc:carol", "carol.test")}, nil).Once()

	result, err := f.service.Analyze(context.Background(), AnalyzeCommand{
		Handle:  "alice.bsky.social",
		Weights: domain.ScoringWeights{Likes: 10, Reposts: 1},
	}, nil)
	require.NoError(t, err)
	require.Len(t, result.Run.Accounts, 2)
	assert.Equal(t, "did:plc:bob", result.Run.Accounts[0].DID)
	assert.Equal(t, 10.0, result.Run.Accounts[0].Score)
}

func TestAnalysisServiceRunQueries(t *testing.T) {
	f := newAnalysisFixture(t)

	f.history.EXPECT().GetRun(mockAnyContext(), "missing").Return(domain.AnalysisRun{}, domain.ErrRunNotFound).Once()
	_, err := f.service.GetRun(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)

	runs := []domain.AnalysisRun{{ID: "b"}, {ID: "a"}}
	f.history.EXPECT().ListRuns(mockAnyContext(), 5).Return(runs, nil).Once()
	got, err := f.service.ListRuns(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, runs, got)
}
