package application

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedRun() domain.AnalysisRun {
	return domain.AnalysisRun{
		ID:     "run-1",
		Handle: "alice.bsky.social",
		DID:    "did:plc:alice",
		Accounts: []domain.RankedAccount{
			{DID: "did:plc:bob", Handle: "bob.test", Score: 10},
			{DID: "did:plc:carol", Handle: "carol.test", Score: 8},
			{DID: "did:plc:dave", Handle: "dave.test", Score: 5},
		},
	}
}

func TestPublishServicePublishesFromStoredRun(t *testing.T) {
	writes := &fakeWrites{}
	publisher, caller := newTestPublisher(t, writes)
	packs := mocks.NewMockPackRepository(t)
	runs := mocks.NewMockRunHistory(t)
	service := NewPublishService(publisher, caller, packs, mocks.NewMockSessionStore(t), runs, nil)

	runs.EXPECT().GetRun(mockAnyContext(), "run-1").Return(storedRun(), nil).Once()
	packs.EXPECT().Save(mockAnyContext(), mock.MatchedBy(func(pack domain.StarterPack) bool {
		return pack.Members == 2 && pack.Name == "Circle" && pack.URL != ""
	})).Return(nil).Once()

	pack, err := service.Publish(context.Background(), PublishCommand{
		Name:    "Circle",
		RunID:   "run-1",
		Top:     2,
		Exclude: []string{"@Carol.test"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, pack.Members)
	assert.Len(t, writes.collections, 4)
}

func TestPublishServiceClearsSessionWhenExpired(t *testing.T) {
	writes := &fakeWrites{failSubject: "did:plc:bob", failErr: &domain.SessionExpiredError{Err: errors.New("invalid refresh token")}}
	publisher, caller := newTestPublisher(t, writes)
	sessions := mocks.NewMockSessionStore(t)
	runs := mocks.NewMockRunHistory(t)
	service := NewPublishService(publisher, caller, mocks.NewMockPackRepository(t), sessions, runs, nil)

	runs.EXPECT().GetRun(mockAnyContext(), "run-1").Return(storedRun(), nil).Once()
	sessions.EXPECT().Clear(mockAnyContext()).Return(nil).Once()

	_, err := service.Publish(context.Background(), PublishCommand{Name: "Circle", RunID: "run-1"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestPublishServiceLedgerFailureReturnsPack(t *testing.T) {
	writes := &fakeWrites{}
	publisher, caller := newTestPublisher(t, writes)
	packs := mocks.NewMockPackRepository(t)
	runs := mocks.NewMockRunHistory(t)
	service := NewPublishService(publisher, caller, packs, mocks.NewMockSessionStore(t), runs, nil)

	runs.EXPECT().GetRun(mockAnyContext(), "run-1").Return(storedRun(), nil).Once()
	packs.EXPECT().Save(mockAnyContext(), mock.Anything).Return(errors.New("read-only file system")).Once()

	pack, err := service.Publish(context.Background(), PublishCommand{Name: "Circle", RunID: "run-1", Top: 1}, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "record starter pack")
	assert.NotEmpty(t, pack.URL)
}

func TestPublishServiceRejectsEmptySelection(t *testing.T) {
	publisher, caller := newTestPublisher(t, &fakeWrites{})
	runs := mocks.NewMockRunHistory(t)
	service := NewPublishService(publisher, caller, mocks.NewMockPackRepository(t), mocks.NewMockSessionStore(t), runs, nil)

	_, err := service.Publish(context.Background(), PublishCommand{Name: "Circle"}, nil)
	assert.ErrorContains(t, err, "run id or a handle")

	runs.EXPECT().GetRun(mockAnyContext(), "run-1").Return(storedRun(), nil).Once()
	_, err = service.Publish(context.Background(), PublishCommand{
		Name:    "Circle",
		RunID:   "run-1",
		Exclude: []string{"did:plc:bob", "carol.test", "dave.test"},
	}, nil)
	assert.ErrorContains(t, err, "no accounts left")

	runs.EXPECT().GetRun(mockAnyContext(), "gone").Return(domain.AnalysisRun{}, domain.ErrRunNotFound).Once()
	_, err = service.Publish(context.Background(), PublishCommand{Name: "Circle", RunID: "gone"}, nil)
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestPublishServiceLookup(t *testing.T) {
	caller := mocks.NewMockXRPCCaller(t)
	service := NewPublishService(Publisher{}, caller, mocks.NewMockPackRepository(t), mocks.NewMockSessionStore(t), nil, nil)

	uri := "at://did:plc:alice/app.bsky.graph.starterpack/3kpack"
	caller.EXPECT().Query(mockAnyContext(), nsidGetStarterPack, url.Values{"starterPack": {uri}}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			resp := out.(*starterPackResponse)
			resp.StarterPack.URI = uri
			resp.StarterPack.Creator.DID = "did:plc:alice"
			resp.StarterPack.Creator.Handle = "alice.bsky.social"
			resp.StarterPack.Record.Name = "Circle"
			resp.StarterPack.Record.List = "at://did:plc:alice/app.bsky.graph.list/3klist"
			resp.StarterPack.JoinedAllTimeCount = 7
			resp.StarterPack.IndexedAt = "2026-03-01T12:00:00.000Z"
			return nil
		}).Once()

	view, err := service.Lookup(context.Background(), uri)
	require.NoError(t, err)
	assert.Equal(t, StarterPackView{
		URI:           uri,
		Name:          "Circle",
		CreatorDID:    "did:plc:alice",
		CreatorHandle: "alice.bsky.social",
		ListURI:       "at://did:plc:alice/app.bsky.graph.list/3klist",
		JoinedAllTime: 7,
		IndexedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}, view)

	_, err = service.Lookup(context.Background(), "https://bsky.app/starter-pack/x/y")
	assert.Error(t, err)
}

func TestPublishServiceLookupExpiredSessionClearsStore(t *testing.T) {
	caller := mocks.NewMockXRPCCaller(t)
	sessions := mocks.NewMockSessionStore(t)
	service := NewPublishService(Publisher{}, caller, mocks.NewMockPackRepository(t), sessions, nil, nil)

	caller.EXPECT().Query(mockAnyContext(), nsidGetStarterPack, mock.Anything, mock.Anything).
		Return(&domain.SessionExpiredError{}).Once()
	sessions.EXPECT().Clear(mockAnyContext()).Return(nil).Once()

	_, err := service.Lookup(context.Background(), "at://did:plc:alice/app.bsky.graph.starterpack/3kpack")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestDefaultPackNameAndDescription(t *testing.T) {
	assert.Equal(t, "alice's interlocutors", DefaultPackName("alice.bsky.social"))
	assert.Equal(t, "solo's interlocutors", DefaultPackName("solo"))
	assert.Equal(t,
		"The 50 accounts Alice interacted with the most in the last 30 days as of 3/1/2026",
		DefaultPackDescription("@Alice.bsky.social", 50, domain.Period30Days, publishTime))
	assert.Equal(t,
		"The 12 accounts Alice interacted with the most of all time as of 3/1/2026",
		DefaultPackDescription("alice.bsky.social", 12, domain.PeriodAllTime, publishTime))
}

func TestPublishServiceFillsDefaultNameAndDescription(t *testing.T) {
	writes := &fakeWrites{}
	publisher, caller := newTestPublisher(t, writes)
	packs := mocks.NewMockPackRepository(t)
	runs := mocks.NewMockRunHistory(t)
	service := NewPublishService(publisher, caller, packs, mocks.NewMockSessionStore(t), runs, nil)

	run := storedRun()
	run.Period = domain.Period7Days
	runs.EXPECT().GetRun(mockAnyContext(), "run-1").Return(run, nil).Once()
	packs.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil).Once()

	pack, err := service.Publish(context.Background(), PublishCommand{RunID: "run-1", Top: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, "alice's interlocutors", pack.Name)
	assert.Equal(t, "The 1 accounts Alice interacted with the most in the last 7 days as of 3/1/2026", pack.Description)
}
