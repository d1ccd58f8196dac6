package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleRun(id string, createdAt time.Time) domain.AnalysisRun {
	return domain.AnalysisRun{
		ID:       id,
		Handle:   "alice.bsky.social",
		DID:      "did:plc:alice",
		Period:   domain.Period30Days,
		Revision: "3krev",
		CacheHit: true,
		Weights:  domain.DefaultWeights,
		Accounts: []domain.RankedAccount{
			{
				DID:         "did:plc:bob",
				Handle:      "bob.bsky.social",
				DisplayName: "Bob",
				Avatar:      "https://cdn.example/bob.jpg",
				Score:       6,
				Counts:      domain.InteractionCounts{Replies: 2},
			},
			{
				DID:    "did:plc:carol",
				Handle: "carol.bsky.social",
				Score:  5,
				Counts: domain.InteractionCounts{Likes: 5},
			},
		},
		CreatedAt: createdAt,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	run := sampleRun("run-1", time.Date(2026, 2, 14, 12, 30, 0, 0, time.UTC))

	require.NoError(t, store.SaveRun(context.Background(), run))

	got, err := store.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, run, got)
}

func TestStoreGetRunMissing(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	_, err := store.GetRun(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestStoreListRunsNewestFirstWithLimit(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	base := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveRun(context.Background(), sampleRun("old", base)))
	require.NoError(t, store.SaveRun(context.Background(), sampleRun("mid", base.Add(500*time.Millisecond))))
	require.NoError(t, store.SaveRun(context.Background(), sampleRun("new", base.Add(time.Hour))))

	runs, err := store.ListRuns(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "mid", runs[1].ID)
	assert.Empty(t, runs[0].Accounts)

	all, err := store.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStoreSaveRunRejectsDuplicateID(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	run := sampleRun("dup", time.Now())

	require.NoError(t, store.SaveRun(context.Background(), run))
	require.Error(t, store.SaveRun(context.Background(), run))

	got, err := store.GetRun(context.Background(), "dup")
	require.NoError(t, err)
	assert.Len(t, got.Accounts, 2, "failed insert must roll back")
}

func TestStoreSaveRunRequiresID(t *testing.T) {
	t.Parallel()

	err := openTestStore(t).SaveRun(context.Background(), domain.AnalysisRun{})
	assert.ErrorContains(t, err, "id is required")
}
