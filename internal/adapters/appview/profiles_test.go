package appview

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/skycircle/internal/adapters/xrpc"
	"github.com/bnema/skycircle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfilesSendsRepeatedActors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/xrpc/app.bsky.actor.getProfiles", r.URL.Path)
		assert.Equal(t, []string{"did:plc:a", "bob.bsky.social"}, r.URL.Query()["actors"])
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"profiles":[
			{"did":"did:plc:a","handle":"a.bsky.social","displayName":"A","avatar":"https://cdn/a.jpg"},
			{"did":"did:plc:b","handle":"bob.bsky.social","description":"hi"}
		]}`))
	}))
	t.Cleanup(server.Close)

	client := Client{XRPC: xrpc.Client{Host: server.URL, HTTPClient: server.Client()}}
	profiles, err := client.GetProfiles(context.Background(), []string{"did:plc:a", "bob.bsky.social"})
	require.NoError(t, err)

	assert.Equal(t, []domain.Profile{
		{DID: "did:plc:a", Handle: "a.bsky.social", DisplayName: "A", Avatar: "https://cdn/a.jpg"},
		{DID: "did:plc:b", Handle: "bob.bsky.social", Description: "hi"},
	}, profiles)
}

func TestGetProfilesRejectsOversizedBatch(t *testing.T) {
	t.Parallel()

	actors := make([]string, MaxActorsPerCall+1)
	for i := range actors {
		actors[i] = fmt.Sprintf("did:plc:%d", i)
	}

	_, err := Client{}.GetProfiles(context.Background(), actors)
	assert.ErrorContains(t, err, "exceeds limit of 25")
}

func TestGetProfilesWrapsAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"InternalServerError"}`))
	}))
	t.Cleanup(server.Close)

	client := Client{XRPC: xrpc.Client{Host: server.URL, HTTPClient: server.Client()}}
	_, err := client.GetProfiles(context.Background(), []string{"did:plc:a"})
	require.Error(t, err)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}
