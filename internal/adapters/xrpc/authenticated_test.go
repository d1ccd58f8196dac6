package xrpc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() domain.Session {
	return domain.Session{
		DID:          "did:plc:alice",
		Handle:       "alice.bsky.social",
		AccessToken:  "access-old",
		RefreshToken: "refresh-old",
	}
}

type pdsStub struct {
	calls         atomic.Int32
	refreshes     atomic.Int32
	refreshStatus int
	rejectAll     bool
	failStatus    int
}

func (p *pdsStub) handler(t *testing.T) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/xrpc/com.atproto.server.refreshSession":
			p.refreshes.Add(1)
			assert.Equal(t, "Bearer refresh-old", r.Header.Get("Authorization"))
			if p.refreshStatus != 0 {
				w.WriteHeader(p.refreshStatus)
				_, _ = w.Write([]byte(`{"error":"ExpiredToken","message":"Token has been revoked"}`))
				return
			}
			_, _ = w.Write([]byte(`{"did":"did:plc:alice","handle":"alice.bsky.social","accessJwt":"access-new","refreshJwt":"refresh-new"}`))
		case "/xrpc/com.atproto.repo.createRecord":
			p.calls.Add(1)
			if p.failStatus != 0 {
				w.WriteHeader(p.failStatus)
				_, _ = w.Write([]byte(`{"error":"InvalidRequest","message":"bad record"}`))
				return
			}
			if p.rejectAll || r.Header.Get("Authorization") != "Bearer access-new" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"ExpiredToken","message":"Token has expired"}`))
				return
			}
			_, _ = w.Write([]byte(`{"uri":"at://did:plc:alice/app.bsky.graph.list/1","cid":"bafy"}`))
		default:
			http.NotFound(w, r)
		}
	})
}

func TestAuthenticatedClientRefreshesOnceAndRetries(t *testing.T) {
	t.Parallel()

	stub := &pdsStub{}
	server := httptest.NewServer(stub.handler(t))
	t.Cleanup(server.Close)

	client := NewAuthenticatedClient(Client{Host: server.URL, HTTPClient: server.Client()}, testSession(), nil)
	var updates []domain.Session
	client.OnSessionUpdate = func(s domain.Session) { updates = append(updates, s) }

	var ref domain.RecordRef
	err := client.Procedure(context.Background(), "com.atproto.repo.createRecord", map[string]string{"repo": "did:plc:alice"}, &ref)
	require.NoError(t, err)

	assert.Equal(t, "at://did:plc:alice/app.bsky.graph.list/1", ref.URI)
	assert.Equal(t, int32(1), stub.refreshes.Load())
	assert.Equal(t, int32(2), stub.calls.Load())
	require.Len(t, updates, 1)
	assert.Equal(t, "access-new", updates[0].AccessToken)
	assert.Equal(t, "access-new", client.Session().AccessToken)
	assert.Equal(t, StateAuthorized, client.State())
}

func TestAuthenticatedClientDoesNotLoopWhenRetryIsRejected(t *testing.T) {
	t.Parallel()

	stub := &pdsStub{rejectAll: true}
	server := httptest.NewServer(stub.handler(t))
	t.Cleanup(server.Close)

	client := NewAuthenticatedClient(Client{Host: server.URL, HTTPClient: server.Client()}, testSession(), nil)

	err := client.Procedure(context.Background(), "com.atproto.repo.createRecord", map[string]string{}, nil)
	require.Error(t, err)

	assert.True(t, IsAuthFailure(err))
	assert.Equal(t, int32(1), stub.refreshes.Load())
	assert.Equal(t, int32(2), stub.calls.Load())
}

func TestAuthenticatedClientRefreshFailureExpiresSession(t *testing.T) {
	t.Parallel()

	stub := &pdsStub{refreshStatus: http.StatusBadRequest}
	server := httptest.NewServer(stub.handler(t))
	t.Cleanup(server.Close)

	client := NewAuthenticatedClient(Client{Host: server.URL, HTTPClient: server.Client()}, testSession(), nil)
	updated := false
	client.OnSessionUpdate = func(domain.Session) { updated = true }

	err := client.Procedure(context.Background(), "com.atproto.repo.createRecord", map[string]string{}, nil)
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	var expired *domain.SessionExpiredError
	assert.ErrorAs(t, err, &expired)
	assert.False(t, updated)
	assert.Equal(t, int32(1), stub.calls.Load())
	assert.Equal(t, StateFailed, client.State())

	err = client.Procedure(context.Background(), "com.atproto.repo.createRecord", map[string]string{}, nil)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, int32(1), stub.calls.Load(), "failed client must not reach the network")
}

func TestAuthenticatedClientPropagatesNonAuthErrors(t *testing.T) {
	t.Parallel()

	stub := &pdsStub{failStatus: http.StatusBadRequest}
	server := httptest.NewServer(stub.handler(t))
	t.Cleanup(server.Close)

	client := NewAuthenticatedClient(Client{Host: server.URL, HTTPClient: server.Client()}, testSession(), nil)

	err := client.Procedure(context.Background(), "com.atproto.repo.createRecord", map[string]string{}, nil)
	require.Error(t, err)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "InvalidRequest", apiErr.Code)
	assert.False(t, IsAuthFailure(err))
	assert.Equal(t, int32(0), stub.refreshes.Load())
	assert.Equal(t, int32(1), stub.calls.Load())
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "authorized", StateAuthorized.String())
	assert.Equal(t, "retrying", StateRetrying.String())
	assert.Equal(t, "failed", StateFailed.String())
}
