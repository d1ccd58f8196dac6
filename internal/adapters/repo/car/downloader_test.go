package car

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports"
	"github.com/bnema/skycircle/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDownloadStreamsWithProgressAndRevision(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte{0xab}, 3*chunkSize+100)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/xrpc/com.atproto.sync.getRepo", r.URL.Path)
		assert.Equal(t, "did:plc:alice", r.URL.Query().Get("did"))
		w.Header().Set("Content-Type", "application/vnd.ipld.car")
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		w.Header().Set("atproto-repo-rev", "3krev")
		_, _ = w.Write(payload)
	}))
	t.Cleanup(server.Close)

	var stages []string
	progress := ports.ProgressFunc(func(stage string, completed int) {
		assert.Zero(t, completed)
		stages = append(stages, stage)
	})

	downloader := Downloader{HTTPClient: server.Client()}
	archive, err := downloader.Download(context.Background(), "did:plc:alice", progress, server.URL)
	require.NoError(t, err)

	assert.Equal(t, payload, archive.Bytes)
	assert.Equal(t, "3krev", archive.Revision)
	require.NotEmpty(t, stages)
	assert.Equal(t, "Downloading repository... 96 KiB / 96 KiB (100%)", stages[len(stages)-1])
}

func TestDownloadWithoutRevisionHeader(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("car-bytes"))
	}))
	t.Cleanup(server.Close)

	archive, err := Downloader{HTTPClient: server.Client()}.Download(context.Background(), "did:plc:alice", nil, server.URL)
	require.NoError(t, err)
	assert.Empty(t, archive.Revision)
	assert.Equal(t, []byte("car-bytes"), archive.Bytes)
}

func TestDownloadNonSuccessStatusIsDownloadError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"RepoNotFound","message":"Could not find repo"}`))
	}))
	t.Cleanup(server.Close)

	_, err := Downloader{HTTPClient: server.Client()}.Download(context.Background(), "did:plc:gone", nil, server.URL)
	require.Error(t, err)

	var dlErr *domain.DownloadError
	require.ErrorAs(t, err, &dlErr)
	assert.Equal(t, http.StatusNotFound, dlErr.StatusCode)
	assert.Equal(t, "did:plc:gone", dlErr.DID)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "RepoNotFound", apiErr.Code)
}

// lyingHost answers every request with a declared length of declared bytes
// and then sends body and hangs up.
func lyingHost(t *testing.T, declared int64, body string) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			_, _ = http.ReadRequest(bufio.NewReader(conn))
			_, _ = fmt.Fprintf(conn, "HTTP/1.1 200 OK\r\nContent-Type: application/vnd.ipld.car\r\nContent-Length: %d\r\n\r\n%s", declared, body)
			_ = conn.Close()
		}
	}()

	return "http://" + listener.Addr().String()
}

func TestDownloadRejectsDeclaredLengthOverLimit(t *testing.T) {
	t.Parallel()

	host := lyingHost(t, 1<<40, "CAR!")

	_, err := Downloader{}.Download(context.Background(), "did:plc:alice", nil, host)
	require.Error(t, err)

	var dlErr *domain.DownloadError
	require.ErrorAs(t, err, &dlErr)
	assert.Equal(t, "did:plc:alice", dlErr.DID)
	assert.ErrorContains(t, err, "exceeds the 1.0 GiB limit")
}

func TestDownloadHugeDeclaredLengthWithShortBody(t *testing.T) {
	t.Parallel()

	host := lyingHost(t, 1<<40, "CAR!")

	_, err := Downloader{MaxBytes: 1 << 41}.Download(context.Background(), "did:plc:alice", nil, host)
	require.Error(t, err)

	var dlErr *domain.DownloadError
	require.ErrorAs(t, err, &dlErr)
	assert.ErrorContains(t, err, "read repository stream")
}

func TestDownloadStopsPastMaxBytes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for range 4 {
			_, _ = w.Write(bytes.Repeat([]byte{0xab}, chunkSize))
			w.(http.Flusher).Flush()
		}
	}))
	t.Cleanup(server.Close)

	_, err := Downloader{HTTPClient: server.Client(), MaxBytes: chunkSize}.
		Download(context.Background(), "did:plc:alice", nil, server.URL)
	require.Error(t, err)

	var dlErr *domain.DownloadError
	require.ErrorAs(t, err, &dlErr)
	assert.ErrorContains(t, err, "exceeds the 32 KiB limit")
}

func TestDownloadResolvesHostWhenUnknown(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("car"))
	}))
	t.Cleanup(server.Close)

	resolver := mocks.NewMockIdentityResolver(t)
	resolver.EXPECT().ResolveHost(mock.Anything, "did:plc:alice").Return(server.URL, nil).Once()

	archive, err := Downloader{Resolver: resolver, HTTPClient: server.Client()}.Download(context.Background(), "did:plc:alice", nil, "")
	require.NoError(t, err)
	assert.Equal(t, []byte("car"), archive.Bytes)
}

func TestDownloadHostResolutionFailureIsResolutionError(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockIdentityResolver(t)
	resolver.EXPECT().ResolveHost(mock.Anything, "did:plc:alice").
		Return("", &domain.ResolutionError{Subject: "did:plc:alice", Err: errors.New("not found")}).Once()

	_, err := Downloader{Resolver: resolver}.Download(context.Background(), "did:plc:alice", nil, "")
	require.Error(t, err)

	var resErr *domain.ResolutionError
	assert.ErrorAs(t, err, &resErr)
	var dlErr *domain.DownloadError
	assert.False(t, errors.As(err, &dlErr))
}

func TestLatestRevision(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/xrpc/com.atproto.sync.getLatestCommit", r.URL.Path)
		assert.Equal(t, "did:plc:alice", r.URL.Query().Get("did"))
		_, _ = w.Write([]byte(`{"cid":"bafycommit","rev":"3krev"}`))
	}))
	t.Cleanup(server.Close)

	resolver := mocks.NewMockIdentityResolver(t)
	resolver.EXPECT().ResolveHost(mock.Anything, "did:plc:alice").Return(server.URL, nil).Once()

	probe, err := Downloader{Resolver: resolver, HTTPClient: server.Client()}.LatestRevision(context.Background(), "did:plc:alice")
	require.NoError(t, err)
	assert.Equal(t, domain.RevisionProbe{Revision: "3krev", HostURL: server.URL}, probe)
}

func TestDownloadLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Downloading repository... 512 KiB / 1.0 MiB (50%)", DownloadLabel(512<<10, 1<<20))
	assert.Equal(t, "Downloading repository... 2.0 KiB", DownloadLabel(2048, -1))
	assert.Equal(t, "Downloading repository... 2.0 MiB", DownloadLabel(2<<20, 1<<20))
	assert.Equal(t, "Downloading repository... 1.0 MiB / 1.0 MiB (100%)", DownloadLabel(1<<20, 1<<20))
}
