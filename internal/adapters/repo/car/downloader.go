package car

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/skycircle/internal/adapters/xrpc"
	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports"
	"github.com/dustin/go-humanize"
)

const (
	nsidGetRepo         = "com.atproto.sync.getRepo"
	nsidGetLatestCommit = "com.atproto.sync.getLatestCommit"
	revisionHeader      = "atproto-repo-rev"
	chunkSize           = 32 << 10
	maxPrealloc         = 64 << 20

	// DefaultMaxRepoBytes caps a repository export when Downloader.MaxBytes
	// is unset.
	DefaultMaxRepoBytes int64 = 1 << 30
)

// Downloader fetches repository exports from the hosting server of an
// account.
type Downloader struct {
	Resolver   ports.IdentityResolver
	HTTPClient *http.Client
	MaxBytes   int64
}

var _ ports.RepoFetcher = Downloader{}

// LatestRevision asks the hosting server for the current commit without
// transferring the repository.
func (d Downloader) LatestRevision(ctx context.Context, did string) (domain.RevisionProbe, error) {
	host, err := d.Resolver.ResolveHost(ctx, did)
	if err != nil {
		return domain.RevisionProbe{}, err
	}

	var resp struct {
		CID string `json:"cid"`
		Rev string `json:"rev"`
	}
	client := xrpc.Client{Host: host, HTTPClient: d.HTTPClient}
	if err := client.Query(ctx, nsidGetLatestCommit, url.Values{"did": {did}}, "", &resp); err != nil {
		return domain.RevisionProbe{}, fmt.Errorf("get latest commit for %s: %w", did, err)
	}
	if resp.Rev == "" {
		return domain.RevisionProbe{}, fmt.Errorf("get latest commit for %s: empty revision", did)
	}

	return domain.RevisionProbe{Revision: resp.Rev, HostURL: host}, nil
}

// Download streams the full repository export for did. knownHost skips host
// resolution when the caller already probed it.
func (d Downloader) Download(ctx context.Context, did string, progress ports.ProgressObserver, knownHost string) (domain.RepoArchive, error) {
	if progress == nil {
		progress = ports.NoProgress
	}

	host := strings.TrimRight(knownHost, "/")
	if host == "" {
		resolved, err := d.Resolver.ResolveHost(ctx, did)
		if err != nil {
			return domain.RepoArchive{}, err
		}
		host = resolved
	}

	endpoint := host + "/xrpc/" + nsidGetRepo + "?" + url.Values{"did": {did}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.RepoArchive{}, &domain.DownloadError{DID: did, Err: err}
	}
	req.Header.Set("Accept", "application/vnd.ipld.car")

	resp, err := d.httpClient().Do(req)
	if err != nil {
		return domain.RepoArchive{}, &domain.DownloadError{DID: did, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.RepoArchive{}, &domain.DownloadError{
			DID:        did,
			StatusCode: resp.StatusCode,
			Err:        xrpc.DecodeError(resp),
		}
	}

	body, err := readWithProgress(resp.Body, resp.ContentLength, d.maxBytes(), progress)
	if err != nil {
		return domain.RepoArchive{}, &domain.DownloadError{DID: did, Err: err}
	}

	return domain.RepoArchive{
		Bytes:    body,
		Revision: resp.Header.Get(revisionHeader),
	}, nil
}

func readWithProgress(r io.Reader, total int64, limit int64, progress ports.ProgressObserver) ([]byte, error) {
	if total > limit {
		return nil, fmt.Errorf("repository export of %s exceeds the %s limit",
			humanize.IBytes(uint64(total)), humanize.IBytes(uint64(limit)))
	}

	var buf bytes.Buffer
	if total > 0 {
		buf.Grow(int(min(total, maxPrealloc)))
	}

	chunk := make([]byte, chunkSize)
	var received uint64
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			received += uint64(n)
			if received > uint64(limit) {
				return nil, fmt.Errorf("repository export exceeds the %s limit", humanize.IBytes(uint64(limit)))
			}
			buf.Write(chunk[:n])
			progress.Progress(DownloadLabel(received, total), 0)
		}
		if errors.Is(err, io.EOF) {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("read repository stream: %w", err)
		}
	}
}

// DownloadLabel formats a download milestone. A non-positive total means the
// length is unknown, and a total the stream has already outgrown is ignored.
func DownloadLabel(received uint64, total int64) string {
	if total <= 0 || received > uint64(total) {
		return fmt.Sprintf("Downloading repository... %s", humanize.IBytes(received))
	}
	percent := received * 100 / uint64(total)
	return fmt.Sprintf("Downloading repository... %s / %s (%d%%)",
		humanize.IBytes(received), humanize.IBytes(uint64(total)), percent)
}

func (d Downloader) maxBytes() int64 {
	if d.MaxBytes > 0 {
		return d.MaxBytes
	}
	return DefaultMaxRepoBytes
}

func (d Downloader) httpClient() *http.Client {
	if d.HTTPClient != nil {
		return d.HTTPClient
	}
	return http.DefaultClient
}
