package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports"
)

// CacheOutcome reports how RepositoryCache.Load produced its result.
type CacheOutcome string

const (
	CacheHit CacheOutcome = "hit"
	// CacheMiss means the archive was downloaded because the revision changed
	// or nothing was held for the DID.
	CacheMiss CacheOutcome = "miss"
	// CacheProbeFailed means the revision probe failed and the archive was
	// downloaded unconditionally.
	CacheProbeFailed CacheOutcome = "probe-failed"
)

// RepositoryCache holds the most recently parsed repository. It has exactly
// one slot; storing a new entry replaces whatever was held before.
type RepositoryCache struct {
	fetcher    ports.RepoFetcher
	classifier ports.ArchiveClassifier

	mu    sync.Mutex
	entry *domain.RepositoryCacheEntry
}

func NewRepositoryCache(fetcher ports.RepoFetcher, classifier ports.ArchiveClassifier) *RepositoryCache {
	return &RepositoryCache{fetcher: fetcher, classifier: classifier}
}

// Load returns parsed interactions for did, downloading only when the host
// reports a revision different from the held entry.
func (c *RepositoryCache) Load(ctx context.Context, did string, progress ports.ProgressObserver) (domain.ParsedInteractions, CacheOutcome, error) {
	if progress == nil {
		progress = ports.NoProgress
	}

	progress.Progress("Checking for updates...", 0)
	probe, probeErr := c.fetcher.LatestRevision(ctx, did)
	if probeErr == nil {
		if held, ok := c.lookup(did, probe.Revision); ok {
			progress.Progress("Using cached data (no changes detected)...", 0)
			return held, CacheHit, nil
		}
		progress.Progress("Repository updated, downloading changes...", 0)
	}

	knownHost := ""
	outcome := CacheProbeFailed
	if probeErr == nil {
		knownHost = probe.HostURL
		outcome = CacheMiss
	}

	archive, err := c.fetcher.Download(ctx, did, progress, knownHost)
	if err != nil {
		return domain.ParsedInteractions{}, outcome, fmt.Errorf("download repository: %w", err)
	}

	progress.Progress("Parsing repository...", 0)
	parsed, err := c.classifier.Classify(ctx, archive)
	if err != nil {
		return domain.ParsedInteractions{}, outcome, fmt.Errorf("classify repository: %w", err)
	}

	revision := archive.Revision
	if probeErr == nil {
		revision = probe.Revision
	}
	c.store(domain.RepositoryCacheEntry{DID: did, Revision: revision, Parsed: parsed})

	return parsed, outcome, nil
}

// Entry returns a copy of the held slot, if any.
func (c *RepositoryCache) Entry() (domain.RepositoryCacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry == nil {
		return domain.RepositoryCacheEntry{}, false
	}
	return *c.entry, true
}

func (c *RepositoryCache) lookup(did, revision string) (domain.ParsedInteractions, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry == nil || c.entry.DID != did || c.entry.Revision != revision {
		return domain.ParsedInteractions{}, false
	}
	return c.entry.Parsed, true
}

func (c *RepositoryCache) store(entry domain.RepositoryCacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = &entry
}
