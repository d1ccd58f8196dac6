package ports

import (
	"context"
	"net/url"

	"github.com/bnema/skycircle/internal/domain"
)

type IdentityResolver interface {
	// ResolveHandle returns the DID for a handle. DIDs are returned unchanged.
	ResolveHandle(ctx context.Context, handle string) (string, error)
	// ResolveHost returns the personal data server URL hosting did.
	ResolveHost(ctx context.Context, did string) (string, error)
}

type RepoFetcher interface {
	LatestRevision(ctx context.Context, did string) (domain.RevisionProbe, error)
	Download(ctx context.Context, did string, progress ProgressObserver, knownHost string) (domain.RepoArchive, error)
}

type ArchiveClassifier interface {
	Classify(ctx context.Context, archive domain.RepoArchive) (domain.ParsedInteractions, error)
}

type ProfileSource interface {
	// GetProfiles looks up at most 25 actors (DIDs or handles) in one call.
	GetProfiles(ctx context.Context, actors []string) ([]domain.Profile, error)
}

// XRPCCaller issues authorized calls on behalf of the held session.
type XRPCCaller interface {
	Query(ctx context.Context, nsid string, params url.Values, out any) error
	Procedure(ctx context.Context, nsid string, body any, out any) error
	Session() domain.Session
}

type SessionCreator interface {
	CreateSession(ctx context.Context, identifier, password string) (domain.Session, error)
}
