package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/logging"
	"github.com/bnema/skycircle/internal/ports"
	"github.com/bnema/skycircle/internal/rate"
)

const (
	nsidCreateRecord = "com.atproto.repo.createRecord"

	collectionList        = "app.bsky.graph.list"
	collectionListItem    = "app.bsky.graph.listitem"
	collectionStarterPack = "app.bsky.graph.starterpack"
	listPurposeCurate     = "app.bsky.graph.defs#curatelist"

	// MaxPackMembers caps how many members are written to one pack.
	MaxPackMembers = 150

	DefaultWebURL = "https://bsky.app"
)

type createRecordInput struct {
	Repo       string `json:"repo"`
	Collection string `json:"collection"`
	Record     any    `json:"record"`
}

type listRecord struct {
	Type        string `json:"$type"`
	Purpose     string `json:"purpose"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

type listItemRecord struct {
	Type      string `json:"$type"`
	Subject   string `json:"subject"`
	List      string `json:"list"`
	CreatedAt string `json:"createdAt"`
}

type starterPackRecord struct {
	Type        string `json:"$type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	List        string `json:"list"`
	CreatedAt   string `json:"createdAt"`
}

// Publisher writes a curate list, its members and a starter pack pointing at
// it. Every write goes through Writer, which renews the session when needed.
type Publisher struct {
	Writer  ports.XRPCCaller
	Limiter rate.Limiter
	Clock   ports.Clock
	Logger  *slog.Logger
	WebURL  string
}

// Publish creates the pack and returns it with its share URL. Member failures
// are logged and counted in Skipped; they never abort the publish.
func (p Publisher) Publish(ctx context.Context, name, description string, members []domain.PackMember) (domain.StarterPack, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.StarterPack{}, errors.New("starter pack name is required")
	}
	if len(members) == 0 {
		return domain.StarterPack{}, errors.New("starter pack needs at least one member")
	}

	logger := p.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	limiter := p.Limiter
	if limiter == nil {
		limiter = rate.Unlimited{}
	}
	clock := p.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	session := p.Writer.Session()
	now := clock.Now().UTC()
	stamp := now.Format(time.RFC3339Nano)

	list, err := p.create(ctx, session.DID, collectionList, listRecord{
		Type:        collectionList,
		Purpose:     listPurposeCurate,
		Name:        name + " - List",
		Description: description,
		CreatedAt:   stamp,
	})
	if err != nil {
		return domain.StarterPack{}, fmt.Errorf("create list: %w", err)
	}

	if len(members) > MaxPackMembers {
		members = members[:MaxPackMembers]
	}

	added, skipped := 0, 0
	for _, member := range members {
		if err := limiter.Wait(ctx); err != nil {
			return domain.StarterPack{}, err
		}

		_, err := p.create(ctx, session.DID, collectionListItem, listItemRecord{
			Type:      collectionListItem,
			Subject:   member.DID,
			List:      list.URI,
			CreatedAt: clock.Now().UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			if errors.Is(err, domain.ErrSessionExpired) {
				return domain.StarterPack{}, fmt.Errorf("add list member: %w", err)
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return domain.StarterPack{}, ctxErr
			}
			logger.Warn("skipping pack member", "did", member.DID, "handle", member.Handle, "err", err)
			skipped++
			continue
		}
		added++
	}

	pack, err := p.create(ctx, session.DID, collectionStarterPack, starterPackRecord{
		Type:        collectionStarterPack,
		Name:        name,
		Description: description,
		List:        list.URI,
		CreatedAt:   stamp,
	})
	if err != nil {
		return domain.StarterPack{}, fmt.Errorf("create starter pack: %w", err)
	}

	url, err := p.shareURL(session.Handle, pack.URI)
	if err != nil {
		return domain.StarterPack{}, err
	}

	return domain.StarterPack{
		URI:         pack.URI,
		ListURI:     list.URI,
		URL:         url,
		Name:        name,
		Description: description,
		Creator:     session.DID,
		Members:     added,
		Skipped:     skipped,
		CreatedAt:   now,
	}, nil
}

func (p Publisher) create(ctx context.Context, repo, collection string, record any) (domain.RecordRef, error) {
	var ref domain.RecordRef
	err := p.Writer.Procedure(ctx, nsidCreateRecord, createRecordInput{
		Repo:       repo,
		Collection: collection,
		Record:     record,
	}, &ref)
	if err != nil {
		return domain.RecordRef{}, err
	}
	if ref.URI == "" {
		return domain.RecordRef{}, fmt.Errorf("create %s: response has no uri", collection)
	}
	return ref, nil
}

// shareURL builds {web}/starter-pack/{handle}/{rkey}.
func (p Publisher) shareURL(handle, packURI string) (string, error) {
	uri, err := domain.ParseATURI(packURI)
	if err != nil {
		return "", fmt.Errorf("parse starter pack uri: %w", err)
	}
	if uri.RecordKey == "" {
		return "", fmt.Errorf("starter pack uri %q has no record key", packURI)
	}

	web := strings.TrimRight(p.WebURL, "/")
	if web == "" {
		web = DefaultWebURL
	}
	return fmt.Sprintf("%s/starter-pack/%s/%s", web, handle, uri.RecordKey), nil
}
