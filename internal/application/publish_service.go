package application

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports"
)

const nsidGetStarterPack = "app.bsky.graph.getStarterPack"

type PublishService struct {
	publisher Publisher
	caller    ports.XRPCCaller
	packs     ports.PackRepository
	sessions  ports.SessionStore
	runs      ports.RunHistory
	analyzer  *AnalysisService
}

// NewPublishService wires a publisher around caller. analyzer may be nil when
// members always come from stored runs.
func NewPublishService(publisher Publisher, caller ports.XRPCCaller, packs ports.PackRepository, sessions ports.SessionStore, runs ports.RunHistory, analyzer *AnalysisService) *PublishService {
	publisher.Writer = caller

	return &PublishService{
		publisher: publisher,
		caller:    caller,
		packs:     packs,
		sessions:  sessions,
		runs:      runs,
		analyzer:  analyzer,
	}
}

// Publish creates a starter pack from the selected members and records it in
// the local ledger. When only the ledger write fails, the published pack is
// returned together with the error.
func (s *PublishService) Publish(ctx context.Context, cmd PublishCommand, progress ports.ProgressObserver) (domain.StarterPack, error) {
	if progress == nil {
		progress = ports.NoProgress
	}

	run, members, err := s.selectMembers(ctx, cmd, progress)
	if err != nil {
		return domain.StarterPack{}, err
	}
	if len(members) == 0 {
		return domain.StarterPack{}, errors.New("no accounts left to publish after exclusions")
	}
	count := min(len(members), MaxPackMembers)

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		name = DefaultPackName(run.Handle)
	}
	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		description = DefaultPackDescription(run.Handle, count, run.Period, s.now())
	}

	progress.Progress(fmt.Sprintf("Publishing %d members...", count), 0)
	pack, err := s.publisher.Publish(ctx, name, description, members)
	if err != nil {
		return domain.StarterPack{}, s.expire(ctx, fmt.Errorf("publish starter pack: %w", err))
	}

	if err := s.packs.Save(ctx, pack); err != nil {
		return pack, fmt.Errorf("record starter pack: %w", err)
	}

	return pack, nil
}

type starterPackResponse struct {
	StarterPack struct {
		URI     string `json:"uri"`
		Creator struct {
			DID    string `json:"did"`
			Handle string `json:"handle"`
		} `json:"creator"`
		Record struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			List        string `json:"list"`
		} `json:"record"`
		List *struct {
			URI           string `json:"uri"`
			ListItemCount int    `json:"listItemCount"`
		} `json:"list"`
		ListItemsSample []struct {
			Subject struct {
				Handle string `json:"handle"`
			} `json:"subject"`
		} `json:"listItemsSample"`
		JoinedAllTimeCount int    `json:"joinedAllTimeCount"`
		IndexedAt          string `json:"indexedAt"`
	} `json:"starterPack"`
}

// Lookup fetches a starter pack by AT-URI through the authenticated client.
func (s *PublishService) Lookup(ctx context.Context, uri string) (StarterPackView, error) {
	if _, err := domain.ParseATURI(uri); err != nil {
		return StarterPackView{}, err
	}

	var resp starterPackResponse
	if err := s.caller.Query(ctx, nsidGetStarterPack, url.Values{"starterPack": {uri}}, &resp); err != nil {
		return StarterPackView{}, s.expire(ctx, fmt.Errorf("get starter pack: %w", err))
	}

	pack := resp.StarterPack
	view := StarterPackView{
		URI:           pack.URI,
		Name:          pack.Record.Name,
		Description:   pack.Record.Description,
		CreatorDID:    pack.Creator.DID,
		CreatorHandle: pack.Creator.Handle,
		ListURI:       pack.Record.List,
		JoinedAllTime: pack.JoinedAllTimeCount,
	}
	if pack.List != nil {
		view.ListURI = pack.List.URI
		view.ListItemCount = pack.List.ListItemCount
	}
	for _, item := range pack.ListItemsSample {
		view.SampleHandles = append(view.SampleHandles, item.Subject.Handle)
	}
	if indexed, err := time.Parse(time.RFC3339Nano, pack.IndexedAt); err == nil {
		view.IndexedAt = indexed
	}

	return view, nil
}

// DefaultPackName is "<user>'s interlocutors", where user is the first label
// of the handle.
func DefaultPackName(handle string) string {
	return packUser(handle) + "'s interlocutors"
}

// DefaultPackDescription summarizes the selection, dated M/D/YYYY.
func DefaultPackDescription(handle string, count int, period domain.Period, now time.Time) string {
	user := packUser(handle)
	if user != "" {
		user = strings.ToUpper(user[:1]) + user[1:]
	}
	span := "in the " + period.Label()
	if period == domain.PeriodAllTime {
		span = "of all time"
	}
	return fmt.Sprintf("The %d accounts %s interacted with the most %s as of %d/%d/%d",
		count, user, span, int(now.Month()), now.Day(), now.Year())
}

func packUser(handle string) string {
	handle = domain.NormalizeHandle(handle)
	if user, _, found := strings.Cut(handle, "."); found && user != "" {
		return user
	}
	return handle
}

func (s *PublishService) now() time.Time {
	if s.publisher.Clock == nil {
		return time.Now()
	}
	return s.publisher.Clock.Now()
}

func (s *PublishService) selectMembers(ctx context.Context, cmd PublishCommand, progress ports.ProgressObserver) (domain.AnalysisRun, []domain.PackMember, error) {
	exclude := make(map[string]struct{}, len(cmd.Exclude))
	for _, raw := range cmd.Exclude {
		key := strings.TrimSpace(raw)
		if !domain.IsDID(key) {
			key = domain.NormalizeHandle(key)
		}
		if key != "" {
			exclude[key] = struct{}{}
		}
	}

	switch {
	case cmd.RunID != "":
		if s.runs == nil {
			return domain.AnalysisRun{}, nil, domain.ErrRunNotFound
		}
		run, err := s.runs.GetRun(ctx, cmd.RunID)
		if err != nil {
			return domain.AnalysisRun{}, nil, fmt.Errorf("get run %s: %w", cmd.RunID, err)
		}
		return run, run.Members(cmd.Top, exclude), nil
	case cmd.Handle != "":
		if s.analyzer == nil {
			return domain.AnalysisRun{}, nil, errors.New("analysis is not available")
		}
		result, err := s.analyzer.Analyze(ctx, AnalyzeCommand{
			Handle:      cmd.Handle,
			Period:      cmd.Period,
			Weights:     cmd.Weights,
			SaveHistory: true,
		}, progress)
		if err != nil {
			return domain.AnalysisRun{}, nil, err
		}
		return result.Run, result.Run.Members(cmd.Top, exclude), nil
	default:
		return domain.AnalysisRun{}, nil, errors.New("either a run id or a handle is required")
	}
}

// expire clears the stored session when err means the session can no longer
// be renewed.
func (s *PublishService) expire(ctx context.Context, err error) error {
	if !errors.Is(err, domain.ErrSessionExpired) || s.sessions == nil {
		return err
	}
	if clearErr := s.sessions.Clear(ctx); clearErr != nil {
		return fmt.Errorf("clear expired session: %w", errors.Join(err, clearErr))
	}
	return err
}
