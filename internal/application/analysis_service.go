package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/logging"
	"github.com/bnema/skycircle/internal/ports"
	"github.com/google/uuid"
)

type AnalysisService struct {
	resolver ports.IdentityResolver
	cache    *RepositoryCache
	profiles ProfileResolver
	history  ports.RunHistory
	clock    ports.Clock
	logger   *slog.Logger
}

func NewAnalysisService(resolver ports.IdentityResolver, cache *RepositoryCache, profiles ProfileResolver, history ports.RunHistory, clock ports.Clock, logger *slog.Logger) *AnalysisService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &AnalysisService{
		resolver: resolver,
		cache:    cache,
		profiles: profiles,
		history:  history,
		clock:    clock,
		logger:   logger,
	}
}

// Analyze ranks the accounts cmd.Handle interacts with most.
func (s *AnalysisService) Analyze(ctx context.Context, cmd AnalyzeCommand, progress ports.ProgressObserver) (AnalysisResult, error) {
	if progress == nil {
		progress = ports.NoProgress
	}
	handle := domain.NormalizeHandle(cmd.Handle)
	if handle == "" {
		return AnalysisResult{}, errors.New("handle is required")
	}
	period := cmd.Period
	if period == "" {
		period = domain.PeriodAllTime
	}
	weights := cmd.Weights
	if weights == (domain.ScoringWeights{}) {
		weights = domain.DefaultWeights
	}

	progress.Progress("Resolving handle...", 0)
	did, err := s.resolver.ResolveHandle(ctx, handle)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("resolve handle: %w", err)
	}

	parsed, outcome, err := s.cache.Load(ctx, did, progress)
	if err != nil {
		return AnalysisResult{}, err
	}
	progress.Progress(fmt.Sprintf("Found %s", parsed.Summary()), interactionCount(parsed))

	now := s.clock.Now()
	filtered := parsed.FilterByPeriod(period, now)
	progress.Progress(fmt.Sprintf("Filtered to %s (%s)", filtered.Summary(), period.Label()), interactionCount(filtered))

	agg := Aggregate(filtered, did)

	profiles, err := s.profiles.ResolveMentions(ctx, agg.Mentions, did, agg.Counts, progress)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("resolve mentions: %w", err)
	}

	pending := make([]string, 0, MaxProfileCandidates)
	for _, candidate := range TopTargets(agg.Counts, MaxProfileCandidates) {
		if _, ok := profiles[candidate]; !ok {
			pending = append(pending, candidate)
		}
	}
	fetched, err := s.profiles.ResolveProfiles(ctx, pending, progress)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("resolve profiles: %w", err)
	}
	for target, profile := range fetched {
		profiles[target] = profile
	}

	run := domain.AnalysisRun{
		ID:        uuid.NewString(),
		Handle:    handle,
		DID:       did,
		Period:    period,
		Revision:  parsed.Revision,
		CacheHit:  outcome == CacheHit,
		Weights:   weights,
		Accounts:  Rank(agg.Counts, profiles, weights, cmd.Limit),
		CreatedAt: now.UTC(),
	}

	if cmd.SaveHistory && s.history != nil {
		if err := s.history.SaveRun(ctx, run); err != nil {
			s.logger.Warn("could not save analysis run", "run", run.ID, "err", err)
		}
	}

	return AnalysisResult{
		Run:          run,
		Outcome:      outcome,
		Interactions: interactionCount(filtered),
		Targets:      agg.Counts.Len(),
	}, nil
}

func (s *AnalysisService) GetRun(ctx context.Context, id string) (domain.AnalysisRun, error) {
	if s.history == nil {
		return domain.AnalysisRun{}, domain.ErrRunNotFound
	}
	run, err := s.history.GetRun(ctx, id)
	if err != nil {
		return domain.AnalysisRun{}, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

func (s *AnalysisService) ListRuns(ctx context.Context, limit int) ([]domain.AnalysisRun, error) {
	if s.history == nil {
		return nil, nil
	}
	runs, err := s.history.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

func interactionCount(p domain.ParsedInteractions) int {
	return len(p.Likes) + len(p.Replies) + len(p.Reposts) + len(p.Quotes) + len(p.Mentions)
}
