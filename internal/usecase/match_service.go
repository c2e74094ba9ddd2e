package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riftwatch/riftwatch/internal/domain/match"
	"github.com/riftwatch/riftwatch/internal/domain/profile"
	"github.com/riftwatch/riftwatch/internal/domain/region"
	"github.com/riftwatch/riftwatch/internal/platform/cache"
	"github.com/riftwatch/riftwatch/internal/platform/logging"
)

const (
	defaultIngestWorkers = 4
	maxRecentMatchCount  = 100
	ingestStatusIngested = "ingested"
	ingestStatusExisting = "existing"
	ingestStatusFailed   = "failed"
)

// MatchService ingests match documents and serves the stored rows.
type MatchService struct {
	matchRepo   match.Repository
	profileRepo profile.Repository
	riot        RiotProvider
	idsCache    *cache.Store
	workerCount int
	logger      *logging.Logger
}

type IngestMatchResult struct {
	Match    match.Match
	Ingested bool
}

type IngestTaskResult struct {
	MatchID    string
	Status     string
	Message    string
	DurationMs int64
}

type IngestRecentResult struct {
	PUUID         string
	IngestedCount int
	ExistingCount int
	FailedCount   int
	Tasks         []IngestTaskResult
}

func NewMatchService(
	matchRepo match.Repository,
	profileRepo profile.Repository,
	riot RiotProvider,
	idsCache *cache.Store,
	workerCount int,
	logger *logging.Logger,
) *MatchService {
	if workerCount <= 0 {
		workerCount = defaultIngestWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
		riot:        riot,
		idsCache:    idsCache,
		workerCount: workerCount,
		logger:      logger,
	}
}

// GetMatch serves a stored match with its team and participant rows.
func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.GetMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Detail{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	detail, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Detail{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return match.Detail{}, fmt.Errorf("%w: match %s is not stored", ErrNotFound, matchID)
	}
	return detail, nil
}

// IngestMatch fetches one match, writes its roster identities and then
// the match rows. Re-ingesting a stored match leaves it untouched and
// reports Ingested=false. Roster rows are written before match rows so
// the participant foreign keys always resolve.
func (s *MatchService) IngestMatch(ctx context.Context, matchID string, routing region.Routing) (IngestMatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.IngestMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return IngestMatchResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if _, err := region.ParseRouting(string(routing)); err != nil {
		return IngestMatchResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if stored, found, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return IngestMatchResult{}, fmt.Errorf("get match: %w", err)
	} else if found {
		return IngestMatchResult{Match: stored.Match, Ingested: false}, nil
	}

	external, err := s.riot.FetchMatch(ctx, matchID, routing)
	if err != nil {
		return IngestMatchResult{}, fmt.Errorf("fetch match: %w", err)
	}

	if err := s.profileRepo.BulkUpsertStubs(ctx, external.Roster); err != nil {
		return IngestMatchResult{}, fmt.Errorf("upsert roster profiles: %w", err)
	}

	stored, inserted, err := s.matchRepo.SaveMatch(ctx, external.Match, external.Teams, external.Participants)
	if err != nil {
		return IngestMatchResult{}, fmt.Errorf("save match: %w", err)
	}
	return IngestMatchResult{Match: stored, Ingested: inserted}, nil
}

// ListRecentMatchIDs returns the player's recent match ids, newest
// first. Results are cached briefly so burst traffic for the same player
// does not fan out to upstream.
func (s *MatchService) ListRecentMatchIDs(ctx context.Context, puuid string, count int, queue *int) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.ListRecentMatchIDs")
	defer span.End()

	puuid = strings.TrimSpace(puuid)
	if puuid == "" {
		return nil, fmt.Errorf("%w: puuid is required", ErrInvalidInput)
	}
	if count < 0 || count > maxRecentMatchCount {
		return nil, fmt.Errorf("%w: count must be between 0 and %d", ErrInvalidInput, maxRecentMatchCount)
	}

	routing, err := s.routingForPlayer(ctx, puuid)
	if err != nil {
		return nil, err
	}

	key := matchIDsCacheKey(puuid, count, queue)
	if s.idsCache != nil {
		if cached, ok := s.idsCache.Get(ctx, key); ok {
			if ids, ok := cached.([]string); ok {
				return ids, nil
			}
		}
	}

	ids, err := s.riot.MatchIDsByPUUID(ctx, puuid, routing, count, queue)
	if err != nil {
		return nil, fmt.Errorf("fetch match ids: %w", err)
	}
	if s.idsCache != nil {
		s.idsCache.Set(ctx, key, ids)
	}
	return ids, nil
}

// IngestRecentMatches lists the player's recent matches and ingests them
// concurrently. Already stored matches count as existing, not failures.
func (s *MatchService) IngestRecentMatches(ctx context.Context, puuid string, count int, queue *int) (IngestRecentResult, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.IngestRecentMatches")
	defer span.End()

	puuid = strings.TrimSpace(puuid)
	routing, err := s.routingForPlayer(ctx, puuid)
	if err != nil {
		return IngestRecentResult{}, err
	}

	ids, err := s.ListRecentMatchIDs(ctx, puuid, count, queue)
	if err != nil {
		return IngestRecentResult{}, err
	}

	result := IngestRecentResult{PUUID: puuid}
	if len(ids) == 0 {
		return result, nil
	}

	results := make(chan IngestTaskResult, len(ids))

	var ingestedCount atomic.Int32
	var existingCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(s.workerCount)
	if err != nil {
		return IngestRecentResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, id := range ids {
		id := id
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := IngestTaskResult{MatchID: id}

			out, err := s.IngestMatch(ctx, id, routing)
			switch {
			case err != nil:
				row.Status = ingestStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "match ingestion failed", "match_id", id, "error", err)
			case out.Ingested:
				row.Status = ingestStatusIngested
				ingestedCount.Add(1)
			default:
				row.Status = ingestStatusExisting
				existingCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			results <- row
		}); err != nil {
			workers.Done()
			return IngestRecentResult{}, fmt.Errorf("submit match to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].MatchID < result.Tasks[j].MatchID
	})

	result.IngestedCount = int(ingestedCount.Load())
	result.ExistingCount = int(existingCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func (s *MatchService) routingForPlayer(ctx context.Context, puuid string) (region.Routing, error) {
	if puuid == "" {
		return "", fmt.Errorf("%w: puuid is required", ErrInvalidInput)
	}

	stored, found, err := s.profileRepo.GetByPUUID(ctx, puuid)
	if err != nil {
		return "", fmt.Errorf("get profile by puuid: %w", err)
	}
	if !found {
		return "", fmt.Errorf("%w: summoner %s is not known", ErrNotFound, puuid)
	}

	routing, ok := region.RoutingFor(stored.Region)
	if !ok {
		return "", fmt.Errorf("%w: profile %s has no routable region", ErrInvalidInput, puuid)
	}
	return routing, nil
}

func matchIDsCacheKey(puuid string, count int, queue *int) string {
	key := "match-ids:" + puuid + ":" + strconv.Itoa(count)
	if queue != nil {
		key += ":q" + strconv.Itoa(*queue)
	}
	return key
}
