package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riftwatch/riftwatch/internal/domain/region"
	"github.com/riftwatch/riftwatch/internal/usecase"
)

// dbPinger reports database liveness for the health endpoint. *sqlx.DB
// satisfies it directly.
type dbPinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	summonerService *usecase.SummonerService
	matchService    *usecase.MatchService
	db              dbPinger
	logger          *slog.Logger
	validator       *validator.Validate
}

func NewHandler(
	summonerService *usecase.SummonerService,
	matchService *usecase.MatchService,
	db dbPinger,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		summonerService: summonerService,
		matchService:    matchService,
		db:              db,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.WarnContext(ctx, "health check database ping failed", "error", err)
			writeError(ctx, w, fmt.Errorf("%w: database ping: %v", usecase.ErrDependencyUnavailable, err))
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type refreshSummonerRequest struct {
	GameName string `json:"game_name" validate:"required,max=100"`
	TagLine  string `json:"tag_line" validate:"required,max=10"`
	Region   string `json:"region" validate:"required"`
}

func (h *Handler) RefreshSummoner(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshSummoner")
	defer span.End()

	var req refreshSummonerRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	routing, err := region.ParseRouting(req.Region)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	item, err := h.summonerService.Refresh(ctx, usecase.RefreshSummonerInput{
		GameName: req.GameName,
		TagLine:  req.TagLine,
		Routing:  routing,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "refresh summoner failed",
			"game_name", req.GameName, "tag_line", req.TagLine, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(item))
}

func (h *Handler) GetSummoner(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSummoner")
	defer span.End()

	puuid := r.PathValue("puuid")
	item, err := h.summonerService.GetByPUUID(ctx, puuid)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(item))
}

func (h *Handler) ListRankedEntries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRankedEntries")
	defer span.End()

	puuid := r.PathValue("puuid")
	entries, err := h.summonerService.RankedEntries(ctx, puuid)
	if err != nil {
		h.logger.WarnContext(ctx, "list ranked entries failed", "puuid", puuid, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rankedEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, rankedEntryDTO{
			QueueType:    entry.QueueType,
			Tier:         entry.Tier,
			Rank:         entry.Rank,
			LeaguePoints: entry.LeaguePoints,
			Wins:         entry.Wins,
			Losses:       entry.Losses,
			HotStreak:    entry.HotStreak,
			Veteran:      entry.Veteran,
			FreshBlood:   entry.FreshBlood,
			Inactive:     entry.Inactive,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListRecentMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentMatches")
	defer span.End()

	puuid := r.PathValue("puuid")
	count, queue, err := parseMatchListQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	ids, err := h.matchService.ListRecentMatchIDs(ctx, puuid, count, queue)
	if err != nil {
		h.logger.WarnContext(ctx, "list recent matches failed", "puuid", puuid, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchIDListDTO{PUUID: puuid, MatchIDs: ids})
}

func (h *Handler) IngestRecentMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestRecentMatches")
	defer span.End()

	puuid := r.PathValue("puuid")
	count, queue, err := parseMatchListQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.matchService.IngestRecentMatches(ctx, puuid, count, queue)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest recent matches failed", "puuid", puuid, "error", err)
		writeError(ctx, w, err)
		return
	}

	tasks := make([]ingestTaskDTO, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		tasks = append(tasks, ingestTaskDTO{
			MatchID:    task.MatchID,
			Status:     task.Status,
			Message:    task.Message,
			DurationMs: task.DurationMs,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, ingestRecentDTO{
		PUUID:         result.PUUID,
		IngestedCount: result.IngestedCount,
		ExistingCount: result.ExistingCount,
		FailedCount:   result.FailedCount,
		Tasks:         tasks,
	})
}

type ingestMatchRequest struct {
	Region string `json:"region" validate:"required"`
}

func (h *Handler) IngestMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestMatch")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req ingestMatchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	routing, err := region.ParseRouting(req.Region)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.matchService.IngestMatch(ctx, matchID, routing)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if result.Ingested {
		status = http.StatusCreated
	}
	writeSuccess(ctx, w, status, ingestMatchDTO{
		Match:    matchToDTO(result.Match),
		Ingested: result.Ingested,
	})
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	detail, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailToDTO(detail))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parseMatchListQuery(r *http.Request) (int, *int, error) {
	count := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("count")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: count must be an integer", usecase.ErrInvalidInput)
		}
		count = parsed
	}

	var queue *int
	if raw := strings.TrimSpace(r.URL.Query().Get("queue")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: queue must be an integer", usecase.ErrInvalidInput)
		}
		queue = &parsed
	}

	return count, queue, nil
}
