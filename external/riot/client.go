package riot

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riftwatch/riftwatch/internal/domain/region"
	"github.com/riftwatch/riftwatch/internal/platform/logging"
	"github.com/riftwatch/riftwatch/internal/platform/resilience"
	"github.com/riftwatch/riftwatch/internal/usecase"
)

const (
	defaultBaseDomain   = "api.riotgames.com"
	defaultTimeout      = 20 * time.Second
	defaultMatchIDCount = 20
	maxResponseBytes    = 6 << 20
)

var errRiotTransient = crerr.New("riot transient failure")

// UpstreamError carries the non-success status and body of a Riot API
// response. It matches usecase.ErrUpstream under errors.Is.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("riot api status=%d body=%s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error { return usecase.ErrUpstream }

type ClientConfig struct {
	HTTPClient *http.Client
	// BaseURL overrides the riot hosts entirely; used by tests. When
	// empty, hosts are built as https://{region}.{BaseDomain}.
	BaseURL        string
	BaseDomain     string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	baseDomain     string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseDomain := strings.TrimSpace(cfg.BaseDomain)
	if baseDomain == "" {
		baseDomain = defaultBaseDomain
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		baseDomain:     baseDomain,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// AccountByRiotID resolves a display name plus tag to its account.
func (c *Client) AccountByRiotID(ctx context.Context, gameName, tagLine string, routing region.Routing) (usecase.ExternalAccount, error) {
	gameName = strings.TrimSpace(gameName)
	tagLine = strings.TrimSpace(tagLine)
	if gameName == "" || tagLine == "" {
		return usecase.ExternalAccount{}, fmt.Errorf("%w: game name and tag line are required", usecase.ErrInvalidInput)
	}

	path := "/riot/account/v1/accounts/by-riot-id/" + url.PathEscape(gameName) + "/" + url.PathEscape(tagLine)
	var out Account
	if err := c.doJSON(ctx, string(routing), path, nil, &out); err != nil {
		return usecase.ExternalAccount{}, fmt.Errorf("fetch account %s#%s: %w", gameName, tagLine, err)
	}
	if strings.TrimSpace(out.PUUID) == "" {
		return usecase.ExternalAccount{}, fmt.Errorf("%w: account response missing puuid", usecase.ErrMalformedPayload)
	}
	return usecase.ExternalAccount{
		PUUID:    out.PUUID,
		GameName: out.GameName,
		TagLine:  out.TagLine,
	}, nil
}

// RegionByPUUID resolves the platform shard a player's LoL account lives on.
func (c *Client) RegionByPUUID(ctx context.Context, puuid string, routing region.Routing) (region.Platform, error) {
	path := "/riot/account/v1/region/by-game/lol/by-puuid/" + url.PathEscape(puuid)
	var out regionEnvelope
	if err := c.doJSON(ctx, string(routing), path, nil, &out); err != nil {
		return "", fmt.Errorf("fetch account region: %w", err)
	}
	platform, err := region.ParsePlatform(out.Region)
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrMalformedPayload, err)
	}
	return platform, nil
}

// SummonerByPUUID fetches the level and icon from the player's shard.
func (c *Client) SummonerByPUUID(ctx context.Context, puuid string, platform region.Platform) (usecase.ExternalSummoner, error) {
	path := "/lol/summoner/v4/summoners/by-puuid/" + url.PathEscape(puuid)
	var out Summoner
	if err := c.doJSON(ctx, string(platform), path, nil, &out); err != nil {
		return usecase.ExternalSummoner{}, fmt.Errorf("fetch summoner: %w", err)
	}
	return usecase.ExternalSummoner{
		SummonerLevel: out.SummonerLevel,
		ProfileIconID: out.ProfileIconID,
	}, nil
}

// MatchIDsByPUUID lists recent match identifiers, newest first. A nil
// queue applies no queue filter.
func (c *Client) MatchIDsByPUUID(ctx context.Context, puuid string, routing region.Routing, count int, queue *int) ([]string, error) {
	if count <= 0 {
		count = defaultMatchIDCount
	}
	query := map[string]string{"count": strconv.Itoa(count)}
	if queue != nil {
		query["queue"] = strconv.Itoa(*queue)
	}

	path := "/lol/match/v5/matches/by-puuid/" + url.PathEscape(puuid) + "/ids"
	var out []string
	if err := c.doJSON(ctx, string(routing), path, query, &out); err != nil {
		return nil, fmt.Errorf("fetch match ids: %w", err)
	}
	return out, nil
}

// MatchByID fetches one full match document. Riot occasionally answers
// 200 with an error-shaped body; those are rejected here as malformed
// before any normalization or write happens.
func (c *Client) MatchByID(ctx context.Context, matchID string, routing region.Routing) (*MatchPayload, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", usecase.ErrInvalidInput)
	}

	path := "/lol/match/v5/matches/" + url.PathEscape(matchID)
	var out MatchPayload
	if err := c.doJSON(ctx, string(routing), path, nil, &out); err != nil {
		return nil, fmt.Errorf("fetch match %s: %w", matchID, err)
	}
	if out.Metadata == nil || out.Info == nil {
		return nil, fmt.Errorf("%w: match %s response missing metadata or info section", usecase.ErrMalformedPayload, matchID)
	}
	return &out, nil
}

// RankedEntriesByPUUID lists the player's ranked queue entries.
func (c *Client) RankedEntriesByPUUID(ctx context.Context, puuid string, platform region.Platform) ([]usecase.ExternalRankedEntry, error) {
	path := "/lol/league/v4/entries/by-puuid/" + url.PathEscape(puuid)
	var out []RankedEntry
	if err := c.doJSON(ctx, string(platform), path, nil, &out); err != nil {
		return nil, fmt.Errorf("fetch ranked entries: %w", err)
	}

	entries := make([]usecase.ExternalRankedEntry, 0, len(out))
	for _, entry := range out {
		entries = append(entries, usecase.ExternalRankedEntry{
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
	return entries, nil
}

// FetchMatch retrieves one match document and flattens it into domain
// rows. Malformed payloads are rejected before anything reaches storage.
func (c *Client) FetchMatch(ctx context.Context, matchID string, routing region.Routing) (usecase.ExternalMatch, error) {
	payload, err := c.MatchByID(ctx, matchID, routing)
	if err != nil {
		return usecase.ExternalMatch{}, err
	}
	return NormalizeMatch(payload)
}

func (c *Client) doJSON(ctx context.Context, host, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "riot circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: riot api is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.hostURL(host) + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := host + path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isRiotCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode riot payload: %v", usecase.ErrMalformedPayload, err)
	}

	return nil
}

func (c *Client) hostURL(host string) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return "https://" + host + "." + c.baseDomain
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Riot-Token", c.token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errRiotTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errRiotTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else {
				lastErr = &UpstreamError{StatusCode: resp.StatusCode, Body: abbreviateBody(raw)}
				if !isRetryableStatus(resp.StatusCode) {
					return nil, lastErr
				}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("riot request failed")
	}
	c.logger.WarnContext(ctx, "riot request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func isRiotCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, errRiotTransient) {
		return true
	}
	var upstream *UpstreamError
	if stderrors.As(err, &upstream) {
		return isRetryableStatus(upstream.StatusCode)
	}
	return false
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" || token == "" {
		return value
	}
	return strings.ReplaceAll(value, token, "REDACTED")
}

func abbreviateBody(raw []byte) string {
	const maxLen = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > maxLen {
		return body[:maxLen] + "..."
	}
	return body
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
