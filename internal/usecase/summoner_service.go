package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riftwatch/riftwatch/internal/domain/profile"
	"github.com/riftwatch/riftwatch/internal/domain/region"
	"github.com/riftwatch/riftwatch/internal/platform/logging"
)

// SummonerService keeps stored player profiles fresh against the Riot
// account and summoner endpoints.
type SummonerService struct {
	profileRepo profile.Repository
	riot        RiotProvider
	profileTTL  time.Duration
	logger      *logging.Logger
	now         func() time.Time
}

type RefreshSummonerInput struct {
	GameName string
	TagLine  string
	Routing  region.Routing
}

func NewSummonerService(
	profileRepo profile.Repository,
	riot RiotProvider,
	profileTTL time.Duration,
	logger *logging.Logger,
) *SummonerService {
	if profileTTL <= 0 {
		profileTTL = profile.DefaultTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SummonerService{
		profileRepo: profileRepo,
		riot:        riot,
		profileTTL:  profileTTL,
		logger:      logger,
		now:         time.Now,
	}
}

// GetByPUUID serves the stored profile without touching upstream.
func (s *SummonerService) GetByPUUID(ctx context.Context, puuid string) (profile.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "SummonerService.GetByPUUID")
	defer span.End()

	puuid = strings.TrimSpace(puuid)
	if puuid == "" {
		return profile.Profile{}, fmt.Errorf("%w: puuid is required", ErrInvalidInput)
	}

	stored, found, err := s.profileRepo.GetByPUUID(ctx, puuid)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("get profile by puuid: %w", err)
	}
	if !found {
		return profile.Profile{}, fmt.Errorf("%w: summoner %s is not known", ErrNotFound, puuid)
	}
	return stored, nil
}

// Refresh resolves a riot id upstream and stores or updates the profile.
// A stored profile inside its freshness window is served as-is; a stale
// or incomplete one is refetched and overwritten.
func (s *SummonerService) Refresh(ctx context.Context, input RefreshSummonerInput) (profile.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "SummonerService.Refresh")
	defer span.End()

	input.GameName = strings.TrimSpace(input.GameName)
	input.TagLine = strings.TrimSpace(input.TagLine)
	if input.GameName == "" || input.TagLine == "" {
		return profile.Profile{}, fmt.Errorf("%w: game name and tag line are required", ErrInvalidInput)
	}
	if _, err := region.ParseRouting(string(input.Routing)); err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	stored, found, err := s.profileRepo.GetByRiotID(ctx, input.GameName, input.TagLine)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("get profile by riot id: %w", err)
	}
	if found && !stored.IsStale(s.now(), s.profileTTL) && stored.SummonerLevel != nil && stored.ProfileIcon != nil {
		return stored, nil
	}

	account, err := s.riot.AccountByRiotID(ctx, input.GameName, input.TagLine, input.Routing)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("resolve riot id: %w", err)
	}
	if !found {
		// The riot id may have been renamed since the row was written;
		// the puuid is the durable key.
		stored, found, err = s.profileRepo.GetByPUUID(ctx, account.PUUID)
		if err != nil {
			return profile.Profile{}, fmt.Errorf("get profile by puuid: %w", err)
		}
	}

	candidate, err := s.fetchProfile(ctx, account, input.Routing)
	if err != nil {
		if found && !stored.IsStale(s.now(), s.profileTTL) {
			// Upstream hiccups do not invalidate a profile that is
			// still inside its freshness window.
			s.logger.WarnContext(ctx, "serving stored profile after upstream failure",
				"puuid", account.PUUID, "error", err)
			return stored, nil
		}
		return profile.Profile{}, err
	}

	if found && !stored.IsStale(s.now(), s.profileTTL) && !stored.MissingOptional(candidate) {
		return stored, nil
	}

	return s.persist(ctx, found, candidate)
}

// EnsureFresh returns the stored profile, refetching level and icon from
// upstream when the row has outlived its TTL or still misses the columns
// a roster stub leaves empty.
func (s *SummonerService) EnsureFresh(ctx context.Context, puuid string) (profile.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "SummonerService.EnsureFresh")
	defer span.End()

	stored, err := s.GetByPUUID(ctx, puuid)
	if err != nil {
		return profile.Profile{}, err
	}
	if !stored.IsStale(s.now(), s.profileTTL) && stored.SummonerLevel != nil {
		return stored, nil
	}

	routing, ok := region.RoutingFor(stored.Region)
	if !ok {
		return profile.Profile{}, fmt.Errorf("%w: profile %s has no routable region", ErrInvalidInput, puuid)
	}

	candidate, err := s.fetchProfile(ctx, ExternalAccount{
		PUUID:    stored.PUUID,
		GameName: stored.GameName,
		TagLine:  stored.TagLine,
	}, routing)
	if err != nil {
		return profile.Profile{}, err
	}

	return s.persist(ctx, true, candidate)
}

// RankedEntries proxies the ranked queue standings for a known player.
func (s *SummonerService) RankedEntries(ctx context.Context, puuid string) ([]ExternalRankedEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "SummonerService.RankedEntries")
	defer span.End()

	stored, err := s.GetByPUUID(ctx, puuid)
	if err != nil {
		return nil, err
	}

	entries, err := s.riot.RankedEntriesByPUUID(ctx, stored.PUUID, stored.Region)
	if err != nil {
		return nil, fmt.Errorf("fetch ranked entries: %w", err)
	}
	return entries, nil
}

func (s *SummonerService) fetchProfile(ctx context.Context, account ExternalAccount, routing region.Routing) (profile.Profile, error) {
	platform, err := s.riot.RegionByPUUID(ctx, account.PUUID, routing)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("resolve player region: %w", err)
	}

	summoner, err := s.riot.SummonerByPUUID(ctx, account.PUUID, platform)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("fetch summoner: %w", err)
	}

	now := s.now()
	level := summoner.SummonerLevel
	icon := summoner.ProfileIconID
	candidate := profile.Profile{
		PUUID:         account.PUUID,
		GameName:      account.GameName,
		TagLine:       account.TagLine,
		Region:        platform,
		SummonerLevel: &level,
		ProfileIcon:   &icon,
		LastUpdated:   &now,
	}
	if err := candidate.Validate(); err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return candidate, nil
}

func (s *SummonerService) persist(ctx context.Context, found bool, candidate profile.Profile) (profile.Profile, error) {
	if !found {
		inserted, err := s.profileRepo.Insert(ctx, candidate)
		if err != nil {
			return profile.Profile{}, fmt.Errorf("insert profile: %w", err)
		}
		if inserted {
			return candidate, nil
		}
		// Another writer claimed the puuid between the read and the
		// insert; fall through and overwrite its row with fresher data.
	}

	if err := s.profileRepo.Update(ctx, candidate); err != nil {
		return profile.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return candidate, nil
}
