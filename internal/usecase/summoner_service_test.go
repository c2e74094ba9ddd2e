package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riftwatch/riftwatch/internal/domain/profile"
	"github.com/riftwatch/riftwatch/internal/domain/region"
)

type inMemoryProfileRepo struct {
	mu          sync.Mutex
	profiles    map[string]profile.Profile
	insertCalls int
	updateCalls int
	bulkCalls   int
	bulkStubs   [][]profile.Stub
}

func newInMemoryProfileRepo() *inMemoryProfileRepo {
	return &inMemoryProfileRepo{profiles: make(map[string]profile.Profile)}
}

func (r *inMemoryProfileRepo) GetByPUUID(_ context.Context, puuid string) (profile.Profile, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.profiles[puuid]
	return item, ok, nil
}

func (r *inMemoryProfileRepo) GetByRiotID(_ context.Context, gameName, tagLine string) (profile.Profile, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.profiles {
		if item.GameName == gameName && item.TagLine == tagLine {
			return item, true, nil
		}
	}
	return profile.Profile{}, false, nil
}

func (r *inMemoryProfileRepo) Insert(_ context.Context, p profile.Profile) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertCalls++
	if _, exists := r.profiles[p.PUUID]; exists {
		return false, nil
	}
	r.profiles[p.PUUID] = p
	return true, nil
}

func (r *inMemoryProfileRepo) Update(_ context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	r.profiles[p.PUUID] = p
	return nil
}

func (r *inMemoryProfileRepo) BulkUpsertStubs(_ context.Context, stubs []profile.Stub) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bulkCalls++
	r.bulkStubs = append(r.bulkStubs, stubs)
	for _, stub := range stubs {
		existing, ok := r.profiles[stub.PUUID]
		if !ok {
			r.profiles[stub.PUUID] = profile.Profile{
				PUUID:    stub.PUUID,
				GameName: stub.GameName,
				TagLine:  stub.TagLine,
				Region:   stub.Region,
			}
			continue
		}
		if stub.GameName != "" {
			existing.GameName = stub.GameName
			existing.TagLine = stub.TagLine
		}
		existing.Region = stub.Region
		r.profiles[stub.PUUID] = existing
	}
	return nil
}

type fakeRiotProvider struct {
	mu sync.Mutex

	account      ExternalAccount
	accountErr   error
	accountCalls int

	platform    region.Platform
	regionErr   error
	regionCalls int

	summoner      ExternalSummoner
	summonerErr   error
	summonerCalls int

	matchIDs      []string
	matchIDsErr   error
	matchIDsCalls int

	matches    map[string]ExternalMatch
	matchErr   error
	matchCalls int

	ranked    []ExternalRankedEntry
	rankedErr error
}

func (f *fakeRiotProvider) AccountByRiotID(_ context.Context, _, _ string, _ region.Routing) (ExternalAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accountCalls++
	return f.account, f.accountErr
}

func (f *fakeRiotProvider) RegionByPUUID(_ context.Context, _ string, _ region.Routing) (region.Platform, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regionCalls++
	if f.regionErr != nil {
		return "", f.regionErr
	}
	return f.platform, nil
}

func (f *fakeRiotProvider) SummonerByPUUID(_ context.Context, _ string, _ region.Platform) (ExternalSummoner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summonerCalls++
	return f.summoner, f.summonerErr
}

func (f *fakeRiotProvider) MatchIDsByPUUID(_ context.Context, _ string, _ region.Routing, _ int, _ *int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.matchIDsCalls++
	return f.matchIDs, f.matchIDsErr
}

func (f *fakeRiotProvider) FetchMatch(_ context.Context, matchID string, _ region.Routing) (ExternalMatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.matchCalls++
	if f.matchErr != nil {
		return ExternalMatch{}, f.matchErr
	}
	external, ok := f.matches[matchID]
	if !ok {
		return ExternalMatch{}, fmt.Errorf("%w: riot api status=404", ErrUpstream)
	}
	return external, nil
}

func (f *fakeRiotProvider) RankedEntriesByPUUID(_ context.Context, _ string, _ region.Platform) ([]ExternalRankedEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ranked, f.rankedErr
}

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestSummonerService_RefreshCreatesProfile(t *testing.T) {
	repo := newInMemoryProfileRepo()
	riot := &fakeRiotProvider{
		account:  ExternalAccount{PUUID: "puuid-1", GameName: "Faker", TagLine: "KR1"},
		platform: "kr",
		summoner: ExternalSummoner{SummonerLevel: 742, ProfileIconID: 29},
	}
	service := NewSummonerService(repo, riot, time.Hour, nil)

	got, err := service.Refresh(t.Context(), RefreshSummonerInput{
		GameName: "Faker",
		TagLine:  "KR1",
		Routing:  region.RoutingAsia,
	})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	if got.PUUID != "puuid-1" || got.Region != "kr" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if got.SummonerLevel == nil || *got.SummonerLevel != 742 {
		t.Fatalf("expected summoner level 742, got %v", got.SummonerLevel)
	}
	if got.LastUpdated == nil {
		t.Fatalf("expected last updated to be stamped")
	}
	if repo.insertCalls != 1 || repo.updateCalls != 0 {
		t.Fatalf("expected one insert and no updates, got inserts=%d updates=%d", repo.insertCalls, repo.updateCalls)
	}
}

func TestSummonerService_RefreshServesFreshProfileWithoutUpstream(t *testing.T) {
	repo := newInMemoryProfileRepo()
	repo.profiles["puuid-1"] = profile.Profile{
		PUUID:         "puuid-1",
		GameName:      "Faker",
		TagLine:       "KR1",
		Region:        "kr",
		SummonerLevel: intPtr(742),
		ProfileIcon:   intPtr(29),
		LastUpdated:   timePtr(time.Now().Add(-30 * time.Minute)),
	}
	riot := &fakeRiotProvider{}
	service := NewSummonerService(repo, riot, time.Hour, nil)

	got, err := service.Refresh(t.Context(), RefreshSummonerInput{
		GameName: "Faker",
		TagLine:  "KR1",
		Routing:  region.RoutingAsia,
	})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if got.PUUID != "puuid-1" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if riot.accountCalls != 0 || riot.summonerCalls != 0 {
		t.Fatalf("expected no upstream calls for a fresh profile, got account=%d summoner=%d", riot.accountCalls, riot.summonerCalls)
	}
}

func TestSummonerService_RefreshRefetchesStaleProfile(t *testing.T) {
	repo := newInMemoryProfileRepo()
	repo.profiles["puuid-1"] = profile.Profile{
		PUUID:         "puuid-1",
		GameName:      "Faker",
		TagLine:       "KR1",
		Region:        "kr",
		SummonerLevel: intPtr(700),
		ProfileIcon:   intPtr(29),
		LastUpdated:   timePtr(time.Now().Add(-2 * time.Hour)),
	}
	riot := &fakeRiotProvider{
		account:  ExternalAccount{PUUID: "puuid-1", GameName: "Faker", TagLine: "KR1"},
		platform: "kr",
		summoner: ExternalSummoner{SummonerLevel: 742, ProfileIconID: 30},
	}
	service := NewSummonerService(repo, riot, time.Hour, nil)

	got, err := service.Refresh(t.Context(), RefreshSummonerInput{
		GameName: "Faker",
		TagLine:  "KR1",
		Routing:  region.RoutingAsia,
	})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if got.SummonerLevel == nil || *got.SummonerLevel != 742 {
		t.Fatalf("expected refetched level 742, got %v", got.SummonerLevel)
	}
	if repo.updateCalls != 1 {
		t.Fatalf("expected stale profile to be overwritten, updates=%d", repo.updateCalls)
	}
}

func TestSummonerService_RefreshWithNilLastUpdatedIsStale(t *testing.T) {
	repo := newInMemoryProfileRepo()
	repo.profiles["puuid-1"] = profile.Profile{
		PUUID:    "puuid-1",
		GameName: "Faker",
		TagLine:  "KR1",
		Region:   "kr",
	}
	riot := &fakeRiotProvider{
		account:  ExternalAccount{PUUID: "puuid-1", GameName: "Faker", TagLine: "KR1"},
		platform: "kr",
		summoner: ExternalSummoner{SummonerLevel: 742, ProfileIconID: 29},
	}
	service := NewSummonerService(repo, riot, time.Hour, nil)

	got, err := service.Refresh(t.Context(), RefreshSummonerInput{
		GameName: "Faker",
		TagLine:  "KR1",
		Routing:  region.RoutingAsia,
	})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if got.SummonerLevel == nil {
		t.Fatalf("expected stub row to be completed from upstream")
	}
	if riot.summonerCalls != 1 {
		t.Fatalf("expected one upstream summoner fetch, got=%d", riot.summonerCalls)
	}
}

func TestSummonerService_RefreshServesStoredOnUpstreamFailure(t *testing.T) {
	repo := newInMemoryProfileRepo()
	repo.profiles["puuid-1"] = profile.Profile{
		PUUID:       "puuid-1",
		GameName:    "Faker",
		TagLine:     "KR1",
		Region:      "kr",
		ProfileIcon: intPtr(29),
		LastUpdated: timePtr(time.Now().Add(-10 * time.Minute)),
	}
	riot := &fakeRiotProvider{
		account:   ExternalAccount{PUUID: "puuid-1", GameName: "Faker", TagLine: "KR1"},
		regionErr: fmt.Errorf("%w: riot api status=503", ErrUpstream),
	}
	service := NewSummonerService(repo, riot, time.Hour, nil)

	got, err := service.Refresh(t.Context(), RefreshSummonerInput{
		GameName: "Faker",
		TagLine:  "KR1",
		Routing:  region.RoutingAsia,
	})
	if err != nil {
		t.Fatalf("expected stored profile despite upstream failure, got err=%v", err)
	}
	if got.PUUID != "puuid-1" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestSummonerService_GetByPUUIDUnknownIsNotFound(t *testing.T) {
	service := NewSummonerService(newInMemoryProfileRepo(), &fakeRiotProvider{}, time.Hour, nil)

	_, err := service.GetByPUUID(t.Context(), "puuid-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got=%v", err)
	}
}

func TestSummonerService_RankedEntries(t *testing.T) {
	repo := newInMemoryProfileRepo()
	repo.profiles["puuid-1"] = profile.Profile{
		PUUID:    "puuid-1",
		GameName: "Faker",
		TagLine:  "KR1",
		Region:   "kr",
	}
	riot := &fakeRiotProvider{
		ranked: []ExternalRankedEntry{{QueueType: "RANKED_SOLO_5x5", Tier: "CHALLENGER", Rank: "I", LeaguePoints: 1212}},
	}
	service := NewSummonerService(repo, riot, time.Hour, nil)

	entries, err := service.RankedEntries(t.Context(), "puuid-1")
	if err != nil {
		t.Fatalf("ranked entries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Tier != "CHALLENGER" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}
