package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riftwatch/riftwatch/internal/domain/match"
	"github.com/riftwatch/riftwatch/internal/domain/profile"
	"github.com/riftwatch/riftwatch/internal/platform/cache"
)

type inMemoryMatchRepo struct {
	mu        sync.Mutex
	matches   map[string]match.Detail
	saveCalls int
}

func newInMemoryMatchRepo() *inMemoryMatchRepo {
	return &inMemoryMatchRepo{matches: make(map[string]match.Detail)}
}

func (r *inMemoryMatchRepo) SaveMatch(_ context.Context, m match.Match, teams []match.TeamAggregate, participants []match.ParticipantStat) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if existing, ok := r.matches[m.MatchID]; ok {
		return existing.Match, false, nil
	}
	r.matches[m.MatchID] = match.Detail{Match: m, Teams: teams, Participants: participants}
	return m, true, nil
}

func (r *inMemoryMatchRepo) GetByID(_ context.Context, matchID string) (match.Detail, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	detail, ok := r.matches[matchID]
	return detail, ok, nil
}

func seedKnownProfile(repo *inMemoryProfileRepo, puuid string) {
	repo.profiles[puuid] = profile.Profile{
		PUUID:       puuid,
		GameName:    "Player",
		TagLine:     "NA1",
		Region:      "na1",
		LastUpdated: timePtr(time.Now()),
	}
}

func externalMatchFixture(matchID string) ExternalMatch {
	return ExternalMatch{
		Match: match.Match{
			MatchID:     matchID,
			PlatformID:  "na1",
			QueueID:     match.QueueRankedSolo,
			GameMode:    "CLASSIC",
			GameVersion: "15.17.702.1234",
			GameStartTS: 1756600000000,
			DurationSec: 1850,
		},
		Teams: []match.TeamAggregate{
			{MatchID: matchID, TeamID: 100, Win: true, Kills: 22},
			{MatchID: matchID, TeamID: 200, Win: false, Kills: 13},
		},
		Participants: []match.ParticipantStat{
			{MatchID: matchID, PUUID: "puuid-a", ParticipantID: 1, TeamID: 100, ChampionID: 266, Kills: 5},
			{MatchID: matchID, PUUID: "puuid-b", ParticipantID: 6, TeamID: 200, ChampionID: 157, Kills: 7},
		},
		Roster: []profile.Stub{
			{PUUID: "puuid-a", GameName: "Alpha", TagLine: "NA1", Region: "na1"},
			{PUUID: "puuid-b", GameName: "Bravo", TagLine: "NA1", Region: "na1"},
		},
	}
}

func TestMatchService_IngestMatchWritesRosterBeforeMatch(t *testing.T) {
	matchRepo := newInMemoryMatchRepo()
	profileRepo := newInMemoryProfileRepo()
	riot := &fakeRiotProvider{matches: map[string]ExternalMatch{
		"NA1_100": externalMatchFixture("NA1_100"),
	}}
	service := NewMatchService(matchRepo, profileRepo, riot, nil, 2, nil)

	out, err := service.IngestMatch(t.Context(), "NA1_100", "americas")
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if !out.Ingested {
		t.Fatalf("expected new match to report ingested")
	}
	if profileRepo.bulkCalls != 1 {
		t.Fatalf("expected one roster upsert, got=%d", profileRepo.bulkCalls)
	}
	if _, ok := profileRepo.profiles["puuid-a"]; !ok {
		t.Fatalf("expected roster stub to be stored")
	}
	if matchRepo.saveCalls != 1 {
		t.Fatalf("expected one match save, got=%d", matchRepo.saveCalls)
	}
}

func TestMatchService_IngestMatchIsIdempotent(t *testing.T) {
	matchRepo := newInMemoryMatchRepo()
	profileRepo := newInMemoryProfileRepo()
	riot := &fakeRiotProvider{matches: map[string]ExternalMatch{
		"NA1_100": externalMatchFixture("NA1_100"),
	}}
	service := NewMatchService(matchRepo, profileRepo, riot, nil, 2, nil)

	first, err := service.IngestMatch(t.Context(), "NA1_100", "americas")
	if err != nil {
		t.Fatalf("first ingest failed: %v", err)
	}
	second, err := service.IngestMatch(t.Context(), "NA1_100", "americas")
	if err != nil {
		t.Fatalf("second ingest failed: %v", err)
	}

	if !first.Ingested || second.Ingested {
		t.Fatalf("expected first=ingested second=existing, got first=%v second=%v", first.Ingested, second.Ingested)
	}
	if second.Match.MatchID != first.Match.MatchID {
		t.Fatalf("expected stored match returned unchanged")
	}
	if riot.matchCalls != 1 {
		t.Fatalf("expected no upstream fetch for a stored match, got=%d", riot.matchCalls)
	}
}

func TestMatchService_IngestMatchRejectsUnknownRouting(t *testing.T) {
	service := NewMatchService(newInMemoryMatchRepo(), newInMemoryProfileRepo(), &fakeRiotProvider{}, nil, 2, nil)

	_, err := service.IngestMatch(t.Context(), "NA1_100", "moon")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got=%v", err)
	}
}

func TestMatchService_IngestMatchMalformedPayloadWritesNothing(t *testing.T) {
	matchRepo := newInMemoryMatchRepo()
	profileRepo := newInMemoryProfileRepo()
	riot := &fakeRiotProvider{matchErr: fmt.Errorf("%w: match payload missing info section", ErrMalformedPayload)}
	service := NewMatchService(matchRepo, profileRepo, riot, nil, 2, nil)

	_, err := service.IngestMatch(t.Context(), "NA1_100", "americas")
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected malformed payload, got=%v", err)
	}
	if profileRepo.bulkCalls != 0 || matchRepo.saveCalls != 0 {
		t.Fatalf("expected no writes after malformed payload, roster=%d save=%d", profileRepo.bulkCalls, matchRepo.saveCalls)
	}
}

func TestMatchService_ListRecentMatchIDsUsesCache(t *testing.T) {
	profileRepo := newInMemoryProfileRepo()
	seedKnownProfile(profileRepo, "puuid-1")
	riot := &fakeRiotProvider{matchIDs: []string{"NA1_2", "NA1_1"}}
	idsCache := cache.NewStore(15 * time.Minute)
	service := NewMatchService(newInMemoryMatchRepo(), profileRepo, riot, idsCache, 2, nil)

	first, err := service.ListRecentMatchIDs(t.Context(), "puuid-1", 2, nil)
	if err != nil {
		t.Fatalf("list match ids failed: %v", err)
	}
	second, err := service.ListRecentMatchIDs(t.Context(), "puuid-1", 2, nil)
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}

	if len(first) != 2 || first[0] != "NA1_2" || len(second) != 2 {
		t.Fatalf("unexpected ids: first=%v second=%v", first, second)
	}
	if riot.matchIDsCalls != 1 {
		t.Fatalf("expected cached second read, upstream calls=%d", riot.matchIDsCalls)
	}
}

func TestMatchService_ListRecentMatchIDsUnknownPlayer(t *testing.T) {
	service := NewMatchService(newInMemoryMatchRepo(), newInMemoryProfileRepo(), &fakeRiotProvider{}, nil, 2, nil)

	_, err := service.ListRecentMatchIDs(t.Context(), "puuid-missing", 5, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got=%v", err)
	}
}

func TestMatchService_IngestRecentMatchesCountsOutcomes(t *testing.T) {
	matchRepo := newInMemoryMatchRepo()
	profileRepo := newInMemoryProfileRepo()
	seedKnownProfile(profileRepo, "puuid-1")

	existing := externalMatchFixture("NA1_1")
	if _, _, err := matchRepo.SaveMatch(t.Context(), existing.Match, existing.Teams, existing.Participants); err != nil {
		t.Fatalf("seed match: %v", err)
	}

	riot := &fakeRiotProvider{
		matchIDs: []string{"NA1_1", "NA1_2", "NA1_3"},
		matches: map[string]ExternalMatch{
			"NA1_1": externalMatchFixture("NA1_1"),
			"NA1_2": externalMatchFixture("NA1_2"),
		},
	}
	service := NewMatchService(matchRepo, profileRepo, riot, nil, 2, nil)

	result, err := service.IngestRecentMatches(t.Context(), "puuid-1", 3, nil)
	if err != nil {
		t.Fatalf("ingest recent failed: %v", err)
	}

	if result.IngestedCount != 1 || result.ExistingCount != 1 || result.FailedCount != 1 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if len(result.Tasks) != 3 {
		t.Fatalf("expected three task rows, got=%d", len(result.Tasks))
	}
	for i := 1; i < len(result.Tasks); i++ {
		if result.Tasks[i-1].MatchID > result.Tasks[i].MatchID {
			t.Fatalf("expected task rows sorted by match id")
		}
	}
}
