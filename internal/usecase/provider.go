package usecase

import (
	"context"

	"github.com/riftwatch/riftwatch/internal/domain/match"
	"github.com/riftwatch/riftwatch/internal/domain/profile"
	"github.com/riftwatch/riftwatch/internal/domain/region"
)

// RiotProvider is the upstream surface the services consume. The
// concrete client lives under external and returns data already
// normalized into domain rows.
type RiotProvider interface {
	AccountByRiotID(ctx context.Context, gameName, tagLine string, routing region.Routing) (ExternalAccount, error)
	RegionByPUUID(ctx context.Context, puuid string, routing region.Routing) (region.Platform, error)
	SummonerByPUUID(ctx context.Context, puuid string, platform region.Platform) (ExternalSummoner, error)
	MatchIDsByPUUID(ctx context.Context, puuid string, routing region.Routing, count int, queue *int) ([]string, error)
	FetchMatch(ctx context.Context, matchID string, routing region.Routing) (ExternalMatch, error)
	RankedEntriesByPUUID(ctx context.Context, puuid string, platform region.Platform) ([]ExternalRankedEntry, error)
}

type ExternalAccount struct {
	PUUID    string
	GameName string
	TagLine  string
}

type ExternalSummoner struct {
	SummonerLevel int
	ProfileIconID int
}

type ExternalRankedEntry struct {
	QueueType    string
	Tier         string
	Rank         string
	LeaguePoints int
	Wins         int
	Losses       int
	HotStreak    bool
	Veteran      bool
	FreshBlood   bool
	Inactive     bool
}

// ExternalMatch is one fully normalized match document: the header, the
// per-side aggregates, the participant lines and the roster identities
// seen in the game.
type ExternalMatch struct {
	Match        match.Match
	Teams        []match.TeamAggregate
	Participants []match.ParticipantStat
	Roster       []profile.Stub
}
