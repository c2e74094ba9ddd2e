package riot

import (
	"fmt"
	"strings"

	"github.com/riftwatch/riftwatch/internal/domain/match"
	"github.com/riftwatch/riftwatch/internal/domain/profile"
	"github.com/riftwatch/riftwatch/internal/domain/region"
	"github.com/riftwatch/riftwatch/internal/usecase"
)

// NormalizeMatch flattens a raw match document into header, team and
// participant rows plus the roster stubs. Team kill, death and assist
// totals are derived by summing that side's participants; the payload's
// own team objectives block supplies the rest. Team order and ban order
// follow the payload.
func NormalizeMatch(payload *MatchPayload) (usecase.ExternalMatch, error) {
	if payload == nil || payload.Metadata == nil || payload.Info == nil {
		return usecase.ExternalMatch{}, fmt.Errorf("%w: match payload missing metadata or info section", usecase.ErrMalformedPayload)
	}

	meta := payload.Metadata
	info := payload.Info

	matchID := strings.TrimSpace(meta.MatchID)
	if matchID == "" {
		return usecase.ExternalMatch{}, fmt.Errorf("%w: match payload missing match id", usecase.ErrMalformedPayload)
	}

	platformID := strings.ToLower(strings.TrimSpace(info.PlatformID))
	platform, err := region.ParsePlatform(platformID)
	if err != nil {
		return usecase.ExternalMatch{}, fmt.Errorf("%w: %v", usecase.ErrMalformedPayload, err)
	}

	header := match.Match{
		MatchID:     matchID,
		PlatformID:  platformID,
		QueueID:     info.QueueID,
		GameMode:    info.GameMode,
		GameVersion: info.GameVersion,
		GameStartTS: info.GameStartTimestamp,
		DurationSec: info.GameDuration,
	}
	if err := header.Validate(); err != nil {
		return usecase.ExternalMatch{}, fmt.Errorf("%w: %v", usecase.ErrMalformedPayload, err)
	}

	participants := make([]match.ParticipantStat, 0, len(info.Participants))
	stubs := make([]profile.Stub, 0, len(info.Participants))
	kdaByTeam := make(map[int]*match.TeamAggregate, 2)

	for i, raw := range info.Participants {
		stat, err := normalizeParticipant(matchID, i, raw)
		if err != nil {
			return usecase.ExternalMatch{}, err
		}
		participants = append(participants, stat)
		stubs = append(stubs, profile.Stub{
			PUUID:    stat.PUUID,
			GameName: stat.RiotIDName,
			TagLine:  stat.RiotIDTagline,
			Region:   platform,
		})

		agg, ok := kdaByTeam[stat.TeamID]
		if !ok {
			agg = &match.TeamAggregate{MatchID: matchID, TeamID: stat.TeamID}
			kdaByTeam[stat.TeamID] = agg
		}
		agg.Kills += stat.Kills
		agg.Deaths += stat.Deaths
		agg.Assists += stat.Assists
	}

	teams := make([]match.TeamAggregate, 0, len(info.Teams))
	for _, rawTeam := range info.Teams {
		agg := match.TeamAggregate{MatchID: matchID, TeamID: rawTeam.TeamID}
		if summed, ok := kdaByTeam[rawTeam.TeamID]; ok {
			agg.Kills = summed.Kills
			agg.Deaths = summed.Deaths
			agg.Assists = summed.Assists
		}
		agg.Win = rawTeam.Win
		agg.BaronKills = rawTeam.Objectives.Baron.Kills
		agg.DragonKills = rawTeam.Objectives.Dragon.Kills
		agg.HeraldKills = rawTeam.Objectives.RiftHerald.Kills
		agg.TowerKills = rawTeam.Objectives.Tower.Kills
		agg.InhibKills = rawTeam.Objectives.Inhibitor.Kills
		agg.FirstBlood = rawTeam.Objectives.Champion.First
		agg.FirstTower = rawTeam.Objectives.Tower.First
		agg.Bans = rawTeam.Bans
		teams = append(teams, agg)
	}

	return usecase.ExternalMatch{
		Match:        header,
		Teams:        teams,
		Participants: participants,
		Roster:       profile.DedupeStubs(stubs),
	}, nil
}

func normalizeParticipant(matchID string, index int, raw matchParticipant) (match.ParticipantStat, error) {
	if strings.TrimSpace(raw.PUUID) == "" {
		return match.ParticipantStat{}, fmt.Errorf("%w: participant %d missing puuid", usecase.ErrMalformedPayload, index)
	}
	if raw.ParticipantID == nil || raw.TeamID == nil || raw.ChampionID == nil ||
		raw.Kills == nil || raw.Deaths == nil || raw.Assists == nil {
		return match.ParticipantStat{}, fmt.Errorf("%w: participant %s missing required stat fields", usecase.ErrMalformedPayload, raw.PUUID)
	}

	stat := match.ParticipantStat{
		MatchID: matchID,
		PUUID:   strings.TrimSpace(raw.PUUID),

		RiotIDName:    raw.RiotIDName,
		RiotIDTagline: raw.RiotIDTagline,
		ParticipantID: *raw.ParticipantID,
		TeamID:        *raw.TeamID,
		Win:           raw.Win,

		ChampionID: *raw.ChampionID,
		ChampLevel: raw.ChampLevel,

		IndividualPosition: match.NormalizeRole(raw.IndividualPosition),
		TeamPosition:       match.NormalizeRole(raw.TeamPosition),

		Kills:   *raw.Kills,
		Deaths:  *raw.Deaths,
		Assists: *raw.Assists,

		KillingSprees: raw.KillingSprees,
		DoubleKills:   raw.DoubleKills,
		TripleKills:   raw.TripleKills,
		QuadraKills:   raw.QuadraKills,
		PentaKills:    raw.PentaKills,

		GoldEarned:           raw.GoldEarned,
		GoldSpent:            raw.GoldSpent,
		TotalMinionsKilled:   raw.TotalMinionsKilled,
		NeutralMinionsKilled: raw.NeutralMinionsKilled,

		TotalDamageDealtToChampions:    raw.TotalDamageDealtToChampions,
		PhysicalDamageDealtToChampions: raw.PhysicalDamageDealtToChampions,
		MagicDamageDealtToChampions:    raw.MagicDamageDealtToChampions,
		TrueDamageDealtToChampions:     raw.TrueDamageDealtToChampions,
		TotalDamageTaken:               raw.TotalDamageTaken,
		DamageSelfMitigated:            raw.DamageSelfMitigated,

		DamageDealtToObjectives: raw.DamageDealtToObjectives,
		DamageDealtToTurrets:    raw.DamageDealtToTurrets,
		TurretTakedowns:         raw.TurretTakedowns,
		InhibitorTakedowns:      raw.InhibitorTakedowns,
		DragonKills:             raw.DragonKills,
		BaronKills:              raw.BaronKills,
		RiftHeraldTakedowns:     raw.RiftHeraldTakedowns,

		VisionScore:         raw.VisionScore,
		WardsPlaced:         raw.WardsPlaced,
		WardsKilled:         raw.WardsKilled,
		DetectorWardsPlaced: raw.DetectorWardsPlaced,

		Item0: raw.Item0,
		Item1: raw.Item1,
		Item2: raw.Item2,
		Item3: raw.Item3,
		Item4: raw.Item4,
		Item5: raw.Item5,
		Item6: raw.Item6,

		Summoner1ID: raw.Summoner1ID,
		Summoner2ID: raw.Summoner2ID,
	}

	if ch := raw.Challenges; ch != nil {
		stat.DamagePerMinute = ch.DamagePerMinute
		stat.GoldPerMinute = ch.GoldPerMinute
		stat.TeamDamagePercentage = ch.TeamDamagePercentage
		stat.VisionScorePerMinute = ch.VisionScorePerMinute
		stat.LaneMinionsFirst10Minutes = ch.LaneMinionsFirst10Minutes
		stat.SoloKills = ch.SoloKills
		if ch.KillParticipation != nil {
			// Upstream reports a 0..1 fraction; stored as a percentage.
			pct := *ch.KillParticipation * 100
			stat.KillParticipation = &pct
		}
	}

	if err := stat.Validate(); err != nil {
		return match.ParticipantStat{}, fmt.Errorf("%w: %v", usecase.ErrMalformedPayload, err)
	}

	return stat, nil
}
