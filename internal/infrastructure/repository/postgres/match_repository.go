package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riftwatch/riftwatch/internal/domain/match"
	qb "github.com/riftwatch/riftwatch/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// SaveMatch inserts the header with its team and participant rows in one
// transaction. The header insert is the arbitration point: when the match
// id already exists, the stored header is returned untouched and no child
// rows are written. A concurrent ingestion of the same match blocks on
// the header insert until the first transaction commits, then observes
// the existing row.
func (r *MatchRepository) SaveMatch(ctx context.Context, m match.Match, teams []match.TeamAggregate, participants []match.ParticipantStat) (match.Match, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("begin tx save match: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	headerModel := matchTableModel{
		MatchID:     m.MatchID,
		PlatformID:  m.PlatformID,
		QueueID:     m.QueueID,
		GameMode:    m.GameMode,
		GameVersion: m.GameVersion,
		GameStartTS: m.GameStartTS,
		DurationSec: m.DurationSec,
	}
	query, args, err := qb.InsertModel("matches", headerModel, "ON CONFLICT (match_id) DO NOTHING")
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build insert match query: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("insert match %s: %w", m.MatchID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("insert match rows affected: %w", err)
	}
	if affected == 0 {
		existing, found, err := r.getHeader(ctx, m.MatchID)
		if err != nil {
			return match.Match{}, false, err
		}
		if !found {
			return match.Match{}, false, fmt.Errorf("match %s conflicted on insert but is not readable", m.MatchID)
		}
		return existing, false, nil
	}

	for _, team := range teams {
		bans, err := encodeBans(team.Bans)
		if err != nil {
			return match.Match{}, false, fmt.Errorf("encode bans for match=%s team=%d: %w", m.MatchID, team.TeamID, err)
		}
		teamModel := matchTeamTableModel{
			MatchID:     m.MatchID,
			TeamID:      team.TeamID,
			Win:         team.Win,
			Kills:       team.Kills,
			Deaths:      team.Deaths,
			Assists:     team.Assists,
			BaronKills:  team.BaronKills,
			DragonKills: team.DragonKills,
			HeraldKills: team.HeraldKills,
			TowerKills:  team.TowerKills,
			InhibKills:  team.InhibKills,
			FirstBlood:  team.FirstBlood,
			FirstTower:  team.FirstTower,
			Bans:        bans,
		}
		query, args, err := qb.InsertModel("match_teams", teamModel, "")
		if err != nil {
			return match.Match{}, false, fmt.Errorf("build insert match team query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return match.Match{}, false, fmt.Errorf("insert match team match=%s team=%d: %w", m.MatchID, team.TeamID, err)
		}
	}

	for _, stat := range participants {
		query, args, err := qb.InsertModel("match_participants", participantRowFromStat(stat), "")
		if err != nil {
			return match.Match{}, false, fmt.Errorf("build insert match participant query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return match.Match{}, false, fmt.Errorf("insert match participant match=%s puuid=%s: %w", m.MatchID, stat.PUUID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return match.Match{}, false, fmt.Errorf("commit save match tx: %w", err)
	}
	return m, true, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Detail, bool, error) {
	header, found, err := r.getHeader(ctx, matchID)
	if err != nil {
		return match.Detail{}, false, err
	}
	if !found {
		return match.Detail{}, false, nil
	}

	teams, err := r.listTeams(ctx, matchID)
	if err != nil {
		return match.Detail{}, false, err
	}
	participants, err := r.listParticipants(ctx, matchID)
	if err != nil {
		return match.Detail{}, false, err
	}

	return match.Detail{Match: header, Teams: teams, Participants: participants}, true, nil
}

func (r *MatchRepository) getHeader(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").
		From("matches").
		Where(qb.Eq("match_id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match %s: %w", matchID, err)
	}

	return match.Match{
		MatchID:     row.MatchID,
		PlatformID:  row.PlatformID,
		QueueID:     row.QueueID,
		GameMode:    row.GameMode,
		GameVersion: row.GameVersion,
		GameStartTS: row.GameStartTS,
		DurationSec: row.DurationSec,
	}, true, nil
}

func (r *MatchRepository) listTeams(ctx context.Context, matchID string) ([]match.TeamAggregate, error) {
	query, args, err := qb.Select("*").
		From("match_teams").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match teams query: %w", err)
	}

	var rows []matchTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match teams: %w", err)
	}

	out := make([]match.TeamAggregate, 0, len(rows))
	for _, row := range rows {
		bans, err := decodeBans(row.Bans)
		if err != nil {
			return nil, fmt.Errorf("decode bans for match=%s team=%d: %w", row.MatchID, row.TeamID, err)
		}
		out = append(out, match.TeamAggregate{
			MatchID:     row.MatchID,
			TeamID:      row.TeamID,
			Win:         row.Win,
			Kills:       row.Kills,
			Deaths:      row.Deaths,
			Assists:     row.Assists,
			BaronKills:  row.BaronKills,
			DragonKills: row.DragonKills,
			HeraldKills: row.HeraldKills,
			TowerKills:  row.TowerKills,
			InhibKills:  row.InhibKills,
			FirstBlood:  row.FirstBlood,
			FirstTower:  row.FirstTower,
			Bans:        bans,
		})
	}

	return out, nil
}

func (r *MatchRepository) listParticipants(ctx context.Context, matchID string) ([]match.ParticipantStat, error) {
	query, args, err := qb.Select("*").
		From("match_participants").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("participant_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match participants query: %w", err)
	}

	var rows []matchParticipantTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match participants: %w", err)
	}

	out := make([]match.ParticipantStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, participantStatFromRow(row))
	}
	return out, nil
}

func participantRowFromStat(stat match.ParticipantStat) matchParticipantTableModel {
	return matchParticipantTableModel{
		MatchID: stat.MatchID,
		PUUID:   stat.PUUID,

		RiotIDName:    stat.RiotIDName,
		RiotIDTagline: stat.RiotIDTagline,
		ParticipantID: stat.ParticipantID,
		TeamID:        stat.TeamID,
		Win:           stat.Win,

		ChampionID: stat.ChampionID,
		ChampLevel: stat.ChampLevel,

		IndividualPosition: string(stat.IndividualPosition),
		TeamPosition:       string(stat.TeamPosition),

		Kills:   stat.Kills,
		Deaths:  stat.Deaths,
		Assists: stat.Assists,

		KillingSprees: stat.KillingSprees,
		DoubleKills:   stat.DoubleKills,
		TripleKills:   stat.TripleKills,
		QuadraKills:   stat.QuadraKills,
		PentaKills:    stat.PentaKills,

		GoldEarned:           stat.GoldEarned,
		GoldSpent:            stat.GoldSpent,
		TotalMinionsKilled:   stat.TotalMinionsKilled,
		NeutralMinionsKilled: stat.NeutralMinionsKilled,

		TotalDamageDealtToChampions:    stat.TotalDamageDealtToChampions,
		PhysicalDamageDealtToChampions: stat.PhysicalDamageDealtToChampions,
		MagicDamageDealtToChampions:    stat.MagicDamageDealtToChampions,
		TrueDamageDealtToChampions:     stat.TrueDamageDealtToChampions,
		TotalDamageTaken:               stat.TotalDamageTaken,
		DamageSelfMitigated:            stat.DamageSelfMitigated,

		DamageDealtToObjectives: stat.DamageDealtToObjectives,
		DamageDealtToTurrets:    stat.DamageDealtToTurrets,
		TurretTakedowns:         stat.TurretTakedowns,
		InhibitorTakedowns:      stat.InhibitorTakedowns,
		DragonKills:             stat.DragonKills,
		BaronKills:              stat.BaronKills,
		RiftHeraldTakedowns:     intPtrToNullInt64(stat.RiftHeraldTakedowns),

		VisionScore:         stat.VisionScore,
		WardsPlaced:         stat.WardsPlaced,
		WardsKilled:         stat.WardsKilled,
		DetectorWardsPlaced: stat.DetectorWardsPlaced,

		Item0: stat.Item0,
		Item1: stat.Item1,
		Item2: stat.Item2,
		Item3: stat.Item3,
		Item4: stat.Item4,
		Item5: stat.Item5,
		Item6: stat.Item6,

		Summoner1ID: stat.Summoner1ID,
		Summoner2ID: stat.Summoner2ID,

		DamagePerMinute:           floatPtrToNullFloat64(stat.DamagePerMinute),
		GoldPerMinute:             floatPtrToNullFloat64(stat.GoldPerMinute),
		TeamDamagePercentage:      floatPtrToNullFloat64(stat.TeamDamagePercentage),
		KillParticipation:         floatPtrToNullFloat64(stat.KillParticipation),
		VisionScorePerMinute:      floatPtrToNullFloat64(stat.VisionScorePerMinute),
		LaneMinionsFirst10Minutes: intPtrToNullInt64(stat.LaneMinionsFirst10Minutes),
		SoloKills:                 intPtrToNullInt64(stat.SoloKills),
	}
}

func participantStatFromRow(row matchParticipantTableModel) match.ParticipantStat {
	return match.ParticipantStat{
		MatchID: row.MatchID,
		PUUID:   row.PUUID,

		RiotIDName:    row.RiotIDName,
		RiotIDTagline: row.RiotIDTagline,
		ParticipantID: row.ParticipantID,
		TeamID:        row.TeamID,
		Win:           row.Win,

		ChampionID: row.ChampionID,
		ChampLevel: row.ChampLevel,

		IndividualPosition: match.Role(row.IndividualPosition),
		TeamPosition:       match.Role(row.TeamPosition),

		Kills:   row.Kills,
		Deaths:  row.Deaths,
		Assists: row.Assists,

		KillingSprees: row.KillingSprees,
		DoubleKills:   row.DoubleKills,
		TripleKills:   row.TripleKills,
		QuadraKills:   row.QuadraKills,
		PentaKills:    row.PentaKills,

		GoldEarned:           row.GoldEarned,
		GoldSpent:            row.GoldSpent,
		TotalMinionsKilled:   row.TotalMinionsKilled,
		NeutralMinionsKilled: row.NeutralMinionsKilled,

		TotalDamageDealtToChampions:    row.TotalDamageDealtToChampions,
		PhysicalDamageDealtToChampions: row.PhysicalDamageDealtToChampions,
		MagicDamageDealtToChampions:    row.MagicDamageDealtToChampions,
		TrueDamageDealtToChampions:     row.TrueDamageDealtToChampions,
		TotalDamageTaken:               row.TotalDamageTaken,
		DamageSelfMitigated:            row.DamageSelfMitigated,

		DamageDealtToObjectives: row.DamageDealtToObjectives,
		DamageDealtToTurrets:    row.DamageDealtToTurrets,
		TurretTakedowns:         row.TurretTakedowns,
		InhibitorTakedowns:      row.InhibitorTakedowns,
		DragonKills:             row.DragonKills,
		BaronKills:              row.BaronKills,
		RiftHeraldTakedowns:     nullInt64ToIntPtr(row.RiftHeraldTakedowns),

		VisionScore:         row.VisionScore,
		WardsPlaced:         row.WardsPlaced,
		WardsKilled:         row.WardsKilled,
		DetectorWardsPlaced: row.DetectorWardsPlaced,

		Item0: row.Item0,
		Item1: row.Item1,
		Item2: row.Item2,
		Item3: row.Item3,
		Item4: row.Item4,
		Item5: row.Item5,
		Item6: row.Item6,

		Summoner1ID: row.Summoner1ID,
		Summoner2ID: row.Summoner2ID,

		DamagePerMinute:           nullFloat64ToFloatPtr(row.DamagePerMinute),
		GoldPerMinute:             nullFloat64ToFloatPtr(row.GoldPerMinute),
		TeamDamagePercentage:      nullFloat64ToFloatPtr(row.TeamDamagePercentage),
		KillParticipation:         nullFloat64ToFloatPtr(row.KillParticipation),
		VisionScorePerMinute:      nullFloat64ToFloatPtr(row.VisionScorePerMinute),
		LaneMinionsFirst10Minutes: nullInt64ToIntPtr(row.LaneMinionsFirst10Minutes),
		SoloKills:                 nullInt64ToIntPtr(row.SoloKills),
	}
}
