package httpapi

import (
	"time"

	"github.com/riftwatch/riftwatch/internal/domain/match"
	"github.com/riftwatch/riftwatch/internal/domain/profile"
)

type profileDTO struct {
	PUUID         string  `json:"puuid"`
	GameName      string  `json:"game_name"`
	TagLine       string  `json:"tag_line"`
	Region        string  `json:"region"`
	SummonerLevel *int    `json:"summoner_level"`
	ProfileIcon   *int    `json:"profile_icon"`
	LastUpdated   *string `json:"last_updated"`
}

func profileToDTO(item profile.Profile) profileDTO {
	dto := profileDTO{
		PUUID:         item.PUUID,
		GameName:      item.GameName,
		TagLine:       item.TagLine,
		Region:        string(item.Region),
		SummonerLevel: item.SummonerLevel,
		ProfileIcon:   item.ProfileIcon,
	}
	if item.LastUpdated != nil {
		formatted := item.LastUpdated.UTC().Format(time.RFC3339)
		dto.LastUpdated = &formatted
	}
	return dto
}

type rankedEntryDTO struct {
	QueueType    string `json:"queue_type"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"league_points"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hot_streak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"fresh_blood"`
	Inactive     bool   `json:"inactive"`
}

type matchDTO struct {
	MatchID     string `json:"match_id"`
	PlatformID  string `json:"platform_id"`
	QueueID     int    `json:"queue_id"`
	GameMode    string `json:"game_mode"`
	GameVersion string `json:"game_version"`
	GameStartTS int64  `json:"game_start_ts"`
	DurationSec int    `json:"duration_sec"`
}

func matchToDTO(item match.Match) matchDTO {
	return matchDTO{
		MatchID:     item.MatchID,
		PlatformID:  item.PlatformID,
		QueueID:     item.QueueID,
		GameMode:    item.GameMode,
		GameVersion: item.GameVersion,
		GameStartTS: item.GameStartTS,
		DurationSec: item.DurationSec,
	}
}

type banDTO struct {
	ChampionID int `json:"champion_id"`
	PickTurn   int `json:"pick_turn"`
}

type teamDTO struct {
	TeamID      int      `json:"team_id"`
	Win         bool     `json:"win"`
	Kills       int      `json:"kills"`
	Deaths      int      `json:"deaths"`
	Assists     int      `json:"assists"`
	BaronKills  int      `json:"baron_kills"`
	DragonKills int      `json:"dragon_kills"`
	HeraldKills int      `json:"herald_kills"`
	TowerKills  int      `json:"tower_kills"`
	InhibKills  int      `json:"inhib_kills"`
	FirstBlood  bool     `json:"first_blood"`
	FirstTower  bool     `json:"first_tower"`
	Bans        []banDTO `json:"bans"`
}

func teamToDTO(item match.TeamAggregate) teamDTO {
	bans := make([]banDTO, 0, len(item.Bans))
	for _, ban := range item.Bans {
		bans = append(bans, banDTO{ChampionID: ban.ChampionID, PickTurn: ban.PickTurn})
	}
	return teamDTO{
		TeamID:      item.TeamID,
		Win:         item.Win,
		Kills:       item.Kills,
		Deaths:      item.Deaths,
		Assists:     item.Assists,
		BaronKills:  item.BaronKills,
		DragonKills: item.DragonKills,
		HeraldKills: item.HeraldKills,
		TowerKills:  item.TowerKills,
		InhibKills:  item.InhibKills,
		FirstBlood:  item.FirstBlood,
		FirstTower:  item.FirstTower,
		Bans:        bans,
	}
}

type participantDTO struct {
	PUUID         string `json:"puuid"`
	RiotIDName    string `json:"riot_id_name"`
	RiotIDTagline string `json:"riot_id_tagline"`
	ParticipantID int    `json:"participant_id"`
	TeamID        int    `json:"team_id"`
	Win           bool   `json:"win"`

	ChampionID int    `json:"champion_id"`
	ChampLevel int    `json:"champ_level"`
	Position   string `json:"position"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	KillingSprees int `json:"killing_sprees"`
	DoubleKills   int `json:"double_kills"`
	TripleKills   int `json:"triple_kills"`
	QuadraKills   int `json:"quadra_kills"`
	PentaKills    int `json:"penta_kills"`

	GoldEarned           int `json:"gold_earned"`
	GoldSpent            int `json:"gold_spent"`
	TotalMinionsKilled   int `json:"total_minions_killed"`
	NeutralMinionsKilled int `json:"neutral_minions_killed"`

	TotalDamageDealtToChampions int `json:"total_damage_dealt_to_champions"`
	TotalDamageTaken            int `json:"total_damage_taken"`
	DamageDealtToObjectives     int `json:"damage_dealt_to_objectives"`
	DamageDealtToTurrets        int `json:"damage_dealt_to_turrets"`

	VisionScore         int `json:"vision_score"`
	WardsPlaced         int `json:"wards_placed"`
	WardsKilled         int `json:"wards_killed"`
	DetectorWardsPlaced int `json:"detector_wards_placed"`

	Items       []int `json:"items"`
	Summoner1ID int   `json:"summoner1_id"`
	Summoner2ID int   `json:"summoner2_id"`

	DamagePerMinute      *float64 `json:"damage_per_minute"`
	GoldPerMinute        *float64 `json:"gold_per_minute"`
	TeamDamagePercentage *float64 `json:"team_damage_percentage"`
	KillParticipation    *float64 `json:"kill_participation"`
	VisionScorePerMinute *float64 `json:"vision_score_per_minute"`
	SoloKills            *int     `json:"solo_kills"`
}

func participantToDTO(item match.ParticipantStat) participantDTO {
	return participantDTO{
		PUUID:         item.PUUID,
		RiotIDName:    item.RiotIDName,
		RiotIDTagline: item.RiotIDTagline,
		ParticipantID: item.ParticipantID,
		TeamID:        item.TeamID,
		Win:           item.Win,

		ChampionID: item.ChampionID,
		ChampLevel: item.ChampLevel,
		Position:   string(item.TeamPosition),

		Kills:   item.Kills,
		Deaths:  item.Deaths,
		Assists: item.Assists,

		KillingSprees: item.KillingSprees,
		DoubleKills:   item.DoubleKills,
		TripleKills:   item.TripleKills,
		QuadraKills:   item.QuadraKills,
		PentaKills:    item.PentaKills,

		GoldEarned:           item.GoldEarned,
		GoldSpent:            item.GoldSpent,
		TotalMinionsKilled:   item.TotalMinionsKilled,
		NeutralMinionsKilled: item.NeutralMinionsKilled,

		TotalDamageDealtToChampions: item.TotalDamageDealtToChampions,
		TotalDamageTaken:            item.TotalDamageTaken,
		DamageDealtToObjectives:     item.DamageDealtToObjectives,
		DamageDealtToTurrets:        item.DamageDealtToTurrets,

		VisionScore:         item.VisionScore,
		WardsPlaced:         item.WardsPlaced,
		WardsKilled:         item.WardsKilled,
		DetectorWardsPlaced: item.DetectorWardsPlaced,

		Items:       []int{item.Item0, item.Item1, item.Item2, item.Item3, item.Item4, item.Item5, item.Item6},
		Summoner1ID: item.Summoner1ID,
		Summoner2ID: item.Summoner2ID,

		DamagePerMinute:      item.DamagePerMinute,
		GoldPerMinute:        item.GoldPerMinute,
		TeamDamagePercentage: item.TeamDamagePercentage,
		KillParticipation:    item.KillParticipation,
		VisionScorePerMinute: item.VisionScorePerMinute,
		SoloKills:            item.SoloKills,
	}
}

type matchDetailDTO struct {
	Match        matchDTO         `json:"match"`
	Teams        []teamDTO        `json:"teams"`
	Participants []participantDTO `json:"participants"`
}

func matchDetailToDTO(detail match.Detail) matchDetailDTO {
	teams := make([]teamDTO, 0, len(detail.Teams))
	for _, team := range detail.Teams {
		teams = append(teams, teamToDTO(team))
	}
	participants := make([]participantDTO, 0, len(detail.Participants))
	for _, participant := range detail.Participants {
		participants = append(participants, participantToDTO(participant))
	}
	return matchDetailDTO{
		Match:        matchToDTO(detail.Match),
		Teams:        teams,
		Participants: participants,
	}
}

type matchIDListDTO struct {
	PUUID    string   `json:"puuid"`
	MatchIDs []string `json:"match_ids"`
}

type ingestMatchDTO struct {
	Match    matchDTO `json:"match"`
	Ingested bool     `json:"ingested"`
}

type ingestTaskDTO struct {
	MatchID    string `json:"match_id"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type ingestRecentDTO struct {
	PUUID         string          `json:"puuid"`
	IngestedCount int             `json:"ingested_count"`
	ExistingCount int             `json:"existing_count"`
	FailedCount   int             `json:"failed_count"`
	Tasks         []ingestTaskDTO `json:"tasks"`
}
