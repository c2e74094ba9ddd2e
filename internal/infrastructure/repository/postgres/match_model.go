package postgres

import "database/sql"

type matchTableModel struct {
	MatchID     string `db:"match_id"`
	PlatformID  string `db:"platform_id"`
	QueueID     int    `db:"queue_id"`
	GameMode    string `db:"game_mode"`
	GameVersion string `db:"game_version"`
	GameStartTS int64  `db:"game_start_ts"`
	DurationSec int    `db:"duration_sec"`
}

type matchTeamTableModel struct {
	MatchID     string `db:"match_id"`
	TeamID      int    `db:"team_id"`
	Win         bool   `db:"win"`
	Kills       int    `db:"kills"`
	Deaths      int    `db:"deaths"`
	Assists     int    `db:"assists"`
	BaronKills  int    `db:"baron_kills"`
	DragonKills int    `db:"dragon_kills"`
	HeraldKills int    `db:"herald_kills"`
	TowerKills  int    `db:"tower_kills"`
	InhibKills  int    `db:"inhib_kills"`
	FirstBlood  bool   `db:"first_blood"`
	FirstTower  bool   `db:"first_tower"`
	Bans        string `db:"bans"`
}

type matchParticipantTableModel struct {
	MatchID string `db:"match_id"`
	PUUID   string `db:"puuid"`

	RiotIDName    string `db:"riot_id_name"`
	RiotIDTagline string `db:"riot_id_tagline"`
	ParticipantID int    `db:"participant_id"`
	TeamID        int    `db:"team_id"`
	Win           bool   `db:"win"`

	ChampionID int `db:"champion_id"`
	ChampLevel int `db:"champ_level"`

	IndividualPosition string `db:"individual_position"`
	TeamPosition       string `db:"team_position"`

	Kills   int `db:"kills"`
	Deaths  int `db:"deaths"`
	Assists int `db:"assists"`

	KillingSprees int `db:"killing_sprees"`
	DoubleKills   int `db:"double_kills"`
	TripleKills   int `db:"triple_kills"`
	QuadraKills   int `db:"quadra_kills"`
	PentaKills    int `db:"penta_kills"`

	GoldEarned           int `db:"gold_earned"`
	GoldSpent            int `db:"gold_spent"`
	TotalMinionsKilled   int `db:"total_minions_killed"`
	NeutralMinionsKilled int `db:"neutral_minions_killed"`

	TotalDamageDealtToChampions    int `db:"total_damage_dealt_to_champions"`
	PhysicalDamageDealtToChampions int `db:"physical_damage_dealt_to_champions"`
	MagicDamageDealtToChampions    int `db:"magic_damage_dealt_to_champions"`
	TrueDamageDealtToChampions     int `db:"true_damage_dealt_to_champions"`
	TotalDamageTaken               int `db:"total_damage_taken"`
	DamageSelfMitigated            int `db:"damage_self_mitigated"`

	DamageDealtToObjectives int           `db:"damage_dealt_to_objectives"`
	DamageDealtToTurrets    int           `db:"damage_dealt_to_turrets"`
	TurretTakedowns         int           `db:"turret_takedowns"`
	InhibitorTakedowns      int           `db:"inhibitor_takedowns"`
	DragonKills             int           `db:"dragon_kills"`
	BaronKills              int           `db:"baron_kills"`
	RiftHeraldTakedowns     sql.NullInt64 `db:"rift_herald_takedowns"`

	VisionScore         int `db:"vision_score"`
	WardsPlaced         int `db:"wards_placed"`
	WardsKilled         int `db:"wards_killed"`
	DetectorWardsPlaced int `db:"detector_wards_placed"`

	Item0 int `db:"item0"`
	Item1 int `db:"item1"`
	Item2 int `db:"item2"`
	Item3 int `db:"item3"`
	Item4 int `db:"item4"`
	Item5 int `db:"item5"`
	Item6 int `db:"item6"`

	Summoner1ID int `db:"summoner1_id"`
	Summoner2ID int `db:"summoner2_id"`

	DamagePerMinute           sql.NullFloat64 `db:"damage_per_minute"`
	GoldPerMinute             sql.NullFloat64 `db:"gold_per_minute"`
	TeamDamagePercentage      sql.NullFloat64 `db:"team_damage_percentage"`
	KillParticipation         sql.NullFloat64 `db:"kill_participation"`
	VisionScorePerMinute      sql.NullFloat64 `db:"vision_score_per_minute"`
	LaneMinionsFirst10Minutes sql.NullInt64   `db:"lane_minions_first_10_minutes"`
	SoloKills                 sql.NullInt64   `db:"solo_kills"`
}
