package match

import (
	"fmt"
	"strings"
)

// Known ranked/normal queue identifiers from the match-v5 payload.
const (
	QueueRankedSolo = 420
	QueueRankedFlex = 440
	QueueARAM       = 450
	QueueOneForAll  = 1020
	QueueURF        = 1900
)

// Role is a normalized lane assignment string from the match payload.
type Role string

const (
	RoleTop     Role = "TOP"
	RoleJungle  Role = "JUNGLE"
	RoleMiddle  Role = "MIDDLE"
	RoleBottom  Role = "BOTTOM"
	RoleUtility Role = "UTILITY"
	RoleInvalid Role = "INVALID"
	RoleNone    Role = ""
)

var allRoles = map[Role]struct{}{
	RoleTop:     {},
	RoleJungle:  {},
	RoleMiddle:  {},
	RoleBottom:  {},
	RoleUtility: {},
	RoleInvalid: {},
	RoleNone:    {},
}

// NormalizeRole uppercases a raw position string and coerces anything
// outside the known lane set to INVALID. Empty stays empty: remakes and
// some game modes legitimately carry no position.
func NormalizeRole(raw string) Role {
	role := Role(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := allRoles[role]; !ok {
		return RoleInvalid
	}
	return role
}

// Match is one completed game header. Rows are immutable once written.
type Match struct {
	MatchID     string
	PlatformID  string
	QueueID     int
	GameMode    string
	GameVersion string
	GameStartTS int64
	DurationSec int
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.MatchID) == "" {
		return fmt.Errorf("match id is required")
	}
	if strings.TrimSpace(m.PlatformID) == "" {
		return fmt.Errorf("match platform id is required")
	}
	if m.GameStartTS <= 0 {
		return fmt.Errorf("match start timestamp must be greater than zero")
	}
	return nil
}

// Ban is one champion ban with its pick order.
type Ban struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

// TeamAggregate is the per-side summary of a match. Kills, deaths and
// assists are derived by summing that side's participants.
type TeamAggregate struct {
	MatchID    string
	TeamID     int
	Win        bool
	Kills      int
	Deaths     int
	Assists    int
	BaronKills int
	DragonKills int
	HeraldKills int
	TowerKills int
	InhibKills int
	FirstBlood bool
	FirstTower bool
	Bans       []Ban
}

// ParticipantStat is one player's line in a match, keyed by
// (match id, puuid).
type ParticipantStat struct {
	MatchID string
	PUUID   string

	RiotIDName    string
	RiotIDTagline string
	ParticipantID int
	TeamID        int
	Win           bool

	ChampionID int
	ChampLevel int

	IndividualPosition Role
	TeamPosition       Role

	Kills   int
	Deaths  int
	Assists int

	KillingSprees int
	DoubleKills   int
	TripleKills   int
	QuadraKills   int
	PentaKills    int

	GoldEarned           int
	GoldSpent            int
	TotalMinionsKilled   int
	NeutralMinionsKilled int

	TotalDamageDealtToChampions    int
	PhysicalDamageDealtToChampions int
	MagicDamageDealtToChampions    int
	TrueDamageDealtToChampions     int
	TotalDamageTaken               int
	DamageSelfMitigated            int

	DamageDealtToObjectives int
	DamageDealtToTurrets    int
	TurretTakedowns         int
	InhibitorTakedowns      int
	DragonKills             int
	BaronKills              int
	RiftHeraldTakedowns     *int

	VisionScore         int
	WardsPlaced         int
	WardsKilled         int
	DetectorWardsPlaced int

	Item0 int
	Item1 int
	Item2 int
	Item3 int
	Item4 int
	Item5 int
	Item6 int

	Summoner1ID int
	Summoner2ID int

	// Advanced challenge metrics, absent on older payloads.
	DamagePerMinute           *float64
	GoldPerMinute             *float64
	TeamDamagePercentage      *float64
	KillParticipation         *float64
	VisionScorePerMinute      *float64
	LaneMinionsFirst10Minutes *int
	SoloKills                 *int
}

func (p ParticipantStat) Validate() error {
	if strings.TrimSpace(p.MatchID) == "" {
		return fmt.Errorf("participant match id is required")
	}
	if strings.TrimSpace(p.PUUID) == "" {
		return fmt.Errorf("participant puuid is required")
	}
	if p.TeamID != 100 && p.TeamID != 200 {
		return fmt.Errorf("participant team id must be 100 or 200, got %d", p.TeamID)
	}
	return nil
}

// Detail is a stored match with its owned rows, as served to readers.
type Detail struct {
	Match        Match
	Teams        []TeamAggregate
	Participants []ParticipantStat
}
