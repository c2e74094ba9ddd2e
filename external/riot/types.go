package riot

import "github.com/riftwatch/riftwatch/internal/domain/match"

// Account is the account-v1 by-riot-id projection.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type regionEnvelope struct {
	Region string `json:"region"`
}

// Summoner is the summoner-v4 by-puuid projection.
type Summoner struct {
	SummonerLevel int `json:"summonerLevel"`
	ProfileIconID int `json:"profileIconId"`
}

// RankedEntry is one league-v4 queue entry, passed through to callers.
type RankedEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"freshBlood"`
	Inactive     bool   `json:"inactive"`
}

// MatchPayload is the raw match-v5 document. The metadata and info
// sections are pointers on purpose: Riot error bodies come back with a
// 200-shaped JSON object that lacks both, and absence must be detected
// before any normalization happens.
type MatchPayload struct {
	Metadata *matchMetadata `json:"metadata"`
	Info     *matchInfo     `json:"info"`
}

type matchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type matchInfo struct {
	PlatformID         string             `json:"platformId"`
	QueueID            int                `json:"queueId"`
	GameMode           string             `json:"gameMode"`
	GameVersion        string             `json:"gameVersion"`
	GameStartTimestamp int64              `json:"gameStartTimestamp"`
	GameDuration       int                `json:"gameDuration"`
	Participants       []matchParticipant `json:"participants"`
	Teams              []matchTeam        `json:"teams"`
}

// matchParticipant keeps pointers on the identity and core combat fields
// the pipeline cannot proceed without; their absence is a malformed
// payload, not a zero.
type matchParticipant struct {
	PUUID         string `json:"puuid"`
	RiotIDName    string `json:"riotIdGameName"`
	RiotIDTagline string `json:"riotIdTagline"`
	ParticipantID *int   `json:"participantId"`
	TeamID        *int   `json:"teamId"`
	Win           bool   `json:"win"`

	ChampionID *int `json:"championId"`
	ChampLevel int  `json:"champLevel"`

	IndividualPosition string `json:"individualPosition"`
	TeamPosition       string `json:"teamPosition"`

	Kills   *int `json:"kills"`
	Deaths  *int `json:"deaths"`
	Assists *int `json:"assists"`

	KillingSprees int `json:"killingSprees"`
	DoubleKills   int `json:"doubleKills"`
	TripleKills   int `json:"tripleKills"`
	QuadraKills   int `json:"quadraKills"`
	PentaKills    int `json:"pentaKills"`

	GoldEarned           int `json:"goldEarned"`
	GoldSpent            int `json:"goldSpent"`
	TotalMinionsKilled   int `json:"totalMinionsKilled"`
	NeutralMinionsKilled int `json:"neutralMinionsKilled"`

	TotalDamageDealtToChampions    int `json:"totalDamageDealtToChampions"`
	PhysicalDamageDealtToChampions int `json:"physicalDamageDealtToChampions"`
	MagicDamageDealtToChampions    int `json:"magicDamageDealtToChampions"`
	TrueDamageDealtToChampions     int `json:"trueDamageDealtToChampions"`
	TotalDamageTaken               int `json:"totalDamageTaken"`
	DamageSelfMitigated            int `json:"damageSelfMitigated"`

	DamageDealtToObjectives int  `json:"damageDealtToObjectives"`
	DamageDealtToTurrets    int  `json:"damageDealtToTurrets"`
	TurretTakedowns         int  `json:"turretTakedowns"`
	InhibitorTakedowns      int  `json:"inhibitorTakedowns"`
	DragonKills             int  `json:"dragonKills"`
	BaronKills              int  `json:"baronKills"`
	RiftHeraldTakedowns     *int `json:"riftHeraldTakedowns"`

	VisionScore         int `json:"visionScore"`
	WardsPlaced         int `json:"wardsPlaced"`
	WardsKilled         int `json:"wardsKilled"`
	DetectorWardsPlaced int `json:"detectorWardsPlaced"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"`

	Summoner1ID int `json:"summoner1Id"`
	Summoner2ID int `json:"summoner2Id"`

	Challenges *participantChallenges `json:"challenges"`
}

// participantChallenges holds the optional advanced block; every field
// degrades to null when the payload omits it.
type participantChallenges struct {
	DamagePerMinute           *float64 `json:"damagePerMinute"`
	GoldPerMinute             *float64 `json:"goldPerMinute"`
	TeamDamagePercentage      *float64 `json:"teamDamagePercentage"`
	KillParticipation         *float64 `json:"killParticipation"`
	VisionScorePerMinute      *float64 `json:"visionScorePerMinute"`
	LaneMinionsFirst10Minutes *int     `json:"laneMinionsFirst10Minutes"`
	SoloKills                 *int     `json:"soloKills"`
}

type matchTeam struct {
	TeamID     int            `json:"teamId"`
	Win        bool           `json:"win"`
	Bans       []match.Ban    `json:"bans"`
	Objectives teamObjectives `json:"objectives"`
}

// teamObjectives maps only the objective kinds the schema stores; the
// payload carries more (horde, atakhan) which are ignored.
type teamObjectives struct {
	Baron      objective `json:"baron"`
	Champion   objective `json:"champion"`
	Dragon     objective `json:"dragon"`
	Inhibitor  objective `json:"inhibitor"`
	RiftHerald objective `json:"riftHerald"`
	Tower      objective `json:"tower"`
}

type objective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}
