package postgres

import (
	"database/sql"
	"time"
)

type profileTableModel struct {
	PUUID         string        `db:"puuid"`
	GameName      string        `db:"game_name"`
	TagLine       string        `db:"tag_line"`
	Region        string        `db:"region"`
	SummonerLevel sql.NullInt64 `db:"summoner_level"`
	ProfileIcon   sql.NullInt64 `db:"profile_icon"`
	LastUpdated   *time.Time    `db:"last_updated"`
}

type profileInsertModel struct {
	PUUID         string     `db:"puuid"`
	GameName      string     `db:"game_name"`
	TagLine       string     `db:"tag_line"`
	Region        string     `db:"region"`
	SummonerLevel *int64     `db:"summoner_level"`
	ProfileIcon   *int64     `db:"profile_icon"`
	LastUpdated   *time.Time `db:"last_updated"`
}
