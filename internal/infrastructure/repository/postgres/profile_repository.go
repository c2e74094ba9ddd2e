package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riftwatch/riftwatch/internal/domain/profile"
	"github.com/riftwatch/riftwatch/internal/domain/region"
	qb "github.com/riftwatch/riftwatch/internal/platform/querybuilder"
)

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByPUUID(ctx context.Context, puuid string) (profile.Profile, bool, error) {
	query, args, err := qb.Select("*").
		From("riot_user_profiles").
		Where(qb.Eq("puuid", puuid)).
		Limit(1).
		ToSQL()
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("build get profile by puuid query: %w", err)
	}

	var row profileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return profile.Profile{}, false, nil
		}
		return profile.Profile{}, false, fmt.Errorf("get profile by puuid: %w", err)
	}

	return profileFromRow(row), true, nil
}

func (r *ProfileRepository) GetByRiotID(ctx context.Context, gameName, tagLine string) (profile.Profile, bool, error) {
	query, args, err := qb.Select("*").
		From("riot_user_profiles").
		Where(
			qb.Expr("LOWER(game_name) = LOWER(?)", gameName),
			qb.Expr("LOWER(tag_line) = LOWER(?)", tagLine),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("build get profile by riot id query: %w", err)
	}

	var row profileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return profile.Profile{}, false, nil
		}
		return profile.Profile{}, false, fmt.Errorf("get profile by riot id: %w", err)
	}

	return profileFromRow(row), true, nil
}

// Insert writes a new profile row. A concurrent writer that already
// claimed the puuid makes this a no-op reported as inserted=false.
func (r *ProfileRepository) Insert(ctx context.Context, p profile.Profile) (bool, error) {
	model := profileInsertModel{
		PUUID:         strings.TrimSpace(p.PUUID),
		GameName:      p.GameName,
		TagLine:       p.TagLine,
		Region:        string(p.Region),
		SummonerLevel: intPtrToInt64Ptr(p.SummonerLevel),
		ProfileIcon:   intPtrToInt64Ptr(p.ProfileIcon),
		LastUpdated:   p.LastUpdated,
	}

	query, args, err := qb.InsertModel("riot_user_profiles", model, "ON CONFLICT (puuid) DO NOTHING")
	if err != nil {
		return false, fmt.Errorf("build insert profile query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("insert profile puuid=%s: %w", p.PUUID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert profile rows affected: %w", err)
	}
	return affected == 1, nil
}

func (r *ProfileRepository) Update(ctx context.Context, p profile.Profile) error {
	query, args, err := qb.Update("riot_user_profiles").
		Set("game_name", p.GameName).
		Set("tag_line", p.TagLine).
		Set("region", string(p.Region)).
		Set("summoner_level", intPtrToInt64Ptr(p.SummonerLevel)).
		Set("profile_icon", intPtrToInt64Ptr(p.ProfileIcon)).
		Set("last_updated", p.LastUpdated).
		Where(qb.Eq("puuid", p.PUUID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update profile query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update profile puuid=%s: %w", p.PUUID, err)
	}

	return nil
}

// BulkUpsertStubs writes roster identities in one statement. Existing
// names are kept when the incoming stub carries an empty one, and the
// level, icon and refresh timestamp columns are never touched here.
func (r *ProfileRepository) BulkUpsertStubs(ctx context.Context, stubs []profile.Stub) error {
	if len(stubs) == 0 {
		return nil
	}

	builder := qb.InsertInto("riot_user_profiles").
		Columns("puuid", "game_name", "tag_line", "region")
	for _, stub := range stubs {
		builder.Values(stub.PUUID, stub.GameName, stub.TagLine, string(stub.Region))
	}

	query, args, err := builder.Suffix(`ON CONFLICT (puuid)
DO UPDATE SET
    game_name = COALESCE(NULLIF(EXCLUDED.game_name, ''), riot_user_profiles.game_name),
    tag_line = COALESCE(NULLIF(EXCLUDED.tag_line, ''), riot_user_profiles.tag_line),
    region = EXCLUDED.region`).ToSQL()
	if err != nil {
		return fmt.Errorf("build bulk upsert profile stubs query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("bulk upsert %d profile stubs: %w", len(stubs), err)
	}

	return nil
}

func profileFromRow(row profileTableModel) profile.Profile {
	return profile.Profile{
		PUUID:         row.PUUID,
		GameName:      row.GameName,
		TagLine:       row.TagLine,
		Region:        region.Platform(row.Region),
		SummonerLevel: nullInt64ToIntPtr(row.SummonerLevel),
		ProfileIcon:   nullInt64ToIntPtr(row.ProfileIcon),
		LastUpdated:   row.LastUpdated,
	}
}
