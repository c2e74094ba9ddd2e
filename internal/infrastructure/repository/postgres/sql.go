package postgres

import (
	"database/sql"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riftwatch/riftwatch/internal/domain/match"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

func intPtrToInt64Ptr(value *int) *int64 {
	if value == nil {
		return nil
	}
	v := int64(*value)
	return &v
}

func intPtrToNullInt64(value *int) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}

func nullInt64ToIntPtr(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int64)
	return &v
}

func floatPtrToNullFloat64(value *float64) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *value, Valid: true}
}

func nullFloat64ToFloatPtr(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	v := value.Float64
	return &v
}

func encodeBans(bans []match.Ban) (string, error) {
	if bans == nil {
		bans = []match.Ban{}
	}
	raw, err := sonic.Marshal(bans)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeBans(raw string) ([]match.Ban, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []match.Ban{}, nil
	}
	var bans []match.Ban
	if err := sonic.Unmarshal([]byte(raw), &bans); err != nil {
		return nil, err
	}
	if bans == nil {
		bans = []match.Ban{}
	}
	return bans, nil
}
