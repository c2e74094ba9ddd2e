package postgres

import (
	"database/sql"
	"testing"

	"github.com/riftwatch/riftwatch/internal/domain/match"
)

func TestEncodeBans(t *testing.T) {
	t.Run("round trips bans in order", func(t *testing.T) {
		bans := []match.Ban{{ChampionID: 266, PickTurn: 1}, {ChampionID: 157, PickTurn: 2}}
		raw, err := encodeBans(bans)
		if err != nil {
			t.Fatalf("encode bans: %v", err)
		}

		decoded, err := decodeBans(raw)
		if err != nil {
			t.Fatalf("decode bans: %v", err)
		}
		if len(decoded) != 2 || decoded[0].ChampionID != 266 || decoded[1].PickTurn != 2 {
			t.Fatalf("unexpected decoded bans: %+v", decoded)
		}
	})

	t.Run("nil bans encode as empty array", func(t *testing.T) {
		raw, err := encodeBans(nil)
		if err != nil {
			t.Fatalf("encode bans: %v", err)
		}
		if raw != "[]" {
			t.Fatalf("expected [], got %s", raw)
		}
	})

	t.Run("empty column decodes as empty slice", func(t *testing.T) {
		decoded, err := decodeBans("")
		if err != nil {
			t.Fatalf("decode bans: %v", err)
		}
		if decoded == nil || len(decoded) != 0 {
			t.Fatalf("expected empty slice, got %+v", decoded)
		}
	})
}

func TestNullableConversions(t *testing.T) {
	t.Run("nil int pointer stays null", func(t *testing.T) {
		if got := intPtrToNullInt64(nil); got.Valid {
			t.Fatalf("expected invalid NullInt64, got %+v", got)
		}
		if got := nullInt64ToIntPtr(sql.NullInt64{}); got != nil {
			t.Fatalf("expected nil pointer, got %v", *got)
		}
	})

	t.Run("values survive the round trip", func(t *testing.T) {
		v := 7
		got := nullInt64ToIntPtr(intPtrToNullInt64(&v))
		if got == nil || *got != 7 {
			t.Fatalf("expected 7, got %v", got)
		}

		f := 0.62
		gotF := nullFloat64ToFloatPtr(floatPtrToNullFloat64(&f))
		if gotF == nil || *gotF != 0.62 {
			t.Fatalf("expected 0.62, got %v", gotF)
		}
	})
}
