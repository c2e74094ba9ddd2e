package profile

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riftwatch/riftwatch/internal/domain/region"
)

// PUUIDMaxLength is the fixed upper bound Riot documents for encrypted PUUIDs.
const PUUIDMaxLength = 78

// DefaultTTL is how long a stored profile is served before a refresh is forced.
const DefaultTTL = time.Hour

// Profile is one Riot account known to the service.
type Profile struct {
	PUUID         string
	GameName      string
	TagLine       string
	Region        region.Platform
	SummonerLevel *int
	ProfileIcon   *int
	LastUpdated   *time.Time
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.PUUID) == "" {
		return fmt.Errorf("profile puuid is required")
	}
	if len(p.PUUID) > PUUIDMaxLength {
		return fmt.Errorf("profile puuid exceeds %d characters", PUUIDMaxLength)
	}
	if strings.TrimSpace(p.GameName) == "" {
		return fmt.Errorf("profile game name is required")
	}
	if strings.TrimSpace(p.TagLine) == "" {
		return fmt.Errorf("profile tag line is required")
	}
	if _, ok := region.RoutingFor(p.Region); !ok {
		return fmt.Errorf("invalid profile region: %s", p.Region)
	}
	return nil
}

// IsStale reports whether the profile must be refetched from upstream.
// A profile with no recorded refresh time is always stale.
func (p Profile) IsStale(now time.Time, ttl time.Duration) bool {
	if p.LastUpdated == nil {
		return true
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return now.Sub(*p.LastUpdated) > ttl
}

// MissingOptional reports whether level or icon are absent while the
// candidate profile carries them; such profiles are overwritten even
// when fresh so partial rows fill in.
func (p Profile) MissingOptional(candidate Profile) bool {
	if p.SummonerLevel == nil && candidate.SummonerLevel != nil {
		return true
	}
	if p.ProfileIcon == nil && candidate.ProfileIcon != nil {
		return true
	}
	return false
}

// Stub is the minimal profile derived from a match roster. Level and icon
// are unknown at that point; only identity fields are written.
type Stub struct {
	PUUID    string
	GameName string
	TagLine  string
	Region   region.Platform
}

// DedupeStubs removes duplicate PUUIDs and returns the stubs sorted by
// PUUID ascending. The sort is a correctness requirement for the bulk
// upsert: it fixes the row-lock acquisition order so two ingestions with
// overlapping rosters cannot deadlock each other.
func DedupeStubs(stubs []Stub) []Stub {
	byPUUID := make(map[string]Stub, len(stubs))
	for _, stub := range stubs {
		puuid := strings.TrimSpace(stub.PUUID)
		if puuid == "" {
			continue
		}
		stub.PUUID = puuid
		if existing, ok := byPUUID[puuid]; ok {
			if existing.GameName == "" && stub.GameName != "" {
				byPUUID[puuid] = stub
			}
			continue
		}
		byPUUID[puuid] = stub
	}

	out := make([]Stub, 0, len(byPUUID))
	for _, stub := range byPUUID {
		out = append(out, stub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PUUID < out[j].PUUID })
	return out
}
