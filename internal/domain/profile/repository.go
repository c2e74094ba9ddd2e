package profile

import "context"

// Repository describes profile persistence needs from use cases.
type Repository interface {
	GetByPUUID(ctx context.Context, puuid string) (Profile, bool, error)
	GetByRiotID(ctx context.Context, gameName, tagLine string) (Profile, bool, error)
	// Insert writes a new row. When another writer won the race on the
	// puuid primary key it reports inserted=false and callers refetch.
	Insert(ctx context.Context, p Profile) (inserted bool, err error)
	Update(ctx context.Context, p Profile) error
	// BulkUpsertStubs performs one set-based insert-or-update keyed on
	// puuid. Callers must pass the DedupeStubs output so the statement
	// touches rows in puuid order.
	BulkUpsertStubs(ctx context.Context, stubs []Stub) error
}
