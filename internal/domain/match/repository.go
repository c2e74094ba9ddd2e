package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	// SaveMatch writes the header with its team and participant rows as
	// one atomic unit. When the match id already exists the stored header
	// is returned unchanged and no child rows are touched: match results
	// do not change after completion.
	SaveMatch(ctx context.Context, m Match, teams []TeamAggregate, participants []ParticipantStat) (Match, bool, error)
	GetByID(ctx context.Context, matchID string) (Detail, bool, error)
}
