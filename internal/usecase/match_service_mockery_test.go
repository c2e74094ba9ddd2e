package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riftwatch/riftwatch/internal/domain/match"
	matchmock "github.com/riftwatch/riftwatch/internal/mocks/domain/match"
)

func TestMatchService_GetMatch_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)

	service := NewMatchService(matchRepo, newInMemoryProfileRepo(), &fakeRiotProvider{}, nil, 2, nil)
	matchID := "NA1_5000000001"
	detail := match.Detail{
		Match: match.Match{MatchID: matchID, PlatformID: "NA1", QueueID: 420},
		Teams: []match.TeamAggregate{
			{MatchID: matchID, TeamID: 100, Win: true},
			{MatchID: matchID, TeamID: 200, Win: false},
		},
	}

	matchRepo.
		On("GetByID", mock.Anything, matchID).
		Return(detail, true, nil).
		Once()

	got, err := service.GetMatch(ctx, matchID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if got.Match.MatchID != matchID {
		t.Fatalf("unexpected match id: got=%s want=%s", got.Match.MatchID, matchID)
	}
	if len(got.Teams) != 2 {
		t.Fatalf("unexpected team count: got=%d want=2", len(got.Teams))
	}
}

func TestMatchService_GetMatch_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)

	service := NewMatchService(matchRepo, newInMemoryProfileRepo(), &fakeRiotProvider{}, nil, 2, nil)
	matchID := "NA1_5000000404"

	matchRepo.
		On("GetByID", mock.Anything, matchID).
		Return(match.Detail{}, false, nil).
		Once()

	_, err := service.GetMatch(ctx, matchID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
