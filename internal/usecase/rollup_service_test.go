package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/match-ingestion/internal/domain/rollup"
	rollupmock "github.com/riskibarqy/match-ingestion/internal/mocks/domain/rollup"
	"github.com/stretchr/testify/mock"
)

func TestRollupService_ChampionRollups_OrdersAndComputesKDA(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := rollupmock.NewRepository(t)
	service := NewRollupService(repo)

	repo.
		On("ChampionTotals", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "puuid-1", mock.MatchedBy(func(v rollup.Filter) bool {
			return v.MinDuration == rollup.DefaultMinDuration
		})).
		Return([]rollup.ChampionTotals{
			{ChampionID: 64, Games: 2, Wins: 1, Losses: 1, Kills: 10, Deaths: 4, Assists: 6},
			{ChampionID: 157, Games: 5, Wins: 4, Losses: 1, Kills: 30, Deaths: 0, Assists: 10},
			{ChampionID: 22, Games: 2, Wins: 2, Kills: 4, Deaths: 2, Assists: 2},
		}, nil).
		Once()

	got, err := service.ChampionRollups(ctx, " puuid-1 ", rollup.Filter{})
	if err != nil {
		t.Fatalf("ChampionRollups error: %v", err)
	}
	wantOrder := []int{157, 22, 64}
	for idx, championID := range wantOrder {
		if got[idx].ChampionID != championID {
			t.Fatalf("position %d: expected champion %d, got=%d", idx, championID, got[idx].ChampionID)
		}
	}
	if got[0].KDA != 40 {
		t.Fatalf("expected deathless kda of 40, got=%.2f", got[0].KDA)
	}
	if got[2].KDA != 4 {
		t.Fatalf("expected kda of 4, got=%.2f", got[2].KDA)
	}
}

func TestRollupService_TopPlayedWith_LimitsAndOrders(t *testing.T) {
	t.Parallel()

	repo := rollupmock.NewRepository(t)
	service := NewRollupService(repo)

	repo.
		On("PlayedWith", mock.Anything, "puuid-1", true, mock.Anything, 2).
		Return([]rollup.PlayedWith{
			{PUUID: "c", Games: 3},
			{PUUID: "b", Games: 7},
			{PUUID: "a", Games: 3},
		}, nil).
		Once()

	got, err := service.TopPlayedWith(context.Background(), "puuid-1", true, rollup.Filter{}, 2)
	if err != nil {
		t.Fatalf("TopPlayedWith error: %v", err)
	}
	if len(got) != 2 || got[0].PUUID != "b" || got[1].PUUID != "a" {
		t.Fatalf("unexpected played with list: %+v", got)
	}
}

func TestRollupService_InvalidFilters(t *testing.T) {
	t.Parallel()

	after := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	minor := 3

	tests := []struct {
		name   string
		puuid  string
		filter rollup.Filter
	}{
		{name: "missing puuid", filter: rollup.Filter{}},
		{name: "inverted range", puuid: "puuid-1", filter: rollup.Filter{CreatedAfter: &after, CreatedBefore: &before}},
		{name: "minor without major", puuid: "puuid-1", filter: rollup.Filter{MinorVersion: &minor}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service := NewRollupService(rollupmock.NewRepository(t))
			if _, err := service.ChampionRollups(context.Background(), tc.puuid, tc.filter); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected invalid input, got=%v", err)
			}
			if _, err := service.TopPlayedWith(context.Background(), tc.puuid, false, tc.filter, 0); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected invalid input, got=%v", err)
			}
		})
	}
}
