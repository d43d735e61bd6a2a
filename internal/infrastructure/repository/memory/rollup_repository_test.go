package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	"github.com/riskibarqy/match-ingestion/internal/domain/rollup"
)

func seat(participantID int, puuid string, teamID, championID int, win bool, kills, deaths, assists int) match.Participant {
	return match.Participant{
		ParticipantID: participantID,
		PUUID:         puuid,
		SummonerName:  puuid,
		TeamID:        teamID,
		ChampionID:    championID,
		Stats:         match.Stats{Win: win, Kills: kills, Deaths: deaths, Assists: assists},
	}
}

func seedRollupMatches(t *testing.T) *MatchRepository {
	t.Helper()

	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	repo := NewMatchRepository()
	items := []match.Aggregate{
		{
			Match: match.Match{ExternalID: "NA1_1", GameDuration: 1_800_000, GameCreation: created, QueueID: 420, Version: match.Version{Major: 14, Minor: 3}},
			Participants: []match.Participant{
				seat(1, "me", 100, 157, true, 10, 2, 5),
				seat(2, "ally", 100, 64, true, 1, 1, 1),
				seat(6, "enemy", 200, 22, false, 0, 5, 0),
			},
		},
		{
			Match: match.Match{ExternalID: "NA1_2", GameDuration: 1_500_000, GameCreation: created + 1, QueueID: 420, Version: match.Version{Major: 14, Minor: 4}},
			Participants: []match.Participant{
				seat(1, "me", 200, 157, false, 2, 6, 3),
				seat(2, "ally", 200, 64, false, 0, 0, 0),
				seat(6, "enemy", 100, 22, true, 0, 0, 0),
			},
		},
		{
			Match: match.Match{ExternalID: "NA1_3", GameDuration: 200_000, GameCreation: created + 2, QueueID: 450},
			Participants: []match.Participant{
				seat(1, "me", 100, 22, false, 0, 0, 0),
			},
		},
	}
	for _, item := range items {
		if _, err := repo.Create(context.Background(), item); err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}
	return repo
}

func TestRollupRepository_ChampionTotals(t *testing.T) {
	t.Parallel()

	repo := NewRollupRepository(seedRollupMatches(t))
	got, err := repo.ChampionTotals(context.Background(), "me", rollup.Filter{MinDuration: rollup.DefaultMinDuration})
	if err != nil {
		t.Fatalf("champion totals error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected the short game to be filtered out, got=%+v", got)
	}
	if got[0].ChampionID != 157 || got[0].Games != 2 || got[0].Wins != 1 || got[0].Losses != 1 || got[0].Kills != 12 || got[0].Deaths != 8 {
		t.Fatalf("unexpected totals: %+v", got[0])
	}

	minor := 4
	filtered, _ := repo.ChampionTotals(context.Background(), "me", rollup.Filter{MinorVersion: &minor})
	if len(filtered) != 1 || filtered[0].Games != 1 {
		t.Fatalf("expected minor filter to keep one game, got=%+v", filtered)
	}
}

func TestRollupRepository_PlayedWith(t *testing.T) {
	t.Parallel()

	repo := NewRollupRepository(seedRollupMatches(t))
	allies, err := repo.PlayedWith(context.Background(), "me", true, rollup.Filter{}, 10)
	if err != nil {
		t.Fatalf("played with error: %v", err)
	}
	if len(allies) != 1 || allies[0].PUUID != "ally" || allies[0].Games != 2 || allies[0].Wins != 1 {
		t.Fatalf("unexpected allies: %+v", allies)
	}

	opponents, _ := repo.PlayedWith(context.Background(), "me", false, rollup.Filter{Queues: []int{420}}, 10)
	if len(opponents) != 1 || opponents[0].PUUID != "enemy" || opponents[0].Games != 2 {
		t.Fatalf("unexpected opponents: %+v", opponents)
	}
}
