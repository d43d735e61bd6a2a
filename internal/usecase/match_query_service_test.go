package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	matchmock "github.com/riskibarqy/match-ingestion/internal/mocks/domain/match"
	"github.com/stretchr/testify/mock"
)

func TestMatchQueryService_SortedParticipants(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	service := NewMatchQueryService(repo)

	roster := make([]match.Participant, 0, match.StandardRosterSize)
	lanes := []string{"UTILITY", "BOTTOM", "MIDDLE", "JUNGLE", "TOP"}
	for seat := 1; seat <= match.StandardRosterSize; seat++ {
		team := 200
		if seat%2 == 0 {
			team = 100
		}
		roster = append(roster, match.Participant{ParticipantID: seat, TeamID: team, TeamPosition: lanes[(seat-1)/2]})
	}

	repo.On("GetByExternalID", mock.Anything, "NA1_7").Return(match.Match{ID: 7}, true, nil).Once()
	repo.On("ListParticipants", mock.Anything, int64(7)).Return(roster, nil).Once()

	got, err := service.SortedParticipants(context.Background(), "NA1_7")
	if err != nil {
		t.Fatalf("SortedParticipants error: %v", err)
	}
	want := []int{10, 8, 6, 4, 2, 9, 7, 5, 3, 1}
	for idx, participantID := range want {
		if got[idx].ParticipantID != participantID {
			t.Fatalf("position %d: expected participant %d, got=%d", idx, participantID, got[idx].ParticipantID)
		}
	}
}

func TestMatchQueryService_SortedParticipants_UnknownMatch(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	service := NewMatchQueryService(repo)
	repo.On("GetByExternalID", mock.Anything, "NA1_8").Return(match.Match{}, false, nil).Once()

	if _, err := service.SortedParticipants(context.Background(), "NA1_8"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got=%v", err)
	}
}
