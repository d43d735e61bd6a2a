package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/match-ingestion/internal/domain/match"
)

type MatchQueryService struct {
	matchRepo match.Repository
}

func NewMatchQueryService(matchRepo match.Repository) *MatchQueryService {
	return &MatchQueryService{matchRepo: matchRepo}
}

// SortedParticipants returns the roster of a stored match in canonical seat order.
func (s *MatchQueryService) SortedParticipants(ctx context.Context, externalID string) ([]match.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchQueryService.SortedParticipants")
	defer span.End()

	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("get match external_id=%s: %w", externalID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: match external_id=%s", ErrNotFound, externalID)
	}

	participants, err := s.matchRepo.ListParticipants(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list participants match_id=%d: %w", item.ID, err)
	}
	return match.OrderRoster(participants), nil
}
