package match

import (
	"context"
	"errors"
)

// ErrDuplicate reports that a match with the same external id is already stored.
var ErrDuplicate = errors.New("match already imported")

// Repository describes match persistence needs from use cases.
// Create and Replace commit the whole aggregate or nothing.
type Repository interface {
	ExistingExternalIDs(ctx context.Context, externalIDs []string) ([]string, error)
	Create(ctx context.Context, aggregate Aggregate) (int64, error)
	Replace(ctx context.Context, aggregate Aggregate) (int64, error)
	GetByExternalID(ctx context.Context, externalID string) (Match, bool, error)
	ListParticipants(ctx context.Context, matchID int64) ([]Participant, error)
	SetParticipantRanks(ctx context.Context, ranks []ParticipantRank) error
}
