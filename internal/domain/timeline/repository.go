package timeline

import (
	"context"
	"errors"
)

// ErrAlreadyExists reports that the match already owns a timeline.
var ErrAlreadyExists = errors.New("timeline already imported")

// Repository persists a timeline atomically under its match.
type Repository interface {
	ExistsForMatch(ctx context.Context, matchID int64) (bool, error)
	Create(ctx context.Context, matchID int64, item Timeline) error
	Replace(ctx context.Context, matchID int64, item Timeline) error
}
