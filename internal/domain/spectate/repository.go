package spectate

import "context"

type Repository interface {
	// Save stores the row and reports false when the game was already recorded.
	Save(ctx context.Context, item Spectate) (bool, error)
}
