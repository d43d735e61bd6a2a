package player

import (
	"context"
	"time"
)

// Repository describes player persistence needs from use cases.
type Repository interface {
	GetByPUUID(ctx context.Context, puuid string) (Player, bool, error)
	ListByPUUIDs(ctx context.Context, puuids []string) ([]Player, error)
	Upsert(ctx context.Context, item Player) (Player, error)
	// InsertIgnoreConflicts creates missing players and leaves existing rows untouched.
	InsertIgnoreConflicts(ctx context.Context, items []Player) error
	SetImportWatermark(ctx context.Context, playerID int64, policy ImportPolicy, count int) error
	TouchBulkImport(ctx context.Context, playerID int64, at time.Time) error
	LatestRankCheckpoint(ctx context.Context, playerID int64) (RankCheckpoint, bool, error)
	SaveRankCheckpoint(ctx context.Context, item RankCheckpoint) (RankCheckpoint, error)
}
