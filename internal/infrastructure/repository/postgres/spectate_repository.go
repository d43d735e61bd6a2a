package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/match-ingestion/internal/domain/spectate"
	qb "github.com/riskibarqy/match-ingestion/internal/platform/querybuilder"
)

type spectateInsertModel struct {
	GameID        int64     `db:"game_id"`
	Region        string    `db:"region"`
	PlatformID    string    `db:"platform_id"`
	EncryptionKey string    `db:"encryption_key"`
	CreatedAt     time.Time `db:"created_at"`
}

type SpectateRepository struct {
	db *sqlx.DB
}

func NewSpectateRepository(db *sqlx.DB) *SpectateRepository {
	return &SpectateRepository{db: db}
}

func (r *SpectateRepository) Save(ctx context.Context, item spectate.Spectate) (bool, error) {
	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query, args, err := qb.InsertModel("spectates", spectateInsertModel{
		GameID:        item.GameID,
		Region:        item.Region,
		PlatformID:    item.PlatformID,
		EncryptionKey: item.EncryptionKey,
		CreatedAt:     createdAt,
	}, "ON CONFLICT (game_id, region) DO NOTHING")
	if err != nil {
		return false, fmt.Errorf("build insert spectate query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("insert spectate game_id=%d: %w", item.GameID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("spectate rows affected: %w", err)
	}
	return affected > 0, nil
}
