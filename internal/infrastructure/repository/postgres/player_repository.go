package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/match-ingestion/internal/domain/player"
	qb "github.com/riskibarqy/match-ingestion/internal/platform/querybuilder"
)

const playerUpsertSuffix = `ON CONFLICT (puuid) DO UPDATE SET
    name = CASE WHEN EXCLUDED.name = '' THEN players.name ELSE EXCLUDED.name END,
    simple_name = CASE WHEN EXCLUDED.simple_name = '' THEN players.simple_name ELSE EXCLUDED.simple_name END,
    region = EXCLUDED.region,
    updated_at = NOW()
RETURNING id, puuid, summoner_id, name, simple_name, region, profile_icon_id,
    full_import_count, ranked_import_count, last_bulk_import_at`

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByPUUID(ctx context.Context, puuid string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("puuid", puuid)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player puuid=%s: %w", puuid, err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) ListByPUUIDs(ctx context.Context, puuids []string) ([]player.Player, error) {
	if len(puuids) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Any("puuid", pq.Array(puuids))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by puuid query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by puuid: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Upsert creates the player or refreshes its name and region. Empty names never overwrite stored ones.
func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) (player.Player, error) {
	if err := item.Validate(); err != nil {
		return player.Player{}, err
	}

	query, args, err := qb.InsertModel("players", toPlayerInsertModel(item), playerUpsertSuffix)
	if err != nil {
		return player.Player{}, fmt.Errorf("build upsert player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		return player.Player{}, fmt.Errorf("upsert player puuid=%s: %w", item.PUUID, err)
	}
	return row.toDomain(), nil
}

func (r *PlayerRepository) InsertIgnoreConflicts(ctx context.Context, items []player.Player) error {
	rows := make([]playerInsertModel, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			continue
		}
		rows = append(rows, toPlayerInsertModel(item))
	}
	if len(rows) == 0 {
		return nil
	}

	query, args, err := qb.InsertModels("players", rows, "ON CONFLICT (puuid) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert players query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert players: %w", err)
	}
	return nil
}

func (r *PlayerRepository) SetImportWatermark(ctx context.Context, playerID int64, policy player.ImportPolicy, count int) error {
	column := "full_import_count"
	if policy == player.ImportPolicyRanked {
		column = "ranked_import_count"
	}

	query, args, err := qb.Update("players").
		Set(column, count).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update import watermark query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update import watermark player_id=%d: %w", playerID, err)
	}
	return nil
}

func (r *PlayerRepository) TouchBulkImport(ctx context.Context, playerID int64, at time.Time) error {
	query, args, err := qb.Update("players").
		Set("last_bulk_import_at", at).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build touch bulk import query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("touch bulk import player_id=%d: %w", playerID, err)
	}
	return nil
}

func (r *PlayerRepository) LatestRankCheckpoint(ctx context.Context, playerID int64) (player.RankCheckpoint, bool, error) {
	query, args, err := qb.Select("id", "player_id", "created_at").From("rank_checkpoints").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return player.RankCheckpoint{}, false, fmt.Errorf("build select rank checkpoint query: %w", err)
	}

	var checkpoint rankCheckpointModel
	if err := r.db.GetContext(ctx, &checkpoint, query, args...); err != nil {
		if isNotFound(err) {
			return player.RankCheckpoint{}, false, nil
		}
		return player.RankCheckpoint{}, false, fmt.Errorf("get rank checkpoint player_id=%d: %w", playerID, err)
	}

	positionsQuery, positionsArgs, err := qb.Select("checkpoint_id", "queue_type", "tier", "rank", "league_points", "wins", "losses").
		From("rank_positions").
		Where(qb.Eq("checkpoint_id", checkpoint.ID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return player.RankCheckpoint{}, false, fmt.Errorf("build select rank positions query: %w", err)
	}

	var positions []rankPositionModel
	if err := r.db.SelectContext(ctx, &positions, positionsQuery, positionsArgs...); err != nil {
		return player.RankCheckpoint{}, false, fmt.Errorf("select rank positions checkpoint_id=%d: %w", checkpoint.ID, err)
	}

	out := player.RankCheckpoint{
		ID:        checkpoint.ID,
		PlayerID:  checkpoint.PlayerID,
		CreatedAt: checkpoint.CreatedAt.UTC(),
		Positions: make([]player.RankPosition, 0, len(positions)),
	}
	for _, item := range positions {
		out.Positions = append(out.Positions, player.RankPosition{
			QueueType:    item.QueueType,
			Tier:         item.Tier,
			Rank:         item.Rank,
			LeaguePoints: item.LeaguePoints,
			Wins:         item.Wins,
			Losses:       item.Losses,
		})
	}
	return out, true, nil
}

func (r *PlayerRepository) SaveRankCheckpoint(ctx context.Context, item player.RankCheckpoint) (player.RankCheckpoint, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return player.RankCheckpoint{}, fmt.Errorf("begin tx for rank checkpoint: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	query, args, err := qb.InsertInto("rank_checkpoints").
		Columns("player_id", "created_at").
		Values(item.PlayerID, createdAt).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return player.RankCheckpoint{}, fmt.Errorf("build insert rank checkpoint query: %w", err)
	}
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return player.RankCheckpoint{}, fmt.Errorf("insert rank checkpoint player_id=%d: %w", item.PlayerID, err)
	}

	positions := make([]rankPositionModel, 0, len(item.Positions))
	for _, position := range item.Positions {
		positions = append(positions, rankPositionModel{
			CheckpointID: item.ID,
			QueueType:    position.QueueType,
			Tier:         position.Tier,
			Rank:         position.Rank,
			LeaguePoints: position.LeaguePoints,
			Wins:         position.Wins,
			Losses:       position.Losses,
		})
	}
	if err := insertRows(ctx, tx, "rank_positions", positions); err != nil {
		return player.RankCheckpoint{}, err
	}

	if err := tx.Commit(); err != nil {
		return player.RankCheckpoint{}, fmt.Errorf("commit rank checkpoint tx: %w", err)
	}
	item.CreatedAt = createdAt
	return item, nil
}
