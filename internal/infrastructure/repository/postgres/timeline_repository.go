package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/match-ingestion/internal/domain/timeline"
	qb "github.com/riskibarqy/match-ingestion/internal/platform/querybuilder"
)

const timelineInsertSuffix = "ON CONFLICT (match_id) DO NOTHING RETURNING id"

type TimelineRepository struct {
	db *sqlx.DB
}

func NewTimelineRepository(db *sqlx.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

func (r *TimelineRepository) ExistsForMatch(ctx context.Context, matchID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM timelines WHERE match_id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, matchID); err != nil {
		return false, fmt.Errorf("check timeline match_id=%d: %w", matchID, err)
	}
	return exists, nil
}

// Create writes the timeline with all frames and events in one transaction.
// A timeline already stored for the match yields timeline.ErrAlreadyExists.
func (r *TimelineRepository) Create(ctx context.Context, matchID int64, item timeline.Timeline) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for timeline create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := insertTimeline(ctx, tx, matchID, item); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit timeline create tx: %w", err)
	}
	return nil
}

// Replace drops the stored timeline (frames and events cascade) and writes item in its place.
func (r *TimelineRepository) Replace(ctx context.Context, matchID int64, item timeline.Timeline) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for timeline replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.DeleteFrom("timelines").Where(qb.Eq("match_id", matchID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete timeline query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete timeline match_id=%d: %w", matchID, err)
	}

	if err := insertTimeline(ctx, tx, matchID, item); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit timeline replace tx: %w", err)
	}
	return nil
}

func insertTimeline(ctx context.Context, tx *sqlx.Tx, matchID int64, item timeline.Timeline) error {
	query, args, err := qb.InsertModel("timelines", timelineRow{MatchID: matchID, FrameInterval: item.FrameInterval}, timelineInsertSuffix)
	if err != nil {
		return fmt.Errorf("build insert timeline query: %w", err)
	}

	var timelineID int64
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&timelineID); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: match_id=%d", timeline.ErrAlreadyExists, matchID)
		}
		return fmt.Errorf("insert timeline match_id=%d: %w", matchID, err)
	}

	for idx, frame := range item.Frames {
		if err := insertFrame(ctx, tx, timelineID, idx, frame); err != nil {
			return fmt.Errorf("frame %d: %w", idx, err)
		}
	}
	return nil
}

func insertFrame(ctx context.Context, tx *sqlx.Tx, timelineID int64, index int, frame timeline.Frame) error {
	query, args, err := qb.InsertModel("frames", frameRow{
		TimelineID: timelineID,
		FrameIndex: index,
		Timestamp:  frame.Timestamp,
	}, "RETURNING id")
	if err != nil {
		return fmt.Errorf("build insert frame query: %w", err)
	}

	var frameID int64
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&frameID); err != nil {
		return fmt.Errorf("insert frame: %w", err)
	}

	participantFrames := make([]participantFrameRow, 0, len(frame.ParticipantFrames))
	for _, item := range frame.ParticipantFrames {
		participantFrames = append(participantFrames, toParticipantFrameRow(frameID, item))
	}
	if err := insertRows(ctx, tx, "participant_frames", participantFrames); err != nil {
		return err
	}

	return writeFrameEvents(ctx, tx, groupFrameEvents(frameID, frame.Events))
}

func writeFrameEvents(ctx context.Context, tx *sqlx.Tx, events frameEvents) error {
	writes := []func() error{
		func() error { return insertRows(ctx, tx, "ward_placed_events", events.wardPlaced) },
		func() error { return insertRows(ctx, tx, "ward_kill_events", events.wardKill) },
		func() error { return insertRows(ctx, tx, "item_purchased_events", events.itemPurchased) },
		func() error { return insertRows(ctx, tx, "item_destroyed_events", events.itemDestroyed) },
		func() error { return insertRows(ctx, tx, "item_sold_events", events.itemSold) },
		func() error { return insertRows(ctx, tx, "item_undo_events", events.itemUndo) },
		func() error { return insertRows(ctx, tx, "skill_level_up_events", events.skillLevelUp) },
		func() error { return insertRows(ctx, tx, "level_up_events", events.levelUp) },
		func() error { return insertRows(ctx, tx, "champion_special_kill_events", events.championSpecialKill) },
		func() error { return insertRows(ctx, tx, "turret_plate_destroyed_events", events.turretPlateDestroyed) },
		func() error { return insertRows(ctx, tx, "elite_monster_kill_events", events.eliteMonsterKill) },
		func() error { return insertRows(ctx, tx, "building_kill_events", events.buildingKill) },
		func() error { return insertRows(ctx, tx, "game_end_events", events.gameEnd) },
	}
	for _, write := range writes {
		if err := write(); err != nil {
			return err
		}
	}

	killIDs, err := insertRowsReturningKeys(ctx, tx, "champion_kill_events", events.championKill, "RETURNING id, sort_index")
	if err != nil {
		return err
	}

	var dealt, received []victimDamageRow
	for sortIndex, recap := range events.recaps {
		killID, ok := killIDs[sortIndex]
		if !ok {
			return fmt.Errorf("champion kill at sort index %d was not inserted", sortIndex)
		}
		dealt = append(dealt, toVictimDamageRows(killID, recap.dealt)...)
		received = append(received, toVictimDamageRows(killID, recap.received)...)
	}
	if err := insertRows(ctx, tx, "victim_damage_dealt", dealt); err != nil {
		return err
	}
	return insertRows(ctx, tx, "victim_damage_received", received)
}
