package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	qb "github.com/riskibarqy/match-ingestion/internal/platform/querybuilder"
)

const matchInsertSuffix = "ON CONFLICT (external_id) DO NOTHING RETURNING id"

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ExistingExternalIDs(ctx context.Context, externalIDs []string) ([]string, error) {
	if len(externalIDs) == 0 {
		return []string{}, nil
	}

	query, args, err := existingExternalIDsQuery(externalIDs)
	if err != nil {
		return nil, err
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select existing match ids: %w", err)
	}
	return out, nil
}

func existingExternalIDsQuery(externalIDs []string) (string, []any, error) {
	query, args, err := qb.Select("external_id").From("matches").
		Where(qb.Any("external_id", pq.Array(externalIDs))).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build select existing match ids query: %w", err)
	}
	return query, args, nil
}

// Create writes the match with its participants, stats, teams and bans in one transaction.
// A conflicting external id yields match.ErrDuplicate and leaves the store untouched.
func (r *MatchRepository) Create(ctx context.Context, aggregate match.Aggregate) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx for match create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	matchID, err := insertMatchAggregate(ctx, tx, aggregate)
	if isUniqueViolation(err) {
		return 0, fmt.Errorf("%w: %s: %v", match.ErrDuplicate, aggregate.Match.ExternalID, err)
	}
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit match create tx: %w", err)
	}
	return matchID, nil
}

// Replace deletes the stored aggregate (children cascade) and inserts the new one in the same transaction.
func (r *MatchRepository) Replace(ctx context.Context, aggregate match.Aggregate) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx for match replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.DeleteFrom("matches").
		Where(qb.Eq("external_id", aggregate.Match.ExternalID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete match query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("delete match external_id=%s: %w", aggregate.Match.ExternalID, err)
	}

	matchID, err := insertMatchAggregate(ctx, tx, aggregate)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit match replace tx: %w", err)
	}
	return matchID, nil
}

func insertMatchAggregate(ctx context.Context, tx *sqlx.Tx, aggregate match.Aggregate) (int64, error) {
	query, args, err := qb.InsertModel("matches", toMatchRow(aggregate.Match), matchInsertSuffix)
	if err != nil {
		return 0, fmt.Errorf("build insert match query: %w", err)
	}

	var matchID int64
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&matchID); err != nil {
		if isNotFound(err) {
			return 0, fmt.Errorf("%w: external_id=%s", match.ErrDuplicate, aggregate.Match.ExternalID)
		}
		return 0, fmt.Errorf("insert match external_id=%s: %w", aggregate.Match.ExternalID, err)
	}

	participants := make([]participantRow, 0, len(aggregate.Participants))
	for _, item := range aggregate.Participants {
		participants = append(participants, toParticipantRow(matchID, item))
	}
	seatIDs, err := insertRowsReturningKeys(ctx, tx, "participants", participants, "RETURNING id, participant_id")
	if err != nil {
		return 0, err
	}

	stats := make([]statsRow, 0, len(aggregate.Participants))
	for _, item := range aggregate.Participants {
		participantRowID, ok := seatIDs[item.ParticipantID]
		if !ok {
			return 0, fmt.Errorf("participant %d was not inserted", item.ParticipantID)
		}
		stats = append(stats, toStatsRow(participantRowID, item))
	}
	if err := insertRows(ctx, tx, "stats", stats); err != nil {
		return 0, err
	}

	teams := make([]teamRow, 0, len(aggregate.Teams))
	for _, item := range aggregate.Teams {
		teams = append(teams, toTeamRow(matchID, item))
	}
	teamIDs, err := insertRowsReturningKeys(ctx, tx, "teams", teams, "RETURNING id, team_id")
	if err != nil {
		return 0, err
	}

	var bans []banRow
	for _, item := range aggregate.Teams {
		for _, ban := range item.Bans {
			bans = append(bans, banRow{TeamRowID: teamIDs[item.TeamID], ChampionID: ban.ChampionID, PickTurn: ban.PickTurn})
		}
	}
	if err := insertRows(ctx, tx, "bans", bans); err != nil {
		return 0, err
	}

	return matchID, nil
}

func (r *MatchRepository) GetByExternalID(ctx context.Context, externalID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("external_id", externalID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row storedMatchRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match external_id=%s: %w", externalID, err)
	}
	return row.toDomain(), true, nil
}

// ListParticipants returns the seats of a match without their stats.
func (r *MatchRepository) ListParticipants(ctx context.Context, matchID int64) ([]match.Participant, error) {
	query, args, err := qb.Select(participantSelectColumns...).From("participants").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("participant_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select participants query: %w", err)
	}

	var rows []storedParticipantRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select participants match_id=%d: %w", matchID, err)
	}

	out := make([]match.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) SetParticipantRanks(ctx context.Context, ranks []match.ParticipantRank) error {
	if len(ranks) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for participant ranks: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range ranks {
		query, args, err := qb.Update("participants").
			Set("tier", item.Tier).
			Set("rank", item.Rank).
			Where(qb.Eq("id", item.ParticipantID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update participant rank query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update participant rank id=%d: %w", item.ParticipantID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit participant ranks tx: %w", err)
	}
	return nil
}
