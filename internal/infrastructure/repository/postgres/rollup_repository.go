package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/match-ingestion/internal/domain/rollup"
	qb "github.com/riskibarqy/match-ingestion/internal/platform/querybuilder"
)

type RollupRepository struct {
	db *sqlx.DB
}

func NewRollupRepository(db *sqlx.DB) *RollupRepository {
	return &RollupRepository{db: db}
}

type championTotalsRow struct {
	ChampionID int `db:"champion_id"`
	Games      int `db:"games"`
	Wins       int `db:"wins"`
	Losses     int `db:"losses"`
	Kills      int `db:"kills"`
	Deaths     int `db:"deaths"`
	Assists    int `db:"assists"`
}

type playedWithRow struct {
	PUUID string `db:"puuid"`
	Name  string `db:"name"`
	Games int    `db:"games"`
	Wins  int    `db:"wins"`
}

func (r *RollupRepository) ChampionTotals(ctx context.Context, puuid string, filter rollup.Filter) ([]rollup.ChampionTotals, error) {
	query, args, err := championTotalsQuery(puuid, filter)
	if err != nil {
		return nil, err
	}

	var rows []championTotalsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select champion totals puuid=%s: %w", puuid, err)
	}

	out := make([]rollup.ChampionTotals, 0, len(rows))
	for _, row := range rows {
		out = append(out, rollup.ChampionTotals{
			ChampionID: row.ChampionID,
			Games:      row.Games,
			Wins:       row.Wins,
			Losses:     row.Losses,
			Kills:      row.Kills,
			Deaths:     row.Deaths,
			Assists:    row.Assists,
		})
	}
	return out, nil
}

func championTotalsQuery(puuid string, filter rollup.Filter) (string, []any, error) {
	conditions := append([]qb.Condition{qb.Eq("p.puuid", puuid)}, matchFilterConditions(filter)...)
	query, args, err := qb.Select(
		"p.champion_id",
		"COUNT(*) AS games",
		"COALESCE(SUM(CASE WHEN s.win THEN 1 ELSE 0 END), 0) AS wins",
		"COALESCE(SUM(CASE WHEN s.win THEN 0 ELSE 1 END), 0) AS losses",
		"COALESCE(SUM(s.kills), 0) AS kills",
		"COALESCE(SUM(s.deaths), 0) AS deaths",
		"COALESCE(SUM(s.assists), 0) AS assists",
	).
		From("participants p").
		Join("JOIN stats s ON s.participant_id = p.id").
		Join("JOIN matches m ON m.id = p.match_id").
		Where(conditions...).
		GroupBy("p.champion_id").
		OrderBy("games DESC", "p.champion_id").
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build champion totals query: %w", err)
	}
	return query, args, nil
}

// PlayedWith counts co-participants of puuid on the same team (sameTeam) or the opposing one.
// Wins are the games puuid won together with (or against) that player.
func (r *RollupRepository) PlayedWith(ctx context.Context, puuid string, sameTeam bool, filter rollup.Filter, limit int) ([]rollup.PlayedWith, error) {
	query, args, err := playedWithQuery(puuid, sameTeam, filter, limit)
	if err != nil {
		return nil, err
	}

	var rows []playedWithRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select played with puuid=%s: %w", puuid, err)
	}

	out := make([]rollup.PlayedWith, 0, len(rows))
	for _, row := range rows {
		out = append(out, rollup.PlayedWith{
			PUUID: row.PUUID,
			Name:  row.Name,
			Games: row.Games,
			Wins:  row.Wins,
		})
	}
	return out, nil
}

func playedWithQuery(puuid string, sameTeam bool, filter rollup.Filter, limit int) (string, []any, error) {
	teamJoin := "o.team_id <> p.team_id"
	if sameTeam {
		teamJoin = "o.team_id = p.team_id"
	}

	conditions := append([]qb.Condition{
		qb.Eq("p.puuid", puuid),
		qb.Expr("o.puuid <> ''"),
	}, matchFilterConditions(filter)...)
	query, args, err := qb.Select(
		"o.puuid",
		"MAX(o.summoner_name) AS name",
		"COUNT(*) AS games",
		"COALESCE(SUM(CASE WHEN s.win THEN 1 ELSE 0 END), 0) AS wins",
	).
		From("participants p").
		Join("JOIN stats s ON s.participant_id = p.id").
		Join("JOIN matches m ON m.id = p.match_id").
		Join("JOIN participants o ON o.match_id = p.match_id AND o.puuid <> p.puuid AND " + teamJoin).
		Where(conditions...).
		GroupBy("o.puuid").
		OrderBy("games DESC", "o.puuid").
		Limit(limit).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build played with query: %w", err)
	}
	return query, args, nil
}

// matchFilterConditions renders a rollup filter against the matches table aliased as m.
func matchFilterConditions(filter rollup.Filter) []qb.Condition {
	out := []qb.Condition{qb.Gte("m.game_duration", filter.MinDuration.Milliseconds())}
	if filter.MajorVersion != nil {
		out = append(out, qb.Eq("m.major_version", *filter.MajorVersion))
	}
	if filter.MinorVersion != nil {
		out = append(out, qb.Eq("m.minor_version", *filter.MinorVersion))
	}
	if len(filter.Queues) > 0 {
		out = append(out, qb.Any("m.queue_id", toInt64Array(filter.Queues)))
	}
	if filter.CreatedAfter != nil {
		out = append(out, qb.Gte("m.game_creation", filter.CreatedAfter.UnixMilli()))
	}
	if filter.CreatedBefore != nil {
		out = append(out, qb.Lt("m.game_creation", filter.CreatedBefore.UnixMilli()))
	}
	return out
}
