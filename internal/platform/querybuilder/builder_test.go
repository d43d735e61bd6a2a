package querybuilder

import (
	"strings"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "external_id").
		From("matches").
		Where(Eq("platform_id", "NA1"), Expr("game_duration >= ?", 300000)).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, external_id FROM matches WHERE platform_id = $1 AND game_duration >= $2 ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "NA1" || args[1] != 300000 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinAnyAndRanges(t *testing.T) {
	ids := []string{"NA1_1", "NA1_2"}
	query, args, err := Select("p.champion_id", "COUNT(*) AS games").
		From("participants p").
		Join("JOIN matches m ON m.id = p.match_id").
		Where(
			Eq("p.puuid", "abc"),
			Any("m.external_id", ids),
			Gte("m.game_duration", int64(300000)),
			Lt("m.game_creation", int64(1700000000000)),
		).
		GroupBy("p.champion_id").
		OrderBy("games DESC", "p.champion_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT p.champion_id, COUNT(*) AS games FROM participants p JOIN matches m ON m.id = p.match_id " +
		"WHERE p.puuid = $1 AND m.external_id = ANY($2) AND m.game_duration >= $3 AND m.game_creation < $4 " +
		"GROUP BY p.champion_id ORDER BY games DESC, p.champion_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got=%d", len(args))
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("matches").
		Columns("external_id", "platform_id").
		Values("NA1_1", "NA1").
		Suffix("ON CONFLICT (external_id) DO NOTHING RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO matches (external_id, platform_id) VALUES ($1, $2) ON CONFLICT (external_id) DO NOTHING RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "NA1_1" || args[1] != "NA1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("full_import_count", 100).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE players SET full_import_count = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 100 || args[1] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("matches").Where(Eq("external_id", "NA1_1")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM matches WHERE external_id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "NA1_1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("matches").ToSQL(); err == nil {
		t.Fatalf("expected delete without where to be rejected")
	}
}

type banRow struct {
	TeamID     int64 `db:"team_id"`
	ChampionID int   `db:"champion_id"`
	PickTurn   int   `db:"pick_turn"`
	skipped    int
	Ignored    string `db:"-"`
}

func TestInsertModels(t *testing.T) {
	rows := []banRow{
		{TeamID: 1, ChampionID: 157, PickTurn: 1},
		{TeamID: 1, ChampionID: 238, PickTurn: 2},
	}
	query, args, err := InsertModels("bans", rows, "")
	if err != nil {
		t.Fatalf("build insert models query: %v", err)
	}

	wantQuery := "INSERT INTO bans (team_id, champion_id, pick_turn) VALUES ($1, $2, $3), ($4, $5, $6)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 6 || args[4] != 238 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModels[banRow]("bans", nil, ""); err == nil || !strings.Contains(err.Error(), "required") {
		t.Fatalf("expected empty models error, got=%v", err)
	}
}
