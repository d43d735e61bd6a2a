package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	"github.com/riskibarqy/match-ingestion/internal/domain/rollup"
	"github.com/riskibarqy/match-ingestion/internal/domain/timeline"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(fmt.Errorf("get match: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(errors.New("pq: relation matches does not exist")) {
		t.Fatalf("expected unrelated error not to be not found")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	if !isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})) {
		t.Fatalf("expected 23505 to be a unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatalf("expected foreign key violation not to match")
	}
}

func TestExistingExternalIDsQuery(t *testing.T) {
	t.Parallel()

	query, args, err := existingExternalIDsQuery([]string{"NA1_1", "NA1_2"})
	if err != nil {
		t.Fatalf("existingExternalIDsQuery error: %v", err)
	}
	if query != "SELECT external_id FROM matches WHERE external_id = ANY($1)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 {
		t.Fatalf("expected the id list to bind as one argument, got=%d", len(args))
	}
}

func TestChampionTotalsQuery(t *testing.T) {
	t.Parallel()

	major := 14
	before := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	query, args, err := championTotalsQuery("puuid-1", rollup.Filter{
		MajorVersion:  &major,
		Queues:        []int{420, 440},
		CreatedBefore: &before,
		MinDuration:   rollup.DefaultMinDuration,
	})
	if err != nil {
		t.Fatalf("championTotalsQuery error: %v", err)
	}

	wantFrom := "FROM participants p JOIN stats s ON s.participant_id = p.id JOIN matches m ON m.id = p.match_id"
	if !strings.Contains(query, wantFrom) {
		t.Fatalf("expected joins %q in query: %s", wantFrom, query)
	}
	wantWhere := "WHERE p.puuid = $1 AND m.game_duration >= $2 AND m.major_version = $3 AND m.queue_id = ANY($4) AND m.game_creation < $5 GROUP BY p.champion_id ORDER BY games DESC, p.champion_id"
	if !strings.HasSuffix(query, wantWhere) {
		t.Fatalf("unexpected where clause: %s", query)
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got=%d", len(args))
	}
	if args[1] != int64(300000) {
		t.Fatalf("expected minimum duration in milliseconds, got=%v", args[1])
	}
	if args[4] != before.UnixMilli() {
		t.Fatalf("expected created before in epoch milliseconds, got=%v", args[4])
	}
}

func TestPlayedWithQuery(t *testing.T) {
	t.Parallel()

	same, _, err := playedWithQuery("puuid-1", true, rollup.Filter{}, 20)
	if err != nil {
		t.Fatalf("playedWithQuery error: %v", err)
	}
	if !strings.Contains(same, "o.team_id = p.team_id") || !strings.HasSuffix(same, "GROUP BY o.puuid ORDER BY games DESC, o.puuid LIMIT 20") {
		t.Fatalf("unexpected same team query: %s", same)
	}

	opponents, args, err := playedWithQuery("puuid-1", false, rollup.Filter{}, 5)
	if err != nil {
		t.Fatalf("playedWithQuery error: %v", err)
	}
	if !strings.Contains(opponents, "o.team_id <> p.team_id") {
		t.Fatalf("unexpected opponents query: %s", opponents)
	}
	if !strings.Contains(opponents, "WHERE p.puuid = $1 AND o.puuid <> '' AND m.game_duration >= $2") {
		t.Fatalf("unexpected opponents where clause: %s", opponents)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got=%d", len(args))
	}
}

func TestToStatsRow_FlattensPerks(t *testing.T) {
	t.Parallel()

	item := match.Participant{
		Perks: match.Perks{
			StatPerks: map[string]int{"offense": 5005, "flex": 5008, "defense": 5002},
			Primary: match.PerkStyle{Style: 8100, Selections: []match.PerkSelection{
				{Perk: 8112, Var1: 1},
				{Perk: 8143, Var1: 2},
				{Perk: 8138, Var1: 3},
				{Perk: 8106, Var1: 4, Var2: 5, Var3: 6},
			}},
			Sub: match.PerkStyle{Style: 8300, Selections: []match.PerkSelection{
				{Perk: 8345, Var2: 7},
				{Perk: 8347, Var3: 8},
			}},
		},
		Stats: match.Stats{
			Kills:      7,
			Items:      [7]int{3020, 0, 0, 0, 0, 0, 3340},
			SpellCasts: [4]int{10, 20, 30, 4},
			Pings:      match.Pings{AllIn: 2, VisionCleared: 1},
			Win:        true,
		},
	}

	row := toStatsRow(42, item)
	if row.ParticipantRowID != 42 || row.Kills != 7 || !row.Win {
		t.Fatalf("unexpected counters: %+v", row)
	}
	if row.StatPerk0 != 5005 || row.StatPerk1 != 5008 || row.StatPerk2 != 5002 {
		t.Fatalf("unexpected stat perks: %d %d %d", row.StatPerk0, row.StatPerk1, row.StatPerk2)
	}
	if row.PerkPrimaryStyle != 8100 || row.PerkSubStyle != 8300 {
		t.Fatalf("unexpected styles: %d %d", row.PerkPrimaryStyle, row.PerkSubStyle)
	}
	if row.Perk3 != 8106 || row.Perk3Var3 != 6 || row.Perk4 != 8345 || row.Perk4Var2 != 7 || row.Perk5Var3 != 8 {
		t.Fatalf("unexpected rune slots: %+v", row)
	}
	if row.Item6 != 3340 || row.Spell4Casts != 4 || row.AllInPings != 2 || row.VisionClearedPings != 1 {
		t.Fatalf("unexpected flattened arrays: %+v", row)
	}
}

func TestGroupFrameEvents(t *testing.T) {
	t.Parallel()

	events := []timeline.Event{
		timeline.ItemEvent{Timestamp: 100, Action: timeline.KindItemPurchased, ItemID: 1055, ParticipantID: 1},
		timeline.Ignored{Timestamp: 150, Type: "PAUSE_END"},
		timeline.ChampionKill{
			Timestamp:               200,
			KillerID:                1,
			VictimID:                6,
			AssistingParticipantIDs: []int{2, 3},
			VictimDamageDealt:       []timeline.DamageInstance{{Name: "Ahri", MagicDamage: 120}},
			VictimDamageReceived:    []timeline.DamageInstance{{Name: "Zed", PhysicalDamage: 300}, {Name: "Lux", TrueDamage: 20}},
		},
		timeline.ItemEvent{Timestamp: 250, Action: timeline.KindItemSold, ItemID: 1055, ParticipantID: 1},
		timeline.ChampionKill{Timestamp: 300, KillerID: 7, VictimID: 2},
	}

	got := groupFrameEvents(9, events)
	if len(got.itemPurchased) != 1 || len(got.itemSold) != 1 || len(got.itemDestroyed) != 0 {
		t.Fatalf("unexpected item fan-out: purchased=%d sold=%d destroyed=%d", len(got.itemPurchased), len(got.itemSold), len(got.itemDestroyed))
	}
	if got.itemSold[0].SortIndex != 3 || got.itemSold[0].FrameID != 9 {
		t.Fatalf("expected upstream position to be kept, got=%+v", got.itemSold[0])
	}
	if got.ignored != 1 {
		t.Fatalf("expected one ignored event, got=%d", got.ignored)
	}
	if len(got.championKill) != 2 || got.championKill[0].SortIndex != 2 {
		t.Fatalf("unexpected champion kills: %+v", got.championKill)
	}
	if len(got.championKill[0].AssistingParticipantIDs) != 2 {
		t.Fatalf("expected assisting ids to be kept, got=%v", got.championKill[0].AssistingParticipantIDs)
	}
	recap, ok := got.recaps[2]
	if !ok || len(recap.dealt) != 1 || len(recap.received) != 2 {
		t.Fatalf("unexpected kill recap: %+v", got.recaps)
	}
	if _, ok := got.recaps[4]; ok {
		t.Fatalf("expected kill without damage lines to have no recap")
	}

	rows := toVictimDamageRows(77, recap.received)
	if rows[1].ChampionKillID != 77 || rows[1].SortIndex != 1 || rows[1].TrueDamage != 20 {
		t.Fatalf("unexpected damage rows: %+v", rows)
	}
}
