package riot

import (
	"errors"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	"github.com/riskibarqy/match-ingestion/internal/domain/timeline"
	"github.com/riskibarqy/match-ingestion/internal/usecase"
)

func TestValidator_ValidateMatch_MapsAggregate(t *testing.T) {
	t.Parallel()

	payload := sampleMatchPayload()
	info := payload["info"].(map[string]any)
	info["gameDuration"] = 1500
	info["gameEndTimestamp"] = 1700001500000

	got, err := NewValidator().ValidateMatch(mustMarshal(t, payload))
	if err != nil {
		t.Fatalf("validate match: %v", err)
	}

	if got.Match.ExternalID != "NA1_4242" {
		t.Fatalf("unexpected external id: %q", got.Match.ExternalID)
	}
	if got.Match.GameDuration != 1_500_000 {
		t.Fatalf("expected duration in milliseconds 1500000, got=%d", got.Match.GameDuration)
	}
	if got.Match.Version != (match.Version{Major: 13, Minor: 24, Patch: 550, Build: 1234}) {
		t.Fatalf("unexpected version: %+v", got.Match.Version)
	}
	if len(got.Participants) != 10 {
		t.Fatalf("expected 10 participants, got=%d", len(got.Participants))
	}
	first := got.Participants[0]
	if first.Stats.Pings != (match.Pings{}) {
		t.Fatalf("expected null pings to decode as zero, got=%+v", first.Stats.Pings)
	}
	if first.Perks.Primary.Style != 8000 || len(first.Perks.Primary.Selections) != 4 {
		t.Fatalf("unexpected primary style: %+v", first.Perks.Primary)
	}
	if first.Perks.Sub.Style != 8400 || len(first.Perks.Sub.Selections) != 2 {
		t.Fatalf("unexpected sub style: %+v", first.Perks.Sub)
	}
	if first.Perks.StatPerkSlots() != [3]int{5005, 5008, 5002} {
		t.Fatalf("unexpected stat perks: %+v", first.Perks.StatPerkSlots())
	}
	if first.RiotIDName != "Player1" {
		t.Fatalf("expected riotIdGameName to be preferred, got=%q", first.RiotIDName)
	}
	if first.Stats.Items[6] != 3340 {
		t.Fatalf("unexpected trinket slot: %+v", first.Stats.Items)
	}
	if len(got.Teams) != 2 || got.Teams[0].Bans[0].PickTurn != 1 {
		t.Fatalf("expected bans ordered by pick turn, got=%+v", got.Teams)
	}
	if !got.Teams[0].Baron.First || got.Teams[0].Baron.Kills != 1 {
		t.Fatalf("unexpected baron objective: %+v", got.Teams[0].Baron)
	}
}

func TestValidator_ValidateMatch_KeepsMillisecondsWithoutEndTimestamp(t *testing.T) {
	t.Parallel()

	payload := sampleMatchPayload()
	payload["info"].(map[string]any)["gameDuration"] = 1_500_000

	got, err := NewValidator().ValidateMatch(mustMarshal(t, payload))
	if err != nil {
		t.Fatalf("validate match: %v", err)
	}
	if got.Match.GameDuration != 1_500_000 {
		t.Fatalf("expected duration to be kept, got=%d", got.Match.GameDuration)
	}
}

func TestValidator_ValidateMatch_PrimaryStyleSelectionCount(t *testing.T) {
	t.Parallel()

	payload := sampleMatchPayload()
	participant := payload["info"].(map[string]any)["participants"].([]any)[0].(map[string]any)
	styles := participant["perks"].(map[string]any)["styles"].([]any)
	primary := styles[0].(map[string]any)
	primary["selections"] = primary["selections"].([]any)[:3]

	_, err := NewValidator().ValidateMatch(mustMarshal(t, payload))
	if !errors.Is(err, usecase.ErrSchema) {
		t.Fatalf("expected schema error, got=%v", err)
	}
	var schemaErr *usecase.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got=%T", err)
	}
	if schemaErr.Path != "info.participants[0].perks.styles[0].selections" {
		t.Fatalf("unexpected schema path: %q", schemaErr.Path)
	}
	if schemaErr.Reason != "must have exactly 4 selections, got 3" {
		t.Fatalf("unexpected schema reason: %q", schemaErr.Reason)
	}
}

func TestValidator_ValidateMatch_MissingRequiredField(t *testing.T) {
	t.Parallel()

	payload := sampleMatchPayload()
	participant := payload["info"].(map[string]any)["participants"].([]any)[3].(map[string]any)
	delete(participant, "championId")

	_, err := NewValidator().ValidateMatch(mustMarshal(t, payload))
	var schemaErr *usecase.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got=%v", err)
	}
	if schemaErr.Path != "info.participants[3].championId" || schemaErr.Reason != "is required" {
		t.Fatalf("unexpected schema error: %+v", schemaErr)
	}
}

func TestValidator_ValidateMatch_RejectsMalformedAndMistyped(t *testing.T) {
	t.Parallel()

	v := NewValidator()
	if _, err := v.ValidateMatch([]byte(`{"metadata":`)); !errors.Is(err, usecase.ErrSchema) {
		t.Fatalf("expected schema error for malformed json, got=%v", err)
	}

	payload := sampleMatchPayload()
	payload["info"].(map[string]any)["gameDuration"] = "long"
	if _, err := v.ValidateMatch(mustMarshal(t, payload)); !errors.Is(err, usecase.ErrSchema) {
		t.Fatalf("expected schema error for mistyped field, got=%v", err)
	}

	payload = sampleMatchPayload()
	payload["info"].(map[string]any)["participants"] = payload["info"].(map[string]any)["participants"].([]any)[:9]
	if _, err := v.ValidateMatch(mustMarshal(t, payload)); !errors.Is(err, usecase.ErrSchema) {
		t.Fatalf("expected schema error for short roster, got=%v", err)
	}
}

func TestValidator_ValidateTimeline_MapsEvents(t *testing.T) {
	t.Parallel()

	got, err := NewValidator().ValidateTimeline(mustMarshal(t, sampleTimelinePayload()))
	if err != nil {
		t.Fatalf("validate timeline: %v", err)
	}

	if got.MatchExternalID != "NA1_4242" || got.FrameInterval != 60000 || len(got.Frames) != 2 {
		t.Fatalf("unexpected timeline header: %+v", got)
	}
	participantFrames := got.Frames[0].ParticipantFrames
	if len(participantFrames) != 2 || participantFrames[0].ParticipantID != 1 || participantFrames[1].ParticipantID != 2 {
		t.Fatalf("expected participant frames ordered by id, got=%+v", participantFrames)
	}
	if participantFrames[1].DamageStats.TotalDamageDone != 900 {
		t.Fatalf("unexpected damage stats: %+v", participantFrames[1].DamageStats)
	}

	events := got.Frames[1].Events
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got=%d", len(events))
	}
	item, ok := events[0].(timeline.ItemEvent)
	if !ok || item.Kind() != timeline.KindItemPurchased || item.ItemID != 1055 {
		t.Fatalf("unexpected item event: %#v", events[0])
	}
	ignored, ok := events[1].(timeline.Ignored)
	if !ok || ignored.Type != "PAUSE_END" {
		t.Fatalf("expected ignored pause event, got=%#v", events[1])
	}
	if _, ok := events[2].(timeline.Ignored); !ok {
		t.Fatalf("expected unknown kind to be ignored, got=%#v", events[2])
	}
	kill, ok := events[3].(timeline.ChampionKill)
	if !ok {
		t.Fatalf("expected champion kill, got=%#v", events[3])
	}
	if len(kill.VictimDamageDealt) != 2 || len(kill.VictimDamageReceived) != 1 {
		t.Fatalf("unexpected victim damage: dealt=%d received=%d", len(kill.VictimDamageDealt), len(kill.VictimDamageReceived))
	}
	if kill.VictimDamageReceived[0].SpellName != "ahrir" || kill.Position != (timeline.Position{X: 100, Y: 200}) {
		t.Fatalf("unexpected champion kill mapping: %+v", kill)
	}

	counts := got.EventCounts()
	if counts[timeline.KindIgnored] != 2 || counts[timeline.KindChampionKill] != 1 {
		t.Fatalf("unexpected event counts: %+v", counts)
	}
}

func TestValidator_ValidateTimeline_RequiresKindFields(t *testing.T) {
	t.Parallel()

	payload := sampleTimelinePayload()
	frames := payload["info"].(map[string]any)["frames"].([]any)
	event := frames[1].(map[string]any)["events"].([]any)[3].(map[string]any)
	delete(event, "victimId")

	_, err := NewValidator().ValidateTimeline(mustMarshal(t, payload))
	var schemaErr *usecase.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got=%v", err)
	}
	if schemaErr.Path != "info.frames[1].events[3].victimId" {
		t.Fatalf("unexpected schema path: %q", schemaErr.Path)
	}
}

func TestValidator_ValidateTimeline_RejectsUnorderedFrames(t *testing.T) {
	t.Parallel()

	payload := sampleTimelinePayload()
	frames := payload["info"].(map[string]any)["frames"].([]any)
	frames[1].(map[string]any)["timestamp"] = 0

	_, err := NewValidator().ValidateTimeline(mustMarshal(t, payload))
	var schemaErr *usecase.SchemaError
	if !errors.As(err, &schemaErr) || schemaErr.Path != "info.frames[1].timestamp" {
		t.Fatalf("expected frame ordering schema error, got=%v", err)
	}
}

func mustMarshal(t *testing.T, value any) []byte {
	t.Helper()

	raw, err := sonic.Marshal(value)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return raw
}

func sampleMatchPayload() map[string]any {
	participants := make([]any, 0, 10)
	for idx := 1; idx <= 10; idx++ {
		teamID := 100
		if idx > 5 {
			teamID = 200
		}
		participants = append(participants, map[string]any{
			"participantId":  idx,
			"puuid":          "puuid-" + string(rune('a'+idx-1)),
			"summonerName":   "",
			"riotIdName":     "legacy",
			"riotIdGameName": "Player" + string(rune('0'+idx%10)),
			"riotIdTagline":  "NA1",
			"championId":     100 + idx,
			"teamId":         teamID,
			"teamPosition":   "TOP",
			"kills":          idx,
			"deaths":         1,
			"assists":        2,
			"item6":          3340,
			"win":            teamID == 100,
			"allInPings":     nil,
			"perks": map[string]any{
				"statPerks": map[string]any{"offense": 5005, "flex": 5008, "defense": 5002},
				"styles": []any{
					map[string]any{
						"description": "primaryStyle",
						"style":       8000,
						"selections": []any{
							map[string]any{"perk": 8005, "var1": 1, "var2": 0, "var3": 0},
							map[string]any{"perk": 9111, "var1": 2, "var2": 0, "var3": 0},
							map[string]any{"perk": 9104, "var1": 3, "var2": 0, "var3": 0},
							map[string]any{"perk": 8299, "var1": 4, "var2": 0, "var3": 0},
						},
					},
					map[string]any{
						"description": "subStyle",
						"style":       8400,
						"selections": []any{
							map[string]any{"perk": 8444, "var1": 5, "var2": 0, "var3": 0},
							map[string]any{"perk": 8453, "var1": 6, "var2": 0, "var3": 0},
						},
					},
				},
			},
		})
	}

	return map[string]any{
		"metadata": map[string]any{
			"dataVersion": "2",
			"matchId":     "NA1_4242",
		},
		"info": map[string]any{
			"gameCreation": 1700000000000,
			"gameDuration": 1_500_000,
			"gameId":       4242,
			"gameMode":     "CLASSIC",
			"gameType":     "MATCHED_GAME",
			"gameVersion":  "13.24.550.1234",
			"mapId":        11,
			"platformId":   "NA1",
			"queueId":      420,
			"participants": participants,
			"teams": []any{
				map[string]any{
					"teamId": 100,
					"win":    true,
					"bans": []any{
						map[string]any{"championId": 55, "pickTurn": 2},
						map[string]any{"championId": 22, "pickTurn": 1},
					},
					"objectives": map[string]any{
						"baron": map[string]any{"first": true, "kills": 1},
					},
				},
				map[string]any{"teamId": 200, "win": false},
			},
		},
	}
}

func sampleTimelinePayload() map[string]any {
	return map[string]any{
		"metadata": map[string]any{"matchId": "NA1_4242"},
		"info": map[string]any{
			"frameInterval": 60000,
			"frames": []any{
				map[string]any{
					"timestamp": 0,
					"participantFrames": map[string]any{
						"2": map[string]any{"participantId": 2, "totalGold": 500, "damageStats": map[string]any{"totalDamageDone": 900}},
						"1": map[string]any{"participantId": 1, "totalGold": 500},
					},
					"events": []any{},
				},
				map[string]any{
					"timestamp": 60000,
					"events": []any{
						map[string]any{"type": "ITEM_PURCHASED", "timestamp": 61000, "participantId": 1, "itemId": 1055},
						map[string]any{"type": "PAUSE_END", "timestamp": 61500},
						map[string]any{"type": "SOMETHING_NEW", "timestamp": 62000},
						map[string]any{
							"type":      "CHAMPION_KILL",
							"timestamp": 63000,
							"killerId":  1,
							"victimId":  6,
							"bounty":    300,
							"position":  map[string]any{"x": 100, "y": 200},
							"victimDamageDealt": []any{
								map[string]any{"basic": true, "name": "Ahri", "participantId": 6, "physicalDamage": 40, "type": "OTHER"},
								map[string]any{"basic": false, "name": "Ahri", "participantId": 6, "magicDamage": 120, "spellName": "ahriq", "type": "OTHER"},
							},
							"victimDamageReceived": []any{
								map[string]any{"basic": false, "name": "Ahri", "participantId": 1, "magicDamage": 300, "spellName": "ahrir", "type": "OTHER"},
							},
						},
					},
				},
			},
		},
	}
}
