package riot

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	"github.com/riskibarqy/match-ingestion/internal/domain/timeline"
	"github.com/riskibarqy/match-ingestion/internal/usecase"
)

const (
	tagSelectionCount  = "selection_count"
	tagStylePair       = "style_pair"
	tagRequiredForKind = "required_for_kind"
)

// Validator decodes untrusted match-v5 payloads into domain records.
// Every failure is a *usecase.SchemaError carrying the JSON path of the first offending field.
type Validator struct {
	validate *validator.Validate
}

var _ usecase.PayloadValidator = (*Validator)(nil)

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterStructValidation(validatePerks, perksPayload{})
	v.RegisterStructValidation(validatePerkStyle, perkStylePayload{})
	v.RegisterStructValidation(validateEvent, eventPayload{})
	return &Validator{validate: v}
}

func (v *Validator) ValidateMatch(raw []byte) (match.Aggregate, error) {
	var payload matchPayload
	if err := v.decode(raw, &payload); err != nil {
		return match.Aggregate{}, err
	}
	return payload.toAggregate(), nil
}

func (v *Validator) ValidateTimeline(raw []byte) (timeline.Timeline, error) {
	var payload timelinePayload
	if err := v.decode(raw, &payload); err != nil {
		return timeline.Timeline{}, err
	}

	frames := payload.Info.Frames
	for idx := 1; idx < len(frames); idx++ {
		if *frames[idx].Timestamp <= *frames[idx-1].Timestamp {
			return timeline.Timeline{}, &usecase.SchemaError{
				Path:   fmt.Sprintf("info.frames[%d].timestamp", idx),
				Reason: "frame timestamps must increase strictly",
			}
		}
	}
	return payload.toTimeline(), nil
}

func (v *Validator) decode(raw []byte, target any) error {
	if len(raw) == 0 || !sonic.Valid(raw) {
		return &usecase.SchemaError{Path: "$", Reason: "payload is not valid json"}
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return &usecase.SchemaError{Path: "$", Reason: "type mismatch: " + abbreviateBody(err.Error(), 240)}
	}
	if err := v.validate.Struct(target); err != nil {
		return toSchemaError(err)
	}
	return nil
}

func toSchemaError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &usecase.SchemaError{Reason: err.Error()}
	}

	first := fieldErrs[0]
	return &usecase.SchemaError{
		Path:   trimRootNamespace(first.Namespace()),
		Reason: describeFieldError(first),
	}
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must have exactly %s items, got %d", fe.Param(), lengthOf(fe.Value()))
	case tagSelectionCount:
		return fmt.Sprintf("must have exactly %s selections, got %d", fe.Param(), lengthOf(fe.Value()))
	case tagStylePair:
		return "must contain exactly one primaryStyle and one subStyle"
	case tagRequiredForKind:
		return fmt.Sprintf("is required for %s events", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %v", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	}
}

func validatePerks(sl validator.StructLevel) {
	perks := sl.Current().Interface().(perksPayload)
	var primary, sub int
	for _, style := range perks.Styles {
		switch style.Description {
		case match.PerkStylePrimary:
			primary++
		case match.PerkStyleSub:
			sub++
		}
	}
	if primary != 1 || sub != 1 {
		sl.ReportError(perks.Styles, "styles", "Styles", tagStylePair, "")
	}
}

func validatePerkStyle(sl validator.StructLevel) {
	style := sl.Current().Interface().(perkStylePayload)
	want := 0
	switch style.Description {
	case match.PerkStylePrimary:
		want = match.PrimarySelectionCount
	case match.PerkStyleSub:
		want = match.SubSelectionCount
	default:
		return
	}
	if len(style.Selections) != want {
		sl.ReportError(style.Selections, "selections", "Selections", tagSelectionCount, strconv.Itoa(want))
	}
}

type eventField struct {
	json  string
	name  string
	value func(eventPayload) *int
}

var (
	fieldParticipant = eventField{json: "participantId", name: "ParticipantID", value: func(e eventPayload) *int { return e.ParticipantID }}
	fieldCreator     = eventField{json: "creatorId", name: "CreatorID", value: func(e eventPayload) *int { return e.CreatorID }}
	fieldKiller      = eventField{json: "killerId", name: "KillerID", value: func(e eventPayload) *int { return e.KillerID }}
	fieldVictim      = eventField{json: "victimId", name: "VictimID", value: func(e eventPayload) *int { return e.VictimID }}
	fieldTeam        = eventField{json: "teamId", name: "TeamID", value: func(e eventPayload) *int { return e.TeamID }}
	fieldItem        = eventField{json: "itemId", name: "ItemID", value: func(e eventPayload) *int { return e.ItemID }}
	fieldBefore      = eventField{json: "beforeId", name: "BeforeID", value: func(e eventPayload) *int { return e.BeforeID }}
	fieldAfter       = eventField{json: "afterId", name: "AfterID", value: func(e eventPayload) *int { return e.AfterID }}
	fieldSkillSlot   = eventField{json: "skillSlot", name: "SkillSlot", value: func(e eventPayload) *int { return e.SkillSlot }}
	fieldLevel       = eventField{json: "level", name: "Level", value: func(e eventPayload) *int { return e.Level }}
	fieldWinningTeam = eventField{json: "winningTeam", name: "WinningTeam", value: func(e eventPayload) *int { return e.WinningTeam }}
)

// requiredEventFields lists the identifiers each stored kind cannot do without.
var requiredEventFields = map[timeline.EventKind][]eventField{
	timeline.KindWardPlaced:           {fieldCreator},
	timeline.KindWardKill:             {fieldKiller},
	timeline.KindItemPurchased:        {fieldParticipant, fieldItem},
	timeline.KindItemDestroyed:        {fieldParticipant, fieldItem},
	timeline.KindItemSold:             {fieldParticipant, fieldItem},
	timeline.KindItemUndo:             {fieldParticipant, fieldBefore, fieldAfter},
	timeline.KindSkillLevelUp:         {fieldParticipant, fieldSkillSlot},
	timeline.KindLevelUp:              {fieldParticipant, fieldLevel},
	timeline.KindChampionSpecialKill:  {fieldKiller},
	timeline.KindTurretPlateDestroyed: {fieldTeam},
	timeline.KindEliteMonsterKill:     {fieldKiller},
	timeline.KindBuildingKill:         {fieldTeam},
	timeline.KindGameEnd:              {fieldWinningTeam},
	timeline.KindChampionKill:         {fieldKiller, fieldVictim},
}

func validateEvent(sl validator.StructLevel) {
	event := sl.Current().Interface().(eventPayload)
	for _, field := range requiredEventFields[timeline.EventKind(event.Type)] {
		if field.value(event) == nil {
			sl.ReportError(nil, field.json, field.name, tagRequiredForKind, event.Type)
			return
		}
	}
}

func (p matchPayload) toAggregate() match.Aggregate {
	info := p.Info
	hasEnd := info.GameEndTimestamp != nil && *info.GameEndTimestamp != 0

	out := match.Aggregate{
		Match: match.Match{
			ExternalID:      p.Metadata.MatchID,
			GameID:          *info.GameID,
			GameCreation:    *info.GameCreation,
			GameDuration:    match.NormalizeDuration(*info.GameDuration, hasEnd),
			GameMode:        info.GameMode,
			GameType:        info.GameType,
			MapID:           *info.MapID,
			PlatformID:      info.PlatformID,
			QueueID:         *info.QueueID,
			GameVersion:     info.GameVersion,
			Version:         match.ParseVersion(info.GameVersion),
			IsFullyImported: true,
		},
		Participants: make([]match.Participant, 0, len(info.Participants)),
		Teams:        make([]match.Team, 0, len(info.Teams)),
	}

	for _, item := range info.Participants {
		out.Participants = append(out.Participants, item.toParticipant())
	}
	for _, item := range info.Teams {
		out.Teams = append(out.Teams, item.toTeam())
	}
	return out
}

func (p participantPayload) toParticipant() match.Participant {
	riotName := p.RiotIDGameName
	if riotName == "" {
		riotName = p.RiotIDName
	}

	return match.Participant{
		ParticipantID:      *p.ParticipantID,
		PUUID:              p.PUUID,
		SummonerID:         p.SummonerID,
		SummonerName:       p.SummonerName,
		RiotIDName:         riotName,
		RiotIDTagline:      p.RiotIDTagline,
		ChampionID:         *p.ChampionID,
		ChampExperience:    p.ChampExperience,
		Summoner1ID:        p.Summoner1ID,
		Summoner1Casts:     p.Summoner1Casts,
		Summoner2ID:        p.Summoner2ID,
		Summoner2Casts:     p.Summoner2Casts,
		TeamID:             *p.TeamID,
		Lane:               p.Lane,
		Role:               p.Role,
		IndividualPosition: p.IndividualPosition,
		TeamPosition:       p.TeamPosition,
		Perks:              p.Perks.toPerks(),
		Stats:              p.toStats(),
	}
}

func (p perksPayload) toPerks() match.Perks {
	out := match.Perks{StatPerks: make(map[string]int, len(p.StatPerks))}
	for key, value := range p.StatPerks {
		out.StatPerks[key] = value
	}
	for _, style := range p.Styles {
		mapped := match.PerkStyle{Style: *style.Style, Selections: make([]match.PerkSelection, 0, len(style.Selections))}
		for _, selection := range style.Selections {
			mapped.Selections = append(mapped.Selections, match.PerkSelection{
				Perk: *selection.Perk,
				Var1: selection.Var1,
				Var2: selection.Var2,
				Var3: selection.Var3,
			})
		}
		switch style.Description {
		case match.PerkStylePrimary:
			out.Primary = mapped
		case match.PerkStyleSub:
			out.Sub = mapped
		}
	}
	return out
}

func (p participantPayload) toStats() match.Stats {
	return match.Stats{
		Kills:                          p.Kills,
		Deaths:                         p.Deaths,
		Assists:                        p.Assists,
		ChampLevel:                     p.ChampLevel,
		DoubleKills:                    p.DoubleKills,
		TripleKills:                    p.TripleKills,
		QuadraKills:                    p.QuadraKills,
		PentaKills:                     p.PentaKills,
		UnrealKills:                    p.UnrealKills,
		KillingSprees:                  p.KillingSprees,
		LargestKillingSpree:            p.LargestKillingSpree,
		LargestMultiKill:               p.LargestMultiKill,
		LargestCriticalStrike:          p.LargestCriticalStrike,
		LongestTimeSpentLiving:         p.LongestTimeSpentLiving,
		FirstBloodKill:                 p.FirstBloodKill,
		FirstBloodAssist:               p.FirstBloodAssist,
		FirstTowerKill:                 p.FirstTowerKill,
		FirstTowerAssist:               p.FirstTowerAssist,
		GoldEarned:                     p.GoldEarned,
		GoldSpent:                      p.GoldSpent,
		TotalDamageDealt:               p.TotalDamageDealt,
		TotalDamageDealtToChampions:    p.TotalDamageDealtToChampions,
		MagicDamageDealt:               p.MagicDamageDealt,
		MagicDamageDealtToChampions:    p.MagicDamageDealtToChampions,
		PhysicalDamageDealt:            p.PhysicalDamageDealt,
		PhysicalDamageDealtToChampions: p.PhysicalDamageDealtToChampions,
		TrueDamageDealt:                p.TrueDamageDealt,
		TrueDamageDealtToChampions:     p.TrueDamageDealtToChampions,
		TotalDamageTaken:               p.TotalDamageTaken,
		MagicDamageTaken:               p.MagicDamageTaken,
		PhysicalDamageTaken:            p.PhysicalDamageTaken,
		TrueDamageTaken:                p.TrueDamageTaken,
		DamageSelfMitigated:            p.DamageSelfMitigated,
		DamageDealtToBuildings:         p.DamageDealtToBuildings,
		DamageDealtToObjectives:        p.DamageDealtToObjectives,
		DamageDealtToTurrets:           p.DamageDealtToTurrets,
		TotalHeal:                      p.TotalHeal,
		TotalHealsOnTeammates:          p.TotalHealsOnTeammates,
		TotalDamageShieldedOnTeammates: p.TotalDamageShieldedOnTeammates,
		TotalUnitsHealed:               p.TotalUnitsHealed,
		TimeCCingOthers:                p.TimeCCingOthers,
		TotalTimeCCDealt:               p.TotalTimeCCDealt,
		TotalTimeSpentDead:             p.TotalTimeSpentDead,
		TimePlayed:                     p.TimePlayed,
		TotalMinionsKilled:             p.TotalMinionsKilled,
		NeutralMinionsKilled:           p.NeutralMinionsKilled,
		TurretKills:                    p.TurretKills,
		TurretTakedowns:                p.TurretTakedowns,
		TurretsLost:                    p.TurretsLost,
		InhibitorKills:                 p.InhibitorKills,
		InhibitorTakedowns:             p.InhibitorTakedowns,
		InhibitorsLost:                 p.InhibitorsLost,
		NexusKills:                     p.NexusKills,
		NexusTakedowns:                 p.NexusTakedowns,
		NexusLost:                      p.NexusLost,
		BaronKills:                     p.BaronKills,
		DragonKills:                    p.DragonKills,
		ObjectivesStolen:               p.ObjectivesStolen,
		ObjectivesStolenAssists:        p.ObjectivesStolenAssists,
		VisionScore:                    p.VisionScore,
		VisionWardsBoughtInGame:        p.VisionWardsBoughtInGame,
		SightWardsBoughtInGame:         p.SightWardsBoughtInGame,
		WardsPlaced:                    p.WardsPlaced,
		WardsKilled:                    p.WardsKilled,
		DetectorWardsPlaced:            p.DetectorWardsPlaced,
		ConsumablesPurchased:           p.ConsumablesPurchased,
		ItemsPurchased:                 p.ItemsPurchased,
		Items:                          [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6},
		SpellCasts:                     [4]int{p.Spell1Casts, p.Spell2Casts, p.Spell3Casts, p.Spell4Casts},
		BountyLevel:                    p.BountyLevel,
		ChampionTransform:              p.ChampionTransform,
		GameEndedInEarlySurrender:      p.GameEndedInEarlySurrender,
		GameEndedInSurrender:           p.GameEndedInSurrender,
		TeamEarlySurrendered:           p.TeamEarlySurrendered,
		Win:                            p.Win,
		Pings: match.Pings{
			AllIn:         intOrZero(p.AllInPings),
			AssistMe:      intOrZero(p.AssistMePings),
			Bait:          intOrZero(p.BaitPings),
			Basic:         intOrZero(p.BasicPings),
			Command:       intOrZero(p.CommandPings),
			Danger:        intOrZero(p.DangerPings),
			EnemyMissing:  intOrZero(p.EnemyMissingPings),
			EnemyVision:   intOrZero(p.EnemyVisionPings),
			GetBack:       intOrZero(p.GetBackPings),
			Hold:          intOrZero(p.HoldPings),
			NeedVision:    intOrZero(p.NeedVisionPings),
			OnMyWay:       intOrZero(p.OnMyWayPings),
			Push:          intOrZero(p.PushPings),
			VisionCleared: intOrZero(p.VisionClearedPings),
		},
	}
}

func (p teamPayload) toTeam() match.Team {
	bans := make([]match.Ban, 0, len(p.Bans))
	for _, ban := range p.Bans {
		bans = append(bans, match.Ban{ChampionID: ban.ChampionID, PickTurn: ban.PickTurn})
	}
	sort.SliceStable(bans, func(i, j int) bool { return bans[i].PickTurn < bans[j].PickTurn })

	return match.Team{
		TeamID:     *p.TeamID,
		Win:        p.Win,
		Baron:      match.Objective(p.Objectives.Baron),
		Champion:   match.Objective(p.Objectives.Champion),
		Dragon:     match.Objective(p.Objectives.Dragon),
		Inhibitor:  match.Objective(p.Objectives.Inhibitor),
		RiftHerald: match.Objective(p.Objectives.RiftHerald),
		Tower:      match.Objective(p.Objectives.Tower),
		Bans:       bans,
	}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// trimRootNamespace drops the Go type name validator puts in front of every namespace.
func trimRootNamespace(namespace string) string {
	if idx := strings.IndexByte(namespace, '.'); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func lengthOf(value any) int {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return rv.Len()
	default:
		return 0
	}
}

func intOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
