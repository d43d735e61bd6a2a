package match

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	PerkStylePrimary = "primaryStyle"
	PerkStyleSub     = "subStyle"

	PrimarySelectionCount = 4
	SubSelectionCount     = 2
	StandardRosterSize    = 10
)

// Match is one completed game. Duration is always stored in milliseconds.
type Match struct {
	ID              int64
	ExternalID      string
	GameID          int64
	GameCreation    int64
	GameDuration    int64
	GameMode        string
	GameType        string
	MapID           int
	PlatformID      string
	QueueID         int
	GameVersion     string
	Version         Version
	IsFullyImported bool
}

func (m Match) CreatedAt() time.Time {
	return time.UnixMilli(m.GameCreation).UTC()
}

// IsTutorial reports modes that are never persisted.
func (m Match) IsTutorial() bool {
	return strings.Contains(strings.ToLower(m.GameMode), "tutorial")
}

type Version struct {
	Major int
	Minor int
	Patch int
	Build int
}

// ParseVersion splits a dotted client version. Missing or non-numeric parts are zero.
func ParseVersion(raw string) Version {
	var parts [4]int
	for idx, item := range strings.SplitN(strings.TrimSpace(raw), ".", 4) {
		value, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil {
			continue
		}
		parts[idx] = value
	}
	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2], Build: parts[3]}
}

// NormalizeDuration converts the upstream duration to milliseconds.
// Payloads that carry an end timestamp report seconds; older ones already report milliseconds.
func NormalizeDuration(raw int64, hasEndTimestamp bool) int64 {
	if hasEndTimestamp {
		return raw * 1000
	}
	return raw
}

// Participant is one seat of a match.
type Participant struct {
	ID                 int64
	MatchID            int64
	ParticipantID      int
	PUUID              string
	SummonerID         string
	SummonerName       string
	RiotIDName         string
	RiotIDTagline      string
	ChampionID         int
	ChampExperience    int
	Summoner1ID        int
	Summoner1Casts     int
	Summoner2ID        int
	Summoner2Casts     int
	TeamID             int
	Lane               string
	Role               string
	IndividualPosition string
	TeamPosition       string
	Tier               string
	Rank               string
	Perks              Perks
	Stats              Stats
}

func (p Participant) DisplayName() string {
	if strings.TrimSpace(p.SummonerName) != "" {
		return p.SummonerName
	}
	return p.RiotIDName
}

func (p Participant) SimpleName() string {
	return SimplifyName(p.DisplayName())
}

func (p Participant) HasRank() bool {
	return strings.TrimSpace(p.Tier) != ""
}

// SimplifyName lowercases a display name and drops all whitespace for lookups.
func SimplifyName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

type Perks struct {
	StatPerks map[string]int
	Primary   PerkStyle
	Sub       PerkStyle
}

type PerkStyle struct {
	Style      int
	Selections []PerkSelection
}

type PerkSelection struct {
	Perk int
	Var1 int
	Var2 int
	Var3 int
}

// StatPerkSlots orders stat perks as offense, flex, defense. Absent keys are zero.
func (p Perks) StatPerkSlots() [3]int {
	return [3]int{
		p.StatPerks["offense"],
		p.StatPerks["flex"],
		p.StatPerks["defense"],
	}
}

// Slots flattens the four primary and two sub selections into six rune slots.
func (p Perks) Slots() [6]PerkSelection {
	var out [6]PerkSelection
	for idx := 0; idx < PrimarySelectionCount && idx < len(p.Primary.Selections); idx++ {
		out[idx] = p.Primary.Selections[idx]
	}
	for idx := 0; idx < SubSelectionCount && idx < len(p.Sub.Selections); idx++ {
		out[PrimarySelectionCount+idx] = p.Sub.Selections[idx]
	}
	return out
}

// Stats holds the flat per-participant counters. Absent upstream counters are zero.
type Stats struct {
	Kills                          int
	Deaths                         int
	Assists                        int
	ChampLevel                     int
	DoubleKills                    int
	TripleKills                    int
	QuadraKills                    int
	PentaKills                     int
	UnrealKills                    int
	KillingSprees                  int
	LargestKillingSpree            int
	LargestMultiKill               int
	LargestCriticalStrike          int
	LongestTimeSpentLiving         int
	FirstBloodKill                 bool
	FirstBloodAssist               bool
	FirstTowerKill                 bool
	FirstTowerAssist               bool
	GoldEarned                     int
	GoldSpent                      int
	TotalDamageDealt               int
	TotalDamageDealtToChampions    int
	MagicDamageDealt               int
	MagicDamageDealtToChampions    int
	PhysicalDamageDealt            int
	PhysicalDamageDealtToChampions int
	TrueDamageDealt                int
	TrueDamageDealtToChampions     int
	TotalDamageTaken               int
	MagicDamageTaken               int
	PhysicalDamageTaken            int
	TrueDamageTaken                int
	DamageSelfMitigated            int
	DamageDealtToBuildings         int
	DamageDealtToObjectives        int
	DamageDealtToTurrets           int
	TotalHeal                      int
	TotalHealsOnTeammates          int
	TotalDamageShieldedOnTeammates int
	TotalUnitsHealed               int
	TimeCCingOthers                int
	TotalTimeCCDealt               int
	TotalTimeSpentDead             int
	TimePlayed                     int
	TotalMinionsKilled             int
	NeutralMinionsKilled           int
	TurretKills                    int
	TurretTakedowns                int
	TurretsLost                    int
	InhibitorKills                 int
	InhibitorTakedowns             int
	InhibitorsLost                 int
	NexusKills                     int
	NexusTakedowns                 int
	NexusLost                      int
	BaronKills                     int
	DragonKills                    int
	ObjectivesStolen               int
	ObjectivesStolenAssists        int
	VisionScore                    int
	VisionWardsBoughtInGame        int
	SightWardsBoughtInGame         int
	WardsPlaced                    int
	WardsKilled                    int
	DetectorWardsPlaced            int
	ConsumablesPurchased           int
	ItemsPurchased                 int
	Items                          [7]int
	SpellCasts                     [4]int
	BountyLevel                    int
	ChampionTransform              int
	Pings                          Pings
	GameEndedInEarlySurrender      bool
	GameEndedInSurrender           bool
	TeamEarlySurrendered           bool
	Win                            bool
}

type Pings struct {
	AllIn         int
	AssistMe      int
	Bait          int
	Basic         int
	Command       int
	Danger        int
	EnemyMissing  int
	EnemyVision   int
	GetBack       int
	Hold          int
	NeedVision    int
	OnMyWay       int
	Push          int
	VisionCleared int
}

type Objective struct {
	First bool
	Kills int
}

// Team is one side of a match with its objective tallies and bans.
type Team struct {
	ID         int64
	MatchID    int64
	TeamID     int
	Win        bool
	Baron      Objective
	Champion   Objective
	Dragon     Objective
	Inhibitor  Objective
	RiftHerald Objective
	Tower      Objective
	Bans       []Ban
}

type Ban struct {
	ChampionID int
	PickTurn   int
}

// Aggregate is a validated match with everything it owns.
type Aggregate struct {
	Match        Match
	Participants []Participant
	Teams        []Team
}

type ParticipantRank struct {
	ParticipantID int64
	Tier          string
	Rank          string
}
