package timeline

type EventKind string

const (
	KindWardPlaced           EventKind = "WARD_PLACED"
	KindWardKill             EventKind = "WARD_KILL"
	KindItemPurchased        EventKind = "ITEM_PURCHASED"
	KindItemDestroyed        EventKind = "ITEM_DESTROYED"
	KindItemSold             EventKind = "ITEM_SOLD"
	KindItemUndo             EventKind = "ITEM_UNDO"
	KindSkillLevelUp         EventKind = "SKILL_LEVEL_UP"
	KindLevelUp              EventKind = "LEVEL_UP"
	KindChampionSpecialKill  EventKind = "CHAMPION_SPECIAL_KILL"
	KindTurretPlateDestroyed EventKind = "TURRET_PLATE_DESTROYED"
	KindEliteMonsterKill     EventKind = "ELITE_MONSTER_KILL"
	KindBuildingKill         EventKind = "BUILDING_KILL"
	KindGameEnd              EventKind = "GAME_END"
	KindChampionKill         EventKind = "CHAMPION_KILL"
	KindIgnored              EventKind = "IGNORED"
)

// Event is the closed set of timeline events. Kinds that are not stored decode to Ignored.
type Event interface {
	Kind() EventKind
	At() int64
	isEvent()
}

type WardPlaced struct {
	Timestamp int64
	CreatorID int
	WardType  string
}

type WardKill struct {
	Timestamp int64
	KillerID  int
	WardType  string
}

// ItemEvent covers purchased, destroyed and sold items; Action carries the kind.
type ItemEvent struct {
	Timestamp     int64
	Action        EventKind
	ItemID        int
	ParticipantID int
}

type ItemUndo struct {
	Timestamp     int64
	ParticipantID int
	BeforeID      int
	AfterID       int
	GoldGain      int
}

type SkillLevelUp struct {
	Timestamp     int64
	ParticipantID int
	LevelUpType   string
	SkillSlot     int
}

type LevelUp struct {
	Timestamp     int64
	ParticipantID int
	Level         int
}

type ChampionSpecialKill struct {
	Timestamp               int64
	KillerID                int
	KillType                string
	MultiKillLength         int
	AssistingParticipantIDs []int
	Position                Position
}

type TurretPlateDestroyed struct {
	Timestamp int64
	KillerID  int
	LaneType  string
	TeamID    int
	Position  Position
}

type EliteMonsterKill struct {
	Timestamp      int64
	KillerID       int
	KillerTeamID   int
	Bounty         int
	MonsterType    string
	MonsterSubType string
	Position       Position
}

type BuildingKill struct {
	Timestamp    int64
	KillerID     int
	TeamID       int
	Bounty       int
	BuildingType string
	LaneType     string
	TowerType    string
	Position     Position
}

type GameEnd struct {
	Timestamp     int64
	GameID        int64
	RealTimestamp int64
	WinningTeam   int
}

type ChampionKill struct {
	Timestamp               int64
	KillerID                int
	VictimID                int
	Bounty                  int
	ShutdownBounty          int
	KillStreakLength        int
	AssistingParticipantIDs []int
	Position                Position
	VictimDamageDealt       []DamageInstance
	VictimDamageReceived    []DamageInstance
}

// DamageInstance is one line of a kill recap.
type DamageInstance struct {
	Basic          bool
	MagicDamage    int
	PhysicalDamage int
	TrueDamage     int
	Name           string
	ParticipantID  int
	SpellName      string
	SpellSlot      int
	Type           string
}

// Ignored keeps the upstream type of an event that is accepted but not stored.
type Ignored struct {
	Timestamp int64
	Type      string
}

func (e WardPlaced) Kind() EventKind           { return KindWardPlaced }
func (e WardKill) Kind() EventKind             { return KindWardKill }
func (e ItemEvent) Kind() EventKind            { return e.Action }
func (e ItemUndo) Kind() EventKind             { return KindItemUndo }
func (e SkillLevelUp) Kind() EventKind         { return KindSkillLevelUp }
func (e LevelUp) Kind() EventKind              { return KindLevelUp }
func (e ChampionSpecialKill) Kind() EventKind  { return KindChampionSpecialKill }
func (e TurretPlateDestroyed) Kind() EventKind { return KindTurretPlateDestroyed }
func (e EliteMonsterKill) Kind() EventKind     { return KindEliteMonsterKill }
func (e BuildingKill) Kind() EventKind         { return KindBuildingKill }
func (e GameEnd) Kind() EventKind              { return KindGameEnd }
func (e ChampionKill) Kind() EventKind         { return KindChampionKill }
func (e Ignored) Kind() EventKind              { return KindIgnored }

func (e WardPlaced) At() int64           { return e.Timestamp }
func (e WardKill) At() int64             { return e.Timestamp }
func (e ItemEvent) At() int64            { return e.Timestamp }
func (e ItemUndo) At() int64             { return e.Timestamp }
func (e SkillLevelUp) At() int64         { return e.Timestamp }
func (e LevelUp) At() int64              { return e.Timestamp }
func (e ChampionSpecialKill) At() int64  { return e.Timestamp }
func (e TurretPlateDestroyed) At() int64 { return e.Timestamp }
func (e EliteMonsterKill) At() int64     { return e.Timestamp }
func (e BuildingKill) At() int64         { return e.Timestamp }
func (e GameEnd) At() int64              { return e.Timestamp }
func (e ChampionKill) At() int64         { return e.Timestamp }
func (e Ignored) At() int64              { return e.Timestamp }

func (WardPlaced) isEvent()           {}
func (WardKill) isEvent()             {}
func (ItemEvent) isEvent()            {}
func (ItemUndo) isEvent()             {}
func (SkillLevelUp) isEvent()         {}
func (LevelUp) isEvent()              {}
func (ChampionSpecialKill) isEvent()  {}
func (TurretPlateDestroyed) isEvent() {}
func (EliteMonsterKill) isEvent()     {}
func (BuildingKill) isEvent()         {}
func (GameEnd) isEvent()              {}
func (ChampionKill) isEvent()         {}
func (Ignored) isEvent()              {}
