package timeline

// Timeline is the frame-by-frame record of a match.
type Timeline struct {
	MatchExternalID string
	FrameInterval   int64
	Frames          []Frame
}

// Frame holds one snapshot per participant plus the events of its interval in upstream order.
type Frame struct {
	Timestamp         int64
	ParticipantFrames []ParticipantFrame
	Events            []Event
}

type Position struct {
	X int
	Y int
}

type ParticipantFrame struct {
	ParticipantID            int
	CurrentGold              int
	GoldPerSecond            int
	TotalGold                int
	Level                    int
	XP                       int
	MinionsKilled            int
	JungleMinionsKilled      int
	TimeEnemySpentControlled int
	Position                 Position
	ChampionStats            ChampionStats
	DamageStats              DamageStats
}

type ChampionStats struct {
	AbilityHaste         int
	AbilityPower         int
	Armor                int
	ArmorPen             int
	ArmorPenPercent      int
	AttackDamage         int
	AttackSpeed          int
	BonusArmorPenPercent int
	BonusMagicPenPercent int
	CCReduction          int
	CooldownReduction    int
	Health               int
	HealthMax            int
	HealthRegen          int
	Lifesteal            int
	MagicPen             int
	MagicPenPercent      int
	MagicResist          int
	MovementSpeed        int
	Omnivamp             int
	PhysicalVamp         int
	Power                int
	PowerMax             int
	PowerRegen           int
	SpellVamp            int
}

type DamageStats struct {
	MagicDamageDone               int
	MagicDamageDoneToChampions    int
	MagicDamageTaken              int
	PhysicalDamageDone            int
	PhysicalDamageDoneToChampions int
	PhysicalDamageTaken           int
	TotalDamageDone               int
	TotalDamageDoneToChampions    int
	TotalDamageTaken              int
	TrueDamageDone                int
	TrueDamageDoneToChampions     int
	TrueDamageTaken               int
}

// EventCounts tallies events per kind, used for logging what a write produced.
func (t Timeline) EventCounts() map[EventKind]int {
	out := make(map[EventKind]int)
	for _, frame := range t.Frames {
		for _, event := range frame.Events {
			out[event.Kind()]++
		}
	}
	return out
}
