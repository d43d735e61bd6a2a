package riot

type timelinePayload struct {
	Metadata *timelineMetadataPayload `json:"metadata" validate:"required"`
	Info     *timelineInfoPayload     `json:"info" validate:"required"`
}

type timelineMetadataPayload struct {
	MatchID string `json:"matchId" validate:"required"`
}

type timelineInfoPayload struct {
	FrameInterval *int64         `json:"frameInterval" validate:"required,gt=0"`
	Frames        []framePayload `json:"frames" validate:"required,dive"`
}

type framePayload struct {
	Timestamp         *int64                             `json:"timestamp" validate:"required,gte=0"`
	ParticipantFrames map[string]participantFramePayload `json:"participantFrames" validate:"omitempty,dive"`
	Events            []eventPayload                     `json:"events" validate:"dive"`
}

type positionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type participantFramePayload struct {
	ParticipantID            *int                 `json:"participantId" validate:"required,min=1"`
	CurrentGold              int                  `json:"currentGold"`
	GoldPerSecond            int                  `json:"goldPerSecond"`
	TotalGold                int                  `json:"totalGold"`
	Level                    int                  `json:"level"`
	XP                       int                  `json:"xp"`
	MinionsKilled            int                  `json:"minionsKilled"`
	JungleMinionsKilled      int                  `json:"jungleMinionsKilled"`
	TimeEnemySpentControlled int                  `json:"timeEnemySpentControlled"`
	Position                 positionPayload      `json:"position"`
	ChampionStats            championStatsPayload `json:"championStats"`
	DamageStats              damageStatsPayload   `json:"damageStats"`
}

type championStatsPayload struct {
	AbilityHaste         int `json:"abilityHaste"`
	AbilityPower         int `json:"abilityPower"`
	Armor                int `json:"armor"`
	ArmorPen             int `json:"armorPen"`
	ArmorPenPercent      int `json:"armorPenPercent"`
	AttackDamage         int `json:"attackDamage"`
	AttackSpeed          int `json:"attackSpeed"`
	BonusArmorPenPercent int `json:"bonusArmorPenPercent"`
	BonusMagicPenPercent int `json:"bonusMagicPenPercent"`
	CCReduction          int `json:"ccReduction"`
	CooldownReduction    int `json:"cooldownReduction"`
	Health               int `json:"health"`
	HealthMax            int `json:"healthMax"`
	HealthRegen          int `json:"healthRegen"`
	Lifesteal            int `json:"lifesteal"`
	MagicPen             int `json:"magicPen"`
	MagicPenPercent      int `json:"magicPenPercent"`
	MagicResist          int `json:"magicResist"`
	MovementSpeed        int `json:"movementSpeed"`
	Omnivamp             int `json:"omnivamp"`
	PhysicalVamp         int `json:"physicalVamp"`
	Power                int `json:"power"`
	PowerMax             int `json:"powerMax"`
	PowerRegen           int `json:"powerRegen"`
	SpellVamp            int `json:"spellVamp"`
}

type damageStatsPayload struct {
	MagicDamageDone               int `json:"magicDamageDone"`
	MagicDamageDoneToChampions    int `json:"magicDamageDoneToChampions"`
	MagicDamageTaken              int `json:"magicDamageTaken"`
	PhysicalDamageDone            int `json:"physicalDamageDone"`
	PhysicalDamageDoneToChampions int `json:"physicalDamageDoneToChampions"`
	PhysicalDamageTaken           int `json:"physicalDamageTaken"`
	TotalDamageDone               int `json:"totalDamageDone"`
	TotalDamageDoneToChampions    int `json:"totalDamageDoneToChampions"`
	TotalDamageTaken              int `json:"totalDamageTaken"`
	TrueDamageDone                int `json:"trueDamageDone"`
	TrueDamageDoneToChampions     int `json:"trueDamageDoneToChampions"`
	TrueDamageTaken               int `json:"trueDamageTaken"`
}

// eventPayload is the flat upstream event shape; which fields are present depends on Type.
type eventPayload struct {
	Type                    string                  `json:"type" validate:"required"`
	Timestamp               *int64                  `json:"timestamp" validate:"required,gte=0"`
	ParticipantID           *int                    `json:"participantId"`
	CreatorID               *int                    `json:"creatorId"`
	KillerID                *int                    `json:"killerId"`
	VictimID                *int                    `json:"victimId"`
	TeamID                  *int                    `json:"teamId"`
	ItemID                  *int                    `json:"itemId"`
	BeforeID                *int                    `json:"beforeId"`
	AfterID                 *int                    `json:"afterId"`
	SkillSlot               *int                    `json:"skillSlot"`
	Level                   *int                    `json:"level"`
	WinningTeam             *int                    `json:"winningTeam"`
	KillType                string                  `json:"killType"`
	LaneType                string                  `json:"laneType"`
	MonsterType             string                  `json:"monsterType"`
	BuildingType            string                  `json:"buildingType"`
	WardType                string                  `json:"wardType"`
	LevelUpType             string                  `json:"levelUpType"`
	MonsterSubType          string                  `json:"monsterSubType"`
	TowerType               string                  `json:"towerType"`
	GoldGain                int                     `json:"goldGain"`
	Bounty                  int                     `json:"bounty"`
	ShutdownBounty          int                     `json:"shutdownBounty"`
	KillStreakLength        int                     `json:"killStreakLength"`
	MultiKillLength         int                     `json:"multiKillLength"`
	KillerTeamID            int                     `json:"killerTeamId"`
	GameID                  int64                   `json:"gameId"`
	RealTimestamp           int64                   `json:"realTimestamp"`
	Position                positionPayload         `json:"position"`
	AssistingParticipantIDs []int                   `json:"assistingParticipantIds"`
	VictimDamageDealt       []damageInstancePayload `json:"victimDamageDealt"`
	VictimDamageReceived    []damageInstancePayload `json:"victimDamageReceived"`
}

type damageInstancePayload struct {
	Basic          bool   `json:"basic"`
	MagicDamage    int    `json:"magicDamage"`
	Name           string `json:"name"`
	ParticipantID  int    `json:"participantId"`
	PhysicalDamage int    `json:"physicalDamage"`
	SpellName      string `json:"spellName"`
	SpellSlot      int    `json:"spellSlot"`
	TrueDamage     int    `json:"trueDamage"`
	Type           string `json:"type"`
}
