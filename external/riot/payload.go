package riot

// Upstream match-v5 payloads. Required identity fields are pointers so absence is detectable;
// plain counters decode absent values as zero.

type matchPayload struct {
	Metadata *matchMetadataPayload `json:"metadata" validate:"required"`
	Info     *matchInfoPayload     `json:"info" validate:"required"`
}

type matchMetadataPayload struct {
	DataVersion  string   `json:"dataVersion"`
	MatchID      string   `json:"matchId" validate:"required"`
	Participants []string `json:"participants"`
}

type matchInfoPayload struct {
	GameCreation       *int64               `json:"gameCreation" validate:"required"`
	GameDuration       *int64               `json:"gameDuration" validate:"required,gte=0"`
	GameEndTimestamp   *int64               `json:"gameEndTimestamp"`
	GameStartTimestamp int64                `json:"gameStartTimestamp"`
	GameID             *int64               `json:"gameId" validate:"required"`
	GameMode           string               `json:"gameMode" validate:"required"`
	GameName           string               `json:"gameName"`
	GameType           string               `json:"gameType"`
	GameVersion        string               `json:"gameVersion" validate:"required"`
	MapID              *int                 `json:"mapId" validate:"required"`
	PlatformID         string               `json:"platformId" validate:"required"`
	QueueID            *int                 `json:"queueId" validate:"required"`
	TournamentCode     string               `json:"tournamentCode"`
	Participants       []participantPayload `json:"participants" validate:"omitempty,len=10,dive"`
	Teams              []teamPayload        `json:"teams" validate:"omitempty,max=2,dive"`
}

type participantPayload struct {
	ParticipantID      *int          `json:"participantId" validate:"required,min=1,max=10"`
	PUUID              string        `json:"puuid"`
	SummonerID         string        `json:"summonerId"`
	SummonerName       string        `json:"summonerName"`
	SummonerLevel      int           `json:"summonerLevel"`
	RiotIDName         string        `json:"riotIdName"`
	RiotIDGameName     string        `json:"riotIdGameName"`
	RiotIDTagline      string        `json:"riotIdTagline"`
	ProfileIcon        int           `json:"profileIcon"`
	ChampionID         *int          `json:"championId" validate:"required"`
	ChampExperience    int           `json:"champExperience"`
	ChampLevel         int           `json:"champLevel"`
	ChampionTransform  int           `json:"championTransform"`
	TeamID             *int          `json:"teamId" validate:"required"`
	Lane               string        `json:"lane"`
	Role               string        `json:"role"`
	IndividualPosition string        `json:"individualPosition"`
	TeamPosition       string        `json:"teamPosition"`
	Summoner1ID        int           `json:"summoner1Id"`
	Summoner1Casts     int           `json:"summoner1Casts"`
	Summoner2ID        int           `json:"summoner2Id"`
	Summoner2Casts     int           `json:"summoner2Casts"`
	Perks              *perksPayload `json:"perks" validate:"required"`

	Kills                          int  `json:"kills"`
	Deaths                         int  `json:"deaths"`
	Assists                        int  `json:"assists"`
	DoubleKills                    int  `json:"doubleKills"`
	TripleKills                    int  `json:"tripleKills"`
	QuadraKills                    int  `json:"quadraKills"`
	PentaKills                     int  `json:"pentaKills"`
	UnrealKills                    int  `json:"unrealKills"`
	KillingSprees                  int  `json:"killingSprees"`
	LargestKillingSpree            int  `json:"largestKillingSpree"`
	LargestMultiKill               int  `json:"largestMultiKill"`
	LargestCriticalStrike          int  `json:"largestCriticalStrike"`
	LongestTimeSpentLiving         int  `json:"longestTimeSpentLiving"`
	FirstBloodKill                 bool `json:"firstBloodKill"`
	FirstBloodAssist               bool `json:"firstBloodAssist"`
	FirstTowerKill                 bool `json:"firstTowerKill"`
	FirstTowerAssist               bool `json:"firstTowerAssist"`
	GoldEarned                     int  `json:"goldEarned"`
	GoldSpent                      int  `json:"goldSpent"`
	TotalDamageDealt               int  `json:"totalDamageDealt"`
	TotalDamageDealtToChampions    int  `json:"totalDamageDealtToChampions"`
	MagicDamageDealt               int  `json:"magicDamageDealt"`
	MagicDamageDealtToChampions    int  `json:"magicDamageDealtToChampions"`
	PhysicalDamageDealt            int  `json:"physicalDamageDealt"`
	PhysicalDamageDealtToChampions int  `json:"physicalDamageDealtToChampions"`
	TrueDamageDealt                int  `json:"trueDamageDealt"`
	TrueDamageDealtToChampions     int  `json:"trueDamageDealtToChampions"`
	TotalDamageTaken               int  `json:"totalDamageTaken"`
	MagicDamageTaken               int  `json:"magicDamageTaken"`
	PhysicalDamageTaken            int  `json:"physicalDamageTaken"`
	TrueDamageTaken                int  `json:"trueDamageTaken"`
	DamageSelfMitigated            int  `json:"damageSelfMitigated"`
	DamageDealtToBuildings         int  `json:"damageDealtToBuildings"`
	DamageDealtToObjectives        int  `json:"damageDealtToObjectives"`
	DamageDealtToTurrets           int  `json:"damageDealtToTurrets"`
	TotalHeal                      int  `json:"totalHeal"`
	TotalHealsOnTeammates          int  `json:"totalHealsOnTeammates"`
	TotalDamageShieldedOnTeammates int  `json:"totalDamageShieldedOnTeammates"`
	TotalUnitsHealed               int  `json:"totalUnitsHealed"`
	TimeCCingOthers                int  `json:"timeCCingOthers"`
	TotalTimeCCDealt               int  `json:"totalTimeCCDealt"`
	TotalTimeSpentDead             int  `json:"totalTimeSpentDead"`
	TimePlayed                     int  `json:"timePlayed"`
	TotalMinionsKilled             int  `json:"totalMinionsKilled"`
	NeutralMinionsKilled           int  `json:"neutralMinionsKilled"`
	TurretKills                    int  `json:"turretKills"`
	TurretTakedowns                int  `json:"turretTakedowns"`
	TurretsLost                    int  `json:"turretsLost"`
	InhibitorKills                 int  `json:"inhibitorKills"`
	InhibitorTakedowns             int  `json:"inhibitorTakedowns"`
	InhibitorsLost                 int  `json:"inhibitorsLost"`
	NexusKills                     int  `json:"nexusKills"`
	NexusTakedowns                 int  `json:"nexusTakedowns"`
	NexusLost                      int  `json:"nexusLost"`
	BaronKills                     int  `json:"baronKills"`
	DragonKills                    int  `json:"dragonKills"`
	ObjectivesStolen               int  `json:"objectivesStolen"`
	ObjectivesStolenAssists        int  `json:"objectivesStolenAssists"`
	VisionScore                    int  `json:"visionScore"`
	VisionWardsBoughtInGame        int  `json:"visionWardsBoughtInGame"`
	SightWardsBoughtInGame         int  `json:"sightWardsBoughtInGame"`
	WardsPlaced                    int  `json:"wardsPlaced"`
	WardsKilled                    int  `json:"wardsKilled"`
	DetectorWardsPlaced            int  `json:"detectorWardsPlaced"`
	ConsumablesPurchased           int  `json:"consumablesPurchased"`
	ItemsPurchased                 int  `json:"itemsPurchased"`
	Item0                          int  `json:"item0"`
	Item1                          int  `json:"item1"`
	Item2                          int  `json:"item2"`
	Item3                          int  `json:"item3"`
	Item4                          int  `json:"item4"`
	Item5                          int  `json:"item5"`
	Item6                          int  `json:"item6"`
	Spell1Casts                    int  `json:"spell1Casts"`
	Spell2Casts                    int  `json:"spell2Casts"`
	Spell3Casts                    int  `json:"spell3Casts"`
	Spell4Casts                    int  `json:"spell4Casts"`
	BountyLevel                    int  `json:"bountyLevel"`
	GameEndedInEarlySurrender      bool `json:"gameEndedInEarlySurrender"`
	GameEndedInSurrender           bool `json:"gameEndedInSurrender"`
	TeamEarlySurrendered           bool `json:"teamEarlySurrendered"`
	Win                            bool `json:"win"`

	AllInPings         *int `json:"allInPings"`
	AssistMePings      *int `json:"assistMePings"`
	BaitPings          *int `json:"baitPings"`
	BasicPings         *int `json:"basicPings"`
	CommandPings       *int `json:"commandPings"`
	DangerPings        *int `json:"dangerPings"`
	EnemyMissingPings  *int `json:"enemyMissingPings"`
	EnemyVisionPings   *int `json:"enemyVisionPings"`
	GetBackPings       *int `json:"getBackPings"`
	HoldPings          *int `json:"holdPings"`
	NeedVisionPings    *int `json:"needVisionPings"`
	OnMyWayPings       *int `json:"onMyWayPings"`
	PushPings          *int `json:"pushPings"`
	VisionClearedPings *int `json:"visionClearedPings"`
}

type perksPayload struct {
	StatPerks map[string]int     `json:"statPerks" validate:"omitempty,dive,keys,oneof=defense flex offense,endkeys,gte=0"`
	Styles    []perkStylePayload `json:"styles" validate:"required,dive"`
}

type perkStylePayload struct {
	Description string                 `json:"description" validate:"required,oneof=primaryStyle subStyle"`
	Style       *int                   `json:"style" validate:"required"`
	Selections  []perkSelectionPayload `json:"selections" validate:"dive"`
}

type perkSelectionPayload struct {
	Perk *int `json:"perk" validate:"required"`
	Var1 int  `json:"var1"`
	Var2 int  `json:"var2"`
	Var3 int  `json:"var3"`
}

type teamPayload struct {
	TeamID     *int              `json:"teamId" validate:"required"`
	Win        bool              `json:"win"`
	Bans       []banPayload      `json:"bans" validate:"dive"`
	Objectives objectivesPayload `json:"objectives"`
}

type banPayload struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

type objectivesPayload struct {
	Baron      objectivePayload `json:"baron"`
	Champion   objectivePayload `json:"champion"`
	Dragon     objectivePayload `json:"dragon"`
	Inhibitor  objectivePayload `json:"inhibitor"`
	RiftHerald objectivePayload `json:"riftHerald"`
	Tower      objectivePayload `json:"tower"`
}

type objectivePayload struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

type accountPayload struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type leagueEntryPayload struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

type liveGamePayload struct {
	GameID       int64                        `json:"gameId"`
	PlatformID   string                       `json:"platformId"`
	GameMode     string                       `json:"gameMode"`
	QueueID      int                          `json:"gameQueueConfigId"`
	Observers    liveGameObserversPayload     `json:"observers"`
	Participants []liveGameParticipantPayload `json:"participants"`
}

type liveGameObserversPayload struct {
	EncryptionKey string `json:"encryptionKey"`
}

type liveGameParticipantPayload struct {
	PUUID         string `json:"puuid"`
	SummonerID    string `json:"summonerId"`
	RiotID        string `json:"riotId"`
	ChampionID    int    `json:"championId"`
	TeamID        int    `json:"teamId"`
	ProfileIconID int    `json:"profileIconId"`
}
