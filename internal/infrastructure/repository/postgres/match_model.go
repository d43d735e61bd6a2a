package postgres

import (
	"github.com/riskibarqy/match-ingestion/internal/domain/match"
)

type matchRow struct {
	ExternalID      string `db:"external_id"`
	GameID          int64  `db:"game_id"`
	GameCreation    int64  `db:"game_creation"`
	GameDuration    int64  `db:"game_duration"`
	GameMode        string `db:"game_mode"`
	GameType        string `db:"game_type"`
	MapID           int    `db:"map_id"`
	PlatformID      string `db:"platform_id"`
	QueueID         int    `db:"queue_id"`
	GameVersion     string `db:"game_version"`
	MajorVersion    int    `db:"major_version"`
	MinorVersion    int    `db:"minor_version"`
	PatchVersion    int    `db:"patch_version"`
	BuildVersion    int    `db:"build_version"`
	IsFullyImported bool   `db:"is_fully_imported"`
}

type storedMatchRow struct {
	ID int64 `db:"id"`
	matchRow
}

var matchSelectColumns = []string{
	"id",
	"external_id",
	"game_id",
	"game_creation",
	"game_duration",
	"game_mode",
	"game_type",
	"map_id",
	"platform_id",
	"queue_id",
	"game_version",
	"major_version",
	"minor_version",
	"patch_version",
	"build_version",
	"is_fully_imported",
}

func toMatchRow(item match.Match) matchRow {
	return matchRow{
		ExternalID:      item.ExternalID,
		GameID:          item.GameID,
		GameCreation:    item.GameCreation,
		GameDuration:    item.GameDuration,
		GameMode:        item.GameMode,
		GameType:        item.GameType,
		MapID:           item.MapID,
		PlatformID:      item.PlatformID,
		QueueID:         item.QueueID,
		GameVersion:     item.GameVersion,
		MajorVersion:    item.Version.Major,
		MinorVersion:    item.Version.Minor,
		PatchVersion:    item.Version.Patch,
		BuildVersion:    item.Version.Build,
		IsFullyImported: item.IsFullyImported,
	}
}

func (r storedMatchRow) toDomain() match.Match {
	return match.Match{
		ID:           r.ID,
		ExternalID:   r.ExternalID,
		GameID:       r.GameID,
		GameCreation: r.GameCreation,
		GameDuration: r.GameDuration,
		GameMode:     r.GameMode,
		GameType:     r.GameType,
		MapID:        r.MapID,
		PlatformID:   r.PlatformID,
		QueueID:      r.QueueID,
		GameVersion:  r.GameVersion,
		Version: match.Version{
			Major: r.MajorVersion,
			Minor: r.MinorVersion,
			Patch: r.PatchVersion,
			Build: r.BuildVersion,
		},
		IsFullyImported: r.IsFullyImported,
	}
}

type participantRow struct {
	MatchID            int64  `db:"match_id"`
	ParticipantID      int    `db:"participant_id"`
	PUUID              string `db:"puuid"`
	SummonerID         string `db:"summoner_id"`
	SummonerName       string `db:"summoner_name"`
	SimpleName         string `db:"simple_name"`
	RiotIDName         string `db:"riot_id_name"`
	RiotIDTagline      string `db:"riot_id_tagline"`
	ChampionID         int    `db:"champion_id"`
	ChampExperience    int    `db:"champ_experience"`
	Summoner1ID        int    `db:"summoner1_id"`
	Summoner1Casts     int    `db:"summoner1_casts"`
	Summoner2ID        int    `db:"summoner2_id"`
	Summoner2Casts     int    `db:"summoner2_casts"`
	TeamID             int    `db:"team_id"`
	Lane               string `db:"lane"`
	Role               string `db:"role"`
	IndividualPosition string `db:"individual_position"`
	TeamPosition       string `db:"team_position"`
	Tier               string `db:"tier"`
	Rank               string `db:"rank"`
}

type storedParticipantRow struct {
	ID int64 `db:"id"`
	participantRow
}

var participantSelectColumns = []string{
	"id",
	"match_id",
	"participant_id",
	"puuid",
	"summoner_id",
	"summoner_name",
	"simple_name",
	"riot_id_name",
	"riot_id_tagline",
	"champion_id",
	"champ_experience",
	"summoner1_id",
	"summoner1_casts",
	"summoner2_id",
	"summoner2_casts",
	"team_id",
	"lane",
	"role",
	"individual_position",
	"team_position",
	"tier",
	"rank",
}

func toParticipantRow(matchID int64, item match.Participant) participantRow {
	return participantRow{
		MatchID:            matchID,
		ParticipantID:      item.ParticipantID,
		PUUID:              item.PUUID,
		SummonerID:         item.SummonerID,
		SummonerName:       item.DisplayName(),
		SimpleName:         item.SimpleName(),
		RiotIDName:         item.RiotIDName,
		RiotIDTagline:      item.RiotIDTagline,
		ChampionID:         item.ChampionID,
		ChampExperience:    item.ChampExperience,
		Summoner1ID:        item.Summoner1ID,
		Summoner1Casts:     item.Summoner1Casts,
		Summoner2ID:        item.Summoner2ID,
		Summoner2Casts:     item.Summoner2Casts,
		TeamID:             item.TeamID,
		Lane:               item.Lane,
		Role:               item.Role,
		IndividualPosition: item.IndividualPosition,
		TeamPosition:       item.TeamPosition,
		Tier:               item.Tier,
		Rank:               item.Rank,
	}
}

func (r storedParticipantRow) toDomain() match.Participant {
	return match.Participant{
		ID:                 r.ID,
		MatchID:            r.MatchID,
		ParticipantID:      r.ParticipantID,
		PUUID:              r.PUUID,
		SummonerID:         r.SummonerID,
		SummonerName:       r.SummonerName,
		RiotIDName:         r.RiotIDName,
		RiotIDTagline:      r.RiotIDTagline,
		ChampionID:         r.ChampionID,
		ChampExperience:    r.ChampExperience,
		Summoner1ID:        r.Summoner1ID,
		Summoner1Casts:     r.Summoner1Casts,
		Summoner2ID:        r.Summoner2ID,
		Summoner2Casts:     r.Summoner2Casts,
		TeamID:             r.TeamID,
		Lane:               r.Lane,
		Role:               r.Role,
		IndividualPosition: r.IndividualPosition,
		TeamPosition:       r.TeamPosition,
		Tier:               r.Tier,
		Rank:               r.Rank,
	}
}

type teamRow struct {
	MatchID         int64 `db:"match_id"`
	TeamID          int   `db:"team_id"`
	Win             bool  `db:"win"`
	BaronFirst      bool  `db:"baron_first"`
	BaronKills      int   `db:"baron_kills"`
	ChampionFirst   bool  `db:"champion_first"`
	ChampionKills   int   `db:"champion_kills"`
	DragonFirst     bool  `db:"dragon_first"`
	DragonKills     int   `db:"dragon_kills"`
	InhibitorFirst  bool  `db:"inhibitor_first"`
	InhibitorKills  int   `db:"inhibitor_kills"`
	RiftHeraldFirst bool  `db:"rift_herald_first"`
	RiftHeraldKills int   `db:"rift_herald_kills"`
	TowerFirst      bool  `db:"tower_first"`
	TowerKills      int   `db:"tower_kills"`
}

func toTeamRow(matchID int64, item match.Team) teamRow {
	return teamRow{
		MatchID:         matchID,
		TeamID:          item.TeamID,
		Win:             item.Win,
		BaronFirst:      item.Baron.First,
		BaronKills:      item.Baron.Kills,
		ChampionFirst:   item.Champion.First,
		ChampionKills:   item.Champion.Kills,
		DragonFirst:     item.Dragon.First,
		DragonKills:     item.Dragon.Kills,
		InhibitorFirst:  item.Inhibitor.First,
		InhibitorKills:  item.Inhibitor.Kills,
		RiftHeraldFirst: item.RiftHerald.First,
		RiftHeraldKills: item.RiftHerald.Kills,
		TowerFirst:      item.Tower.First,
		TowerKills:      item.Tower.Kills,
	}
}

type banRow struct {
	TeamRowID  int64 `db:"team_id"`
	ChampionID int   `db:"champion_id"`
	PickTurn   int   `db:"pick_turn"`
}

type statsRow struct {
	ParticipantRowID               int64 `db:"participant_id"`
	Kills                          int   `db:"kills"`
	Deaths                         int   `db:"deaths"`
	Assists                        int   `db:"assists"`
	ChampLevel                     int   `db:"champ_level"`
	DoubleKills                    int   `db:"double_kills"`
	TripleKills                    int   `db:"triple_kills"`
	QuadraKills                    int   `db:"quadra_kills"`
	PentaKills                     int   `db:"penta_kills"`
	UnrealKills                    int   `db:"unreal_kills"`
	KillingSprees                  int   `db:"killing_sprees"`
	LargestKillingSpree            int   `db:"largest_killing_spree"`
	LargestMultiKill               int   `db:"largest_multi_kill"`
	LargestCriticalStrike          int   `db:"largest_critical_strike"`
	LongestTimeSpentLiving         int   `db:"longest_time_spent_living"`
	FirstBloodKill                 bool  `db:"first_blood_kill"`
	FirstBloodAssist               bool  `db:"first_blood_assist"`
	FirstTowerKill                 bool  `db:"first_tower_kill"`
	FirstTowerAssist               bool  `db:"first_tower_assist"`
	GoldEarned                     int   `db:"gold_earned"`
	GoldSpent                      int   `db:"gold_spent"`
	TotalDamageDealt               int   `db:"total_damage_dealt"`
	TotalDamageDealtToChampions    int   `db:"total_damage_dealt_to_champions"`
	MagicDamageDealt               int   `db:"magic_damage_dealt"`
	MagicDamageDealtToChampions    int   `db:"magic_damage_dealt_to_champions"`
	PhysicalDamageDealt            int   `db:"physical_damage_dealt"`
	PhysicalDamageDealtToChampions int   `db:"physical_damage_dealt_to_champions"`
	TrueDamageDealt                int   `db:"true_damage_dealt"`
	TrueDamageDealtToChampions     int   `db:"true_damage_dealt_to_champions"`
	TotalDamageTaken               int   `db:"total_damage_taken"`
	MagicDamageTaken               int   `db:"magic_damage_taken"`
	PhysicalDamageTaken            int   `db:"physical_damage_taken"`
	TrueDamageTaken                int   `db:"true_damage_taken"`
	DamageSelfMitigated            int   `db:"damage_self_mitigated"`
	DamageDealtToBuildings         int   `db:"damage_dealt_to_buildings"`
	DamageDealtToObjectives        int   `db:"damage_dealt_to_objectives"`
	DamageDealtToTurrets           int   `db:"damage_dealt_to_turrets"`
	TotalHeal                      int   `db:"total_heal"`
	TotalHealsOnTeammates          int   `db:"total_heals_on_teammates"`
	TotalDamageShieldedOnTeammates int   `db:"total_damage_shielded_on_teammates"`
	TotalUnitsHealed               int   `db:"total_units_healed"`
	TimeCCingOthers                int   `db:"time_ccing_others"`
	TotalTimeCCDealt               int   `db:"total_time_cc_dealt"`
	TotalTimeSpentDead             int   `db:"total_time_spent_dead"`
	TimePlayed                     int   `db:"time_played"`
	TotalMinionsKilled             int   `db:"total_minions_killed"`
	NeutralMinionsKilled           int   `db:"neutral_minions_killed"`
	TurretKills                    int   `db:"turret_kills"`
	TurretTakedowns                int   `db:"turret_takedowns"`
	TurretsLost                    int   `db:"turrets_lost"`
	InhibitorKills                 int   `db:"inhibitor_kills"`
	InhibitorTakedowns             int   `db:"inhibitor_takedowns"`
	InhibitorsLost                 int   `db:"inhibitors_lost"`
	NexusKills                     int   `db:"nexus_kills"`
	NexusTakedowns                 int   `db:"nexus_takedowns"`
	NexusLost                      int   `db:"nexus_lost"`
	BaronKills                     int   `db:"baron_kills"`
	DragonKills                    int   `db:"dragon_kills"`
	ObjectivesStolen               int   `db:"objectives_stolen"`
	ObjectivesStolenAssists        int   `db:"objectives_stolen_assists"`
	VisionScore                    int   `db:"vision_score"`
	VisionWardsBoughtInGame        int   `db:"vision_wards_bought_in_game"`
	SightWardsBoughtInGame         int   `db:"sight_wards_bought_in_game"`
	WardsPlaced                    int   `db:"wards_placed"`
	WardsKilled                    int   `db:"wards_killed"`
	DetectorWardsPlaced            int   `db:"detector_wards_placed"`
	ConsumablesPurchased           int   `db:"consumables_purchased"`
	ItemsPurchased                 int   `db:"items_purchased"`
	Item0                          int   `db:"item0"`
	Item1                          int   `db:"item1"`
	Item2                          int   `db:"item2"`
	Item3                          int   `db:"item3"`
	Item4                          int   `db:"item4"`
	Item5                          int   `db:"item5"`
	Item6                          int   `db:"item6"`
	Spell1Casts                    int   `db:"spell1_casts"`
	Spell2Casts                    int   `db:"spell2_casts"`
	Spell3Casts                    int   `db:"spell3_casts"`
	Spell4Casts                    int   `db:"spell4_casts"`
	BountyLevel                    int   `db:"bounty_level"`
	ChampionTransform              int   `db:"champion_transform"`
	AllInPings                     int   `db:"all_in_pings"`
	AssistMePings                  int   `db:"assist_me_pings"`
	BaitPings                      int   `db:"bait_pings"`
	BasicPings                     int   `db:"basic_pings"`
	CommandPings                   int   `db:"command_pings"`
	DangerPings                    int   `db:"danger_pings"`
	EnemyMissingPings              int   `db:"enemy_missing_pings"`
	EnemyVisionPings               int   `db:"enemy_vision_pings"`
	GetBackPings                   int   `db:"get_back_pings"`
	HoldPings                      int   `db:"hold_pings"`
	NeedVisionPings                int   `db:"need_vision_pings"`
	OnMyWayPings                   int   `db:"on_my_way_pings"`
	PushPings                      int   `db:"push_pings"`
	VisionClearedPings             int   `db:"vision_cleared_pings"`
	GameEndedInEarlySurrender      bool  `db:"game_ended_in_early_surrender"`
	GameEndedInSurrender           bool  `db:"game_ended_in_surrender"`
	TeamEarlySurrendered           bool  `db:"team_early_surrendered"`
	Win                            bool  `db:"win"`
	PerkPrimaryStyle               int   `db:"perk_primary_style"`
	PerkSubStyle                   int   `db:"perk_sub_style"`
	StatPerk0                      int   `db:"stat_perk0"`
	StatPerk1                      int   `db:"stat_perk1"`
	StatPerk2                      int   `db:"stat_perk2"`
	Perk0                          int   `db:"perk0"`
	Perk0Var1                      int   `db:"perk0_var1"`
	Perk0Var2                      int   `db:"perk0_var2"`
	Perk0Var3                      int   `db:"perk0_var3"`
	Perk1                          int   `db:"perk1"`
	Perk1Var1                      int   `db:"perk1_var1"`
	Perk1Var2                      int   `db:"perk1_var2"`
	Perk1Var3                      int   `db:"perk1_var3"`
	Perk2                          int   `db:"perk2"`
	Perk2Var1                      int   `db:"perk2_var1"`
	Perk2Var2                      int   `db:"perk2_var2"`
	Perk2Var3                      int   `db:"perk2_var3"`
	Perk3                          int   `db:"perk3"`
	Perk3Var1                      int   `db:"perk3_var1"`
	Perk3Var2                      int   `db:"perk3_var2"`
	Perk3Var3                      int   `db:"perk3_var3"`
	Perk4                          int   `db:"perk4"`
	Perk4Var1                      int   `db:"perk4_var1"`
	Perk4Var2                      int   `db:"perk4_var2"`
	Perk4Var3                      int   `db:"perk4_var3"`
	Perk5                          int   `db:"perk5"`
	Perk5Var1                      int   `db:"perk5_var1"`
	Perk5Var2                      int   `db:"perk5_var2"`
	Perk5Var3                      int   `db:"perk5_var3"`
}

// toStatsRow flattens counters, stat perks and the six rune slots of one participant.
func toStatsRow(participantRowID int64, item match.Participant) statsRow {
	stats := item.Stats
	statPerks := item.Perks.StatPerkSlots()
	slots := item.Perks.Slots()
	return statsRow{
		ParticipantRowID:               participantRowID,
		Kills:                          stats.Kills,
		Deaths:                         stats.Deaths,
		Assists:                        stats.Assists,
		ChampLevel:                     stats.ChampLevel,
		DoubleKills:                    stats.DoubleKills,
		TripleKills:                    stats.TripleKills,
		QuadraKills:                    stats.QuadraKills,
		PentaKills:                     stats.PentaKills,
		UnrealKills:                    stats.UnrealKills,
		KillingSprees:                  stats.KillingSprees,
		LargestKillingSpree:            stats.LargestKillingSpree,
		LargestMultiKill:               stats.LargestMultiKill,
		LargestCriticalStrike:          stats.LargestCriticalStrike,
		LongestTimeSpentLiving:         stats.LongestTimeSpentLiving,
		FirstBloodKill:                 stats.FirstBloodKill,
		FirstBloodAssist:               stats.FirstBloodAssist,
		FirstTowerKill:                 stats.FirstTowerKill,
		FirstTowerAssist:               stats.FirstTowerAssist,
		GoldEarned:                     stats.GoldEarned,
		GoldSpent:                      stats.GoldSpent,
		TotalDamageDealt:               stats.TotalDamageDealt,
		TotalDamageDealtToChampions:    stats.TotalDamageDealtToChampions,
		MagicDamageDealt:               stats.MagicDamageDealt,
		MagicDamageDealtToChampions:    stats.MagicDamageDealtToChampions,
		PhysicalDamageDealt:            stats.PhysicalDamageDealt,
		PhysicalDamageDealtToChampions: stats.PhysicalDamageDealtToChampions,
		TrueDamageDealt:                stats.TrueDamageDealt,
		TrueDamageDealtToChampions:     stats.TrueDamageDealtToChampions,
		TotalDamageTaken:               stats.TotalDamageTaken,
		MagicDamageTaken:               stats.MagicDamageTaken,
		PhysicalDamageTaken:            stats.PhysicalDamageTaken,
		TrueDamageTaken:                stats.TrueDamageTaken,
		DamageSelfMitigated:            stats.DamageSelfMitigated,
		DamageDealtToBuildings:         stats.DamageDealtToBuildings,
		DamageDealtToObjectives:        stats.DamageDealtToObjectives,
		DamageDealtToTurrets:           stats.DamageDealtToTurrets,
		TotalHeal:                      stats.TotalHeal,
		TotalHealsOnTeammates:          stats.TotalHealsOnTeammates,
		TotalDamageShieldedOnTeammates: stats.TotalDamageShieldedOnTeammates,
		TotalUnitsHealed:               stats.TotalUnitsHealed,
		TimeCCingOthers:                stats.TimeCCingOthers,
		TotalTimeCCDealt:               stats.TotalTimeCCDealt,
		TotalTimeSpentDead:             stats.TotalTimeSpentDead,
		TimePlayed:                     stats.TimePlayed,
		TotalMinionsKilled:             stats.TotalMinionsKilled,
		NeutralMinionsKilled:           stats.NeutralMinionsKilled,
		TurretKills:                    stats.TurretKills,
		TurretTakedowns:                stats.TurretTakedowns,
		TurretsLost:                    stats.TurretsLost,
		InhibitorKills:                 stats.InhibitorKills,
		InhibitorTakedowns:             stats.InhibitorTakedowns,
		InhibitorsLost:                 stats.InhibitorsLost,
		NexusKills:                     stats.NexusKills,
		NexusTakedowns:                 stats.NexusTakedowns,
		NexusLost:                      stats.NexusLost,
		BaronKills:                     stats.BaronKills,
		DragonKills:                    stats.DragonKills,
		ObjectivesStolen:               stats.ObjectivesStolen,
		ObjectivesStolenAssists:        stats.ObjectivesStolenAssists,
		VisionScore:                    stats.VisionScore,
		VisionWardsBoughtInGame:        stats.VisionWardsBoughtInGame,
		SightWardsBoughtInGame:         stats.SightWardsBoughtInGame,
		WardsPlaced:                    stats.WardsPlaced,
		WardsKilled:                    stats.WardsKilled,
		DetectorWardsPlaced:            stats.DetectorWardsPlaced,
		ConsumablesPurchased:           stats.ConsumablesPurchased,
		ItemsPurchased:                 stats.ItemsPurchased,
		Item0:                          stats.Items[0],
		Item1:                          stats.Items[1],
		Item2:                          stats.Items[2],
		Item3:                          stats.Items[3],
		Item4:                          stats.Items[4],
		Item5:                          stats.Items[5],
		Item6:                          stats.Items[6],
		Spell1Casts:                    stats.SpellCasts[0],
		Spell2Casts:                    stats.SpellCasts[1],
		Spell3Casts:                    stats.SpellCasts[2],
		Spell4Casts:                    stats.SpellCasts[3],
		BountyLevel:                    stats.BountyLevel,
		ChampionTransform:              stats.ChampionTransform,
		AllInPings:                     stats.Pings.AllIn,
		AssistMePings:                  stats.Pings.AssistMe,
		BaitPings:                      stats.Pings.Bait,
		BasicPings:                     stats.Pings.Basic,
		CommandPings:                   stats.Pings.Command,
		DangerPings:                    stats.Pings.Danger,
		EnemyMissingPings:              stats.Pings.EnemyMissing,
		EnemyVisionPings:               stats.Pings.EnemyVision,
		GetBackPings:                   stats.Pings.GetBack,
		HoldPings:                      stats.Pings.Hold,
		NeedVisionPings:                stats.Pings.NeedVision,
		OnMyWayPings:                   stats.Pings.OnMyWay,
		PushPings:                      stats.Pings.Push,
		VisionClearedPings:             stats.Pings.VisionCleared,
		GameEndedInEarlySurrender:      stats.GameEndedInEarlySurrender,
		GameEndedInSurrender:           stats.GameEndedInSurrender,
		TeamEarlySurrendered:           stats.TeamEarlySurrendered,
		Win:                            stats.Win,
		PerkPrimaryStyle:               item.Perks.Primary.Style,
		PerkSubStyle:                   item.Perks.Sub.Style,
		StatPerk0:                      statPerks[0],
		StatPerk1:                      statPerks[1],
		StatPerk2:                      statPerks[2],
		Perk0:                          slots[0].Perk,
		Perk0Var1:                      slots[0].Var1,
		Perk0Var2:                      slots[0].Var2,
		Perk0Var3:                      slots[0].Var3,
		Perk1:                          slots[1].Perk,
		Perk1Var1:                      slots[1].Var1,
		Perk1Var2:                      slots[1].Var2,
		Perk1Var3:                      slots[1].Var3,
		Perk2:                          slots[2].Perk,
		Perk2Var1:                      slots[2].Var1,
		Perk2Var2:                      slots[2].Var2,
		Perk2Var3:                      slots[2].Var3,
		Perk3:                          slots[3].Perk,
		Perk3Var1:                      slots[3].Var1,
		Perk3Var2:                      slots[3].Var2,
		Perk3Var3:                      slots[3].Var3,
		Perk4:                          slots[4].Perk,
		Perk4Var1:                      slots[4].Var1,
		Perk4Var2:                      slots[4].Var2,
		Perk4Var3:                      slots[4].Var3,
		Perk5:                          slots[5].Perk,
		Perk5Var1:                      slots[5].Var1,
		Perk5Var2:                      slots[5].Var2,
		Perk5Var3:                      slots[5].Var3,
	}
}
