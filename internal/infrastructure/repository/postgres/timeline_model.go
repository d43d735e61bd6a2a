package postgres

import (
	"github.com/lib/pq"
	"github.com/riskibarqy/match-ingestion/internal/domain/timeline"
)

type timelineRow struct {
	MatchID       int64 `db:"match_id"`
	FrameInterval int64 `db:"frame_interval"`
}

type frameRow struct {
	TimelineID int64 `db:"timeline_id"`
	FrameIndex int   `db:"frame_index"`
	Timestamp  int64 `db:"timestamp"`
}

type participantFrameRow struct {
	FrameID                       int64 `db:"frame_id"`
	ParticipantID                 int   `db:"participant_id"`
	CurrentGold                   int   `db:"current_gold"`
	GoldPerSecond                 int   `db:"gold_per_second"`
	TotalGold                     int   `db:"total_gold"`
	Level                         int   `db:"level"`
	XP                            int   `db:"xp"`
	MinionsKilled                 int   `db:"minions_killed"`
	JungleMinionsKilled           int   `db:"jungle_minions_killed"`
	TimeEnemySpentControlled      int   `db:"time_enemy_spent_controlled"`
	PositionX                     int   `db:"position_x"`
	PositionY                     int   `db:"position_y"`
	AbilityHaste                  int   `db:"champion_ability_haste"`
	AbilityPower                  int   `db:"champion_ability_power"`
	Armor                         int   `db:"champion_armor"`
	ArmorPen                      int   `db:"champion_armor_pen"`
	ArmorPenPercent               int   `db:"champion_armor_pen_percent"`
	AttackDamage                  int   `db:"champion_attack_damage"`
	AttackSpeed                   int   `db:"champion_attack_speed"`
	BonusArmorPenPercent          int   `db:"champion_bonus_armor_pen_percent"`
	BonusMagicPenPercent          int   `db:"champion_bonus_magic_pen_percent"`
	CCReduction                   int   `db:"champion_cc_reduction"`
	CooldownReduction             int   `db:"champion_cooldown_reduction"`
	Health                        int   `db:"champion_health"`
	HealthMax                     int   `db:"champion_health_max"`
	HealthRegen                   int   `db:"champion_health_regen"`
	Lifesteal                     int   `db:"champion_lifesteal"`
	MagicPen                      int   `db:"champion_magic_pen"`
	MagicPenPercent               int   `db:"champion_magic_pen_percent"`
	MagicResist                   int   `db:"champion_magic_resist"`
	MovementSpeed                 int   `db:"champion_movement_speed"`
	Omnivamp                      int   `db:"champion_omnivamp"`
	PhysicalVamp                  int   `db:"champion_physical_vamp"`
	Power                         int   `db:"champion_power"`
	PowerMax                      int   `db:"champion_power_max"`
	PowerRegen                    int   `db:"champion_power_regen"`
	SpellVamp                     int   `db:"champion_spell_vamp"`
	MagicDamageDone               int   `db:"magic_damage_done"`
	MagicDamageDoneToChampions    int   `db:"magic_damage_done_to_champions"`
	MagicDamageTaken              int   `db:"magic_damage_taken"`
	PhysicalDamageDone            int   `db:"physical_damage_done"`
	PhysicalDamageDoneToChampions int   `db:"physical_damage_done_to_champions"`
	PhysicalDamageTaken           int   `db:"physical_damage_taken"`
	TotalDamageDone               int   `db:"total_damage_done"`
	TotalDamageDoneToChampions    int   `db:"total_damage_done_to_champions"`
	TotalDamageTaken              int   `db:"total_damage_taken"`
	TrueDamageDone                int   `db:"true_damage_done"`
	TrueDamageDoneToChampions     int   `db:"true_damage_done_to_champions"`
	TrueDamageTaken               int   `db:"true_damage_taken"`
}

func toParticipantFrameRow(frameID int64, item timeline.ParticipantFrame) participantFrameRow {
	return participantFrameRow{
		FrameID:                       frameID,
		ParticipantID:                 item.ParticipantID,
		CurrentGold:                   item.CurrentGold,
		GoldPerSecond:                 item.GoldPerSecond,
		TotalGold:                     item.TotalGold,
		Level:                         item.Level,
		XP:                            item.XP,
		MinionsKilled:                 item.MinionsKilled,
		JungleMinionsKilled:           item.JungleMinionsKilled,
		TimeEnemySpentControlled:      item.TimeEnemySpentControlled,
		PositionX:                     item.Position.X,
		PositionY:                     item.Position.Y,
		AbilityHaste:                  item.ChampionStats.AbilityHaste,
		AbilityPower:                  item.ChampionStats.AbilityPower,
		Armor:                         item.ChampionStats.Armor,
		ArmorPen:                      item.ChampionStats.ArmorPen,
		ArmorPenPercent:               item.ChampionStats.ArmorPenPercent,
		AttackDamage:                  item.ChampionStats.AttackDamage,
		AttackSpeed:                   item.ChampionStats.AttackSpeed,
		BonusArmorPenPercent:          item.ChampionStats.BonusArmorPenPercent,
		BonusMagicPenPercent:          item.ChampionStats.BonusMagicPenPercent,
		CCReduction:                   item.ChampionStats.CCReduction,
		CooldownReduction:             item.ChampionStats.CooldownReduction,
		Health:                        item.ChampionStats.Health,
		HealthMax:                     item.ChampionStats.HealthMax,
		HealthRegen:                   item.ChampionStats.HealthRegen,
		Lifesteal:                     item.ChampionStats.Lifesteal,
		MagicPen:                      item.ChampionStats.MagicPen,
		MagicPenPercent:               item.ChampionStats.MagicPenPercent,
		MagicResist:                   item.ChampionStats.MagicResist,
		MovementSpeed:                 item.ChampionStats.MovementSpeed,
		Omnivamp:                      item.ChampionStats.Omnivamp,
		PhysicalVamp:                  item.ChampionStats.PhysicalVamp,
		Power:                         item.ChampionStats.Power,
		PowerMax:                      item.ChampionStats.PowerMax,
		PowerRegen:                    item.ChampionStats.PowerRegen,
		SpellVamp:                     item.ChampionStats.SpellVamp,
		MagicDamageDone:               item.DamageStats.MagicDamageDone,
		MagicDamageDoneToChampions:    item.DamageStats.MagicDamageDoneToChampions,
		MagicDamageTaken:              item.DamageStats.MagicDamageTaken,
		PhysicalDamageDone:            item.DamageStats.PhysicalDamageDone,
		PhysicalDamageDoneToChampions: item.DamageStats.PhysicalDamageDoneToChampions,
		PhysicalDamageTaken:           item.DamageStats.PhysicalDamageTaken,
		TotalDamageDone:               item.DamageStats.TotalDamageDone,
		TotalDamageDoneToChampions:    item.DamageStats.TotalDamageDoneToChampions,
		TotalDamageTaken:              item.DamageStats.TotalDamageTaken,
		TrueDamageDone:                item.DamageStats.TrueDamageDone,
		TrueDamageDoneToChampions:     item.DamageStats.TrueDamageDoneToChampions,
		TrueDamageTaken:               item.DamageStats.TrueDamageTaken,
	}
}

type wardPlacedRow struct {
	FrameID   int64  `db:"frame_id"`
	SortIndex int    `db:"sort_index"`
	Timestamp int64  `db:"timestamp"`
	CreatorID int    `db:"creator_id"`
	WardType  string `db:"ward_type"`
}

type wardKillRow struct {
	FrameID   int64  `db:"frame_id"`
	SortIndex int    `db:"sort_index"`
	Timestamp int64  `db:"timestamp"`
	KillerID  int    `db:"killer_id"`
	WardType  string `db:"ward_type"`
}

type itemEventRow struct {
	FrameID       int64 `db:"frame_id"`
	SortIndex     int   `db:"sort_index"`
	Timestamp     int64 `db:"timestamp"`
	ItemID        int   `db:"item_id"`
	ParticipantID int   `db:"participant_id"`
}

type itemUndoRow struct {
	FrameID       int64 `db:"frame_id"`
	SortIndex     int   `db:"sort_index"`
	Timestamp     int64 `db:"timestamp"`
	ParticipantID int   `db:"participant_id"`
	BeforeID      int   `db:"before_id"`
	AfterID       int   `db:"after_id"`
	GoldGain      int   `db:"gold_gain"`
}

type skillLevelUpRow struct {
	FrameID       int64  `db:"frame_id"`
	SortIndex     int    `db:"sort_index"`
	Timestamp     int64  `db:"timestamp"`
	ParticipantID int    `db:"participant_id"`
	LevelUpType   string `db:"level_up_type"`
	SkillSlot     int    `db:"skill_slot"`
}

type levelUpRow struct {
	FrameID       int64 `db:"frame_id"`
	SortIndex     int   `db:"sort_index"`
	Timestamp     int64 `db:"timestamp"`
	ParticipantID int   `db:"participant_id"`
	Level         int   `db:"level"`
}

type championSpecialKillRow struct {
	FrameID                 int64         `db:"frame_id"`
	SortIndex               int           `db:"sort_index"`
	Timestamp               int64         `db:"timestamp"`
	KillerID                int           `db:"killer_id"`
	KillType                string        `db:"kill_type"`
	MultiKillLength         int           `db:"multi_kill_length"`
	AssistingParticipantIDs pq.Int64Array `db:"assisting_participant_ids"`
	PositionX               int           `db:"position_x"`
	PositionY               int           `db:"position_y"`
}

type turretPlateDestroyedRow struct {
	FrameID   int64  `db:"frame_id"`
	SortIndex int    `db:"sort_index"`
	Timestamp int64  `db:"timestamp"`
	KillerID  int    `db:"killer_id"`
	LaneType  string `db:"lane_type"`
	TeamID    int    `db:"team_id"`
	PositionX int    `db:"position_x"`
	PositionY int    `db:"position_y"`
}

type eliteMonsterKillRow struct {
	FrameID        int64  `db:"frame_id"`
	SortIndex      int    `db:"sort_index"`
	Timestamp      int64  `db:"timestamp"`
	KillerID       int    `db:"killer_id"`
	KillerTeamID   int    `db:"killer_team_id"`
	Bounty         int    `db:"bounty"`
	MonsterType    string `db:"monster_type"`
	MonsterSubType string `db:"monster_sub_type"`
	PositionX      int    `db:"position_x"`
	PositionY      int    `db:"position_y"`
}

type buildingKillRow struct {
	FrameID      int64  `db:"frame_id"`
	SortIndex    int    `db:"sort_index"`
	Timestamp    int64  `db:"timestamp"`
	KillerID     int    `db:"killer_id"`
	TeamID       int    `db:"team_id"`
	Bounty       int    `db:"bounty"`
	BuildingType string `db:"building_type"`
	LaneType     string `db:"lane_type"`
	TowerType    string `db:"tower_type"`
	PositionX    int    `db:"position_x"`
	PositionY    int    `db:"position_y"`
}

type gameEndRow struct {
	FrameID       int64 `db:"frame_id"`
	SortIndex     int   `db:"sort_index"`
	Timestamp     int64 `db:"timestamp"`
	GameID        int64 `db:"game_id"`
	RealTimestamp int64 `db:"real_timestamp"`
	WinningTeam   int   `db:"winning_team"`
}

type championKillRow struct {
	FrameID                 int64         `db:"frame_id"`
	SortIndex               int           `db:"sort_index"`
	Timestamp               int64         `db:"timestamp"`
	KillerID                int           `db:"killer_id"`
	VictimID                int           `db:"victim_id"`
	Bounty                  int           `db:"bounty"`
	ShutdownBounty          int           `db:"shutdown_bounty"`
	KillStreakLength        int           `db:"kill_streak_length"`
	AssistingParticipantIDs pq.Int64Array `db:"assisting_participant_ids"`
	PositionX               int           `db:"position_x"`
	PositionY               int           `db:"position_y"`
}

type victimDamageRow struct {
	ChampionKillID int64  `db:"champion_kill_id"`
	SortIndex      int    `db:"sort_index"`
	Basic          bool   `db:"basic"`
	MagicDamage    int    `db:"magic_damage"`
	PhysicalDamage int    `db:"physical_damage"`
	TrueDamage     int    `db:"true_damage"`
	Name           string `db:"name"`
	ParticipantID  int    `db:"participant_id"`
	SpellName      string `db:"spell_name"`
	SpellSlot      int    `db:"spell_slot"`
	Type           string `db:"type"`
}

type killRecap struct {
	dealt    []timeline.DamageInstance
	received []timeline.DamageInstance
}

// frameEvents fans the events of one frame out to their typed tables.
type frameEvents struct {
	wardPlaced           []wardPlacedRow
	wardKill             []wardKillRow
	itemPurchased        []itemEventRow
	itemDestroyed        []itemEventRow
	itemSold             []itemEventRow
	itemUndo             []itemUndoRow
	skillLevelUp         []skillLevelUpRow
	levelUp              []levelUpRow
	championSpecialKill  []championSpecialKillRow
	turretPlateDestroyed []turretPlateDestroyedRow
	eliteMonsterKill     []eliteMonsterKillRow
	buildingKill         []buildingKillRow
	gameEnd              []gameEndRow
	championKill         []championKillRow
	recaps               map[int]killRecap
	ignored              int
}

func groupFrameEvents(frameID int64, events []timeline.Event) frameEvents {
	out := frameEvents{recaps: make(map[int]killRecap)}
	for idx, event := range events {
		switch e := event.(type) {
		case timeline.WardPlaced:
			out.wardPlaced = append(out.wardPlaced, wardPlacedRow{
				FrameID:   frameID,
				SortIndex: idx,
				Timestamp: e.Timestamp,
				CreatorID: e.CreatorID,
				WardType:  e.WardType,
			})
		case timeline.WardKill:
			out.wardKill = append(out.wardKill, wardKillRow{
				FrameID:   frameID,
				SortIndex: idx,
				Timestamp: e.Timestamp,
				KillerID:  e.KillerID,
				WardType:  e.WardType,
			})
		case timeline.ItemEvent:
			row := itemEventRow{
				FrameID:       frameID,
				SortIndex:     idx,
				Timestamp:     e.Timestamp,
				ItemID:        e.ItemID,
				ParticipantID: e.ParticipantID,
			}
			switch e.Action {
			case timeline.KindItemPurchased:
				out.itemPurchased = append(out.itemPurchased, row)
			case timeline.KindItemDestroyed:
				out.itemDestroyed = append(out.itemDestroyed, row)
			case timeline.KindItemSold:
				out.itemSold = append(out.itemSold, row)
			default:
				out.ignored++
			}
		case timeline.ItemUndo:
			out.itemUndo = append(out.itemUndo, itemUndoRow{
				FrameID:       frameID,
				SortIndex:     idx,
				Timestamp:     e.Timestamp,
				ParticipantID: e.ParticipantID,
				BeforeID:      e.BeforeID,
				AfterID:       e.AfterID,
				GoldGain:      e.GoldGain,
			})
		case timeline.SkillLevelUp:
			out.skillLevelUp = append(out.skillLevelUp, skillLevelUpRow{
				FrameID:       frameID,
				SortIndex:     idx,
				Timestamp:     e.Timestamp,
				ParticipantID: e.ParticipantID,
				LevelUpType:   e.LevelUpType,
				SkillSlot:     e.SkillSlot,
			})
		case timeline.LevelUp:
			out.levelUp = append(out.levelUp, levelUpRow{
				FrameID:       frameID,
				SortIndex:     idx,
				Timestamp:     e.Timestamp,
				ParticipantID: e.ParticipantID,
				Level:         e.Level,
			})
		case timeline.ChampionSpecialKill:
			out.championSpecialKill = append(out.championSpecialKill, championSpecialKillRow{
				FrameID:                 frameID,
				SortIndex:               idx,
				Timestamp:               e.Timestamp,
				KillerID:                e.KillerID,
				KillType:                e.KillType,
				MultiKillLength:         e.MultiKillLength,
				AssistingParticipantIDs: toInt64Array(e.AssistingParticipantIDs),
				PositionX:               e.Position.X,
				PositionY:               e.Position.Y,
			})
		case timeline.TurretPlateDestroyed:
			out.turretPlateDestroyed = append(out.turretPlateDestroyed, turretPlateDestroyedRow{
				FrameID:   frameID,
				SortIndex: idx,
				Timestamp: e.Timestamp,
				KillerID:  e.KillerID,
				LaneType:  e.LaneType,
				TeamID:    e.TeamID,
				PositionX: e.Position.X,
				PositionY: e.Position.Y,
			})
		case timeline.EliteMonsterKill:
			out.eliteMonsterKill = append(out.eliteMonsterKill, eliteMonsterKillRow{
				FrameID:        frameID,
				SortIndex:      idx,
				Timestamp:      e.Timestamp,
				KillerID:       e.KillerID,
				KillerTeamID:   e.KillerTeamID,
				Bounty:         e.Bounty,
				MonsterType:    e.MonsterType,
				MonsterSubType: e.MonsterSubType,
				PositionX:      e.Position.X,
				PositionY:      e.Position.Y,
			})
		case timeline.BuildingKill:
			out.buildingKill = append(out.buildingKill, buildingKillRow{
				FrameID:      frameID,
				SortIndex:    idx,
				Timestamp:    e.Timestamp,
				KillerID:     e.KillerID,
				TeamID:       e.TeamID,
				Bounty:       e.Bounty,
				BuildingType: e.BuildingType,
				LaneType:     e.LaneType,
				TowerType:    e.TowerType,
				PositionX:    e.Position.X,
				PositionY:    e.Position.Y,
			})
		case timeline.GameEnd:
			out.gameEnd = append(out.gameEnd, gameEndRow{
				FrameID:       frameID,
				SortIndex:     idx,
				Timestamp:     e.Timestamp,
				GameID:        e.GameID,
				RealTimestamp: e.RealTimestamp,
				WinningTeam:   e.WinningTeam,
			})
		case timeline.ChampionKill:
			out.championKill = append(out.championKill, championKillRow{
				FrameID:                 frameID,
				SortIndex:               idx,
				Timestamp:               e.Timestamp,
				KillerID:                e.KillerID,
				VictimID:                e.VictimID,
				Bounty:                  e.Bounty,
				ShutdownBounty:          e.ShutdownBounty,
				KillStreakLength:        e.KillStreakLength,
				AssistingParticipantIDs: toInt64Array(e.AssistingParticipantIDs),
				PositionX:               e.Position.X,
				PositionY:               e.Position.Y,
			})
			if len(e.VictimDamageDealt) > 0 || len(e.VictimDamageReceived) > 0 {
				out.recaps[idx] = killRecap{dealt: e.VictimDamageDealt, received: e.VictimDamageReceived}
			}
		default:
			out.ignored++
		}
	}
	return out
}

func toVictimDamageRows(championKillID int64, items []timeline.DamageInstance) []victimDamageRow {
	out := make([]victimDamageRow, 0, len(items))
	for idx, item := range items {
		out = append(out, victimDamageRow{
			ChampionKillID: championKillID,
			SortIndex:      idx,
			Basic:          item.Basic,
			MagicDamage:    item.MagicDamage,
			PhysicalDamage: item.PhysicalDamage,
			TrueDamage:     item.TrueDamage,
			Name:           item.Name,
			ParticipantID:  item.ParticipantID,
			SpellName:      item.SpellName,
			SpellSlot:      item.SpellSlot,
			Type:           item.Type,
		})
	}
	return out
}
