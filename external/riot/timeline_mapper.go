package riot

import (
	"sort"

	"github.com/riskibarqy/match-ingestion/internal/domain/timeline"
)

func (p timelinePayload) toTimeline() timeline.Timeline {
	out := timeline.Timeline{
		MatchExternalID: p.Metadata.MatchID,
		FrameInterval:   *p.Info.FrameInterval,
		Frames:          make([]timeline.Frame, 0, len(p.Info.Frames)),
	}
	for _, frame := range p.Info.Frames {
		out.Frames = append(out.Frames, frame.toFrame())
	}
	return out
}

func (p framePayload) toFrame() timeline.Frame {
	frame := timeline.Frame{
		Timestamp:         *p.Timestamp,
		ParticipantFrames: make([]timeline.ParticipantFrame, 0, len(p.ParticipantFrames)),
		Events:            make([]timeline.Event, 0, len(p.Events)),
	}

	keys := make([]string, 0, len(p.ParticipantFrames))
	for key := range p.ParticipantFrames {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return *p.ParticipantFrames[keys[i]].ParticipantID < *p.ParticipantFrames[keys[j]].ParticipantID
	})
	for _, key := range keys {
		frame.ParticipantFrames = append(frame.ParticipantFrames, p.ParticipantFrames[key].toParticipantFrame())
	}

	for _, event := range p.Events {
		frame.Events = append(frame.Events, event.toEvent())
	}
	return frame
}

func (p participantFramePayload) toParticipantFrame() timeline.ParticipantFrame {
	return timeline.ParticipantFrame{
		ParticipantID:            *p.ParticipantID,
		CurrentGold:              p.CurrentGold,
		GoldPerSecond:            p.GoldPerSecond,
		TotalGold:                p.TotalGold,
		Level:                    p.Level,
		XP:                       p.XP,
		MinionsKilled:            p.MinionsKilled,
		JungleMinionsKilled:      p.JungleMinionsKilled,
		TimeEnemySpentControlled: p.TimeEnemySpentControlled,
		Position:                 timeline.Position(p.Position),
		ChampionStats:            timeline.ChampionStats(p.ChampionStats),
		DamageStats:              timeline.DamageStats(p.DamageStats),
	}
}

// toEvent maps a validated event onto the closed union. Kinds without a table decode to Ignored.
func (p eventPayload) toEvent() timeline.Event {
	at := *p.Timestamp
	position := timeline.Position(p.Position)

	switch kind := timeline.EventKind(p.Type); kind {
	case timeline.KindWardPlaced:
		return timeline.WardPlaced{Timestamp: at, CreatorID: *p.CreatorID, WardType: p.WardType}
	case timeline.KindWardKill:
		return timeline.WardKill{Timestamp: at, KillerID: *p.KillerID, WardType: p.WardType}
	case timeline.KindItemPurchased, timeline.KindItemDestroyed, timeline.KindItemSold:
		return timeline.ItemEvent{Timestamp: at, Action: kind, ItemID: *p.ItemID, ParticipantID: *p.ParticipantID}
	case timeline.KindItemUndo:
		return timeline.ItemUndo{
			Timestamp:     at,
			ParticipantID: *p.ParticipantID,
			BeforeID:      *p.BeforeID,
			AfterID:       *p.AfterID,
			GoldGain:      p.GoldGain,
		}
	case timeline.KindSkillLevelUp:
		return timeline.SkillLevelUp{
			Timestamp:     at,
			ParticipantID: *p.ParticipantID,
			LevelUpType:   p.LevelUpType,
			SkillSlot:     *p.SkillSlot,
		}
	case timeline.KindLevelUp:
		return timeline.LevelUp{Timestamp: at, ParticipantID: *p.ParticipantID, Level: *p.Level}
	case timeline.KindChampionSpecialKill:
		return timeline.ChampionSpecialKill{
			Timestamp:               at,
			KillerID:                *p.KillerID,
			KillType:                p.KillType,
			MultiKillLength:         p.MultiKillLength,
			AssistingParticipantIDs: p.AssistingParticipantIDs,
			Position:                position,
		}
	case timeline.KindTurretPlateDestroyed:
		return timeline.TurretPlateDestroyed{
			Timestamp: at,
			KillerID:  intOrZero(p.KillerID),
			LaneType:  p.LaneType,
			TeamID:    *p.TeamID,
			Position:  position,
		}
	case timeline.KindEliteMonsterKill:
		return timeline.EliteMonsterKill{
			Timestamp:      at,
			KillerID:       *p.KillerID,
			KillerTeamID:   p.KillerTeamID,
			Bounty:         p.Bounty,
			MonsterType:    p.MonsterType,
			MonsterSubType: p.MonsterSubType,
			Position:       position,
		}
	case timeline.KindBuildingKill:
		return timeline.BuildingKill{
			Timestamp:    at,
			KillerID:     intOrZero(p.KillerID),
			TeamID:       *p.TeamID,
			Bounty:       p.Bounty,
			BuildingType: p.BuildingType,
			LaneType:     p.LaneType,
			TowerType:    p.TowerType,
			Position:     position,
		}
	case timeline.KindGameEnd:
		return timeline.GameEnd{
			Timestamp:     at,
			GameID:        p.GameID,
			RealTimestamp: p.RealTimestamp,
			WinningTeam:   *p.WinningTeam,
		}
	case timeline.KindChampionKill:
		return timeline.ChampionKill{
			Timestamp:               at,
			KillerID:                *p.KillerID,
			VictimID:                *p.VictimID,
			Bounty:                  p.Bounty,
			ShutdownBounty:          p.ShutdownBounty,
			KillStreakLength:        p.KillStreakLength,
			AssistingParticipantIDs: p.AssistingParticipantIDs,
			Position:                position,
			VictimDamageDealt:       toDamageInstances(p.VictimDamageDealt),
			VictimDamageReceived:    toDamageInstances(p.VictimDamageReceived),
		}
	default:
		return timeline.Ignored{Timestamp: at, Type: p.Type}
	}
}

func toDamageInstances(items []damageInstancePayload) []timeline.DamageInstance {
	out := make([]timeline.DamageInstance, 0, len(items))
	for _, item := range items {
		out = append(out, timeline.DamageInstance{
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

