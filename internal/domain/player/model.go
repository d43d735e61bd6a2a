package player

import (
	"fmt"
	"strings"
	"time"
)

// ImportPolicy selects which watermark a window import advances.
type ImportPolicy string

const (
	ImportPolicyFull   ImportPolicy = "full"
	ImportPolicyRanked ImportPolicy = "ranked"
)

const QueueRankedSolo = "RANKED_SOLO_5x5"

// Player is a long-lived identity referenced by participants.
type Player struct {
	ID                int64
	PUUID             string
	SummonerID        string
	Name              string
	SimpleName        string
	Region            string
	ProfileIconID     int
	FullImportCount   int
	RankedImportCount int
	LastBulkImportAt  *time.Time
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.PUUID) == "" {
		return fmt.Errorf("player puuid is required")
	}
	if strings.TrimSpace(p.Region) == "" {
		return fmt.Errorf("player region is required")
	}
	return nil
}

// ImportCount returns the watermark tracked for a policy.
func (p Player) ImportCount(policy ImportPolicy) int {
	switch policy {
	case ImportPolicyRanked:
		return p.RankedImportCount
	default:
		return p.FullImportCount
	}
}

// BulkImportDue reports whether the last bulk import is older than interval.
func (p Player) BulkImportDue(now time.Time, interval time.Duration) bool {
	if p.LastBulkImportAt == nil {
		return true
	}
	return now.Sub(*p.LastBulkImportAt) >= interval
}

// RankPosition is one ladder entry at checkpoint time.
type RankPosition struct {
	QueueType    string
	Tier         string
	Rank         string
	LeaguePoints int
	Wins         int
	Losses       int
}

// RankCheckpoint snapshots every ladder position of a player.
type RankCheckpoint struct {
	ID        int64
	PlayerID  int64
	CreatedAt time.Time
	Positions []RankPosition
}

// SoloQueue returns the solo ladder entry when the player holds one.
func (c RankCheckpoint) SoloQueue() (RankPosition, bool) {
	for _, item := range c.Positions {
		if item.QueueType == QueueRankedSolo {
			return item, true
		}
	}
	return RankPosition{}, false
}

func (c RankCheckpoint) FreshAt(now time.Time, ttl time.Duration) bool {
	return !c.CreatedAt.IsZero() && now.Sub(c.CreatedAt) < ttl
}
