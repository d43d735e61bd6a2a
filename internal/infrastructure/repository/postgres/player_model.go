package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/match-ingestion/internal/domain/player"
)

type playerTableModel struct {
	ID                int64          `db:"id"`
	PUUID             string         `db:"puuid"`
	SummonerID        sql.NullString `db:"summoner_id"`
	Name              string         `db:"name"`
	SimpleName        string         `db:"simple_name"`
	Region            string         `db:"region"`
	ProfileIconID     int            `db:"profile_icon_id"`
	FullImportCount   int            `db:"full_import_count"`
	RankedImportCount int            `db:"ranked_import_count"`
	LastBulkImportAt  *time.Time     `db:"last_bulk_import_at"`
}

type playerInsertModel struct {
	PUUID         string         `db:"puuid"`
	SummonerID    sql.NullString `db:"summoner_id"`
	Name          string         `db:"name"`
	SimpleName    string         `db:"simple_name"`
	Region        string         `db:"region"`
	ProfileIconID int            `db:"profile_icon_id"`
}

var playerSelectColumns = []string{
	"id",
	"puuid",
	"summoner_id",
	"name",
	"simple_name",
	"region",
	"profile_icon_id",
	"full_import_count",
	"ranked_import_count",
	"last_bulk_import_at",
}

func toPlayerInsertModel(item player.Player) playerInsertModel {
	return playerInsertModel{
		PUUID:         item.PUUID,
		SummonerID:    sql.NullString{String: item.SummonerID, Valid: item.SummonerID != ""},
		Name:          item.Name,
		SimpleName:    item.SimpleName,
		Region:        item.Region,
		ProfileIconID: item.ProfileIconID,
	}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:                m.ID,
		PUUID:             m.PUUID,
		SummonerID:        m.SummonerID.String,
		Name:              m.Name,
		SimpleName:        m.SimpleName,
		Region:            m.Region,
		ProfileIconID:     m.ProfileIconID,
		FullImportCount:   m.FullImportCount,
		RankedImportCount: m.RankedImportCount,
		LastBulkImportAt:  m.LastBulkImportAt,
	}
}

type rankCheckpointModel struct {
	ID        int64     `db:"id"`
	PlayerID  int64     `db:"player_id"`
	CreatedAt time.Time `db:"created_at"`
}

type rankPositionModel struct {
	CheckpointID int64  `db:"checkpoint_id"`
	QueueType    string `db:"queue_type"`
	Tier         string `db:"tier"`
	Rank         string `db:"rank"`
	LeaguePoints int    `db:"league_points"`
	Wins         int    `db:"wins"`
	Losses       int    `db:"losses"`
}
