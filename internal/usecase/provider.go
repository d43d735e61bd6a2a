package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	"github.com/riskibarqy/match-ingestion/internal/domain/player"
	"github.com/riskibarqy/match-ingestion/internal/domain/timeline"
)

// MatchProvider fetches single upstream resources. Every method returns the raw outcome:
// ErrThrottled and ErrNotFound are terminal, ErrTransient means the one retry was already spent.
type MatchProvider interface {
	FetchMatch(ctx context.Context, region, externalID string) ([]byte, error)
	FetchTimeline(ctx context.Context, region, externalID string) ([]byte, error)
	FetchMatchIDs(ctx context.Context, region, puuid string, query MatchListQuery) ([]string, error)
	FetchAccountByRiotID(ctx context.Context, region, gameName, tagLine string) (ExternalAccount, error)
	FetchLeagueEntries(ctx context.Context, region, puuid string) ([]player.RankPosition, error)
	FetchLiveGame(ctx context.Context, region, puuid string) (ExternalLiveGame, error)
}

// PayloadValidator turns untrusted payloads into domain records or a *SchemaError.
type PayloadValidator interface {
	ValidateMatch(raw []byte) (match.Aggregate, error)
	ValidateTimeline(raw []byte) (timeline.Timeline, error)
}

type MatchListQuery struct {
	Start     int
	Count     int
	Queues    []int
	StartTime *time.Time
	EndTime   *time.Time
}

type ExternalAccount struct {
	PUUID    string
	GameName string
	TagLine  string
}

type ExternalLiveGame struct {
	GameID        int64
	PlatformID    string
	GameMode      string
	QueueID       int
	EncryptionKey string
	Participants  []ExternalLiveParticipant
}

type ExternalLiveParticipant struct {
	PUUID         string
	SummonerID    string
	RiotID        string
	ChampionID    int
	TeamID        int
	ProfileIconID int
}
