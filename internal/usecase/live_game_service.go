package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	"github.com/riskibarqy/match-ingestion/internal/domain/player"
	"github.com/riskibarqy/match-ingestion/internal/domain/spectate"
	"github.com/riskibarqy/match-ingestion/internal/platform/logging"
)

type LiveGameResult struct {
	GameID       int64 `json:"game_id"`
	Recorded     bool  `json:"recorded"`
	Participants int   `json:"participants"`
}

// LiveGameService records the spectator handle of a player's ongoing game.
type LiveGameService struct {
	provider  MatchProvider
	spectates spectate.Repository
	players   playerRegistrar
	now       func() time.Time
	logger    *logging.Logger
}

func NewLiveGameService(provider MatchProvider, spectates spectate.Repository, players playerRegistrar, logger *logging.Logger) *LiveGameService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LiveGameService{
		provider:  provider,
		spectates: spectates,
		players:   players,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *LiveGameService) ImportLiveGame(ctx context.Context, region, puuid string) (LiveGameResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveGameService.ImportLiveGame")
	defer span.End()

	region = strings.ToLower(strings.TrimSpace(region))
	puuid = strings.TrimSpace(puuid)
	if region == "" || puuid == "" {
		return LiveGameResult{}, fmt.Errorf("%w: region and puuid are required", ErrInvalidInput)
	}

	game, err := s.provider.FetchLiveGame(ctx, region, puuid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return LiveGameResult{}, fmt.Errorf("%w: no live game for puuid=%s", ErrNotFound, puuid)
		}
		return LiveGameResult{}, err
	}

	recorded, err := s.spectates.Save(ctx, spectate.Spectate{
		GameID:        game.GameID,
		Region:        region,
		PlatformID:    game.PlatformID,
		EncryptionKey: game.EncryptionKey,
		CreatedAt:     s.now().UTC(),
	})
	if err != nil {
		return LiveGameResult{}, fmt.Errorf("save spectate game_id=%d: %w", game.GameID, err)
	}

	players := make([]player.Player, 0, len(game.Participants))
	for _, participant := range game.Participants {
		if strings.TrimSpace(participant.PUUID) == "" {
			continue
		}
		name, _, _ := strings.Cut(participant.RiotID, "#")
		players = append(players, player.Player{
			PUUID:         participant.PUUID,
			SummonerID:    participant.SummonerID,
			Name:          name,
			SimpleName:    match.SimplifyName(name),
			Region:        region,
			ProfileIconID: participant.ProfileIconID,
		})
	}
	if len(players) > 0 && s.players != nil {
		if err := s.players.InsertIgnoreConflicts(ctx, players); err != nil {
			return LiveGameResult{}, fmt.Errorf("register live participants game_id=%d: %w", game.GameID, err)
		}
	}

	s.logger.InfoContext(ctx, "live game recorded", "game_id", game.GameID, "new", recorded, "participants", len(players))
	return LiveGameResult{GameID: game.GameID, Recorded: recorded, Participants: len(players)}, nil
}
