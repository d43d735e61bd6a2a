package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	"github.com/riskibarqy/match-ingestion/internal/domain/player"
	"github.com/riskibarqy/match-ingestion/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const (
	defaultRankBackfillWindow = 24 * time.Hour
	defaultRankCheckpointTTL  = 24 * time.Hour
	rankLookupConcurrency     = 10
)

type RankStatus string

const (
	RankStatusApplied        RankStatus = "applied"
	RankStatusAlreadyApplied RankStatus = "already_applied"
	RankStatusTooOld         RankStatus = "too_old"
)

type RankBackfillConfig struct {
	Window        time.Duration
	CheckpointTTL time.Duration
}

type RankBackfillResult struct {
	ExternalID string     `json:"external_id"`
	Status     RankStatus `json:"status"`
	Applied    int        `json:"applied"`
}

// RankService copies current solo-queue ranks onto the participants of recent matches.
type RankService struct {
	provider  MatchProvider
	matchRepo match.Repository
	players   player.Repository
	cfg       RankBackfillConfig
	now       func() time.Time
	logger    *logging.Logger
}

func NewRankService(
	provider MatchProvider,
	matchRepo match.Repository,
	players player.Repository,
	cfg RankBackfillConfig,
	logger *logging.Logger,
) *RankService {
	if cfg.Window <= 0 {
		cfg.Window = defaultRankBackfillWindow
	}
	if cfg.CheckpointTTL <= 0 {
		cfg.CheckpointTTL = defaultRankCheckpointTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &RankService{
		provider:  provider,
		matchRepo: matchRepo,
		players:   players,
		cfg:       cfg,
		now:       time.Now,
		logger:    logger,
	}
}

type rankLookup struct {
	puuid    string
	position player.RankPosition
	found    bool
	err      error
}

// BackfillRanks fills tier and rank for every unranked participant of a match created inside the window.
// Participants that already carry a rank keep it; the call is a no-op once every seat is ranked.
func (s *RankService) BackfillRanks(ctx context.Context, externalID string) (RankBackfillResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankService.BackfillRanks")
	defer span.End()

	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return RankBackfillResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	result := RankBackfillResult{ExternalID: externalID}

	item, exists, err := s.matchRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return result, fmt.Errorf("get match external_id=%s: %w", externalID, err)
	}
	if !exists {
		return result, fmt.Errorf("%w: match external_id=%s", ErrNotFound, externalID)
	}

	now := s.now().UTC()
	if now.Sub(item.CreatedAt()) > s.cfg.Window {
		result.Status = RankStatusTooOld
		return result, nil
	}

	participants, err := s.matchRepo.ListParticipants(ctx, item.ID)
	if err != nil {
		return result, fmt.Errorf("list participants match_id=%d: %w", item.ID, err)
	}

	pending := make([]match.Participant, 0, len(participants))
	for _, participant := range participants {
		if participant.HasRank() || strings.TrimSpace(participant.PUUID) == "" {
			continue
		}
		pending = append(pending, participant)
	}
	if len(pending) == 0 {
		result.Status = RankStatusAlreadyApplied
		return result, nil
	}

	lookups, err := s.lookupRanks(ctx, item.PlatformID, pending)
	if err != nil {
		return result, err
	}

	ranks := make([]match.ParticipantRank, 0, len(pending))
	for _, participant := range pending {
		lookup, ok := lookups[participant.PUUID]
		if !ok {
			continue
		}
		if lookup.err != nil {
			s.logger.WarnContext(ctx, "rank lookup failed", "puuid", participant.PUUID, "error", lookup.err)
			continue
		}
		if !lookup.found {
			continue
		}
		ranks = append(ranks, match.ParticipantRank{
			ParticipantID: participant.ID,
			Tier:          lookup.position.Tier,
			Rank:          lookup.position.Rank,
		})
	}

	if len(ranks) > 0 {
		if err := s.matchRepo.SetParticipantRanks(ctx, ranks); err != nil {
			return result, fmt.Errorf("set participant ranks match_id=%d: %w", item.ID, err)
		}
	}
	result.Status = RankStatusApplied
	result.Applied = len(ranks)
	return result, nil
}

// lookupRanks resolves the solo-queue position of every pending participant concurrently.
func (s *RankService) lookupRanks(ctx context.Context, platformID string, pending []match.Participant) (map[string]rankLookup, error) {
	puuids := make([]string, 0, len(pending))
	for _, participant := range pending {
		puuids = append(puuids, participant.PUUID)
	}
	known, err := s.players.ListByPUUIDs(ctx, puuids)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	byPUUID := make(map[string]player.Player, len(known))
	for _, item := range known {
		byPUUID[item.PUUID] = item
	}

	region := strings.ToLower(platformID)
	tasks := pool.NewWithResults[rankLookup]().WithMaxGoroutines(rankLookupConcurrency)
	for _, participant := range pending {
		candidate, ok := byPUUID[participant.PUUID]
		if !ok {
			continue
		}
		tasks.Go(func() rankLookup {
			position, found, err := s.currentSoloRank(ctx, region, candidate)
			return rankLookup{puuid: candidate.PUUID, position: position, found: found, err: err}
		})
	}

	out := make(map[string]rankLookup, len(pending))
	for _, lookup := range tasks.Wait() {
		out[lookup.puuid] = lookup
	}
	return out, nil
}

// currentSoloRank reuses a fresh checkpoint or records a new one from the league API.
func (s *RankService) currentSoloRank(ctx context.Context, region string, item player.Player) (player.RankPosition, bool, error) {
	checkpoint, exists, err := s.players.LatestRankCheckpoint(ctx, item.ID)
	if err != nil {
		return player.RankPosition{}, false, fmt.Errorf("latest rank checkpoint player_id=%d: %w", item.ID, err)
	}

	if !exists || !checkpoint.FreshAt(s.now().UTC(), s.cfg.CheckpointTTL) {
		if item.Region != "" {
			region = item.Region
		}
		positions, err := s.provider.FetchLeagueEntries(ctx, region, item.PUUID)
		if err != nil {
			return player.RankPosition{}, false, err
		}
		checkpoint, err = s.players.SaveRankCheckpoint(ctx, player.RankCheckpoint{
			PlayerID:  item.ID,
			CreatedAt: s.now().UTC(),
			Positions: positions,
		})
		if err != nil {
			return player.RankPosition{}, false, fmt.Errorf("save rank checkpoint player_id=%d: %w", item.ID, err)
		}
	}

	position, found := checkpoint.SoloQueue()
	return position, found, nil
}
