package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	"github.com/riskibarqy/match-ingestion/internal/domain/player"
	"github.com/riskibarqy/match-ingestion/internal/platform/logging"
)

const (
	defaultImportTargetTotal = 100
	defaultBulkInterval      = 24 * time.Hour
	defaultBulkCount         = 200
	defaultBulkOffset        = 10
)

var defaultRankedQueues = []int{420, 440, 470}

type BackfillConfig struct {
	TargetTotal  int
	RankedQueues []int
	BulkInterval time.Duration
	BulkCount    int
	BulkOffset   int
}

// PlayerRef names a player either by Riot id ("name#tag") or by puuid.
type PlayerRef struct {
	Name   string
	PUUID  string
	Region string
}

type BulkImportInput struct {
	PUUID    string
	Interval time.Duration
	Count    int
	Offset   int
}

type BulkImportResult struct {
	Due    bool         `json:"due"`
	Window WindowResult `json:"window"`
}

type windowImporter interface {
	ImportWindow(ctx context.Context, input WindowInput) (WindowResult, error)
}

// BackfillService applies the per-player import policies on top of the window importer.
type BackfillService struct {
	provider MatchProvider
	players  player.Repository
	windows  windowImporter
	cfg      BackfillConfig
	now      func() time.Time
	logger   *logging.Logger
}

func NewBackfillService(
	provider MatchProvider,
	players player.Repository,
	windows windowImporter,
	cfg BackfillConfig,
	logger *logging.Logger,
) *BackfillService {
	if cfg.TargetTotal <= 0 {
		cfg.TargetTotal = defaultImportTargetTotal
	}
	if len(cfg.RankedQueues) == 0 {
		cfg.RankedQueues = append([]int(nil), defaultRankedQueues...)
	}
	if cfg.BulkInterval <= 0 {
		cfg.BulkInterval = defaultBulkInterval
	}
	if cfg.BulkCount <= 0 {
		cfg.BulkCount = defaultBulkCount
	}
	if cfg.BulkOffset < 0 {
		cfg.BulkOffset = defaultBulkOffset
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BackfillService{
		provider: provider,
		players:  players,
		windows:  windows,
		cfg:      cfg,
		now:      time.Now,
		logger:   logger,
	}
}

// FullImport imports the part of the player's history the full watermark has not covered yet.
func (s *BackfillService) FullImport(ctx context.Context, ref PlayerRef) (WindowResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackfillService.FullImport")
	defer span.End()

	return s.importWithPolicy(ctx, ref, player.ImportPolicyFull, nil)
}

// RankedImport is FullImport restricted to the ranked queues, tracked by its own watermark.
func (s *BackfillService) RankedImport(ctx context.Context, ref PlayerRef) (WindowResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackfillService.RankedImport")
	defer span.End()

	return s.importWithPolicy(ctx, ref, player.ImportPolicyRanked, s.cfg.RankedQueues)
}

func (s *BackfillService) importWithPolicy(ctx context.Context, ref PlayerRef, policy player.ImportPolicy, queues []int) (WindowResult, error) {
	item, err := s.resolvePlayer(ctx, ref)
	if err != nil {
		return WindowResult{}, err
	}

	remaining := s.cfg.TargetTotal - item.ImportCount(policy)
	if remaining <= 0 {
		s.logger.InfoContext(ctx, "import watermark already reached", "puuid", item.PUUID, "policy", policy)
		return WindowResult{Complete: true}, nil
	}

	s.logger.InfoContext(ctx, "importing matches for player",
		"puuid", item.PUUID,
		"name", item.Name,
		"policy", policy,
		"remaining", remaining,
	)
	result, err := s.windows.ImportWindow(ctx, WindowInput{
		PUUID:  item.PUUID,
		Region: item.Region,
		Start:  0,
		End:    remaining,
		Queues: queues,
	})
	if err != nil {
		return result, err
	}
	if !result.Complete {
		return result, nil
	}

	if err := s.players.SetImportWatermark(ctx, item.ID, policy, s.cfg.TargetTotal); err != nil {
		return result, fmt.Errorf("set import watermark player_id=%d: %w", item.ID, err)
	}
	return result, nil
}

// BulkImport imports [Offset, Offset+Count) when the player's last bulk import is older than Interval.
// The import time is stamped before the window runs so overlapping triggers do not repeat it.
func (s *BackfillService) BulkImport(ctx context.Context, input BulkImportInput) (BulkImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackfillService.BulkImport")
	defer span.End()

	puuid := strings.TrimSpace(input.PUUID)
	if puuid == "" {
		return BulkImportResult{}, fmt.Errorf("%w: puuid is required", ErrInvalidInput)
	}
	interval := input.Interval
	if interval <= 0 {
		interval = s.cfg.BulkInterval
	}
	count := input.Count
	if count <= 0 {
		count = s.cfg.BulkCount
	}
	offset := input.Offset
	if offset < 0 {
		offset = s.cfg.BulkOffset
	}

	item, exists, err := s.players.GetByPUUID(ctx, puuid)
	if err != nil {
		return BulkImportResult{}, fmt.Errorf("get player puuid=%s: %w", puuid, err)
	}
	if !exists {
		return BulkImportResult{}, fmt.Errorf("%w: player puuid=%s", ErrNotFound, puuid)
	}

	now := s.now().UTC()
	if !item.BulkImportDue(now, interval) {
		return BulkImportResult{}, nil
	}
	if err := s.players.TouchBulkImport(ctx, item.ID, now); err != nil {
		return BulkImportResult{}, fmt.Errorf("stamp bulk import player_id=%d: %w", item.ID, err)
	}

	s.logger.InfoContext(ctx, "bulk import started", "puuid", puuid, "count", count, "offset", offset)
	window, err := s.windows.ImportWindow(ctx, WindowInput{
		PUUID:  puuid,
		Region: item.Region,
		Start:  offset,
		End:    offset + count,
	})
	return BulkImportResult{Due: true, Window: window}, err
}

// resolvePlayer finds or creates the player behind ref. A name is looked up through the account API.
func (s *BackfillService) resolvePlayer(ctx context.Context, ref PlayerRef) (player.Player, error) {
	region := strings.ToLower(strings.TrimSpace(ref.Region))
	if region == "" {
		return player.Player{}, fmt.Errorf("%w: region is required", ErrInvalidInput)
	}

	puuid := strings.TrimSpace(ref.PUUID)
	name := strings.TrimSpace(ref.Name)
	switch {
	case name != "":
		gameName, tagLine, ok := strings.Cut(name, "#")
		if !ok || strings.TrimSpace(gameName) == "" || strings.TrimSpace(tagLine) == "" {
			return player.Player{}, fmt.Errorf("%w: name must look like gameName#tagLine", ErrInvalidInput)
		}
		account, err := s.provider.FetchAccountByRiotID(ctx, region, strings.TrimSpace(gameName), strings.TrimSpace(tagLine))
		if err != nil {
			return player.Player{}, fmt.Errorf("resolve account name=%s: %w", name, err)
		}
		display := account.GameName
		if display == "" {
			display = gameName
		}
		item, err := s.players.Upsert(ctx, player.Player{
			PUUID:      account.PUUID,
			Name:       display,
			SimpleName: match.SimplifyName(display),
			Region:     region,
		})
		if err != nil {
			return player.Player{}, fmt.Errorf("upsert player puuid=%s: %w", account.PUUID, err)
		}
		return item, nil
	case puuid != "":
		item, exists, err := s.players.GetByPUUID(ctx, puuid)
		if err != nil {
			return player.Player{}, fmt.Errorf("get player puuid=%s: %w", puuid, err)
		}
		if exists {
			return item, nil
		}
		item, err = s.players.Upsert(ctx, player.Player{PUUID: puuid, Region: region})
		if err != nil {
			return player.Player{}, fmt.Errorf("upsert player puuid=%s: %w", puuid, err)
		}
		return item, nil
	default:
		return player.Player{}, fmt.Errorf("%w: name or puuid must be provided", ErrInvalidInput)
	}
}

// IsTerminalImportError reports errors after which retrying the same unit of work is pointless.
func IsTerminalImportError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrUpstreamRejected)
}
