package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/match-ingestion/internal/platform/id"
	"github.com/riskibarqy/match-ingestion/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultImportPageSize = 100
	defaultImportWorkers  = 50
)

type BatchImportConfig struct {
	PageSize int
	Workers  int
}

type WindowInput struct {
	PUUID     string
	Region    string
	Start     int
	End       int
	Queues    []int
	StartTime *time.Time
	EndTime   *time.Time
	Refresh   bool
}

// WindowResult reports how many matches a window added. Complete is false when
// pagination stopped early on a throttle or transient failure.
type WindowResult struct {
	RunID     string `json:"run_id"`
	Imported  int    `json:"imported"`
	Pages     int    `json:"pages"`
	Complete  bool   `json:"complete"`
	Throttled bool   `json:"throttled"`
}

type existingMatchLookup interface {
	ExistingExternalIDs(ctx context.Context, externalIDs []string) ([]string, error)
}

type payloadPersister interface {
	PersistPayload(ctx context.Context, region string, raw []byte, refresh bool) (MatchImportResult, error)
}

// BatchImportService walks a player's match list page by page and imports the ids the store does not hold yet.
type BatchImportService struct {
	provider  MatchProvider
	existing  existingMatchLookup
	persister payloadPersister
	ids       id.Generator
	cfg       BatchImportConfig
	logger    *logging.Logger
}

func NewBatchImportService(
	provider MatchProvider,
	existing existingMatchLookup,
	persister payloadPersister,
	ids id.Generator,
	cfg BatchImportConfig,
	logger *logging.Logger,
) *BatchImportService {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultImportPageSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultImportWorkers
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BatchImportService{
		provider:  provider,
		existing:  existing,
		persister: persister,
		ids:       ids,
		cfg:       cfg,
		logger:    logger,
	}
}

// ImportWindow imports the match ids at list positions [Start, End).
// A throttled page stops pagination without an error; a transient page failure is returned with the partial count.
func (s *BatchImportService) ImportWindow(ctx context.Context, input WindowInput) (WindowResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BatchImportService.ImportWindow",
		attribute.String("player.puuid", input.PUUID),
		attribute.Int("window.start", input.Start),
		attribute.Int("window.end", input.End),
	)
	defer span.End()

	input.PUUID = strings.TrimSpace(input.PUUID)
	if input.PUUID == "" {
		return WindowResult{}, fmt.Errorf("%w: puuid is required", ErrInvalidInput)
	}
	if input.Start < 0 || input.End < input.Start {
		return WindowResult{}, fmt.Errorf("%w: invalid window start=%d end=%d", ErrInvalidInput, input.Start, input.End)
	}

	runID, err := s.ids.NewID()
	if err != nil {
		return WindowResult{}, err
	}
	logger := s.logger.With("run_id", runID, "puuid", input.PUUID, "region", input.Region)
	logger.InfoContext(ctx, "import window started", "start", input.Start, "end", input.End)

	result := WindowResult{RunID: runID}
	index := input.Start
	for index < input.End {
		size := s.cfg.PageSize
		if index+size > input.End {
			size = input.End - index
		}

		ids, err := s.provider.FetchMatchIDs(ctx, input.Region, input.PUUID, MatchListQuery{
			Start:     index,
			Count:     size,
			Queues:    input.Queues,
			StartTime: input.StartTime,
			EndTime:   input.EndTime,
		})
		switch {
		case errors.Is(err, ErrThrottled):
			logger.WarnContext(ctx, "match list throttled, stopping window", "index", index, "imported", result.Imported)
			result.Throttled = true
			return result, nil
		case errors.Is(err, ErrNotFound):
			ids = nil
		case err != nil:
			return result, fmt.Errorf("fetch match list start=%d count=%d: %w", index, size, err)
		}
		result.Pages++

		if len(ids) == 0 {
			result.Complete = true
			break
		}

		candidates := ids
		if !input.Refresh {
			candidates, err = s.novelIDs(ctx, ids)
			if err != nil {
				return result, err
			}
		}

		imported, throttled, err := s.importPage(ctx, logger, input.Region, candidates, input.Refresh)
		result.Imported += imported
		if err != nil {
			return result, err
		}
		logger.InfoContext(ctx, "import window page done",
			"index", index,
			"listed", len(ids),
			"candidates", len(candidates),
			"imported", imported,
		)
		if throttled {
			logger.WarnContext(ctx, "match fetch throttled, stopping window", "index", index, "imported", result.Imported)
			result.Throttled = true
			return result, nil
		}

		index += size
	}
	if index >= input.End {
		result.Complete = true
	}

	logger.InfoContext(ctx, "import window finished", "imported", result.Imported, "pages", result.Pages)
	return result, nil
}

// novelIDs drops ids the store already holds with one bulk lookup.
func (s *BatchImportService) novelIDs(ctx context.Context, ids []string) ([]string, error) {
	existing, err := s.existing.ExistingExternalIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("check existing matches: %w", err)
	}

	stored := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		stored[item] = struct{}{}
	}

	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, item := range ids {
		if _, ok := stored[item]; ok {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out, nil
}

func (s *BatchImportService) importPage(
	ctx context.Context,
	logger *logging.Logger,
	region string,
	externalIDs []string,
	refresh bool,
) (int, bool, error) {
	if len(externalIDs) == 0 {
		return 0, false, nil
	}

	workerCount := s.cfg.Workers
	if workerCount > len(externalIDs) {
		workerCount = len(externalIDs)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return 0, false, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan ImportStatus, len(externalIDs))
	var importedCount atomic.Int32
	var throttled atomic.Bool

	var workers sync.WaitGroup
	for _, externalID := range externalIDs {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			status := s.importOne(ctx, logger, region, externalID, refresh)
			switch {
			case status.Counts():
				importedCount.Add(1)
			case status == ImportStatusThrottled:
				throttled.Store(true)
			}
			results <- status
		}); err != nil {
			workers.Done()
			return int(importedCount.Load()), throttled.Load(), fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	statuses := make(map[ImportStatus]int, 4)
	for status := range results {
		statuses[status]++
	}
	if len(statuses) > 1 || statuses[ImportStatusImported] != len(externalIDs) {
		logger.InfoContext(ctx, "import page statuses", "statuses", statuses)
	}

	return int(importedCount.Load()), throttled.Load(), nil
}

func (s *BatchImportService) importOne(ctx context.Context, logger *logging.Logger, region, externalID string, refresh bool) ImportStatus {
	raw, err := s.provider.FetchMatch(ctx, region, externalID)
	switch {
	case errors.Is(err, ErrThrottled):
		return ImportStatusThrottled
	case errors.Is(err, ErrNotFound):
		logger.InfoContext(ctx, "match no longer available", "external_id", externalID)
		return ImportStatusNotFound
	case err != nil:
		logger.WarnContext(ctx, "fetch match failed", "external_id", externalID, "error", err)
		return ImportStatusFailed
	}

	result, err := s.persister.PersistPayload(ctx, region, raw, refresh)
	if err != nil {
		if errors.Is(err, ErrSchema) {
			return ImportStatusInvalid
		}
		logger.ErrorContext(ctx, "persist match failed", "external_id", externalID, "error", err)
		return ImportStatusFailed
	}
	return result.Status
}
