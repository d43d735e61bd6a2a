package app

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/match-ingestion/external/riot"
	"github.com/riskibarqy/match-ingestion/internal/config"
	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	"github.com/riskibarqy/match-ingestion/internal/domain/player"
	"github.com/riskibarqy/match-ingestion/internal/domain/rollup"
	"github.com/riskibarqy/match-ingestion/internal/domain/spectate"
	"github.com/riskibarqy/match-ingestion/internal/domain/timeline"
	"github.com/riskibarqy/match-ingestion/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/match-ingestion/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/match-ingestion/internal/infrastructure/repository/postgres"
	idgen "github.com/riskibarqy/match-ingestion/internal/platform/id"
	"github.com/riskibarqy/match-ingestion/internal/platform/logging"
	"github.com/riskibarqy/match-ingestion/internal/usecase"
)

// Services is the use-case graph every ingest command runs against.
type Services struct {
	Matches   *usecase.MatchImportService
	Windows   *usecase.BatchImportService
	Backfill  *usecase.BackfillService
	Timelines *usecase.TimelineService
	Ranks     *usecase.RankService
	Rollups   *usecase.RollupService
	Queries   *usecase.MatchQueryService
	LiveGames *usecase.LiveGameService

	closeFn func() error
}

func (s *Services) Close() error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

type repositories struct {
	matches   match.Repository
	timelines timeline.Repository
	players   player.Repository
	rollups   rollup.Repository
	spectates spectate.Repository
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		matches:   postgres.NewMatchRepository(db),
		timelines: postgres.NewTimelineRepository(db),
		players:   postgres.NewPlayerRepository(db),
		rollups:   postgres.NewRollupRepository(db),
		spectates: postgres.NewSpectateRepository(db),
	}
}

func memoryRepositories() repositories {
	matches := memory.NewMatchRepository()
	return repositories{
		matches:   matches,
		timelines: memory.NewTimelineRepository(matches),
		players:   memory.NewPlayerRepository(),
		rollups:   memory.NewRollupRepository(matches),
		spectates: memory.NewSpectateRepository(),
	}
}

// NewServices builds the service graph. Without DB_URL the repositories are kept in memory,
// which only makes sense for a single dev run.
func NewServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		repos   repositories
		closeFn func() error
	)
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Warn("DB_URL empty, using in-memory repositories")
		repos = memoryRepositories()
	} else {
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		repos = postgresRepositories(db)
		closeFn = db.Close
	}

	client := riot.NewClient(riot.ClientConfig{
		BaseURL:      cfg.RiotBaseURL,
		APIKey:       cfg.RiotAPIKey,
		Timeout:      cfg.RiotTimeout,
		RetryBackoff: cfg.RiotRetryBackoff,
		Logger:       logger,
	})

	services := newServices(cfg, client, repos, logger)
	services.closeFn = closeFn
	return services, nil
}

func newServices(cfg config.Config, provider usecase.MatchProvider, repos repositories, logger *logging.Logger) *Services {
	rollups := repos.rollups
	if cfg.RollupCacheEnabled {
		rollups = cache.NewRollupRepository(rollups, cfg.RollupCacheTTL)
	}

	validator := riot.NewValidator()
	matches := usecase.NewMatchImportService(provider, validator, repos.matches, repos.players, logger)
	windows := usecase.NewBatchImportService(
		provider,
		repos.matches,
		matches,
		idgen.NewUUIDGenerator(),
		usecase.BatchImportConfig{PageSize: cfg.ImportPageSize, Workers: cfg.ImportWorkers},
		logger,
	)

	return &Services{
		Matches: matches,
		Windows: windows,
		Backfill: usecase.NewBackfillService(provider, repos.players, windows, usecase.BackfillConfig{
			TargetTotal:  cfg.ImportTargetTotal,
			RankedQueues: cfg.ImportRankedQueues,
			BulkInterval: cfg.BulkImportInterval,
			BulkCount:    cfg.BulkImportCount,
			BulkOffset:   cfg.BulkImportOffset,
		}, logger),
		Timelines: usecase.NewTimelineService(provider, validator, repos.matches, repos.timelines, logger),
		Ranks: usecase.NewRankService(provider, repos.matches, repos.players, usecase.RankBackfillConfig{
			Window:        cfg.RankBackfillWindow,
			CheckpointTTL: cfg.RankCheckpointTTL,
		}, logger),
		Rollups:   usecase.NewRollupService(rollups),
		Queries:   usecase.NewMatchQueryService(repos.matches),
		LiveGames: usecase.NewLiveGameService(provider, repos.spectates, repos.players, logger),
	}
}
