package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	"github.com/riskibarqy/match-ingestion/internal/domain/player"
	"github.com/riskibarqy/match-ingestion/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type ImportStatus string

const (
	ImportStatusImported        ImportStatus = "imported"
	ImportStatusReplaced        ImportStatus = "replaced"
	ImportStatusAlreadyImported ImportStatus = "already_imported"
	ImportStatusSkipped         ImportStatus = "skipped"
	ImportStatusInvalid         ImportStatus = "invalid"
	ImportStatusThrottled       ImportStatus = "throttled"
	ImportStatusNotFound        ImportStatus = "not_found"
	ImportStatusFailed          ImportStatus = "failed"
)

// Counts reports whether the status added a match to the store.
func (s ImportStatus) Counts() bool {
	return s == ImportStatusImported || s == ImportStatusReplaced
}

type MatchImportResult struct {
	ExternalID string       `json:"external_id"`
	MatchID    int64        `json:"match_id,omitempty"`
	Status     ImportStatus `json:"status"`
}

type playerRegistrar interface {
	InsertIgnoreConflicts(ctx context.Context, items []player.Player) error
}

// MatchImportService fetches, validates and persists single matches.
type MatchImportService struct {
	provider  MatchProvider
	validator PayloadValidator
	matchRepo match.Repository
	players   playerRegistrar
	logger    *logging.Logger
}

func NewMatchImportService(
	provider MatchProvider,
	validator PayloadValidator,
	matchRepo match.Repository,
	players playerRegistrar,
	logger *logging.Logger,
) *MatchImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchImportService{
		provider:  provider,
		validator: validator,
		matchRepo: matchRepo,
		players:   players,
		logger:    logger,
	}
}

// ImportMatch imports one match by external id. A stored match is not fetched again unless refresh is set.
// Throttled and not-found outcomes come back as a status together with the matching sentinel error.
func (s *MatchImportService) ImportMatch(ctx context.Context, region, externalID string, refresh bool) (MatchImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchImportService.ImportMatch",
		attribute.String("match.external_id", externalID),
		attribute.String("match.region", region),
	)
	defer span.End()

	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return MatchImportResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	result := MatchImportResult{ExternalID: externalID}

	if !refresh {
		existing, exists, err := s.matchRepo.GetByExternalID(ctx, externalID)
		if err != nil {
			return result, fmt.Errorf("get match external_id=%s: %w", externalID, err)
		}
		if exists {
			result.MatchID = existing.ID
			result.Status = ImportStatusAlreadyImported
			return result, nil
		}
	}

	raw, err := s.provider.FetchMatch(ctx, region, externalID)
	switch {
	case errors.Is(err, ErrThrottled):
		result.Status = ImportStatusThrottled
		return result, err
	case errors.Is(err, ErrNotFound):
		result.Status = ImportStatusNotFound
		return result, err
	case err != nil:
		return result, err
	}

	return s.PersistPayload(ctx, region, raw, refresh)
}

// PersistPayload validates a fetched match and writes it atomically.
// Schema errors are reported as ImportStatusInvalid with the *SchemaError attached.
func (s *MatchImportService) PersistPayload(ctx context.Context, region string, raw []byte, refresh bool) (MatchImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchImportService.PersistPayload")
	defer span.End()

	aggregate, err := s.validator.ValidateMatch(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "match payload rejected", "region", region, "error", err)
		return MatchImportResult{Status: ImportStatusInvalid}, err
	}

	result := MatchImportResult{ExternalID: aggregate.Match.ExternalID}
	if aggregate.Match.IsTutorial() {
		result.Status = ImportStatusSkipped
		s.logger.InfoContext(ctx, "tutorial match skipped", "external_id", result.ExternalID, "game_mode", aggregate.Match.GameMode)
		return result, nil
	}

	matchID, err := s.matchRepo.Create(ctx, aggregate)
	switch {
	case errors.Is(err, match.ErrDuplicate) && refresh:
		matchID, err = s.matchRepo.Replace(ctx, aggregate)
		if err != nil {
			return result, fmt.Errorf("replace match external_id=%s: %w", result.ExternalID, err)
		}
		result.Status = ImportStatusReplaced
	case errors.Is(err, match.ErrDuplicate):
		s.logger.InfoContext(ctx, "match already imported", "external_id", result.ExternalID)
		result.Status = ImportStatusAlreadyImported
		return result, nil
	case err != nil:
		return result, fmt.Errorf("create match external_id=%s: %w", result.ExternalID, err)
	default:
		result.Status = ImportStatusImported
	}
	result.MatchID = matchID

	if err := s.registerPlayers(ctx, region, aggregate); err != nil {
		s.logger.WarnContext(ctx, "register match participants failed", "external_id", result.ExternalID, "error", err)
	}
	return result, nil
}

func (s *MatchImportService) registerPlayers(ctx context.Context, region string, aggregate match.Aggregate) error {
	if s.players == nil {
		return nil
	}

	region = strings.ToLower(strings.TrimSpace(region))
	if region == "" {
		region = strings.ToLower(aggregate.Match.PlatformID)
	}

	items := make([]player.Player, 0, len(aggregate.Participants))
	for _, participant := range aggregate.Participants {
		if strings.TrimSpace(participant.PUUID) == "" {
			continue
		}
		items = append(items, player.Player{
			PUUID:      participant.PUUID,
			SummonerID: participant.SummonerID,
			Name:       participant.DisplayName(),
			SimpleName: participant.SimpleName(),
			Region:     region,
		})
	}
	if len(items) == 0 {
		return nil
	}
	return s.players.InsertIgnoreConflicts(ctx, items)
}
