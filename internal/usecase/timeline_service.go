package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	"github.com/riskibarqy/match-ingestion/internal/domain/timeline"
	"github.com/riskibarqy/match-ingestion/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type TimelineStatus string

const (
	TimelineStatusImported      TimelineStatus = "imported"
	TimelineStatusReplaced      TimelineStatus = "replaced"
	TimelineStatusAlreadyExists TimelineStatus = "already_exists"
	TimelineStatusInvalid       TimelineStatus = "invalid"
	TimelineStatusThrottled     TimelineStatus = "throttled"
	TimelineStatusNotFound      TimelineStatus = "not_found"
)

type TimelineImportResult struct {
	ExternalID string                     `json:"external_id"`
	Status     TimelineStatus             `json:"status"`
	Frames     int                        `json:"frames"`
	Events     map[timeline.EventKind]int `json:"events,omitempty"`
}

type matchLookup interface {
	GetByExternalID(ctx context.Context, externalID string) (match.Match, bool, error)
}

// TimelineService imports the timeline of a match that is already stored.
type TimelineService struct {
	provider     MatchProvider
	validator    PayloadValidator
	matches      matchLookup
	timelineRepo timeline.Repository
	logger       *logging.Logger
}

func NewTimelineService(
	provider MatchProvider,
	validator PayloadValidator,
	matches matchLookup,
	timelineRepo timeline.Repository,
	logger *logging.Logger,
) *TimelineService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TimelineService{
		provider:     provider,
		validator:    validator,
		matches:      matches,
		timelineRepo: timelineRepo,
		logger:       logger,
	}
}

// ImportTimeline fetches and stores the timeline of a stored match. An existing timeline is
// kept unless overwrite is set, in which case it is replaced in the same transaction.
func (s *TimelineService) ImportTimeline(ctx context.Context, externalID string, overwrite bool) (TimelineImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TimelineService.ImportTimeline", attribute.String("match.external_id", externalID))
	defer span.End()

	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return TimelineImportResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	result := TimelineImportResult{ExternalID: externalID}

	item, exists, err := s.matches.GetByExternalID(ctx, externalID)
	if err != nil {
		return result, fmt.Errorf("get match external_id=%s: %w", externalID, err)
	}
	if !exists {
		result.Status = TimelineStatusNotFound
		return result, fmt.Errorf("%w: match external_id=%s is not imported", ErrNotFound, externalID)
	}

	if !overwrite {
		stored, err := s.timelineRepo.ExistsForMatch(ctx, item.ID)
		if err != nil {
			return result, fmt.Errorf("check timeline match_id=%d: %w", item.ID, err)
		}
		if stored {
			result.Status = TimelineStatusAlreadyExists
			return result, nil
		}
	}

	region := strings.ToLower(item.PlatformID)
	s.logger.InfoContext(ctx, "requesting timeline", "external_id", externalID, "region", region)
	raw, err := s.provider.FetchTimeline(ctx, region, externalID)
	switch {
	case errors.Is(err, ErrThrottled):
		result.Status = TimelineStatusThrottled
		return result, err
	case errors.Is(err, ErrNotFound):
		result.Status = TimelineStatusNotFound
		return result, err
	case err != nil:
		return result, err
	}

	parsed, err := s.validator.ValidateTimeline(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "timeline payload rejected", "external_id", externalID, "error", err)
		result.Status = TimelineStatusInvalid
		return result, err
	}

	if overwrite {
		err = s.timelineRepo.Replace(ctx, item.ID, parsed)
		result.Status = TimelineStatusReplaced
	} else {
		err = s.timelineRepo.Create(ctx, item.ID, parsed)
		result.Status = TimelineStatusImported
	}
	switch {
	case errors.Is(err, timeline.ErrAlreadyExists):
		result.Status = TimelineStatusAlreadyExists
		return result, nil
	case err != nil:
		return TimelineImportResult{ExternalID: externalID}, fmt.Errorf("persist timeline match_id=%d: %w", item.ID, err)
	}

	result.Frames = len(parsed.Frames)
	result.Events = parsed.EventCounts()
	s.logger.InfoContext(ctx, "timeline imported", "external_id", externalID, "frames", result.Frames, "events", result.Events)
	return result, nil
}
