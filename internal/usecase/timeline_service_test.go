package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	"github.com/riskibarqy/match-ingestion/internal/domain/timeline"
	matchmock "github.com/riskibarqy/match-ingestion/internal/mocks/domain/match"
	timelinemock "github.com/riskibarqy/match-ingestion/internal/mocks/domain/timeline"
	"github.com/riskibarqy/match-ingestion/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func sampleTimeline() timeline.Timeline {
	return timeline.Timeline{
		MatchExternalID: "NA1_500",
		FrameInterval:   60000,
		Frames: []timeline.Frame{
			{Timestamp: 0, Events: []timeline.Event{
				timeline.ItemEvent{Timestamp: 10, Action: timeline.KindItemPurchased, ItemID: 1055, ParticipantID: 1},
			}},
			{Timestamp: 60000, Events: []timeline.Event{
				timeline.ChampionKill{Timestamp: 61000, KillerID: 1, VictimID: 6},
				timeline.Ignored{Timestamp: 62000, Type: "PAUSE_END"},
			}},
		},
	}
}

func TestTimelineService_ImportTimeline_Creates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matches := matchmock.NewRepository(t)
	timelines := timelinemock.NewRepository(t)
	provider := &stubProvider{timeline: []byte("{}")}
	service := NewTimelineService(provider, stubValidator{timeline: sampleTimeline()}, matches, timelines, logging.NewNop())

	matches.
		On("GetByExternalID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "NA1_500").
		Return(match.Match{ID: 50, ExternalID: "NA1_500", PlatformID: "NA1"}, true, nil).
		Once()
	timelines.On("ExistsForMatch", mock.Anything, int64(50)).Return(false, nil).Once()
	timelines.
		On("Create", mock.Anything, int64(50), mock.MatchedBy(func(v timeline.Timeline) bool { return len(v.Frames) == 2 })).
		Return(nil).
		Once()

	result, err := service.ImportTimeline(ctx, "NA1_500", false)
	if err != nil {
		t.Fatalf("ImportTimeline error: %v", err)
	}
	if result.Status != TimelineStatusImported || result.Frames != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Events[timeline.KindChampionKill] != 1 || result.Events[timeline.KindIgnored] != 1 {
		t.Fatalf("unexpected event counts: %+v", result.Events)
	}
}

func TestTimelineService_ImportTimeline_ExistingIsKept(t *testing.T) {
	t.Parallel()

	matches := matchmock.NewRepository(t)
	timelines := timelinemock.NewRepository(t)
	provider := &stubProvider{}
	service := NewTimelineService(provider, stubValidator{}, matches, timelines, logging.NewNop())

	matches.On("GetByExternalID", mock.Anything, "NA1_501").Return(match.Match{ID: 51}, true, nil).Once()
	timelines.On("ExistsForMatch", mock.Anything, int64(51)).Return(true, nil).Once()

	result, err := service.ImportTimeline(context.Background(), "NA1_501", false)
	if err != nil {
		t.Fatalf("ImportTimeline error: %v", err)
	}
	if result.Status != TimelineStatusAlreadyExists {
		t.Fatalf("expected already exists, got=%s", result.Status)
	}
	if provider.timelineHits != 0 {
		t.Fatalf("expected no upstream call, got=%d", provider.timelineHits)
	}
}

func TestTimelineService_ImportTimeline_OverwriteReplaces(t *testing.T) {
	t.Parallel()

	matches := matchmock.NewRepository(t)
	timelines := timelinemock.NewRepository(t)
	service := NewTimelineService(&stubProvider{}, stubValidator{timeline: sampleTimeline()}, matches, timelines, logging.NewNop())

	matches.On("GetByExternalID", mock.Anything, "NA1_502").Return(match.Match{ID: 52, PlatformID: "NA1"}, true, nil).Once()
	timelines.On("Replace", mock.Anything, int64(52), mock.Anything).Return(nil).Once()

	result, err := service.ImportTimeline(context.Background(), "NA1_502", true)
	if err != nil {
		t.Fatalf("ImportTimeline error: %v", err)
	}
	if result.Status != TimelineStatusReplaced {
		t.Fatalf("expected replaced, got=%s", result.Status)
	}
	timelines.AssertNotCalled(t, "ExistsForMatch", mock.Anything, mock.Anything)
}

func TestTimelineService_ImportTimeline_ConcurrentWriterWins(t *testing.T) {
	t.Parallel()

	matches := matchmock.NewRepository(t)
	timelines := timelinemock.NewRepository(t)
	service := NewTimelineService(&stubProvider{}, stubValidator{timeline: sampleTimeline()}, matches, timelines, logging.NewNop())

	matches.On("GetByExternalID", mock.Anything, "NA1_503").Return(match.Match{ID: 53}, true, nil).Once()
	timelines.On("ExistsForMatch", mock.Anything, int64(53)).Return(false, nil).Once()
	timelines.On("Create", mock.Anything, int64(53), mock.Anything).Return(timeline.ErrAlreadyExists).Once()

	result, err := service.ImportTimeline(context.Background(), "NA1_503", false)
	if err != nil {
		t.Fatalf("expected duplicate timeline to be a no-op, got=%v", err)
	}
	if result.Status != TimelineStatusAlreadyExists {
		t.Fatalf("expected already exists, got=%s", result.Status)
	}
}

func TestTimelineService_ImportTimeline_Failures(t *testing.T) {
	t.Parallel()

	t.Run("match not imported", func(t *testing.T) {
		t.Parallel()

		matches := matchmock.NewRepository(t)
		service := NewTimelineService(&stubProvider{}, stubValidator{}, matches, timelinemock.NewRepository(t), logging.NewNop())
		matches.On("GetByExternalID", mock.Anything, "NA1_504").Return(match.Match{}, false, nil).Once()

		result, err := service.ImportTimeline(context.Background(), "NA1_504", false)
		if !errors.Is(err, ErrNotFound) || result.Status != TimelineStatusNotFound {
			t.Fatalf("expected not found, got result=%+v err=%v", result, err)
		}
	})

	t.Run("throttled", func(t *testing.T) {
		t.Parallel()

		matches := matchmock.NewRepository(t)
		timelines := timelinemock.NewRepository(t)
		provider := &stubProvider{timelineFn: func() error { return ErrThrottled }}
		service := NewTimelineService(provider, stubValidator{}, matches, timelines, logging.NewNop())
		matches.On("GetByExternalID", mock.Anything, "NA1_505").Return(match.Match{ID: 55}, true, nil).Once()
		timelines.On("ExistsForMatch", mock.Anything, int64(55)).Return(false, nil).Once()

		result, err := service.ImportTimeline(context.Background(), "NA1_505", false)
		if !errors.Is(err, ErrThrottled) || result.Status != TimelineStatusThrottled {
			t.Fatalf("expected throttled, got result=%+v err=%v", result, err)
		}
	})
}
