package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/match-ingestion/internal/domain/player"
	playermock "github.com/riskibarqy/match-ingestion/internal/mocks/domain/player"
	"github.com/riskibarqy/match-ingestion/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

type recordingWindows struct {
	inputs []WindowInput
	result WindowResult
	err    error
}

func (w *recordingWindows) ImportWindow(_ context.Context, input WindowInput) (WindowResult, error) {
	w.inputs = append(w.inputs, input)
	return w.result, w.err
}

func TestBackfillService_FullImport_SetsWatermarkWhenComplete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	players := playermock.NewRepository(t)
	windows := &recordingWindows{result: WindowResult{Imported: 60, Complete: true}}
	service := NewBackfillService(&stubProvider{}, players, windows, BackfillConfig{}, logging.NewNop())

	known := player.Player{ID: 3, PUUID: "puuid-3", Region: "euw1", FullImportCount: 40}
	players.
		On("GetByPUUID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "puuid-3").
		Return(known, true, nil).
		Once()
	players.
		On("SetImportWatermark", mock.Anything, int64(3), player.ImportPolicyFull, 100).
		Return(nil).
		Once()

	result, err := service.FullImport(ctx, PlayerRef{PUUID: "puuid-3", Region: "EUW1"})
	if err != nil {
		t.Fatalf("FullImport error: %v", err)
	}
	if result.Imported != 60 {
		t.Fatalf("expected 60 imported, got=%d", result.Imported)
	}
	if len(windows.inputs) != 1 {
		t.Fatalf("expected one window import, got=%d", len(windows.inputs))
	}
	input := windows.inputs[0]
	if input.Start != 0 || input.End != 60 || input.Region != "euw1" || len(input.Queues) != 0 {
		t.Fatalf("unexpected window input: %+v", input)
	}
}

func TestBackfillService_RankedImport_IncompleteKeepsWatermark(t *testing.T) {
	t.Parallel()

	players := playermock.NewRepository(t)
	windows := &recordingWindows{result: WindowResult{Imported: 12, Throttled: true}}
	service := NewBackfillService(&stubProvider{}, players, windows, BackfillConfig{}, logging.NewNop())

	players.
		On("GetByPUUID", mock.Anything, "puuid-4").
		Return(player.Player{ID: 4, PUUID: "puuid-4", Region: "na1", RankedImportCount: 90}, true, nil).
		Once()

	result, err := service.RankedImport(context.Background(), PlayerRef{PUUID: "puuid-4", Region: "na1"})
	if err != nil {
		t.Fatalf("RankedImport error: %v", err)
	}
	if !result.Throttled {
		t.Fatalf("expected throttled result to be passed through")
	}
	input := windows.inputs[0]
	if input.End != 10 {
		t.Fatalf("expected remaining window of 10, got=%d", input.End)
	}
	if len(input.Queues) != 3 || input.Queues[0] != 420 || input.Queues[2] != 470 {
		t.Fatalf("expected ranked queues, got=%v", input.Queues)
	}
	players.AssertNotCalled(t, "SetImportWatermark", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBackfillService_FullImport_WatermarkReached(t *testing.T) {
	t.Parallel()

	players := playermock.NewRepository(t)
	windows := &recordingWindows{}
	service := NewBackfillService(&stubProvider{}, players, windows, BackfillConfig{TargetTotal: 50}, logging.NewNop())

	players.
		On("GetByPUUID", mock.Anything, "puuid-5").
		Return(player.Player{ID: 5, PUUID: "puuid-5", Region: "na1", FullImportCount: 50}, true, nil).
		Once()

	result, err := service.FullImport(context.Background(), PlayerRef{PUUID: "puuid-5", Region: "na1"})
	if err != nil {
		t.Fatalf("FullImport error: %v", err)
	}
	if !result.Complete || len(windows.inputs) != 0 {
		t.Fatalf("expected no window import once watermark is reached, got result=%+v inputs=%d", result, len(windows.inputs))
	}
}

func TestBackfillService_FullImport_ResolvesRiotID(t *testing.T) {
	t.Parallel()

	players := playermock.NewRepository(t)
	provider := &stubProvider{accounts: map[string]ExternalAccount{
		"Hide on bush#KR1": {PUUID: "puuid-faker", GameName: "Hide on bush", TagLine: "KR1"},
	}}
	windows := &recordingWindows{result: WindowResult{Complete: true}}
	service := NewBackfillService(provider, players, windows, BackfillConfig{}, logging.NewNop())

	players.
		On("Upsert", mock.Anything, mock.MatchedBy(func(v player.Player) bool {
			return v.PUUID == "puuid-faker" && v.SimpleName == "hideonbush" && v.Region == "kr"
		})).
		Return(player.Player{ID: 9, PUUID: "puuid-faker", Region: "kr"}, nil).
		Once()
	players.
		On("SetImportWatermark", mock.Anything, int64(9), player.ImportPolicyFull, 100).
		Return(nil).
		Once()

	if _, err := service.FullImport(context.Background(), PlayerRef{Name: "Hide on bush#KR1", Region: "KR"}); err != nil {
		t.Fatalf("FullImport error: %v", err)
	}
	if windows.inputs[0].PUUID != "puuid-faker" {
		t.Fatalf("expected resolved puuid, got=%s", windows.inputs[0].PUUID)
	}
}

func TestBackfillService_FullImport_InvalidReferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ref  PlayerRef
	}{
		{name: "missing region", ref: PlayerRef{PUUID: "puuid-1"}},
		{name: "missing identity", ref: PlayerRef{Region: "na1"}},
		{name: "name without tag", ref: PlayerRef{Name: "Doublelift", Region: "na1"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service := NewBackfillService(&stubProvider{}, playermock.NewRepository(t), &recordingWindows{}, BackfillConfig{}, logging.NewNop())
			_, err := service.FullImport(context.Background(), tc.ref)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected invalid input, got=%v", err)
			}
			if !IsTerminalImportError(err) {
				t.Fatalf("expected invalid input to be terminal")
			}
		})
	}
}

func TestBackfillService_BulkImport(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-2 * time.Hour)
	stale := now.Add(-48 * time.Hour)

	t.Run("not due", func(t *testing.T) {
		t.Parallel()

		players := playermock.NewRepository(t)
		windows := &recordingWindows{}
		service := NewBackfillService(&stubProvider{}, players, windows, BackfillConfig{}, logging.NewNop())
		service.now = func() time.Time { return now }

		players.
			On("GetByPUUID", mock.Anything, "puuid-1").
			Return(player.Player{ID: 1, PUUID: "puuid-1", Region: "na1", LastBulkImportAt: &recent}, true, nil).
			Once()

		result, err := service.BulkImport(context.Background(), BulkImportInput{PUUID: "puuid-1", Offset: -1})
		if err != nil {
			t.Fatalf("BulkImport error: %v", err)
		}
		if result.Due || len(windows.inputs) != 0 {
			t.Fatalf("expected bulk import to be skipped, got=%+v", result)
		}
	})

	t.Run("due", func(t *testing.T) {
		t.Parallel()

		players := playermock.NewRepository(t)
		windows := &recordingWindows{result: WindowResult{Imported: 150, Complete: true}}
		service := NewBackfillService(&stubProvider{}, players, windows, BackfillConfig{BulkOffset: 10}, logging.NewNop())
		service.now = func() time.Time { return now }

		players.
			On("GetByPUUID", mock.Anything, "puuid-2").
			Return(player.Player{ID: 2, PUUID: "puuid-2", Region: "na1", LastBulkImportAt: &stale}, true, nil).
			Once()
		players.
			On("TouchBulkImport", mock.Anything, int64(2), now).
			Return(nil).
			Once()

		result, err := service.BulkImport(context.Background(), BulkImportInput{PUUID: "puuid-2", Offset: -1})
		if err != nil {
			t.Fatalf("BulkImport error: %v", err)
		}
		if !result.Due || result.Window.Imported != 150 {
			t.Fatalf("unexpected bulk result: %+v", result)
		}
		input := windows.inputs[0]
		if input.Start != 10 || input.End != 210 {
			t.Fatalf("expected window [10,210), got=[%d,%d)", input.Start, input.End)
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		t.Parallel()

		players := playermock.NewRepository(t)
		service := NewBackfillService(&stubProvider{}, players, &recordingWindows{}, BackfillConfig{}, logging.NewNop())

		players.On("GetByPUUID", mock.Anything, "ghost").Return(player.Player{}, false, nil).Once()

		if _, err := service.BulkImport(context.Background(), BulkImportInput{PUUID: "ghost"}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got=%v", err)
		}
	})
}
