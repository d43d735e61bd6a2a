package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/match-ingestion/internal/platform/id"
	"github.com/riskibarqy/match-ingestion/internal/platform/logging"
)

func newTestBatchImporter(provider *stubProvider, store *memoryMatches) *BatchImportService {
	importer := NewMatchImportService(provider, stubValidator{}, store, &stubRegistrar{}, logging.NewNop())
	return NewBatchImportService(provider, store, importer, id.Static("run-1"), BatchImportConfig{}, logging.NewNop())
}

func TestBatchImportService_ImportWindow_OnlyNewMatches(t *testing.T) {
	t.Parallel()

	listed := matchIDs("na1", 0, 100)
	store := newMemoryMatches(listed[30:]...)
	provider := &stubProvider{pages: map[int][]string{0: listed}}

	result, err := newTestBatchImporter(provider, store).ImportWindow(context.Background(), WindowInput{
		PUUID:  "p-1",
		Region: "na1",
		Start:  0,
		End:    100,
	})
	if err != nil {
		t.Fatalf("ImportWindow error: %v", err)
	}
	if result.Imported != 30 {
		t.Fatalf("expected 30 imported matches, got=%d", result.Imported)
	}
	if !result.Complete || result.Throttled {
		t.Fatalf("expected complete unthrottled window, got=%+v", result)
	}
	if result.RunID != "run-1" {
		t.Fatalf("expected run id from generator, got=%q", result.RunID)
	}
	fetched := provider.fetchedIDs()
	if len(fetched) != 30 {
		t.Fatalf("expected 30 fetches, got=%d", len(fetched))
	}
	for _, externalID := range fetched {
		for _, stored := range listed[30:] {
			if externalID == stored {
				t.Fatalf("existing match %s was fetched again", externalID)
			}
		}
	}
	if store.count() != 100 {
		t.Fatalf("expected 100 stored matches, got=%d", store.count())
	}
	if len(provider.listQueries) != 1 || provider.listQueries[0].Count != 100 {
		t.Fatalf("expected one page of 100, got=%+v", provider.listQueries)
	}
}

func TestBatchImportService_ImportWindow_PagesUntilEnd(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{pages: map[int][]string{
		10:  matchIDs("na1", 10, 110),
		110: matchIDs("na1", 110, 160),
	}}
	store := newMemoryMatches()

	result, err := newTestBatchImporter(provider, store).ImportWindow(context.Background(), WindowInput{
		PUUID: "p-1",
		Start: 10,
		End:   160,
	})
	if err != nil {
		t.Fatalf("ImportWindow error: %v", err)
	}
	if result.Imported != 150 || result.Pages != 2 || !result.Complete {
		t.Fatalf("unexpected window result: %+v", result)
	}
	if provider.listQueries[1].Start != 110 || provider.listQueries[1].Count != 50 {
		t.Fatalf("expected remainder page start=110 count=50, got=%+v", provider.listQueries[1])
	}
}

func TestBatchImportService_ImportWindow_StopsOnEmptyPage(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		pages:    map[int][]string{0: matchIDs("na1", 0, 100)},
		pageErrs: map[int]error{100: ErrNotFound},
	}

	result, err := newTestBatchImporter(provider, newMemoryMatches()).ImportWindow(context.Background(), WindowInput{
		PUUID: "p-1",
		End:   300,
	})
	if err != nil {
		t.Fatalf("ImportWindow error: %v", err)
	}
	if result.Imported != 100 || !result.Complete {
		t.Fatalf("unexpected window result: %+v", result)
	}
	if len(provider.listQueries) != 2 {
		t.Fatalf("expected pagination to stop after the empty page, got=%d requests", len(provider.listQueries))
	}
}

func TestBatchImportService_ImportWindow_ThrottledPageHalts(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		pages:    map[int][]string{0: matchIDs("na1", 0, 100)},
		pageErrs: map[int]error{100: ErrThrottled},
	}

	result, err := newTestBatchImporter(provider, newMemoryMatches()).ImportWindow(context.Background(), WindowInput{
		PUUID: "p-1",
		End:   300,
	})
	if err != nil {
		t.Fatalf("expected throttle to be swallowed, got=%v", err)
	}
	if result.Imported != 100 {
		t.Fatalf("expected count accumulated before throttle, got=%d", result.Imported)
	}
	if !result.Throttled || result.Complete {
		t.Fatalf("expected throttled incomplete window, got=%+v", result)
	}
	if len(provider.listQueries) != 2 {
		t.Fatalf("expected no page after the throttle, got=%d requests", len(provider.listQueries))
	}
}

func TestBatchImportService_ImportWindow_SkipsFailedMatches(t *testing.T) {
	t.Parallel()

	listed := matchIDs("na1", 0, 5)
	provider := &stubProvider{
		pages:     map[int][]string{0: listed},
		matchErrs: map[string]error{listed[0]: ErrNotFound, listed[1]: ErrTransient},
	}
	store := newMemoryMatches()
	importer := NewMatchImportService(provider, stubValidator{invalid: map[string]bool{listed[2]: true}}, store, nil, logging.NewNop())
	service := NewBatchImportService(provider, store, importer, id.Static("run-2"), BatchImportConfig{PageSize: 100, Workers: 2}, logging.NewNop())

	result, err := service.ImportWindow(context.Background(), WindowInput{PUUID: "p-1", End: 5})
	if err != nil {
		t.Fatalf("ImportWindow error: %v", err)
	}
	if result.Imported != 2 || !result.Complete {
		t.Fatalf("expected 2 imported of 5, got=%+v", result)
	}
}

func TestBatchImportService_ImportWindow_TransientPageReturnsPartialCount(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		pages:    map[int][]string{0: matchIDs("na1", 0, 100)},
		pageErrs: map[int]error{100: ErrTransient},
	}

	result, err := newTestBatchImporter(provider, newMemoryMatches()).ImportWindow(context.Background(), WindowInput{
		PUUID: "p-1",
		End:   200,
	})
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected transient error, got=%v", err)
	}
	if result.Imported != 100 || result.Complete {
		t.Fatalf("unexpected partial result: %+v", result)
	}
}

func TestBatchImportService_ImportWindow_RefreshReplacesStored(t *testing.T) {
	t.Parallel()

	listed := matchIDs("na1", 0, 3)
	store := newMemoryMatches(listed...)
	provider := &stubProvider{pages: map[int][]string{0: listed}}

	result, err := newTestBatchImporter(provider, store).ImportWindow(context.Background(), WindowInput{
		PUUID:   "p-1",
		End:     3,
		Refresh: true,
	})
	if err != nil {
		t.Fatalf("ImportWindow error: %v", err)
	}
	if result.Imported != 3 || len(store.replaced) != 3 {
		t.Fatalf("expected 3 replaced matches, got result=%+v replaced=%v", result, store.replaced)
	}
}

func TestBatchImportService_ImportWindow_RequiresPUUID(t *testing.T) {
	t.Parallel()

	_, err := newTestBatchImporter(&stubProvider{}, newMemoryMatches()).ImportWindow(context.Background(), WindowInput{End: 10})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got=%v", err)
	}
}
