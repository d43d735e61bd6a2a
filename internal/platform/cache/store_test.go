package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore[[]int](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) ([]int, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return []int{157, 238}, nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "rollup:abc", loader)
			if err != nil {
				errCh <- err
				return
			}
			if len(v) != 2 {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected loader to run once, got=%d", got)
	}
}

func TestStore_GetOrLoad_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32
	failing := func(context.Context) (string, error) {
		calls.Add(1)
		return "", errUnexpectedValue
	}

	if _, err := store.GetOrLoad(context.Background(), "k", failing); !errors.Is(err, errUnexpectedValue) {
		t.Fatalf("expected loader error, got=%v", err)
	}
	value, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (string, error) {
		calls.Add(1)
		return "ok", nil
	})
	if err != nil || value != "ok" {
		t.Fatalf("expected second load to succeed, got=%q err=%v", value, err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected two loader calls, got=%d", got)
	}
}

func TestStore_ExpiryAndPrune(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	store := NewStore[int](time.Minute)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	store.Set(ctx, "a", 1)
	store.Set(ctx, "b", 2)
	if v, ok := store.Get(ctx, "a"); !ok || v != 1 {
		t.Fatalf("expected fresh entry, got=%d ok=%v", v, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(ctx, "a"); ok {
		t.Fatalf("expected entry to expire")
	}
	if dropped := store.Prune(); dropped != 1 {
		t.Fatalf("expected one pruned entry, got=%d", dropped)
	}
	if stats := store.Stats(); stats.Entries != 0 {
		t.Fatalf("expected empty store, got=%+v", stats)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[int](0)
	ctx := context.Background()
	store.Set(ctx, "champions:abc:1", 1)
	store.Set(ctx, "champions:abc:2", 2)
	store.Set(ctx, "played-with:abc", 3)

	store.DeletePrefix(ctx, "champions:abc:")
	if stats := store.Stats(); stats.Entries != 1 {
		t.Fatalf("expected one entry left, got=%+v", stats)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
