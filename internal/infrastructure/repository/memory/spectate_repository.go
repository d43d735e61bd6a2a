package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/riskibarqy/match-ingestion/internal/domain/spectate"
)

type SpectateRepository struct {
	mu     sync.Mutex
	nextID int64
	items  map[string]spectate.Spectate
}

func NewSpectateRepository() *SpectateRepository {
	return &SpectateRepository{items: make(map[string]spectate.Spectate)}
}

func (r *SpectateRepository) Save(_ context.Context, item spectate.Spectate) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := item.Region + ":" + strconv.FormatInt(item.GameID, 10)
	if _, ok := r.items[key]; ok {
		return false, nil
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	r.nextID++
	item.ID = r.nextID
	r.items[key] = item
	return true, nil
}
