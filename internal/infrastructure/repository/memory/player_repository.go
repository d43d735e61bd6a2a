package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/match-ingestion/internal/domain/player"
)

type PlayerRepository struct {
	mu          sync.RWMutex
	nextID      int64
	nextRankID  int64
	byPUUID     map[string]player.Player
	checkpoints map[int64][]player.RankCheckpoint
}

func NewPlayerRepository(players ...player.Player) *PlayerRepository {
	r := &PlayerRepository{
		byPUUID:     make(map[string]player.Player),
		checkpoints: make(map[int64][]player.RankCheckpoint),
	}
	for _, item := range players {
		r.insertLocked(item)
	}
	return r
}

func (r *PlayerRepository) insertLocked(item player.Player) player.Player {
	r.nextID++
	item.ID = r.nextID
	r.byPUUID[item.PUUID] = item
	return item
}

func (r *PlayerRepository) GetByPUUID(_ context.Context, puuid string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byPUUID[puuid]
	return item, ok, nil
}

func (r *PlayerRepository) ListByPUUIDs(_ context.Context, puuids []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(puuids))
	seen := make(map[string]struct{}, len(puuids))
	for _, puuid := range puuids {
		if _, ok := seen[puuid]; ok {
			continue
		}
		seen[puuid] = struct{}{}
		if item, ok := r.byPUUID[puuid]; ok {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlayerRepository) Upsert(_ context.Context, item player.Player) (player.Player, error) {
	if err := item.Validate(); err != nil {
		return player.Player{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byPUUID[item.PUUID]
	if !ok {
		return r.insertLocked(item), nil
	}
	if item.Name != "" {
		current.Name = item.Name
	}
	if item.SimpleName != "" {
		current.SimpleName = item.SimpleName
	}
	current.Region = item.Region
	r.byPUUID[item.PUUID] = current
	return current, nil
}

func (r *PlayerRepository) InsertIgnoreConflicts(_ context.Context, items []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		if err := item.Validate(); err != nil {
			continue
		}
		if _, ok := r.byPUUID[item.PUUID]; ok {
			continue
		}
		r.insertLocked(item)
	}
	return nil
}

func (r *PlayerRepository) SetImportWatermark(_ context.Context, playerID int64, policy player.ImportPolicy, count int) error {
	return r.update(playerID, func(item *player.Player) {
		if policy == player.ImportPolicyRanked {
			item.RankedImportCount = count
			return
		}
		item.FullImportCount = count
	})
}

func (r *PlayerRepository) TouchBulkImport(_ context.Context, playerID int64, at time.Time) error {
	return r.update(playerID, func(item *player.Player) {
		stamped := at.UTC()
		item.LastBulkImportAt = &stamped
	})
}

func (r *PlayerRepository) update(playerID int64, fn func(item *player.Player)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for puuid, item := range r.byPUUID {
		if item.ID != playerID {
			continue
		}
		fn(&item)
		r.byPUUID[puuid] = item
		return nil
	}
	return fmt.Errorf("player id=%d not found", playerID)
}

func (r *PlayerRepository) LatestRankCheckpoint(_ context.Context, playerID int64) (player.RankCheckpoint, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.checkpoints[playerID]
	if len(items) == 0 {
		return player.RankCheckpoint{}, false, nil
	}
	latest := items[0]
	for _, item := range items[1:] {
		if item.CreatedAt.After(latest.CreatedAt) || (item.CreatedAt.Equal(latest.CreatedAt) && item.ID > latest.ID) {
			latest = item
		}
	}
	latest.Positions = append([]player.RankPosition(nil), latest.Positions...)
	return latest, true, nil
}

func (r *PlayerRepository) SaveRankCheckpoint(_ context.Context, item player.RankCheckpoint) (player.RankCheckpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	r.nextRankID++
	item.ID = r.nextRankID
	item.Positions = append([]player.RankPosition(nil), item.Positions...)
	r.checkpoints[item.PlayerID] = append(r.checkpoints[item.PlayerID], item)
	return item, nil
}
