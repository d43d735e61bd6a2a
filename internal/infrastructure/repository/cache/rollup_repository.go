package cache

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/match-ingestion/internal/domain/rollup"
	basecache "github.com/riskibarqy/match-ingestion/internal/platform/cache"
)

// RollupRepository serves rollup reads from a TTL cache in front of next.
type RollupRepository struct {
	next       rollup.Repository
	champions  *basecache.Store[[]rollup.ChampionTotals]
	playedWith *basecache.Store[[]rollup.PlayedWith]
}

func NewRollupRepository(next rollup.Repository, ttl time.Duration) *RollupRepository {
	return &RollupRepository{
		next:       next,
		champions:  basecache.NewStore[[]rollup.ChampionTotals](ttl),
		playedWith: basecache.NewStore[[]rollup.PlayedWith](ttl),
	}
}

func (r *RollupRepository) ChampionTotals(ctx context.Context, puuid string, filter rollup.Filter) ([]rollup.ChampionTotals, error) {
	key := "rollup:champions:" + puuid + ":" + filterKey(filter)
	items, err := r.champions.GetOrLoad(ctx, key, func(ctx context.Context) ([]rollup.ChampionTotals, error) {
		return r.next.ChampionTotals(ctx, puuid, filter)
	})
	if err != nil {
		return nil, err
	}
	return append([]rollup.ChampionTotals(nil), items...), nil
}

func (r *RollupRepository) PlayedWith(ctx context.Context, puuid string, sameTeam bool, filter rollup.Filter, limit int) ([]rollup.PlayedWith, error) {
	key := "rollup:played_with:" + puuid + ":" + strconv.FormatBool(sameTeam) + ":" + strconv.Itoa(limit) + ":" + filterKey(filter)
	items, err := r.playedWith.GetOrLoad(ctx, key, func(ctx context.Context) ([]rollup.PlayedWith, error) {
		return r.next.PlayedWith(ctx, puuid, sameTeam, filter, limit)
	})
	if err != nil {
		return nil, err
	}
	return append([]rollup.PlayedWith(nil), items...), nil
}

func filterKey(filter rollup.Filter) string {
	parts := []string{
		optionalInt(filter.MajorVersion),
		optionalInt(filter.MinorVersion),
		optionalTime(filter.CreatedAfter),
		optionalTime(filter.CreatedBefore),
		strconv.FormatInt(filter.MinDuration.Milliseconds(), 10),
	}

	queues := slices.Clone(filter.Queues)
	slices.Sort(queues)
	queueParts := make([]string, 0, len(queues))
	for _, queue := range slices.Compact(queues) {
		queueParts = append(queueParts, strconv.Itoa(queue))
	}
	parts = append(parts, strings.Join(queueParts, ","))

	return strings.Join(parts, "|")
}

func optionalInt(value *int) string {
	if value == nil {
		return "-"
	}
	return strconv.Itoa(*value)
}

func optionalTime(value *time.Time) string {
	if value == nil {
		return "-"
	}
	return strconv.FormatInt(value.UnixMilli(), 10)
}
