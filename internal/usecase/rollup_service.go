package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/match-ingestion/internal/domain/rollup"
)

const defaultPlayedWithLimit = 20

type RollupService struct {
	repo rollup.Repository
}

func NewRollupService(repo rollup.Repository) *RollupService {
	return &RollupService{repo: repo}
}

// ChampionRollups groups a player's games by champion, most played first.
func (s *RollupService) ChampionRollups(ctx context.Context, puuid string, filter rollup.Filter) ([]rollup.ChampionStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RollupService.ChampionRollups")
	defer span.End()

	puuid = strings.TrimSpace(puuid)
	if puuid == "" {
		return nil, fmt.Errorf("%w: puuid is required", ErrInvalidInput)
	}
	filter, err := normalizeRollupFilter(filter)
	if err != nil {
		return nil, err
	}

	totals, err := s.repo.ChampionTotals(ctx, puuid, filter)
	if err != nil {
		return nil, fmt.Errorf("champion totals puuid=%s: %w", puuid, err)
	}

	out := make([]rollup.ChampionStat, 0, len(totals))
	for _, item := range totals {
		out = append(out, item.Stat())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		return out[i].ChampionID < out[j].ChampionID
	})
	return out, nil
}

// TopPlayedWith lists the players seen most often with (sameTeam) or against the given player.
func (s *RollupService) TopPlayedWith(ctx context.Context, puuid string, sameTeam bool, filter rollup.Filter, limit int) ([]rollup.PlayedWith, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RollupService.TopPlayedWith")
	defer span.End()

	puuid = strings.TrimSpace(puuid)
	if puuid == "" {
		return nil, fmt.Errorf("%w: puuid is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultPlayedWithLimit
	}
	filter, err := normalizeRollupFilter(filter)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.PlayedWith(ctx, puuid, sameTeam, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("played with puuid=%s: %w", puuid, err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Games != items[j].Games {
			return items[i].Games > items[j].Games
		}
		return items[i].PUUID < items[j].PUUID
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func normalizeRollupFilter(filter rollup.Filter) (rollup.Filter, error) {
	if filter.MinDuration <= 0 {
		filter.MinDuration = rollup.DefaultMinDuration
	}
	if filter.CreatedAfter != nil && filter.CreatedBefore != nil && !filter.CreatedAfter.Before(*filter.CreatedBefore) {
		return rollup.Filter{}, fmt.Errorf("%w: created after must be before created before", ErrInvalidInput)
	}
	if filter.MinorVersion != nil && filter.MajorVersion == nil {
		return rollup.Filter{}, fmt.Errorf("%w: minor version requires a major version", ErrInvalidInput)
	}
	return filter, nil
}
