package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	"github.com/riskibarqy/match-ingestion/internal/domain/rollup"
)

// RollupRepository aggregates over the matches held by a MatchRepository.
type RollupRepository struct {
	matches *MatchRepository
}

func NewRollupRepository(matches *MatchRepository) *RollupRepository {
	return &RollupRepository{matches: matches}
}

func (r *RollupRepository) ChampionTotals(_ context.Context, puuid string, filter rollup.Filter) ([]rollup.ChampionTotals, error) {
	byChampion := make(map[int]*rollup.ChampionTotals)
	for _, aggregate := range r.matches.aggregates() {
		if !matchesFilter(aggregate.Match, filter) {
			continue
		}
		for _, item := range aggregate.Participants {
			if item.PUUID != puuid {
				continue
			}
			totals, ok := byChampion[item.ChampionID]
			if !ok {
				totals = &rollup.ChampionTotals{ChampionID: item.ChampionID}
				byChampion[item.ChampionID] = totals
			}
			totals.Games++
			if item.Stats.Win {
				totals.Wins++
			} else {
				totals.Losses++
			}
			totals.Kills += item.Stats.Kills
			totals.Deaths += item.Stats.Deaths
			totals.Assists += item.Stats.Assists
		}
	}

	out := make([]rollup.ChampionTotals, 0, len(byChampion))
	for _, totals := range byChampion {
		out = append(out, *totals)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		return out[i].ChampionID < out[j].ChampionID
	})
	return out, nil
}

func (r *RollupRepository) PlayedWith(_ context.Context, puuid string, sameTeam bool, filter rollup.Filter, limit int) ([]rollup.PlayedWith, error) {
	byPUUID := make(map[string]*rollup.PlayedWith)
	for _, aggregate := range r.matches.aggregates() {
		if !matchesFilter(aggregate.Match, filter) {
			continue
		}
		for _, self := range aggregate.Participants {
			if self.PUUID != puuid {
				continue
			}
			for _, other := range aggregate.Participants {
				if other.PUUID == "" || other.PUUID == puuid || (other.TeamID == self.TeamID) != sameTeam {
					continue
				}
				entry, ok := byPUUID[other.PUUID]
				if !ok {
					entry = &rollup.PlayedWith{PUUID: other.PUUID}
					byPUUID[other.PUUID] = entry
				}
				if other.SummonerName > entry.Name {
					entry.Name = other.SummonerName
				}
				entry.Games++
				if self.Stats.Win {
					entry.Wins++
				}
			}
		}
	}

	out := make([]rollup.PlayedWith, 0, len(byPUUID))
	for _, entry := range byPUUID {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		return out[i].PUUID < out[j].PUUID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func matchesFilter(item match.Match, filter rollup.Filter) bool {
	if item.GameDuration < filter.MinDuration.Milliseconds() {
		return false
	}
	if filter.MajorVersion != nil && item.Version.Major != *filter.MajorVersion {
		return false
	}
	if filter.MinorVersion != nil && item.Version.Minor != *filter.MinorVersion {
		return false
	}
	if len(filter.Queues) > 0 && !slices.Contains(filter.Queues, item.QueueID) {
		return false
	}
	if filter.CreatedAfter != nil && item.GameCreation < filter.CreatedAfter.UnixMilli() {
		return false
	}
	if filter.CreatedBefore != nil && item.GameCreation >= filter.CreatedBefore.UnixMilli() {
		return false
	}
	return true
}
