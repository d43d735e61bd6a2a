package rollup

import "context"

type Repository interface {
	ChampionTotals(ctx context.Context, puuid string, filter Filter) ([]ChampionTotals, error)
	PlayedWith(ctx context.Context, puuid string, sameTeam bool, filter Filter, limit int) ([]PlayedWith, error)
}
