package rollup

import "time"

// DefaultMinDuration drops remakes and early surrenders from rollups.
const DefaultMinDuration = 300 * time.Second

// Filter narrows the matches a rollup reads. Nil and empty fields do not filter.
type Filter struct {
	MajorVersion  *int
	MinorVersion  *int
	Queues        []int
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	MinDuration   time.Duration
}

// ChampionTotals is the raw per-champion sum for one player.
type ChampionTotals struct {
	ChampionID int
	Games      int
	Wins       int
	Losses     int
	Kills      int
	Deaths     int
	Assists    int
}

type ChampionStat struct {
	ChampionTotals
	KDA float64
}

// KDA is (kills+assists)/deaths with deathless games counted as one death.
func KDA(kills, deaths, assists int) float64 {
	if deaths < 1 {
		deaths = 1
	}
	return float64(kills+assists) / float64(deaths)
}

func (t ChampionTotals) Stat() ChampionStat {
	return ChampionStat{ChampionTotals: t, KDA: KDA(t.Kills, t.Deaths, t.Assists)}
}

// PlayedWith is a co-participant seen alongside (or against) a player.
type PlayedWith struct {
	PUUID string
	Name  string
	Games int
	Wins  int
}
