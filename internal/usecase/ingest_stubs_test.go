package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/match-ingestion/internal/domain/match"
	"github.com/riskibarqy/match-ingestion/internal/domain/player"
	"github.com/riskibarqy/match-ingestion/internal/domain/timeline"
)

// stubProvider serves canned upstream responses keyed by match id and list offset.
type stubProvider struct {
	mu         sync.Mutex
	pages      map[int][]string
	pageErrs   map[int]error
	matchErrs  map[string]error
	timeline   []byte
	timelineFn func() error
	accounts   map[string]ExternalAccount
	league     map[string][]player.RankPosition
	liveGame   ExternalLiveGame
	liveErr    error

	fetched      []string
	listQueries  []MatchListQuery
	leagueCalls  map[string]int
	timelineHits int
}

func (p *stubProvider) FetchMatch(_ context.Context, _ string, externalID string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fetched = append(p.fetched, externalID)
	if err := p.matchErrs[externalID]; err != nil {
		return nil, err
	}
	return []byte(externalID), nil
}

func (p *stubProvider) FetchTimeline(_ context.Context, _ string, _ string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.timelineHits++
	if p.timelineFn != nil {
		if err := p.timelineFn(); err != nil {
			return nil, err
		}
	}
	return p.timeline, nil
}

func (p *stubProvider) FetchMatchIDs(_ context.Context, _ string, _ string, query MatchListQuery) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listQueries = append(p.listQueries, query)
	if err := p.pageErrs[query.Start]; err != nil {
		return nil, err
	}
	return p.pages[query.Start], nil
}

func (p *stubProvider) FetchAccountByRiotID(_ context.Context, _ string, gameName, tagLine string) (ExternalAccount, error) {
	account, ok := p.accounts[gameName+"#"+tagLine]
	if !ok {
		return ExternalAccount{}, fmt.Errorf("%w: account %s#%s", ErrNotFound, gameName, tagLine)
	}
	return account, nil
}

func (p *stubProvider) FetchLeagueEntries(_ context.Context, _ string, puuid string) ([]player.RankPosition, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.leagueCalls == nil {
		p.leagueCalls = make(map[string]int)
	}
	p.leagueCalls[puuid]++
	return p.league[puuid], nil
}

func (p *stubProvider) FetchLiveGame(_ context.Context, _ string, _ string) (ExternalLiveGame, error) {
	return p.liveGame, p.liveErr
}

func (p *stubProvider) fetchedIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := append([]string(nil), p.fetched...)
	sort.Strings(out)
	return out
}

// stubValidator treats the raw payload as the external id and builds a ten-seat aggregate from it.
type stubValidator struct {
	invalid  map[string]bool
	gameMode string
	timeline timeline.Timeline
}

func (v stubValidator) ValidateMatch(raw []byte) (match.Aggregate, error) {
	externalID := string(raw)
	if v.invalid[externalID] {
		return match.Aggregate{}, &SchemaError{Path: "info.participants[0].perks.styles[0].selections", Reason: "must have exactly 4 selections, got 3"}
	}
	mode := v.gameMode
	if mode == "" {
		mode = "CLASSIC"
	}

	participants := make([]match.Participant, 0, match.StandardRosterSize)
	for seat := 1; seat <= match.StandardRosterSize; seat++ {
		participants = append(participants, match.Participant{
			ParticipantID: seat,
			PUUID:         fmt.Sprintf("puuid-%d", seat),
			SummonerName:  fmt.Sprintf("Summoner %d", seat),
			TeamID:        100 + 100*((seat-1)/5),
		})
	}
	return match.Aggregate{
		Match:        match.Match{ExternalID: externalID, GameMode: mode, PlatformID: "NA1"},
		Participants: participants,
	}, nil
}

func (v stubValidator) ValidateTimeline(_ []byte) (timeline.Timeline, error) {
	return v.timeline, nil
}

// memoryMatches is a small in-package match store for end-to-end importer tests.
type memoryMatches struct {
	mu           sync.Mutex
	nextID       int64
	byExternalID map[string]match.Aggregate
	ids          map[string]int64
	replaced     []string
	ranks        []match.ParticipantRank
}

func newMemoryMatches(externalIDs ...string) *memoryMatches {
	m := &memoryMatches{byExternalID: map[string]match.Aggregate{}, ids: map[string]int64{}}
	for _, item := range externalIDs {
		_, _ = m.Create(context.Background(), match.Aggregate{Match: match.Match{ExternalID: item}})
	}
	return m
}

func (m *memoryMatches) ExistingExternalIDs(_ context.Context, externalIDs []string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(externalIDs))
	for _, item := range externalIDs {
		if _, ok := m.byExternalID[item]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *memoryMatches) Create(_ context.Context, aggregate match.Aggregate) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byExternalID[aggregate.Match.ExternalID]; ok {
		return 0, match.ErrDuplicate
	}
	m.nextID++
	m.byExternalID[aggregate.Match.ExternalID] = aggregate
	m.ids[aggregate.Match.ExternalID] = m.nextID
	return m.nextID, nil
}

func (m *memoryMatches) Replace(_ context.Context, aggregate match.Aggregate) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.byExternalID[aggregate.Match.ExternalID] = aggregate
	m.ids[aggregate.Match.ExternalID] = m.nextID
	m.replaced = append(m.replaced, aggregate.Match.ExternalID)
	return m.nextID, nil
}

func (m *memoryMatches) GetByExternalID(_ context.Context, externalID string) (match.Match, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.byExternalID[externalID]
	if !ok {
		return match.Match{}, false, nil
	}
	item.Match.ID = m.ids[externalID]
	return item.Match, true, nil
}

func (m *memoryMatches) ListParticipants(_ context.Context, matchID int64) ([]match.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for externalID, id := range m.ids {
		if id == matchID {
			return append([]match.Participant(nil), m.byExternalID[externalID].Participants...), nil
		}
	}
	return nil, nil
}

func (m *memoryMatches) SetParticipantRanks(_ context.Context, ranks []match.ParticipantRank) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ranks = append(m.ranks, ranks...)
	return nil
}

func (m *memoryMatches) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byExternalID)
}

type stubRegistrar struct {
	mu    sync.Mutex
	items []player.Player
}

func (r *stubRegistrar) InsertIgnoreConflicts(_ context.Context, items []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, items...)
	return nil
}

func matchIDs(prefix string, from, to int) []string {
	out := make([]string, 0, to-from)
	for idx := from; idx < to; idx++ {
		out = append(out, fmt.Sprintf("%s_%d", strings.ToUpper(prefix), idx))
	}
	return out
}
