package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/match-ingestion/internal/domain/match"
)

type storedMatch struct {
	aggregate match.Aggregate
}

type MatchRepository struct {
	mu           sync.RWMutex
	nextID       int64
	nextSeatID   int64
	byExternalID map[string]*storedMatch
	byID         map[int64]*storedMatch
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		byExternalID: make(map[string]*storedMatch),
		byID:         make(map[int64]*storedMatch),
	}
}

func (r *MatchRepository) ExistingExternalIDs(_ context.Context, externalIDs []string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(externalIDs))
	for _, externalID := range externalIDs {
		if _, ok := r.byExternalID[externalID]; ok {
			out = append(out, externalID)
		}
	}
	return out, nil
}

func (r *MatchRepository) Create(_ context.Context, aggregate match.Aggregate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byExternalID[aggregate.Match.ExternalID]; ok {
		return 0, fmt.Errorf("%w: external_id=%s", match.ErrDuplicate, aggregate.Match.ExternalID)
	}
	return r.insertLocked(aggregate), nil
}

func (r *MatchRepository) Replace(_ context.Context, aggregate match.Aggregate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.byExternalID[aggregate.Match.ExternalID]; ok {
		delete(r.byID, current.aggregate.Match.ID)
		delete(r.byExternalID, aggregate.Match.ExternalID)
	}
	return r.insertLocked(aggregate), nil
}

func (r *MatchRepository) insertLocked(aggregate match.Aggregate) int64 {
	r.nextID++
	matchID := r.nextID

	stored := match.Aggregate{
		Match:        aggregate.Match,
		Participants: make([]match.Participant, 0, len(aggregate.Participants)),
		Teams:        append([]match.Team(nil), aggregate.Teams...),
	}
	stored.Match.ID = matchID
	for _, item := range aggregate.Participants {
		r.nextSeatID++
		item.ID = r.nextSeatID
		item.MatchID = matchID
		stored.Participants = append(stored.Participants, item)
	}
	sort.Slice(stored.Participants, func(i, j int) bool {
		return stored.Participants[i].ParticipantID < stored.Participants[j].ParticipantID
	})

	entry := &storedMatch{aggregate: stored}
	r.byExternalID[aggregate.Match.ExternalID] = entry
	r.byID[matchID] = entry
	return matchID
}

func (r *MatchRepository) GetByExternalID(_ context.Context, externalID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byExternalID[externalID]
	if !ok {
		return match.Match{}, false, nil
	}
	return entry.aggregate.Match, true, nil
}

func (r *MatchRepository) ListParticipants(_ context.Context, matchID int64) ([]match.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byID[matchID]
	if !ok {
		return nil, nil
	}
	return append([]match.Participant(nil), entry.aggregate.Participants...), nil
}

func (r *MatchRepository) SetParticipantRanks(_ context.Context, ranks []match.ParticipantRank) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byRowID := make(map[int64]match.ParticipantRank, len(ranks))
	for _, item := range ranks {
		byRowID[item.ParticipantID] = item
	}
	for _, entry := range r.byID {
		for idx := range entry.aggregate.Participants {
			item, ok := byRowID[entry.aggregate.Participants[idx].ID]
			if !ok {
				continue
			}
			entry.aggregate.Participants[idx].Tier = item.Tier
			entry.aggregate.Participants[idx].Rank = item.Rank
		}
	}
	return nil
}

// aggregates returns a copy of every stored aggregate for read-side queries.
func (r *MatchRepository) aggregates() []match.Aggregate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Aggregate, 0, len(r.byID))
	for _, entry := range r.byID {
		item := entry.aggregate
		item.Participants = append([]match.Participant(nil), entry.aggregate.Participants...)
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Match.ID < out[j].Match.ID })
	return out
}

func (r *MatchRepository) exists(matchID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[matchID]
	return ok
}
